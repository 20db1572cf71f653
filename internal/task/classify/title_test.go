package classify_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"ai-task-manager/internal/model"
	"ai-task-manager/internal/task/classify"
)

func TestDeriveTitleShortText(t *testing.T) {
	title := classify.DeriveTitle("Rapat tim", model.CategoryMeeting)

	assert.Equal(t, "📅 Rapat tim", title)
	assert.NotContains(t, title, "…")
}

func TestDeriveTitleTruncation(t *testing.T) {
	long := strings.Repeat("panjang ", 20) // well past the cutoff
	title := classify.DeriveTitle(long, model.CategoryGeneral)

	assert.True(t, strings.HasSuffix(title, "…"))
	assert.True(t, strings.HasPrefix(title, "📝 "))
}

func TestDeriveTitleGlyphPerCategory(t *testing.T) {
	tests := []struct {
		category model.Category
		glyph    string
	}{
		{model.CategoryMeeting, "📅"},
		{model.CategoryCommunication, "✉️"},
		{model.CategoryDocument, "📄"},
		{model.CategoryPresentation, "📊"},
		{model.CategoryGeneral, "📝"},
	}

	for _, tt := range tests {
		title := classify.DeriveTitle("tugas", tt.category)
		assert.True(t, strings.HasPrefix(title, tt.glyph+" "), "category %s", tt.category)
	}
}

func TestDeriveTitleUnknownCategoryFallsBack(t *testing.T) {
	title := classify.DeriveTitle("tugas", model.Category("mystery"))
	assert.True(t, strings.HasPrefix(title, "📝 "))
}

// Titles never exceed 54 characters: glyph (up to 2), space,
// 50 source characters, ellipsis.
func TestDeriveTitleLengthBound(t *testing.T) {
	inputs := []string{
		"",
		"singkat",
		strings.Repeat("a", 50),
		strings.Repeat("a", 51),
		strings.Repeat("selesaikan laporan ", 30),
		strings.Repeat("日本語のテキスト", 20),
	}

	for _, input := range inputs {
		for category := range map[model.Category]bool{
			model.CategoryMeeting: true, model.CategoryCommunication: true,
			model.CategoryDocument: true, model.CategoryPresentation: true,
			model.CategoryGeneral: true,
		} {
			title := classify.DeriveTitle(input, category)
			assert.LessOrEqual(t, utf8.RuneCountInString(title), 54,
				"input %q category %s", input, category)
		}
	}
}

func TestRelativeDate(t *testing.T) {
	assert.Equal(t, "tomorrow", classify.RelativeDate("Kerjakan besok pagi"))
	assert.Equal(t, "today", classify.RelativeDate("Selesaikan hari ini"))
	assert.Equal(t, "", classify.RelativeDate("Tanpa tanggal"))
}
