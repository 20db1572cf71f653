package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-task-manager/internal/model"
	"ai-task-manager/internal/task/classify"
)

func TestClassifyCategories(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Category
	}{
		{"meeting indonesian", "Rapat dengan tim marketing", model.CategoryMeeting},
		{"meeting english", "Weekly sync meeting", model.CategoryMeeting},
		{"document", "Tulis laporan bulanan", model.CategoryDocument},
		{"document english", "Finish the quarterly report", model.CategoryDocument},
		{"communication", "Balas email dari klien", model.CategoryCommunication},
		{"presentation", "Buat slide untuk demo", model.CategoryPresentation},
		{"no keyword", "Beli kado ulang tahun", model.CategoryGeneral},
		{"case insensitive", "MEETING penting", model.CategoryMeeting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify.Classify(tt.text)
			assert.Equal(t, tt.want, got.Category)
		})
	}
}

func TestClassifyRulePriority(t *testing.T) {
	// Meeting outranks document when both keywords are present.
	result := classify.Classify("Rapat membahas laporan keuangan")
	assert.Equal(t, model.CategoryMeeting, result.Category)

	// Document outranks communication: "kirim laporan" is a document task.
	result = classify.Classify("Kirim laporan ke manajer")
	assert.Equal(t, model.CategoryDocument, result.Category)
}

func TestClassifyUrgency(t *testing.T) {
	result := classify.Classify("Beli tiket urgent")
	assert.Equal(t, model.UrgencyHigh, result.Urgency)
	assert.Contains(t, result.ExtractedFacts, "Task is marked as urgent")

	// Urgency is independent of category.
	assert.Equal(t, model.CategoryGeneral, result.Category)

	result = classify.Classify("Santai saja, tidak buru-buru")
	assert.Equal(t, model.UrgencyNormal, result.Urgency)
	assert.Empty(t, result.ExtractedFacts)
}

func TestClassifyTimeExtraction(t *testing.T) {
	result := classify.Classify("Janji dokter jam 14:00")
	assert.Contains(t, result.ExtractedFacts, "Detected time: 14:00")

	// Dot separator also matches.
	result = classify.Classify("Berangkat 9.30 pagi")
	assert.Contains(t, result.ExtractedFacts, "Detected time: 9.30")
}

func TestClassifyRelativeDate(t *testing.T) {
	result := classify.Classify("Bayar tagihan besok")
	assert.Contains(t, result.ExtractedFacts, "Due date: tomorrow")

	result = classify.Classify("Selesaikan hari ini")
	assert.Contains(t, result.ExtractedFacts, "Due date: today")

	// Only the first matching relative-date keyword is reported.
	result = classify.Classify("Mulai hari ini, selesai besok")
	assert.Contains(t, result.ExtractedFacts, "Due date: tomorrow")
	assert.NotContains(t, result.ExtractedFacts, "Due date: today")
}

func TestClassifySuggestions(t *testing.T) {
	result := classify.Classify("Meeting dengan tim")
	require.Len(t, result.Suggestions, 2)

	result = classify.Classify("Tidak ada kata kunci di sini")
	assert.Empty(t, result.Suggestions)
}

func TestClassifyEndToEndScenarios(t *testing.T) {
	t.Run("meeting with time and relative date", func(t *testing.T) {
		result := classify.Classify("Meeting dengan tim jam 14:00 besok")

		assert.Equal(t, model.CategoryMeeting, result.Category)
		assert.Equal(t, model.UrgencyNormal, result.Urgency)
		assert.Contains(t, result.ExtractedFacts, "Detected time: 14:00")
		assert.Contains(t, result.ExtractedFacts, "Due date: tomorrow")
		require.Len(t, result.Suggestions, 2)
	})

	t.Run("urgent document", func(t *testing.T) {
		result := classify.Classify("Kirim laporan urgent deadline besok")

		assert.Equal(t, model.CategoryDocument, result.Category)
		assert.Equal(t, model.UrgencyHigh, result.Urgency)
	})
}
