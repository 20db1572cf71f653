package classify

import "ai-task-manager/internal/model"

// titleMaxLen is the number of source characters kept in a display title.
const titleMaxLen = 50

// ellipsis marks a truncated title.
const ellipsis = "…"

// categoryGlyphs prefix the display title per category.
var categoryGlyphs = map[model.Category]string{
	model.CategoryMeeting:       "📅",
	model.CategoryCommunication: "✉️",
	model.CategoryDocument:      "📄",
	model.CategoryPresentation:  "📊",
	model.CategoryGeneral:       "📝",
}

// DeriveTitle builds the display title: the text truncated to the first
// 50 characters (with an ellipsis when truncated), prefixed with the
// category glyph. Deterministic, no side effects.
func DeriveTitle(text string, category model.Category) string {
	title := text
	if runes := []rune(text); len(runes) > titleMaxLen {
		title = string(runes[:titleMaxLen]) + ellipsis
	}

	glyph, ok := categoryGlyphs[category]
	if !ok {
		glyph = categoryGlyphs[model.CategoryGeneral]
	}

	return glyph + " " + title
}
