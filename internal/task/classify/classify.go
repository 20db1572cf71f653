package classify

import (
	"regexp"
	"strings"

	"ai-task-manager/internal/model"
)

// categoryRules is the ordered rule table: the first rule whose keyword
// appears in the text wins. Document keywords outrank communication
// keywords, so "kirim laporan" classifies as document.
var categoryRules = []categoryRule{
	{
		category: model.CategoryMeeting,
		keywords: []string{"rapat", "meeting"},
		suggestions: []string{
			"Prepare the meeting agenda",
			"Confirm attendee availability",
		},
	},
	{
		category: model.CategoryDocument,
		keywords: []string{"laporan", "report"},
		suggestions: []string{
			"Collect the data you need",
		},
	},
	{
		category: model.CategoryCommunication,
		keywords: []string{"email", "balas", "kirim"},
		suggestions: []string{
			"Draft the message before sending",
		},
	},
	{
		category: model.CategoryPresentation,
		keywords: []string{"presentasi", "slide"},
		suggestions: []string{
			"Outline the presentation first",
		},
	},
}

// urgencyKeywords flag a task as high urgency regardless of category.
var urgencyKeywords = []string{"urgent", "segera", "deadline"}

const urgencyFact = "Task is marked as urgent"

// dateRules is ordered; only the first matching rule is reported.
var dateRules = []dateRule{
	{keywords: []string{"besok", "tomorrow"}, fact: "Due date: tomorrow"},
	{keywords: []string{"hari ini", "today"}, fact: "Due date: today"},
}

// timePattern matches a time-of-day such as "14:00" or "9.30".
var timePattern = regexp.MustCompile(`(\d{1,2})[:.]\s?(\d{2})`)

// Classify runs the keyword rule tables over free task text.
// The caller must reject empty input; Classify itself never fails,
// unmatched text simply yields category general with no facts.
func Classify(text string) Result {
	input := strings.ToLower(text)

	result := Result{
		Category: model.CategoryGeneral,
		Urgency:  model.UrgencyNormal,
	}

	for _, rule := range categoryRules {
		if containsAny(input, rule.keywords) {
			result.Category = rule.category
			result.Suggestions = append(result.Suggestions, rule.suggestions...)
			break
		}
	}

	if containsAny(input, urgencyKeywords) {
		result.Urgency = model.UrgencyHigh
		result.ExtractedFacts = append(result.ExtractedFacts, urgencyFact)
	}

	if match := timePattern.FindString(input); match != "" {
		result.ExtractedFacts = append(result.ExtractedFacts, "Detected time: "+match)
	}

	for _, rule := range dateRules {
		if containsAny(input, rule.keywords) {
			result.ExtractedFacts = append(result.ExtractedFacts, rule.fact)
			break
		}
	}

	return result
}

// RelativeDate returns the relative-date keyword found in the text
// ("tomorrow", "today") or "" when none is present. Used to default
// the task date when the caller supplies none.
func RelativeDate(text string) string {
	input := strings.ToLower(text)
	for _, rule := range dateRules {
		if containsAny(input, rule.keywords) {
			// canonical English keyword is always last in the rule
			return rule.keywords[len(rule.keywords)-1]
		}
	}
	return ""
}

func containsAny(input string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(input, kw) {
			return true
		}
	}
	return false
}
