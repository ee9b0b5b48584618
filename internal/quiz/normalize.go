package quiz

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Field bounds for the canonical shape.
const (
	MaxTitleLen       = 255
	MaxDescriptionLen = 1000
	MaxExplanationLen = 500
	MaxTags           = 10
	MaxOptions        = 6
	MinPoints         = 1
	MaxPoints         = 10
)

// DefaultTitle is used when a quiz arrives without a usable title.
const DefaultTitle = "Untitled Quiz"

var validCategories = map[string]bool{
	CategoryGeneral:     true,
	CategoryMathematics: true,
	CategoryScience:     true,
	CategoryLanguage:    true,
	CategoryHistory:     true,
	CategoryTechnology:  true,
	CategoryOther:       true,
}

var validQuestionTypes = map[string]bool{
	TypeMultipleChoice: true,
	TypeTrueFalse:      true,
	TypeFillInBlank:    true,
	TypeEssay:          true,
	TypeMatching:       true,
}

var validDifficulties = map[string]bool{
	DifficultyEasy:   true,
	DifficultyMedium: true,
	DifficultyHard:   true,
	DifficultyExpert: true,
}

// FormatTitle trims and clamps a title to MaxTitleLen runes. Missing or
// non-string input yields DefaultTitle. Total: never fails.
func FormatTitle(v any) string {
	s, ok := v.(string)
	if !ok {
		return DefaultTitle
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultTitle
	}
	return truncate(s, MaxTitleLen)
}

// FormatCategory validates against the category whitelist, falling back to
// "general" for anything unrecognized.
func FormatCategory(v any) string {
	if s, ok := v.(string); ok {
		s = strings.ToLower(strings.TrimSpace(s))
		if validCategories[s] {
			return s
		}
	}
	return CategoryGeneral
}

// FormatQuestionType validates against the known question types, falling
// back to multiple_choice.
func FormatQuestionType(v any) string {
	if s, ok := v.(string); ok {
		s = strings.ToLower(strings.TrimSpace(s))
		if validQuestionTypes[s] {
			return s
		}
	}
	return TypeMultipleChoice
}

// FormatDifficulty validates a difficulty level, falling back to medium.
func FormatDifficulty(v any) string {
	if s, ok := v.(string); ok {
		s = strings.ToLower(strings.TrimSpace(s))
		if validDifficulties[s] {
			return s
		}
	}
	return DifficultyMedium
}

// FormatTags accepts a string slice, a JSON-encoded array, or a
// comma-separated string. Entries are trimmed and capped at MaxTags.
// Anything else yields an empty slice.
func FormatTags(v any) []string {
	var tags []string
	switch t := v.(type) {
	case []string:
		tags = t
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok {
				tags = append(tags, s)
			}
		}
	case string:
		trimmed := strings.TrimSpace(t)
		if trimmed == "" {
			return []string{}
		}
		var parsed []string
		if err := json.Unmarshal([]byte(trimmed), &parsed); err == nil {
			tags = parsed
		} else {
			tags = strings.Split(trimmed, ",")
		}
	default:
		return []string{}
	}

	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		out = append(out, tag)
		if len(out) == MaxTags {
			break
		}
	}
	return out
}

// FormatSettings accepts an object or a JSON-encoded string. Malformed JSON
// is swallowed and yields an empty object, not an error.
func FormatSettings(v any) map[string]any {
	switch s := v.(type) {
	case map[string]any:
		return s
	case string:
		var parsed map[string]any
		if err := json.Unmarshal([]byte(s), &parsed); err == nil && parsed != nil {
			return parsed
		}
	}
	return map[string]any{}
}

func formatStatus(v string) string {
	if strings.ToLower(strings.TrimSpace(v)) == StatusPublished {
		return StatusPublished
	}
	return StatusDraft
}

// truncate clamps s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// coerceInt converts JSON-ish numeric values to int. Floats are truncated,
// strings parsed as integers or floats.
func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return int(f), true
		}
		return 0, false
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.Atoi(s); err == nil {
			return i, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// positiveInt coerces v to a positive integer, returning 0 when the value is
// absent, unparsable, or non-positive.
func positiveInt(v any) int {
	if n, ok := coerceInt(v); ok && n > 0 {
		return n
	}
	return 0
}
