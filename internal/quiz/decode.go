package quiz

import (
	"encoding/json"
	"fmt"
	"time"
)

// Legacy import sources and older API clients send snake_case keys. All
// aliasing is resolved here, in one boundary step, so the formatter only
// ever sees RawQuiz/RawQuestion.

// ParseQuiz decodes a JSON quiz payload, camelCase or snake_case, into a
// RawQuiz ready for formatting.
func ParseQuiz(data []byte) (RawQuiz, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return RawQuiz{}, NewValidationError("body", fmt.Sprintf("Invalid quiz payload: %v", err))
	}
	return DecodeQuiz(m), nil
}

// DecodeQuiz maps a decoded JSON object onto RawQuiz, resolving legacy
// field-name aliases.
func DecodeQuiz(m map[string]any) RawQuiz {
	raw := RawQuiz{
		ID:              stringAt(m, "id"),
		Title:           pick(m, "title"),
		Topic:           stringAt(m, "topic"),
		Description:     stringAt(m, "description"),
		Category:        pick(m, "category"),
		QuestionType:    pick(m, "questionType", "question_type"),
		DifficultyLevel: pick(m, "difficultyLevel", "difficulty_level", "difficulty"),
		TimeLimit:       pick(m, "timeLimit", "time_limit"),
		Status:          stringAt(m, "status"),
		IsPublic:        boolAt(m, "isPublic", "is_public"),
		Tags:            pick(m, "tags"),
		Settings:        pick(m, "settings"),
		UserID:          stringAt(m, "userId", "user_id"),
		FolderID:        stringAt(m, "folderId", "folder_id"),
		CreatedAt:       timeAt(m, "createdAt", "created_at"),
		UpdatedAt:       timeAt(m, "updatedAt", "updated_at"),
	}

	// A canonical quiz round-tripping through the decoder keeps its
	// provenance tag.
	if meta, ok := m["metadata"].(map[string]any); ok {
		raw.GeneratedBy = stringAt(meta, "generatedBy", "generated_by")
	}

	if questions, ok := m["questions"].([]any); ok {
		raw.Questions = make([]RawQuestion, 0, len(questions))
		for _, item := range questions {
			if qm, ok := item.(map[string]any); ok {
				raw.Questions = append(raw.Questions, DecodeQuestion(qm))
			}
		}
	}
	return raw
}

// DecodeQuestion maps a decoded JSON object onto RawQuestion.
func DecodeQuestion(m map[string]any) RawQuestion {
	return RawQuestion{
		ID:            stringAt(m, "id"),
		Text:          stringAt(m, "question", "questionText", "question_text", "text"),
		Type:          pick(m, "questionType", "question_type", "type"),
		Options:       stringsAt(m, "options"),
		CorrectAnswer: stringAt(m, "correctAnswer", "correct_answer", "answer"),
		Explanation:   stringAt(m, "explanation"),
		Points:        pick(m, "points"),
		Difficulty:    pick(m, "difficulty", "difficulty_level", "difficultyLevel"),
		Tags:          pick(m, "tags"),
		LeftColumn:    stringsAt(m, "leftColumn", "left_column"),
		RightColumn:   stringsAt(m, "rightColumn", "right_column"),
	}
}

func pick(m map[string]any, keys ...string) any {
	for _, key := range keys {
		if v, ok := m[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

func stringAt(m map[string]any, keys ...string) string {
	if s, ok := pick(m, keys...).(string); ok {
		return s
	}
	return ""
}

func boolAt(m map[string]any, keys ...string) bool {
	switch v := pick(m, keys...).(type) {
	case bool:
		return v
	case string:
		return v == "true" || v == "1"
	case float64:
		return v != 0
	}
	return false
}

func stringsAt(m map[string]any, keys ...string) []string {
	switch v := pick(m, keys...).(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func timeAt(m map[string]any, keys ...string) time.Time {
	if s := stringAt(m, keys...); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
