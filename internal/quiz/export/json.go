package export

import (
	"encoding/json"
	"time"

	"github.com/quizforge/quizforge/internal/quiz"
)

// exportVersion is a fixed tag consumers can dispatch on; bump only with a
// corresponding change to the envelope shape.
const exportVersion = "1.0"

type jsonEnvelope struct {
	Metadata  jsonMetadata    `json:"metadata"`
	Questions []quiz.Question `json:"questions"`
}

type jsonMetadata struct {
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Category        string    `json:"category"`
	DifficultyLevel string    `json:"difficultyLevel"`
	QuestionCount   int       `json:"questionCount"`
	ExportedAt      time.Time `json:"exportedAt"`
	Version         string    `json:"version"`
}

// RenderJSON emits the fixed { metadata, questions } envelope.
func RenderJSON(q quiz.Quiz) ([]byte, error) {
	questions := q.Questions
	if questions == nil {
		questions = []quiz.Question{}
	}
	envelope := jsonEnvelope{
		Metadata: jsonMetadata{
			Title:           q.Title,
			Description:     q.Description,
			Category:        q.Category,
			DifficultyLevel: q.DifficultyLevel,
			QuestionCount:   len(questions),
			ExportedAt:      time.Now().UTC(),
			Version:         exportVersion,
		},
		Questions: questions,
	}
	return json.MarshalIndent(envelope, "", "  ")
}
