package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/quizforge/quizforge/internal/quiz"
)

// csvHeader is a wire contract: column names and order must not change, as
// downstream spreadsheet/import tooling keys off them.
var csvHeader = []string{"Question", "Type", "Option1", "Option2", "Option3", "Option4", "CorrectAnswer", "Explanation", "Points"}

const csvOptionColumns = 4

// RenderCSV emits one row per question. Only the first four options are
// represented; excess options are dropped. Fields containing commas, quotes
// or newlines are RFC 4180 quoted by the csv writer.
func RenderCSV(q quiz.Quiz) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, question := range q.Questions {
		row := make([]string, 0, len(csvHeader))
		row = append(row, question.Text, question.Type)
		for i := 0; i < csvOptionColumns; i++ {
			if i < len(question.Options) {
				row = append(row, question.Options[i])
			} else {
				row = append(row, "")
			}
		}
		row = append(row, question.CorrectAnswer, question.Explanation, strconv.Itoa(question.Points))
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
