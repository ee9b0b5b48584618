package export

import (
	"fmt"
	"strings"

	"github.com/quizforge/quizforge/internal/quiz"
)

// RenderText emits a human-readable listing with lettered options and a
// checkmark on the correct one.
func RenderText(q quiz.Quiz) []byte {
	var b strings.Builder

	b.WriteString(q.Title + "\n")
	b.WriteString(strings.Repeat("=", len([]rune(q.Title))) + "\n")
	if q.Description != "" {
		b.WriteString(q.Description + "\n")
	}
	fmt.Fprintf(&b, "Category: %s | Difficulty: %s | Questions: %d\n\n", q.Category, q.DifficultyLevel, len(q.Questions))

	for i, question := range q.Questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, question.Text)
		for j, opt := range question.Options {
			mark := ""
			if opt == question.CorrectAnswer {
				mark = " ✓"
			}
			fmt.Fprintf(&b, "   %c) %s%s\n", 'a'+j, opt, mark)
		}
		if len(question.Options) == 0 {
			fmt.Fprintf(&b, "   Answer: %s\n", question.CorrectAnswer)
		}
		if question.Explanation != "" {
			fmt.Fprintf(&b, "   Explanation: %s\n", question.Explanation)
		}
		fmt.Fprintf(&b, "   Points: %d\n\n", question.Points)
	}

	return []byte(b.String())
}
