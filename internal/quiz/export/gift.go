package export

import (
	"fmt"
	"strings"

	"github.com/quizforge/quizforge/internal/quiz"
)

// RenderGIFT emits Moodle GIFT plain text. The `=`/`~` sigils mark correct
// and incorrect options and must match Moodle's import format exactly.
// Question types GIFT cannot encode get an explicit marker comment instead
// of a silently empty answer block.
func RenderGIFT(q quiz.Quiz) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "// Quiz: %s\n", q.Title)
	if q.Description != "" {
		fmt.Fprintf(&b, "// Description: %s\n", q.Description)
	}
	fmt.Fprintf(&b, "// Category: %s | Difficulty: %s\n\n", q.Category, q.DifficultyLevel)

	for i, question := range q.Questions {
		fmt.Fprintf(&b, "::Question %d::%s ", i+1, escapeGIFT(question.Text))

		switch question.Type {
		case quiz.TypeMultipleChoice:
			b.WriteString("{\n")
			for _, opt := range question.Options {
				sigil := "~"
				if opt == question.CorrectAnswer {
					sigil = "="
				}
				fmt.Fprintf(&b, "%s%s\n", sigil, escapeGIFT(opt))
			}
			b.WriteString("}\n\n")
		case quiz.TypeTrueFalse:
			answer := "FALSE"
			if quiz.IsAffirmative(question.CorrectAnswer) {
				answer = "TRUE"
			}
			fmt.Fprintf(&b, "{%s}\n\n", answer)
		default:
			fmt.Fprintf(&b, "\n// question %d (%s) is not representable in GIFT\n\n", i+1, question.Type)
		}
	}

	return []byte(b.String())
}

var giftEscaper = strings.NewReplacer(
	"~", `\~`,
	"=", `\=`,
	"#", `\#`,
	"{", `\{`,
	"}", `\}`,
	":", `\:`,
)

func escapeGIFT(s string) string {
	return giftEscaper.Replace(s)
}
