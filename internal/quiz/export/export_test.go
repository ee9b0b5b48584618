package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizforge/quizforge/internal/quiz"
)

func capitalsQuiz() quiz.Quiz {
	return quiz.Quiz{
		Title:           "European Capitals",
		Description:     "A short capitals quiz",
		Category:        quiz.CategoryGeneral,
		DifficultyLevel: quiz.DifficultyMedium,
		QuestionCount:   2,
		Questions: []quiz.Question{
			{
				ID:            "q_1",
				Text:          "What is the capital of France?",
				Type:          quiz.TypeMultipleChoice,
				Options:       []string{"Paris", "London"},
				CorrectAnswer: "Paris",
				Explanation:   "Paris is the capital of France.",
				Points:        1,
			},
			{
				ID:            "q_2",
				Text:          "Berlin is the capital of Germany.",
				Type:          quiz.TypeTrueFalse,
				Options:       []string{"True", "False"},
				CorrectAnswer: "True",
				Points:        1,
				OrderIndex:    1,
			},
		},
	}
}

func TestRenderJSONEnvelope(t *testing.T) {
	body, err := RenderJSON(capitalsQuiz())
	require.NoError(t, err)

	var envelope struct {
		Metadata struct {
			Title         string `json:"title"`
			QuestionCount int    `json:"questionCount"`
			Version       string `json:"version"`
		} `json:"metadata"`
		Questions []struct {
			Question      string   `json:"question"`
			Options       []string `json:"options"`
			CorrectAnswer string   `json:"correctAnswer"`
			Points        int      `json:"points"`
		} `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))

	assert.Equal(t, "1.0", envelope.Metadata.Version)
	assert.Equal(t, "European Capitals", envelope.Metadata.Title)
	assert.Equal(t, 2, envelope.Metadata.QuestionCount)

	// Round-trip: the questions array mirrors the canonical quiz.
	q := capitalsQuiz()
	require.Len(t, envelope.Questions, len(q.Questions))
	for i, item := range envelope.Questions {
		assert.Equal(t, q.Questions[i].Text, item.Question)
		assert.Equal(t, q.Questions[i].Options, item.Options)
		assert.Equal(t, q.Questions[i].CorrectAnswer, item.CorrectAnswer)
		assert.Equal(t, q.Questions[i].Points, item.Points)
	}
}

func TestRenderCSVHeaderAndRows(t *testing.T) {
	body, err := RenderCSV(capitalsQuiz())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(body), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Question,Type,Option1,Option2,Option3,Option4,CorrectAnswer,Explanation,Points", lines[0])
	assert.Contains(t, lines[1], "What is the capital of France?")
	assert.Contains(t, lines[1], "Paris")
}

func TestRenderCSVQuotesSpecialCharacters(t *testing.T) {
	q := capitalsQuiz()
	q.Questions[0].Text = `He said, "hi"`

	body, err := RenderCSV(q)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"He said, ""hi"""`)
}

func TestRenderCSVDropsOptionsBeyondFour(t *testing.T) {
	q := capitalsQuiz()
	q.Questions[0].Options = []string{"Paris", "London", "Berlin", "Madrid", "Rome", "Lisbon"}

	body, err := RenderCSV(q)
	require.NoError(t, err)
	out := string(body)
	assert.Contains(t, out, "Madrid")
	assert.NotContains(t, out, "Rome")
	assert.NotContains(t, out, "Lisbon")
}

func TestRenderGIFTSigils(t *testing.T) {
	out := string(RenderGIFT(capitalsQuiz()))

	assert.Contains(t, out, "// Quiz: European Capitals")
	assert.Contains(t, out, "::Question 1::")
	assert.Contains(t, out, "\n=Paris\n")
	assert.Contains(t, out, "\n~London\n")
	assert.Contains(t, out, "{TRUE}")
}

func TestRenderGIFTTrueFalseAnswers(t *testing.T) {
	q := capitalsQuiz()
	q.Questions = q.Questions[1:]

	q.Questions[0].CorrectAnswer = "ถูก"
	assert.Contains(t, string(RenderGIFT(q)), "{TRUE}")

	q.Questions[0].CorrectAnswer = "TRUE"
	assert.Contains(t, string(RenderGIFT(q)), "{TRUE}")

	q.Questions[0].CorrectAnswer = "False"
	assert.Contains(t, string(RenderGIFT(q)), "{FALSE}")
}

func TestRenderGIFTMarksUnsupportedTypes(t *testing.T) {
	q := capitalsQuiz()
	q.Questions[0].Type = quiz.TypeEssay

	out := string(RenderGIFT(q))
	assert.Contains(t, out, "question 1 (essay) is not representable in GIFT")
}

func TestRenderGIFTEscapesControlCharacters(t *testing.T) {
	q := capitalsQuiz()
	q.Questions = q.Questions[:1]
	q.Questions[0].Text = "Solve x = 2 {hint}"
	q.Questions[0].Options = []string{"2", "4"}
	q.Questions[0].CorrectAnswer = "2"

	out := string(RenderGIFT(q))
	assert.Contains(t, out, `Solve x \= 2 \{hint\}`)
}

func TestRenderTextListing(t *testing.T) {
	out := string(RenderText(capitalsQuiz()))

	assert.Contains(t, out, "European Capitals")
	assert.Contains(t, out, "1. What is the capital of France?")
	assert.Contains(t, out, "a) Paris ✓")
	assert.Contains(t, out, "b) London")
	assert.Contains(t, out, "Explanation: Paris is the capital of France.")
	assert.Contains(t, out, "Points: 1")
}

func TestForExportDispatch(t *testing.T) {
	q := capitalsQuiz()

	cases := []struct {
		format      string
		wantFormat  string
		contentType string
	}{
		{"json", FormatJSON, "application/json"},
		{"CSV", FormatCSV, "text/csv"},
		{"moodle", FormatGIFT, "text/plain; charset=utf-8"},
		{"gift", FormatGIFT, "text/plain; charset=utf-8"},
		{"text", FormatText, "text/plain; charset=utf-8"},
		{"plain", FormatText, "text/plain; charset=utf-8"},
	}
	for _, tc := range cases {
		result, err := ForExport(q, tc.format)
		require.NoError(t, err, tc.format)
		assert.Equal(t, tc.wantFormat, result.Format, tc.format)
		assert.Equal(t, tc.contentType, result.ContentType, tc.format)
		assert.NotEmpty(t, result.Body, tc.format)
	}
}

func TestForExportFilename(t *testing.T) {
	result, err := ForExport(capitalsQuiz(), "csv")
	require.NoError(t, err)
	assert.Equal(t, "european-capitals.csv", result.Filename)
}

func TestMetricFormatBoundsLabelSet(t *testing.T) {
	assert.Equal(t, FormatCSV, metricFormat(" CSV "))
	assert.Equal(t, FormatGIFT, metricFormat("moodle"))
	assert.Equal(t, FormatText, metricFormat("plain"))

	// Arbitrary client strings must not become new label values.
	assert.Equal(t, "invalid", metricFormat("pdf"))
	assert.Equal(t, "invalid", metricFormat("../../etc/passwd"))
	assert.Equal(t, "invalid", metricFormat(""))
}

func TestForExportUnknownFormat(t *testing.T) {
	_, err := ForExport(capitalsQuiz(), "pdf")
	require.Error(t, err)
	assert.True(t, quiz.IsValidation(err))
	assert.Contains(t, err.Error(), "pdf")
}
