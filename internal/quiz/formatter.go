package quiz

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

// DefaultPoints is assigned when a question's point value is absent or, in
// lenient mode, out of range.
const DefaultPoints = 1

// Options controls formatter strictness. The historical behavior was
// asymmetric: a correct answer missing from the options always fails, while
// an out-of-range point value silently falls back to DefaultPoints. Lenient
// points can mask upstream generation bugs, so strict mode is available for
// callers that want the failure surfaced.
type Options struct {
	// StrictPoints rejects out-of-range or unparsable point values instead
	// of defaulting them.
	StrictPoints bool
}

// Formatter turns raw AI-generated or imported quiz data into the canonical
// shape. It holds no mutable state and is safe for concurrent use.
type Formatter struct {
	opts Options
}

func NewFormatter(opts Options) *Formatter {
	return &Formatter{opts: opts}
}

var blankMarker = regexp.MustCompile(`_{5,}|\{blank\}`)

// FormatQuestion produces a canonical Question from raw input. index is the
// question's zero-based position; any failure is reported with the 1-based
// question number so callers never see a raw internal error.
func (f *Formatter) FormatQuestion(raw RawQuestion, index int, ctx Context) (Question, error) {
	q, err := f.formatQuestion(raw, index)
	if err != nil {
		return Question{}, NewValidationError("", fmt.Sprintf("Question %d formatting failed: %v", index+1, err))
	}
	return q, nil
}

func (f *Formatter) formatQuestion(raw RawQuestion, index int) (Question, error) {
	text := strings.TrimSpace(raw.Text)
	if text == "" {
		return Question{}, NewValidationError("question", "Question text is required")
	}

	options := make([]string, 0, len(raw.Options))
	for _, opt := range raw.Options {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}
		options = append(options, opt)
		if len(options) == MaxOptions {
			break
		}
	}

	answer := strings.TrimSpace(raw.CorrectAnswer)
	if answer == "" {
		return Question{}, NewValidationError("correctAnswer", "Correct answer is required")
	}

	qType := FormatQuestionType(raw.Type)
	// Strict equality against the trimmed options, no fuzzy matching.
	// True/false answers are instead canonicalized onto the forced pair,
	// since generators phrase them freely ("ถูก", lowercase "true").
	if qType != TypeTrueFalse && len(options) > 0 && !containsExact(options, answer) {
		return Question{}, NewValidationError("correctAnswer", "Correct answer must be one of the provided options")
	}

	points, err := f.formatPoints(raw.Points)
	if err != nil {
		return Question{}, err
	}

	id := raw.ID
	if id == "" {
		id = fmt.Sprintf("q_%d", index+1)
	}

	q := Question{
		ID:            id,
		Text:          text,
		Type:          qType,
		Options:       options,
		CorrectAnswer: answer,
		Explanation:   truncate(strings.TrimSpace(raw.Explanation), MaxExplanationLen),
		Points:        points,
		OrderIndex:    index,
		Tags:          FormatTags(raw.Tags),
	}
	if raw.Difficulty != nil {
		q.Difficulty = FormatDifficulty(raw.Difficulty)
	}

	switch q.Type {
	case TypeTrueFalse:
		q.Options = []string{"True", "False"}
		if IsAffirmative(answer) {
			q.CorrectAnswer = "True"
		} else {
			q.CorrectAnswer = "False"
		}
	case TypeFillInBlank:
		q.BlankCount = countBlanks(text)
	case TypeMatching:
		q.LeftColumn = trimAll(raw.LeftColumn)
		q.RightColumn = trimAll(raw.RightColumn)
	}

	return q, nil
}

// FormatQuestions applies FormatQuestion to each raw question in order.
// The first failure aborts the whole batch; there is no partial success.
func (f *Formatter) FormatQuestions(raws []RawQuestion, ctx Context) ([]Question, error) {
	out := make([]Question, 0, len(raws))
	for i, raw := range raws {
		q, err := f.FormatQuestion(raw, i, ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

// FormatQuiz assembles a canonical Quiz from raw input, formatting its
// questions when present and computing derived metadata from the result.
func (f *Formatter) FormatQuiz(raw RawQuiz, ctx Context) (Quiz, error) {
	q, err := f.formatQuiz(raw, ctx)
	if err != nil {
		return Quiz{}, NewValidationError("", fmt.Sprintf("Quiz formatting failed for %q: %v", FormatTitle(raw.Title), err))
	}
	return q, nil
}

func (f *Formatter) formatQuiz(raw RawQuiz, ctx Context) (Quiz, error) {
	q := Quiz{
		ID:              raw.ID,
		Title:           FormatTitle(raw.Title),
		Topic:           strings.TrimSpace(raw.Topic),
		Description:     truncate(strings.TrimSpace(raw.Description), MaxDescriptionLen),
		Category:        FormatCategory(raw.Category),
		QuestionType:    FormatQuestionType(raw.QuestionType),
		DifficultyLevel: FormatDifficulty(raw.DifficultyLevel),
		TimeLimit:       positiveInt(raw.TimeLimit),
		Status:          formatStatus(raw.Status),
		IsPublic:        raw.IsPublic,
		Tags:            FormatTags(raw.Tags),
		Settings:        FormatSettings(raw.Settings),
		UserID:          raw.UserID,
		FolderID:        raw.FolderID,
		CreatedAt:       raw.CreatedAt,
		UpdatedAt:       raw.UpdatedAt,
	}
	if ctx.UserID != "" {
		q.UserID = ctx.UserID
	}

	if len(raw.Questions) > 0 {
		questions, err := f.FormatQuestions(raw.Questions, ctx)
		if err != nil {
			return Quiz{}, err
		}
		q.Questions = questions
		q.QuestionCount = len(questions)
	}

	generatedBy := ctx.GeneratedBy
	if generatedBy == "" {
		generatedBy = raw.GeneratedBy
	}
	if generatedBy == "" {
		generatedBy = SourceManual
	}
	q.Metadata = Metadata{
		GeneratedBy:      generatedBy,
		SourceFile:       ctx.SourceFile,
		GeneratedAt:      time.Now().UTC(),
		EstimatedTime:    estimatedTime(q.Questions),
		ComplexityScore:  complexityScore(q.Questions),
		ReadabilityScore: readabilityScore(q.Questions),
	}

	return q, nil
}

// secondsPerQuestion is a flat completion-time heuristic; point weight and
// difficulty are deliberately ignored.
const secondsPerQuestion = 60

func estimatedTime(questions []Question) int {
	return int(math.Round(float64(len(questions)*secondsPerQuestion) / 60))
}

// complexityScore buckets a quiz by an average per-question score: long
// prompts, many options and explanations all count toward complexity.
func complexityScore(questions []Question) string {
	if len(questions) == 0 {
		return "low"
	}
	total := 0
	for _, q := range questions {
		switch {
		case len(q.Text) > 200:
			total += 2
		case len(q.Text) > 100:
			total++
		}
		if len(q.Options) > 4 {
			total++
		}
		if q.Explanation != "" {
			total++
		}
	}
	avg := float64(total) / float64(len(questions))
	switch {
	case avg >= 3:
		return "high"
	case avg >= 1.5:
		return "medium"
	default:
		return "low"
	}
}

var sentenceEnd = regexp.MustCompile(`[.!?]+`)

// readabilityScore is the average number of words per sentence across all
// question prompts, rounded to one decimal.
func readabilityScore(questions []Question) float64 {
	var words, sentences int
	for _, q := range questions {
		words += len(strings.Fields(q.Text))
		sentences += countSentences(q.Text)
	}
	if words == 0 || sentences == 0 {
		return 0
	}
	return math.Round(float64(words)/float64(sentences)*10) / 10
}

func countSentences(text string) int {
	n := 0
	for _, part := range sentenceEnd.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			n++
		}
	}
	if n == 0 {
		n = 1
	}
	return n
}

func (f *Formatter) formatPoints(v any) (int, error) {
	if v == nil {
		return DefaultPoints, nil
	}
	p, ok := coerceInt(v)
	if !ok || p < MinPoints || p > MaxPoints {
		if f.opts.StrictPoints {
			return 0, NewValidationError("points", fmt.Sprintf("Points must be an integer between %d and %d", MinPoints, MaxPoints))
		}
		return DefaultPoints, nil
	}
	return p, nil
}

// countBlanks counts `_____` or `{blank}` markers in a fill_in_blank prompt.
// A prompt without markers still asks for one answer.
func countBlanks(text string) int {
	n := len(blankMarker.FindAllString(text, -1))
	if n == 0 {
		n = 1
	}
	return n
}

// IsAffirmative reports whether a true/false answer names the affirmative
// side. Generators emit Thai "ถูก" as well as English "true" variants.
func IsAffirmative(answer string) bool {
	s := strings.ToLower(strings.TrimSpace(answer))
	return s == "ถูก" || s == "true"
}

func containsExact(options []string, answer string) bool {
	for _, opt := range options {
		if opt == answer {
			return true
		}
	}
	return false
}

func trimAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
