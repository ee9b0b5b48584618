// Package export renders canonical quizzes into interchange formats:
// a JSON envelope, CSV, Moodle GIFT and human-readable plain text.
// Renderers are pure functions over the canonical quiz shape and share
// no state.
package export

import (
	"fmt"
	"strings"

	"github.com/quizforge/quizforge/internal/quiz"
)

// Format identifiers accepted by ForExport.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatGIFT = "gift"
	FormatText = "text"
)

// Result is a rendered export ready to be written to a client.
type Result struct {
	Format      string
	Filename    string
	ContentType string
	Body        []byte
}

// ForExport renders q in the requested format. The type string is matched
// case-insensitively; "moodle" is an alias for "gift" and "plain" for
// "text". Unrecognized types are a validation failure naming the type.
func ForExport(q quiz.Quiz, format string) (*Result, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		body, err := RenderJSON(q)
		if err != nil {
			return nil, err
		}
		return result(q, FormatJSON, "json", "application/json", body), nil
	case FormatCSV:
		body, err := RenderCSV(q)
		if err != nil {
			return nil, err
		}
		return result(q, FormatCSV, "csv", "text/csv", body), nil
	case "moodle", FormatGIFT:
		return result(q, FormatGIFT, "gift", "text/plain; charset=utf-8", RenderGIFT(q)), nil
	case FormatText, "plain":
		return result(q, FormatText, "txt", "text/plain; charset=utf-8", RenderText(q)), nil
	default:
		return nil, quiz.NewValidationError("format", fmt.Sprintf("Unsupported export format: %s", format))
	}
}

func result(q quiz.Quiz, format, ext, contentType string, body []byte) *Result {
	return &Result{
		Format:      format,
		Filename:    fmt.Sprintf("%s.%s", slug(q.Title), ext),
		ContentType: contentType,
		Body:        body,
	}
}

// metricFormat maps arbitrary client input onto the bounded label set the
// export counter accepts. Unknown formats collapse to "invalid" so label
// cardinality stays fixed.
func metricFormat(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		return FormatJSON
	case FormatCSV:
		return FormatCSV
	case "moodle", FormatGIFT:
		return FormatGIFT
	case FormatText, "plain":
		return FormatText
	default:
		return "invalid"
	}
}

// slug reduces a quiz title to a safe filename stem.
func slug(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteByte('-')
		}
	}
	s := strings.Trim(b.String(), "-")
	if s == "" {
		s = "quiz"
	}
	return s
}
