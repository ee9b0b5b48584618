package export

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizforge/quizforge/internal/quiz"
)

const rawQuizJSON = `{
	"title": "HTTP Export Quiz",
	"questions": [
		{"question": "What is the capital of France?", "options": ["Paris", "London"], "correctAnswer": "Paris"}
	]
}`

func newTestHandler() *HTTPHandler {
	return NewHTTPHandler(quiz.NewFormatter(quiz.Options{}), zerolog.New(io.Discard))
}

func TestHandleExportCSV(t *testing.T) {
	handler := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/v1/quizzes/export?format=csv", strings.NewReader(rawQuizJSON))
	rec := httptest.NewRecorder()

	handler.HandleExport(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "http-export-quiz.csv")
	assert.Contains(t, rec.Body.String(), "Question,Type,Option1")
}

func TestHandleExportRequiresFormat(t *testing.T) {
	handler := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/v1/quizzes/export", strings.NewReader(rawQuizJSON))
	rec := httptest.NewRecorder()

	handler.HandleExport(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "format query parameter is required")
}

func TestHandleExportUnknownFormat(t *testing.T) {
	handler := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/v1/quizzes/export?format=pdf", strings.NewReader(rawQuizJSON))
	rec := httptest.NewRecorder()

	handler.HandleExport(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "pdf")
}

func TestHandleExportInvalidQuiz(t *testing.T) {
	handler := newTestHandler()
	body := `{"title": "Bad", "questions": [{"question": "", "correctAnswer": "A"}]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/quizzes/export?format=gift", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleExport(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Question 1 formatting failed")
}

func TestHandleExportMethodNotAllowed(t *testing.T) {
	handler := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/v1/quizzes/export?format=csv", nil)
	rec := httptest.NewRecorder()

	handler.HandleExport(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
