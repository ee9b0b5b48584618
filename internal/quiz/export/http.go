package export

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/quizforge/quizforge/internal/metrics"
	"github.com/quizforge/quizforge/internal/quiz"
	httperrors "github.com/quizforge/quizforge/pkg/http/errors"
)

// HTTPHandler exposes the export endpoint. The quiz to render arrives in the
// request body (raw or already-canonical; both run through the formatter),
// keeping the service stateless.
type HTTPHandler struct {
	formatter *quiz.Formatter
	logger    zerolog.Logger
}

func NewHTTPHandler(formatter *quiz.Formatter, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		formatter: formatter,
		logger:    logger.With().Str("component", "export_http").Logger(),
	}
}

// HandleExport handles POST /v1/quizzes/export?format={json|csv|moodle|gift|text|plain}.
func (h *HTTPHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeMissingField, "format query parameter is required")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Could not read request body")
		return
	}
	raw, err := quiz.ParseQuiz(body)
	if err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, err.Error())
		return
	}

	q, err := h.formatter.FormatQuiz(raw, quiz.Context{})
	if err != nil {
		metrics.Exports.WithLabelValues(metricFormat(format), "invalid").Inc()
		h.respondError(w, httperrors.ErrCodeFormattingFailed, err)
		return
	}

	result, err := ForExport(q, format)
	if err != nil {
		metrics.Exports.WithLabelValues(metricFormat(format), "invalid").Inc()
		h.respondError(w, httperrors.ErrCodeUnsupportedExportFormat, err)
		return
	}
	metrics.Exports.WithLabelValues(result.Format, "ok").Inc()

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Body)
}

func (h *HTTPHandler) respondError(w http.ResponseWriter, code string, err error) {
	var ve *quiz.ValidationError
	if errors.As(err, &ve) {
		httperrors.RespondValidationError(w, code, ve.Message, ve.Field)
		return
	}
	h.logger.Error().Err(err).Msg("unexpected export error")
	httperrors.RespondInternalError(w, "quiz export failed")
}
