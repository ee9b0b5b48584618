package quiz

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	httperrors "github.com/quizforge/quizforge/pkg/http/errors"
)

// HTTPHandlers provides REST endpoints for formatting and generation.
type HTTPHandlers struct {
	service  *Service
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewHTTPHandlers(service *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger.With().Str("component", "quiz_http").Logger(),
	}
}

// FormatQuiz handles POST /v1/quizzes/format. The body is a raw quiz payload
// (camelCase or legacy snake_case); the response is the canonical quiz.
func (h *HTTPHandlers) FormatQuiz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	raw, ok := h.decodeRawQuiz(w, r)
	if !ok {
		return
	}

	q, err := h.service.Format(raw, Context{GeneratedBy: formatSource(r)})
	if err != nil {
		h.respondFormatError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, q)
}

// ValidateQuiz handles POST /v1/quizzes/validate. It runs the same pipeline
// as FormatQuiz but reports the outcome instead of the formatted quiz.
func (h *HTTPHandlers) ValidateQuiz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	raw, ok := h.decodeRawQuiz(w, r)
	if !ok {
		return
	}

	resp := map[string]any{"valid": true}
	if _, err := h.service.Format(raw, Context{GeneratedBy: formatSource(r)}); err != nil {
		var ve *ValidationError
		if !errors.As(err, &ve) {
			httperrors.RespondInternalError(w, "quiz validation failed")
			return
		}
		resp["valid"] = false
		resp["errors"] = []string{ve.Message}
	}

	writeJSON(w, http.StatusOK, resp)
}

// GenerateQuiz handles POST /v1/quizzes/generate.
func (h *HTTPHandlers) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeValidationFailed, err.Error())
		return
	}

	q, err := h.service.Generate(r.Context(), req)
	if err != nil {
		if IsValidation(err) {
			// The generator answered but produced an unformattable quiz.
			h.logger.Warn().Err(err).Str("topic", req.Topic).Msg("generated quiz failed formatting")
			httperrors.RespondUpstreamError(w, err.Error())
			return
		}
		h.logger.Error().Err(err).Str("topic", req.Topic).Msg("quiz generation failed")
		httperrors.RespondServiceUnavailable(w, httperrors.ErrCodeGenerationFailed, "Quiz generation failed")
		return
	}

	writeJSON(w, http.StatusOK, q)
}

func (h *HTTPHandlers) decodeRawQuiz(w http.ResponseWriter, r *http.Request) (RawQuiz, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Could not read request body")
		return RawQuiz{}, false
	}
	raw, err := ParseQuiz(body)
	if err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, err.Error())
		return RawQuiz{}, false
	}
	return raw, true
}

func (h *HTTPHandlers) respondFormatError(w http.ResponseWriter, err error) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		httperrors.RespondValidationError(w, httperrors.ErrCodeFormattingFailed, ve.Message, ve.Field)
		return
	}
	h.logger.Error().Err(err).Msg("unexpected formatting error")
	httperrors.RespondInternalError(w, "quiz formatting failed")
}

// formatSource reads the optional ?source= provenance override. Unknown
// values are ignored and provenance is resolved from the payload instead.
func formatSource(r *http.Request) string {
	switch r.URL.Query().Get("source") {
	case SourceAI:
		return SourceAI
	case SourceImport:
		return SourceImport
	case SourceManual:
		return SourceManual
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
