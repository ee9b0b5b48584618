package errors

// Error codes for standardized error responses
const (
	// Validation errors
	ErrCodeInvalidRequest   = "invalid_request"
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeMissingField     = "missing_field"

	// Formatting / export errors
	ErrCodeFormattingFailed        = "formatting_failed"
	ErrCodeUnsupportedExportFormat = "unsupported_export_format"
	ErrCodeExportFailed            = "export_failed"

	// Generation errors
	ErrCodeGenerationFailed     = "generation_failed"
	ErrCodeGeneratorUnavailable = "generator_unavailable"

	// Resource errors
	ErrCodeNotFound = "not_found"

	// Server errors
	ErrCodeInternalError      = "internal_error"
	ErrCodeServiceUnavailable = "service_unavailable"
	ErrCodeUpstreamError      = "upstream_error"
	ErrCodeMethodNotAllowed   = "method_not_allowed"
)
