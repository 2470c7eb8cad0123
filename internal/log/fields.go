package log

// Common field names for structured logging
const (
	FieldComponent     = "component"
	FieldCorrelationID = "correlation_id"
	FieldMethod        = "method"
	FieldPath          = "path"
	FieldStatusCode    = "status_code"
	FieldDuration      = "duration_ms"
	FieldOperation     = "operation"
	FieldErrorType     = "error_type"
	FieldCacheResult   = "cache_result"
	FieldError         = "error"
	FieldBackend       = "backend"
	FieldAddr          = "addr"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentService = "service"
	ComponentCache   = "cache"
	ComponentTracing = "tracing"
)
