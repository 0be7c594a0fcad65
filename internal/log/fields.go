package log

// Common field names for structured logging.
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldEndpoint   = "endpoint"
	FieldProjectID  = "project_id"
	FieldTaskID     = "task_id"
	FieldUserID     = "user_id"
	FieldView       = "view"
	FieldGeneration = "generation"
)

// Standard component names.
const (
	ComponentApp  = "app"
	ComponentAPI  = "api"
	ComponentView = "view"
)
