package log

const (
	// Request
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldRoute     = "route"
	FieldStatus    = "status"
	FieldLatency   = "latency_ms"
	FieldClientIP  = "client_ip"

	// Service
	FieldService = "service"

	// Identifiers
	FieldScheme = "scheme"
	FieldCount  = "count"
	FieldID     = "id"
	FieldISBN   = "isbn"

	// Catalog backend
	FieldBackendURL    = "backend_url"
	FieldBackendStatus = "backend_status"
)
