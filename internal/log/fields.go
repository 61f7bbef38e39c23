package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldClientIP    = "client_ip"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldSuccess     = "success"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldBalance     = "balance_cents"
	FieldAmountCents = "amount_cents"
	FieldCategory    = "category"
	FieldTxType      = "transaction_type"
	FieldTxID        = "transaction_id"
	FieldDebtID      = "debt_id"
	FieldDebtEntity  = "debt_entity"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentSession = "session"
)
