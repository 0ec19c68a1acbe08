package domain

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// FieldError is a per-field validation failure surfaced inline to the form
// that submitted it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Message string       `json:"message"`
	Code    int          `json:"code"`
	Fields  []FieldError `json:"fields,omitempty"`
}
