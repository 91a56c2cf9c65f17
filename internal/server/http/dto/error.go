package dto

// ErrorResponse describes a failed request.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields,omitempty"`
}

// FieldError names a rejected input field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}
