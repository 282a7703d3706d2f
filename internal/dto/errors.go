package dto

// ErrorResponse is the generic error envelope.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ValidationIssue describes one failed constraint on one field.
type ValidationIssue struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the 400 envelope carrying per-field issues.
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Issues  []ValidationIssue `json:"issues"`
}
