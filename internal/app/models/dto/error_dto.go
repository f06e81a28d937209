package dto

// ErrorResponse represents the standard error response structure. Every
// failed request carries a single human-readable detail string.
type ErrorResponse struct {
	Detail string `json:"detail" example:"Resume not found for this student."`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(detail string) ErrorResponse {
	return ErrorResponse{Detail: detail}
}
