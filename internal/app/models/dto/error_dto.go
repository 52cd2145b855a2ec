package dto

// ErrorResponse is the wire shape for every failure the API reports:
// a numeric error code mirroring the HTTP status plus a human-readable
// message. Internal detail never leaks through Message.
type ErrorResponse struct {
	ErrorCode int    `json:"errorCode" example:"400"`
	Message   string `json:"message" example:"Offset must be >= 0 and limit must be >= 1"`
}

// NewErrorResponse creates a standard error response body.
func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		ErrorCode: code,
		Message:   message,
	}
}
