package errors

// ErrorInfo carries the business error code and details on the wire.
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "INSUFFICIENT_STOCK"
	Details string `json:"details"` // Detailed error description
}

// Response is the envelope used by the error middleware when it writes errors
// directly, mirroring the delivery layer's response structure.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
