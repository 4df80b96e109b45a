package api

// ErrorResponse represents all API error responses.
// @Description Standard error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the specifics of an API error.
// @Description Error details
type ErrorDetail struct {
	Type    string        `json:"type"`
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Param   string        `json:"param,omitempty"`
	Details []FieldDetail `json:"details,omitempty"`
}

// FieldDetail names one invalid field of a request.
// @Description Field-level validation failure
type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func NewErrorResponse(httpStatusCode int, code, message, param string, details []FieldDetail) *ErrorResponse {
	errorType := "api_error"
	if httpStatusCode >= 400 && httpStatusCode < 500 {
		errorType = "invalid_request_error"
	}

	if code == "" {
		code = "unknown_error"
	}

	return &ErrorResponse{
		Error: ErrorDetail{
			Type:    errorType,
			Code:    code,
			Message: message,
			Param:   param,
			Details: details,
		},
	}
}
