package api

import (
	"fmt"
	"net/http"
)

// ErrorCode identifies a machine-readable error category.
type ErrorCode string

const (
	// CodeRateLimitExceeded is returned with 429 responses.
	CodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"

	// CodeInternalError is returned for unexpected failures.
	CodeInternalError ErrorCode = "INTERNAL_ERROR"

	// CodeValidationError is returned for malformed query parameters.
	CodeValidationError ErrorCode = "VALIDATION_ERROR"

	// CodeInvalidParameters is returned for well-formed but unusable parameters.
	CodeInvalidParameters ErrorCode = "INVALID_PARAMETERS"

	// CodeDestinationNotFound is returned when a destination slug is unknown.
	CodeDestinationNotFound ErrorCode = "DESTINATION_NOT_FOUND"

	// CodeNotFound is the generic missing-resource code.
	CodeNotFound ErrorCode = "NOT_FOUND"
)

// ErrorBody is the error half of the response envelope.
type ErrorBody struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Envelope is the JSON body shape shared by every endpoint.
type Envelope struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Meta    map[string]any `json:"meta,omitempty"`
	Error   *ErrorBody     `json:"error,omitempty"`
}

// Success builds a 200 response wrapping data in the success envelope.
// meta is optional pagination or bookkeeping information.
func Success(data any, meta map[string]any) *Response {
	resp := NewResponse(http.StatusOK)
	resp.Body = Envelope{
		Success: true,
		Data:    data,
		Meta:    meta,
	}
	return resp
}

// ErrorResponse builds a response carrying the error envelope.
func ErrorResponse(code ErrorCode, message string, status int, details map[string]any) *Response {
	resp := NewResponse(status)
	resp.Body = Envelope{
		Success: false,
		Error: &ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
	return resp
}

// Error is a failure a handler wants surfaced with a specific status
// and code rather than a generic 500. WithErrorHandling converts it
// into the matching error envelope.
type Error struct {
	Status  int
	Code    ErrorCode
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s (status %d): %s", e.Code, e.Status, e.Message)
}

// NewError creates a typed handler error.
func NewError(status int, code ErrorCode, message string) *Error {
	return &Error{
		Status:  status,
		Code:    code,
		Message: message,
	}
}
