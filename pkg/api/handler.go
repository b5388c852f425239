package api

import (
	"context"
	"net/http"
)

// Handler is the contract every endpoint and middleware layer shares: a
// request in, a response descriptor out. Failures are returned as
// errors and converted to structured responses by WithErrorHandling.
type Handler func(ctx context.Context, r *http.Request) (*Response, error)

// Middleware wraps a Handler with one cross-cutting concern without
// altering its external contract.
type Middleware func(Handler) Handler

// Response describes an HTTP-shaped result: status, headers, and a
// JSON-serializable body (nil for no body).
type Response struct {
	Status int
	Header http.Header
	Body   any
}

// NewResponse creates an empty response with the given status.
func NewResponse(status int) *Response {
	return &Response{
		Status: status,
		Header: make(http.Header),
	}
}

// SetHeader sets a response header, initializing the header map when a
// handler constructed the Response literal without one.
func (r *Response) SetHeader(key, value string) {
	if r.Header == nil {
		r.Header = make(http.Header)
	}
	r.Header.Set(key, value)
}
