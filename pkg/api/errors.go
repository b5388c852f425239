package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
)

// WithErrorHandling is the pipeline's last line of defense: it converts
// returned errors and recovered panics into structured error responses
// and never fails itself. Typed *Error values keep their status and
// code; anything else becomes a 500 INTERNAL_ERROR. The raw error
// string is exposed under details only outside production.
func WithErrorHandling(logger zerolog.Logger, production bool) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, r *http.Request) (resp *Response, err error) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error().
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Interface("panic", rec).
						Msg("handler panicked")

					resp = internalError(fmt.Errorf("%v", rec), production)
					err = nil
				}
			}()

			resp, err = next(ctx, r)
			if err == nil {
				return resp, nil
			}

			var apiErr *Error
			if errors.As(err, &apiErr) {
				logger.Warn().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("code", string(apiErr.Code)).
					Int("status", apiErr.Status).
					Msg(apiErr.Message)

				return ErrorResponse(apiErr.Code, apiErr.Message, apiErr.Status, apiErr.Details), nil
			}

			logger.Error().
				Err(err).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("handler failed")

			return internalError(err, production), nil
		}
	}
}

func internalError(err error, production bool) *Response {
	message := "An unexpected error occurred"
	if err != nil && err.Error() != "" {
		message = err.Error()
	}

	var details map[string]any
	if !production && err != nil {
		details = map[string]any{"error": err.Error()}
	}

	return ErrorResponse(CodeInternalError, message, http.StatusInternalServerError, details)
}
