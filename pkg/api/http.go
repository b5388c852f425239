package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// fallbackBody is written when response serialization itself fails or a
// pipeline without WithErrorHandling lets an error escape.
const fallbackBody = `{"success":false,"error":{"code":"INTERNAL_ERROR","message":"An unexpected error occurred"}}`

// HTTPHandler bridges a composed pipeline to net/http: it runs the
// handler, copies response headers, and JSON-encodes the body. A nil
// Body produces an empty response body (304, 204).
func HTTPHandler(h Handler, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		resp, err := h(r.Context(), r)

		requestDuration.WithLabelValues(r.URL.Path).Observe(time.Since(start).Seconds())

		if err != nil || resp == nil {
			requestsTotal.WithLabelValues(r.URL.Path, "500").Inc()
			logger.Error().
				Err(err).
				Str("path", r.URL.Path).
				Msg("pipeline returned unhandled error")
			writeFallback(w)
			return
		}

		requestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(resp.Status)).Inc()

		for key, values := range resp.Header {
			for _, value := range values {
				w.Header().Add(key, value)
			}
		}

		if resp.Body == nil {
			w.WriteHeader(resp.Status)
			return
		}

		body, merr := json.Marshal(resp.Body)
		if merr != nil {
			logger.Error().
				Err(merr).
				Str("path", r.URL.Path).
				Msg("response body not serializable")
			writeFallback(w)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.Status)
		_, _ = w.Write(body)
	}
}

func writeFallback(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(fallbackBody))
}
