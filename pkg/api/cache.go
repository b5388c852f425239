package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shorelinetravel/api-core/pkg/cache"
)

// WithCache serves previously computed 200 responses without invoking
// the wrapped handler, and answers If-None-Match revalidations with
// 304. Only GET requests engage the cache; other methods pass through
// untouched. Caching is best-effort: a response body that fails to
// serialize is passed through uncached rather than failing the request.
func WithCache(store *cache.Cache, cfg cache.Config) Middleware {
	cacheControl := fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d",
		int(cfg.TTL.Seconds()), int(cfg.StaleWhileRevalidate.Seconds()))

	return func(next Handler) Handler {
		return func(ctx context.Context, r *http.Request) (*Response, error) {
			if r.Method != http.MethodGet {
				return next(ctx, r)
			}

			key := cache.Key(r.URL.Path, r.URL.Query())
			payload, etag, ok := store.Get(key)

			// Conditional request: the client already holds the current
			// representation.
			if clientETag := r.Header.Get("If-None-Match"); ok && clientETag != "" && clientETag == etag {
				resp := NewResponse(http.StatusNotModified)
				resp.SetHeader("ETag", etag)
				resp.SetHeader("Cache-Control", cacheControl)
				return resp, nil
			}

			if ok {
				resp := NewResponse(http.StatusOK)
				resp.Body = json.RawMessage(payload)
				resp.SetHeader("X-Cache", "HIT")
				resp.SetHeader("ETag", etag)
				resp.SetHeader("Cache-Control", cacheControl)
				return resp, nil
			}

			resp, err := next(ctx, r)
			if err != nil {
				return resp, err
			}

			// Only exact 200s are cached; 4xx/5xx pass through as-is.
			if resp.Status != http.StatusOK {
				return resp, nil
			}

			data, merr := json.Marshal(resp.Body)
			if merr != nil {
				return resp, nil
			}

			freshETag := cache.ETagFor(data)
			store.Set(key, data, cfg.TTL, freshETag)

			resp.Body = json.RawMessage(data)
			resp.SetHeader("X-Cache", "MISS")
			resp.SetHeader("ETag", freshETag)
			resp.SetHeader("Cache-Control", cacheControl)
			return resp, nil
		}
	}
}
