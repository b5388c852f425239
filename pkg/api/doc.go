// Package api defines the handler contract for JSON endpoints and the
// composable middleware pipeline that wraps them: response caching with
// ETag revalidation, fixed-window rate limiting, CORS, and last-resort
// error handling.
//
// A Handler takes a request and returns a Response descriptor; each
// middleware takes a Handler and returns a Handler with the same
// contract, so wrappers compose freely and none assumes another has
// run.
//
// # Composition
//
//	pipeline := api.Compose(
//		api.WithErrorHandling(logger, production),
//		api.WithCORS(origins),
//		api.WithRateLimit(limiter, ratelimit.DefaultConfig()),
//		api.WithCache(store, cache.DefaultConfig()),
//	)(listDestinations)
//
// The first argument to Compose is the outermost layer: it sees the
// request first and the response last. WithErrorHandling must be
// outermost so failures anywhere below it, including inside the cache
// and rate-limit layers, become structured 500 responses.
//
// A single request walks a straight-line decision chain: CORS preflight,
// rate-limit denial, cache hit or 304, handler invocation, error
// conversion. Every branch except "invoke handler" is terminal.
package api
