package api

// Compose chains middleware so the first argument is the outermost
// layer: it sees the request first and the response last. By convention
// WithErrorHandling is passed first so it catches failures from every
// layer below it.
func Compose(middlewares ...Middleware) Middleware {
	return func(handler Handler) Handler {
		wrapped := handler
		for i := len(middlewares) - 1; i >= 0; i-- {
			wrapped = middlewares[i](wrapped)
		}
		return wrapped
	}
}
