package cmd

// Middleware wraps a handler (logging, usage accounting, extra checks). The
// wrapped value stays a HandlerFunc, so middlewares stack freely.
type Middleware func(next HandlerFunc) HandlerFunc

// Chain applies middlewares to a handler; the first middleware in the list
// becomes the outermost wrapper.
func Chain(h HandlerFunc, mws ...Middleware) HandlerFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
