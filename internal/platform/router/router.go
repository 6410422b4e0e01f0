package router

import "net/http"

// Router serves the operational HTTP endpoints.
type Router interface {
	http.Handler

	Use(middleware func(next http.Handler) http.Handler)
	Get(pattern string, handler http.HandlerFunc, middlewares ...func(next http.Handler) http.Handler)
	Handle(pattern string, handler http.Handler, middlewares ...func(next http.Handler) http.Handler)
}
