package http

import (
	"net/http"

	"lendingapi/internal/httpx"
	"lendingapi/internal/library"
)

// RouterConfig carries the dependencies the router needs. Ready is optional;
// when set it backs the /readyz probe (e.g. a database ping).
type RouterConfig struct {
	Service   *library.Service
	JWTSecret string
	Ready     func(r *http.Request) error
}

// NewRouter wires handlers and routes. Everything under /api requires a
// valid bearer token; health probes stay open.
func NewRouter(cfg RouterConfig) *http.ServeMux {
	bookHandler := NewBookHandler(cfg.Service)
	memberHandler := NewMemberHandler(cfg.Service)
	lendingHandler := NewLendingHandler(cfg.Service)

	api := http.NewServeMux()
	api.HandleFunc("POST /api/books", bookHandler.Create)
	api.HandleFunc("GET /api/books", bookHandler.List)
	api.HandleFunc("GET /api/books/{id}", bookHandler.Get)
	api.HandleFunc("PUT /api/books/{id}", bookHandler.Update)
	api.HandleFunc("DELETE /api/books/{id}", bookHandler.Delete)

	api.HandleFunc("POST /api/members", memberHandler.Register)
	api.HandleFunc("GET /api/members", memberHandler.List)
	api.HandleFunc("GET /api/members/{id}", memberHandler.Get)
	api.HandleFunc("PUT /api/members/{id}", memberHandler.Update)

	api.HandleFunc("POST /api/borrow/{bookId}/member/{memberId}", lendingHandler.Borrow)
	api.HandleFunc("POST /api/return/{bookId}", lendingHandler.Return)

	root := http.NewServeMux()
	root.Handle("/api/", httpx.AuthMiddleware(cfg.JWTSecret)(api))

	root.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	root.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if cfg.Ready != nil {
			if err := cfg.Ready(r); err != nil {
				http.Error(w, "not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	return root
}
