package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// maxRequestBodyBytes bounds a request body after gzip decoding.
const maxRequestBodyBytes int64 = 1 << 20

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(corsOptions()))
	router.Use(h.withTraceID, h.withLogging, withGZip)
	router.Use(middleware.RequestSize(maxRequestBodyBytes))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/", h.root)
	router.Get("/test", h.diagnostics)
	router.Get("/version", h.getServerVersion)

	router.Post("/auth/register", h.register)
	router.Post("/auth/login", h.login)

	router.Get("/blog", h.listBlogPosts)
	router.Post("/contact", h.submitContact)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// corsOptions allows every origin, method and header with credentials.
// The request origin is echoed back since "*" is not valid with credentials.
func corsOptions() cors.Options {
	return cors.Options{
		AllowOriginFunc: func(*http.Request, string) bool { return true },
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           600,
	}
}
