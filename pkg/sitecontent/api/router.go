package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/ybordev/site-content/pkg/sitecontent"
	"github.com/ybordev/site-content/pkg/sitecontent/mail"
)

// RouterConfig carries the dependencies and knobs for the HTTP router.
type RouterConfig struct {
	Service sitecontent.Service
	Sender  mail.Sender
	// MailFrom and MailTo address the forwarded form notifications.
	MailFrom string
	MailTo   string
	// AllowedOrigins enables permissive CORS for the listed origins; empty
	// means no CORS headers are set.
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter assembles the full API router: content reads and form
// submission mounted under /api, plus a health endpoint.
func NewRouter(cfg RouterConfig) chi.Router {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(corsMiddleware(cfg.AllowedOrigins))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		if cfg.Sender != nil {
			h := NewContactHandler(cfg.Sender, cfg.MailFrom, cfg.MailTo)
			r.Post("/contact", h.SubmitContact)
		}
		if cfg.Service != nil {
			r.Mount("/", NewContentHandler(cfg.Service).Routes())
		}
	})

	return r
}

func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	wildcard := false
	for _, origin := range allowedOrigins {
		if origin == "*" {
			wildcard = true
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if _, ok := allowed[origin]; origin != "" && (ok || wildcard) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
