package web

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// adminGate protects the back-office. Page requests bounce to the login page,
// API requests get a 401. The bare dish listing stays open so the marketing
// site can render the menu without a session.
func (s *Server) adminGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		switch {
		case strings.HasPrefix(path, "/admin"):
			if path == "/admin/login" || strings.HasPrefix(path, "/admin/login/") {
				break
			}
			if !s.Sessions.Verify(r) {
				http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
				return
			}
		case strings.HasPrefix(path, "/api/admin"):
			if path == "/api/admin/login" || path == "/api/admin/logout" {
				break
			}
			if path == "/api/admin/dishes" && r.Method == http.MethodGet {
				break
			}
			if !s.Sessions.Verify(r) {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
