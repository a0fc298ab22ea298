package web

import (
	"embed"
	"net/http"
)

//go:embed pages/*.html
var pagesFS embed.FS

// The back-office frontend proper lives elsewhere; these pages are thin
// shells so the admin routes and the gate's redirect target resolve.

func (s *Server) handleAdminPage(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, "pages/admin.html")
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, "pages/login.html")
}

func (s *Server) servePage(w http.ResponseWriter, name string) {
	data, err := pagesFS.ReadFile(name)
	if err != nil {
		s.Logger.Error("failed to read embedded page", "page", name, "error", err)
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(data)
}
