package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/loscamioneros/web/internal/auth"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]bool{"success": false})
		return
	}

	if err := s.Credentials.Check(req.Username, req.Password); err != nil {
		if errors.Is(err, auth.ErrNotConfigured) {
			s.Logger.Error("login rejected: admin credentials not configured")
			writeJSON(w, http.StatusInternalServerError, map[string]bool{"success": false})
			return
		}
		writeJSON(w, http.StatusUnauthorized, map[string]bool{"success": false})
		return
	}

	token, err := s.Sessions.Issue()
	if err != nil {
		s.Logger.Error("failed to issue session token", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]bool{"success": false})
		return
	}

	http.SetCookie(w, auth.SessionCookie(token, s.SessionTTL, s.SecureCookies))
	s.Recorder.Record(req.Username, "Login", "sesion", "Usuario: "+req.Username)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, auth.ClearCookie(s.SecureCookies))
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
