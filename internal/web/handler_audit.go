package web

import (
	"encoding/json"
	"net/http"

	"github.com/loscamioneros/web/internal/domain"
)

func (s *Server) handleListAuditLog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"logs":    s.AuditLog.List(r.Context()),
	})
}

type auditRequest struct {
	Action   string `json:"action"`
	Type     string `json:"type"`
	Details  string `json:"details"`
	Username string `json:"username"`
}

func (s *Server) handleAppendAuditLog(w http.ResponseWriter, r *http.Request) {
	var req auditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	entry, err := s.AuditLog.Append(r.Context(), domain.AuditEntry{
		Username: req.Username,
		Action:   req.Action,
		Type:     req.Type,
		Details:  req.Details,
	})
	if err != nil {
		writeStoreError(w, s.Logger, "append audit entry", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "entry": entry})
}

func (s *Server) handleClearAuditLog(w http.ResponseWriter, r *http.Request) {
	if err := s.AuditLog.Clear(r.Context()); err != nil {
		writeStoreError(w, s.Logger, "clear audit log", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
