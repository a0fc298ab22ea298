package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/loscamioneros/web/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeStoreError maps the store sentinels onto the API's status taxonomy.
// Anything unrecognized is a storage failure: generic 500 for the caller,
// details only in the log.
func writeStoreError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, store.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		logger.Error(op+" failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Server error")
	}
}
