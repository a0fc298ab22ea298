package web

import (
	"context"
	"net/http"
)

func (s *Server) handleListPhotos(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.PhotoMeta.List(r.Context(), r.URL.Query().Get("type")))
}

func (s *Server) handleDeletePhoto(w http.ResponseWriter, r *http.Request) {
	removed, err := s.PhotoMeta.Remove(r.Context(), r.PathValue("id"))
	if err != nil {
		writeStoreError(w, s.Logger, "delete photo", err)
		return
	}

	if isUploadedPath(removed.Path) {
		if err := s.Uploads.Delete(context.WithoutCancel(r.Context()), removed.Path); err != nil {
			s.Logger.Warn("failed to delete photo file", "path", removed.Path, "error", err)
		}
	}

	s.Recorder.Record("admin", "Eliminó foto subida: "+removed.Filename, "delete", removed.Path)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Photo deleted successfully"})
}
