package web

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/loscamioneros/web/internal/domain"
)

func (s *Server) handleListGallery(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Gallery.List(r.Context()))
}

func (s *Server) handleUpsertGalleryImage(w http.ResponseWriter, r *http.Request) {
	var img domain.GalleryImage
	if err := json.NewDecoder(r.Body).Decode(&img); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	img, created, err := s.Gallery.Upsert(r.Context(), img)
	if err != nil {
		writeStoreError(w, s.Logger, "upsert gallery image", err)
		return
	}

	verb := "Editó"
	if created {
		verb = "Creó"
	}
	s.Recorder.Record("admin", verb+" foto: "+img.Title, actionType(created), img.Src)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "image": img})
}

func (s *Server) handleDeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	removed, err := s.Gallery.Delete(r.Context(), id)
	if err != nil {
		writeStoreError(w, s.Logger, "delete gallery image", err)
		return
	}

	// Best-effort removal of the underlying uploaded file. Curated photos
	// outside the upload directories are left alone.
	if isUploadedPath(removed.Src) {
		if err := s.Uploads.Delete(context.WithoutCancel(r.Context()), removed.Src); err != nil {
			s.Logger.Warn("failed to delete gallery file", "src", removed.Src, "error", err)
		}
	}

	s.Recorder.Record("admin", "Eliminó foto: "+removed.Title, "delete", removed.Src)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// isUploadedPath reports whether a public path points into one of the
// directories this service writes uploads to.
func isUploadedPath(src string) bool {
	return strings.HasPrefix(src, "/uploads/") ||
		strings.HasPrefix(src, "/gallery-images/") ||
		strings.HasPrefix(src, "/dish-images/")
}
