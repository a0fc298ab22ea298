package web

import (
	"errors"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/loscamioneros/web/internal/domain"
	"github.com/loscamioneros/web/internal/photostore"
)

// parseUploadForm caps the request body and parses the multipart form.
// Returns false after writing the error response when parsing fails.
func (s *Server) parseUploadForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.MaxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "File too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "Failed to parse form")
		return false
	}
	return true
}

// handleSingleUpload serves the dish-image and gallery-image upload
// endpoints; only the target directory differs.
func (s *Server) handleSingleUpload(category string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.parseUploadForm(w, r) {
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "No file provided")
			return
		}
		defer func() { _ = file.Close() }()

		publicPath, err := s.Uploads.Save(r.Context(), category, header.Filename, file)
		if err != nil {
			s.Logger.Error("upload failed", "category", category, "error", err)
			writeError(w, http.StatusInternalServerError, "Upload failed")
			return
		}

		s.Recorder.Record("admin", "Subió imagen", "upload", publicPath)
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "imagePath": publicPath})
	}
}

// handleMultiUpload is the generic tagged upload: several files at once,
// each tracked in the photo metadata collection. A failure on one file is
// logged and skipped, the rest still land.
func (s *Server) handleMultiUpload(w http.ResponseWriter, r *http.Request) {
	if !s.parseUploadForm(w, r) {
		return
	}

	photoType := r.FormValue("type")
	if photoType != domain.PhotoTypeMenu && photoType != domain.PhotoTypeGallery {
		writeError(w, http.StatusBadRequest, "Invalid type")
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		writeError(w, http.StatusBadRequest, "No files provided")
		return
	}

	var uploaded []domain.PhotoMeta
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			s.Logger.Error("failed to open uploaded file", "filename", header.Filename, "error", err)
			continue
		}
		publicPath, err := s.Uploads.Save(r.Context(), photostore.CategoryUploads, header.Filename, file)
		_ = file.Close()
		if err != nil {
			s.Logger.Error("failed to store uploaded file", "filename", header.Filename, "error", err)
			continue
		}
		uploaded = append(uploaded, domain.PhotoMeta{
			ID:         photoIDFromPath(publicPath),
			Filename:   header.Filename,
			Path:       publicPath,
			UploadedAt: time.Now().Format(time.RFC3339),
			Type:       photoType,
		})
	}

	if len(uploaded) > 0 {
		if err := s.PhotoMeta.Append(r.Context(), uploaded...); err != nil {
			s.Logger.Error("failed to save photo metadata", "error", err)
			writeError(w, http.StatusInternalServerError, "Upload failed")
			return
		}
		s.Recorder.Record("admin", "Subió fotos", "upload", photoType)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Files uploaded successfully",
		"photos":  uploaded,
	})
}

// photoIDFromPath derives the metadata id from the stored file's random stem.
func photoIDFromPath(publicPath string) string {
	base := path.Base(publicPath)
	return strings.TrimSuffix(base, path.Ext(base))
}
