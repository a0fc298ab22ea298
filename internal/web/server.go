package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/loscamioneros/web/internal/audit"
	"github.com/loscamioneros/web/internal/auth"
	"github.com/loscamioneros/web/internal/photostore"
	"github.com/loscamioneros/web/internal/store"
)

// Deps bundles everything the server needs; cmd/camioneros wires it up.
type Deps struct {
	Credentials *auth.Credentials
	Sessions    auth.Sessions
	Dishes      *store.DishStore
	Gallery     *store.GalleryStore
	AuditLog    *store.AuditStore
	PhotoMeta   *store.PhotoMetaStore
	Uploads     photostore.PhotoStore
	Recorder    *audit.Recorder
	Logger      *slog.Logger

	PublicPath     string
	MaxUploadBytes int64
	SessionTTL     time.Duration
	SecureCookies  bool
}

type Server struct {
	Deps
	mux *http.ServeMux
}

func NewServer(deps Deps) *Server {
	s := &Server{Deps: deps, mux: http.NewServeMux()}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	// Admin pages. The public marketing site is rendered elsewhere; these
	// exist so the gate has a real login page to redirect to.
	s.mux.HandleFunc("GET /admin", s.handleAdminPage)
	s.mux.HandleFunc("GET /admin/login", s.handleLoginPage)

	s.mux.HandleFunc("POST /api/admin/login", s.handleLogin)
	s.mux.HandleFunc("POST /api/admin/logout", s.handleLogout)

	s.mux.HandleFunc("GET /api/admin/dishes", s.handleListDishes)
	s.mux.HandleFunc("POST /api/admin/dishes", s.handleMutateDishes)
	s.mux.HandleFunc("PUT /api/admin/dishes", s.handleUpsertDish)
	s.mux.HandleFunc("DELETE /api/admin/dishes/{id}", s.handleDeleteDish)

	s.mux.HandleFunc("GET /api/admin/gallery", s.handleListGallery)
	s.mux.HandleFunc("PUT /api/admin/gallery", s.handleUpsertGalleryImage)
	s.mux.HandleFunc("DELETE /api/admin/gallery/{id}", s.handleDeleteGalleryImage)

	s.mux.HandleFunc("GET /api/admin/audit-log", s.handleListAuditLog)
	s.mux.HandleFunc("POST /api/admin/audit-log", s.handleAppendAuditLog)
	s.mux.HandleFunc("DELETE /api/admin/audit-log", s.handleClearAuditLog)

	s.mux.HandleFunc("POST /api/admin/upload-dish-image", s.handleSingleUpload(photostore.CategoryDishImages))
	s.mux.HandleFunc("POST /api/admin/upload-gallery-image", s.handleSingleUpload(photostore.CategoryGalleryImages))
	s.mux.HandleFunc("POST /api/admin/upload", s.handleMultiUpload)

	s.mux.HandleFunc("GET /api/admin/photos", s.handleListPhotos)
	s.mux.HandleFunc("DELETE /api/admin/photos/{id}", s.handleDeletePhoto)

	// Uploaded files are public static content.
	static := http.FileServer(http.Dir(s.PublicPath))
	s.mux.Handle("GET /uploads/", static)
	s.mux.Handle("GET /dish-images/", static)
	s.mux.Handle("GET /gallery-images/", static)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.Logger, securityHeaders(s.adminGate(s.mux))).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.Logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}
