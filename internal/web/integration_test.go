package web_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/loscamioneros/web/internal/audit"
	"github.com/loscamioneros/web/internal/auth"
	"github.com/loscamioneros/web/internal/domain"
	"github.com/loscamioneros/web/internal/photostore/local"
	"github.com/loscamioneros/web/internal/recordstore"
	"github.com/loscamioneros/web/internal/store"
	"github.com/loscamioneros/web/internal/web"
)

const (
	testUser = "patron"
	testPass = "secreto"
)

type testEnv struct {
	srv       *httptest.Server
	dataDir   string
	publicDir string
	recorder  *audit.Recorder
}

// newTestEnv stands up a real server over a file-backed record store and a
// local photo store, both rooted in temp directories.
func newTestEnv(t *testing.T, username, password string) *testEnv {
	t.Helper()

	dataDir := t.TempDir()
	publicDir := t.TempDir()

	records, err := recordstore.NewFileStore(dataDir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	uploads, err := local.NewLocalPhotoStore(publicDir)
	if err != nil {
		t.Fatalf("NewLocalPhotoStore: %v", err)
	}
	sessions, err := auth.NewSessions("presence", nil)
	if err != nil {
		t.Fatalf("NewSessions: %v", err)
	}

	logger := slog.Default()
	auditStore := store.NewAuditStore(records, logger)
	recorder := audit.NewRecorder(auditStore, logger)

	srv := httptest.NewServer(web.NewServer(web.Deps{
		Credentials:    auth.NewCredentials(username, password),
		Sessions:       sessions,
		Dishes:         store.NewDishStore(records, logger),
		Gallery:        store.NewGalleryStore(records, logger),
		AuditLog:       auditStore,
		PhotoMeta:      store.NewPhotoMetaStore(records, logger),
		Uploads:        uploads,
		Recorder:       recorder,
		Logger:         logger,
		PublicPath:     publicDir,
		MaxUploadBytes: 1 << 20,
		SessionTTL:     24 * time.Hour,
		SecureCookies:  false,
	}))
	t.Cleanup(srv.Close)

	return &testEnv{srv: srv, dataDir: dataDir, publicDir: publicDir, recorder: recorder}
}

// seedCollection writes a collection file directly, bypassing the API.
func (e *testEnv) seedCollection(t *testing.T, key, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(e.dataDir, key+".json"), []byte(content), 0644); err != nil {
		t.Fatalf("seed %s: %v", key, err)
	}
}

// do sends a request, optionally with a JSON body and the admin cookie.
func (e *testEnv) do(t *testing.T, method, path string, body any, withCookie bool) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, e.srv.URL+path, rd)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withCookie {
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "session-token"})
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func wantStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected status %d, got %d: %s", want, resp.StatusCode, body)
	}
}

func TestIntegration_LoginIssuesCookie(t *testing.T) {
	env := newTestEnv(t, testUser, testPass)

	resp := env.do(t, http.MethodPost, "/api/admin/login",
		map[string]string{"username": testUser, "password": testPass}, false)
	wantStatus(t, resp, http.StatusOK)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == auth.CookieName {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value == "" {
		t.Fatal("expected a non-empty adminToken cookie")
	}
	if !cookie.HttpOnly {
		t.Error("cookie must be HttpOnly")
	}
	if cookie.MaxAge <= 0 {
		t.Errorf("cookie must carry a bounded expiry, got MaxAge=%d", cookie.MaxAge)
	}
}

func TestIntegration_LoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t, testUser, testPass)

	resp := env.do(t, http.MethodPost, "/api/admin/login",
		map[string]string{"username": testUser, "password": "nope"}, false)
	wantStatus(t, resp, http.StatusUnauthorized)

	for _, c := range resp.Cookies() {
		if c.Name == auth.CookieName {
			t.Error("no cookie may be set on a failed login")
		}
	}
}

func TestIntegration_LoginUnconfiguredSecretsIsServerError(t *testing.T) {
	env := newTestEnv(t, "", "")

	resp := env.do(t, http.MethodPost, "/api/admin/login",
		map[string]string{"username": "a", "password": "b"}, false)
	wantStatus(t, resp, http.StatusInternalServerError)
}

func TestIntegration_LogoutClearsCookie(t *testing.T) {
	env := newTestEnv(t, testUser, testPass)

	resp := env.do(t, http.MethodPost, "/api/admin/logout", nil, true)
	wantStatus(t, resp, http.StatusOK)

	for _, c := range resp.Cookies() {
		if c.Name == auth.CookieName && c.MaxAge >= 0 {
			t.Errorf("logout cookie must expire immediately, got MaxAge=%d", c.MaxAge)
		}
	}
}

func TestIntegration_GateRedirectsUnauthenticatedPages(t *testing.T) {
	env := newTestEnv(t, testUser, testPass)

	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}
	resp, err := client.Get(env.srv.URL + "/admin")
	if err != nil {
		t.Fatalf("GET /admin: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/admin/login" {
		t.Errorf("expected redirect to /admin/login, got %q", loc)
	}
}

func TestIntegration_GateBlocksUnauthenticatedAPI(t *testing.T) {
	env := newTestEnv(t, testUser, testPass)

	resp := env.do(t, http.MethodGet, "/api/admin/gallery", nil, false)
	wantStatus(t, resp, http.StatusUnauthorized)

	resp = env.do(t, http.MethodDelete, "/api/admin/dishes/1", nil, false)
	wantStatus(t, resp, http.StatusUnauthorized)

	// The bare dish listing is the one public read.
	resp = env.do(t, http.MethodGet, "/api/admin/dishes", nil, false)
	wantStatus(t, resp, http.StatusOK)
}

func TestIntegration_GateAcceptsAnyNonEmptyCookie(t *testing.T) {
	env := newTestEnv(t, testUser, testPass)

	// Presence mode: the default gate never validates the value.
	resp := env.do(t, http.MethodGet, "/api/admin/gallery", nil, true)
	wantStatus(t, resp, http.StatusOK)
}

func TestIntegration_DishAddThenGet(t *testing.T) {
	env := newTestEnv(t, testUser, testPass)
	env.seedCollection(t, "dishes", "[]")

	dish := domain.Dish{ID: 99, Name: "X", Description: "Y", Image: "/i.png", Badge: "Tapas"}
	resp := env.do(t, http.MethodPost, "/api/admin/dishes",
		map[string]any{"dish": dish, "action": "add"}, true)
	wantStatus(t, resp, http.StatusOK)

	var result struct {
		Success bool `json:"success"`
	}
	decodeInto(t, resp, &result)
	if !result.Success {
		t.Fatal("expected success:true")
	}

	resp = env.do(t, http.MethodGet, "/api/admin/dishes", nil, false)
	wantStatus(t, resp, http.StatusOK)
	var dishes []domain.Dish
	decodeInto(t, resp, &dishes)
	if len(dishes) != 1 || dishes[0] != dish {
		t.Fatalf("expected exactly the added dish, got %+v", dishes)
	}
}

func TestIntegration_DishAddDuplicateConflicts(t *testing.T) {
	env := newTestEnv(t, testUser, testPass)
	env.seedCollection(t, "dishes", "[]")

	dish := domain.Dish{ID: 99, Name: "X", Description: "Y", Image: "/i.png", Badge: "Tapas"}
	resp := env.do(t, http.MethodPost, "/api/admin/dishes",
		map[string]any{"dish": dish, "action": "add"}, true)
	wantStatus(t, resp, http.StatusOK)

	resp = env.do(t, http.MethodPost, "/api/admin/dishes",
		map[string]any{"dish": dish, "action": "add"}, true)
	wantStatus(t, resp, http.StatusConflict)

	resp = env.do(t, http.MethodGet, "/api/admin/dishes", nil, false)
	var dishes []domain.Dish
	decodeInto(t, resp, &dishes)
	if len(dishes) != 1 {
		t.Fatalf("collection must be unchanged after conflict, got %d dishes", len(dishes))
	}
}

func TestIntegration_DishUpdateMissingIsNotFound(t *testing.T) {
	env := newTestEnv(t, testUser, testPass)
	env.seedCollection(t, "dishes", "[]")

	dish := domain.Dish{ID: 12345, Name: "X", Description: "Y", Image: "/i.png", Badge: "Tapas"}
	resp := env.do(t, http.MethodPost, "/api/admin/dishes",
		map[string]any{"dish": dish, "action": "update"}, true)
	wantStatus(t, resp, http.StatusNotFound)
}

func TestIntegration_DishInvalidPayload(t *testing.T) {
	env := newTestEnv(t, testUser, testPass)

	// Missing required fields.
	resp := env.do(t, http.MethodPost, "/api/admin/dishes",
		map[string]any{"dish": map[string]any{"id": 1}, "action": "add"}, true)
	wantStatus(t, resp, http.StatusBadRequest)

	// Unknown action.
	resp = env.do(t, http.MethodPost, "/api/admin/dishes",
		map[string]any{"dish": map[string]any{"id": 1}, "action": "replace"}, true)
	wantStatus(t, resp, http.StatusBadRequest)
}

func TestIntegration_DishPutRoundTrip(t *testing.T) {
	env := newTestEnv(t, testUser, testPass)
	env.seedCollection(t, "dishes", "[]")

	dish := domain.Dish{ID: 7, Name: "Almejas", Description: "Frescas", Image: "/FotosBar/Almejas.png", Badge: "Tradicional"}
	resp := env.do(t, http.MethodPut, "/api/admin/dishes", dish, true)
	wantStatus(t, resp, http.StatusOK)

	var put struct {
		Success bool        `json:"success"`
		Dish    domain.Dish `json:"dish"`
	}
	decodeInto(t, resp, &put)
	if !put.Success || put.Dish != dish {
		t.Fatalf("unexpected PUT response: %+v", put)
	}

	resp = env.do(t, http.MethodGet, "/api/admin/dishes", nil, false)
	var dishes []domain.Dish
	decodeInto(t, resp, &dishes)
	if len(dishes) != 1 || dishes[0] != dish {
		t.Fatalf("round-trip mismatch: %+v", dishes)
	}
}

func TestIntegration_DishDelete(t *testing.T) {
	env := newTestEnv(t, testUser, testPass)
	env.seedCollection(t, "dishes", "[]")

	dish := domain.Dish{ID: 5, Name: "Tarta", Description: "De queso", Image: "/t.png", Badge: "Postre"}
	resp := env.do(t, http.MethodPut, "/api/admin/dishes", dish, true)
	wantStatus(t, resp, http.StatusOK)

	resp = env.do(t, http.MethodDelete, "/api/admin/dishes/5", nil, true)
	wantStatus(t, resp, http.StatusOK)

	resp = env.do(t, http.MethodDelete, "/api/admin/dishes/5", nil, true)
	wantStatus(t, resp, http.StatusNotFound)

	resp = env.do(t, http.MethodDelete, "/api/admin/dishes/abc", nil, true)
	wantStatus(t, resp, http.StatusBadRequest)
}

func TestIntegration_AuditLogLifecycle(t *testing.T) {
	env := newTestEnv(t, testUser, testPass)

	resp := env.do(t, http.MethodPost, "/api/admin/audit-log",
		map[string]string{"action": "primero", "type": "test", "details": "d1"}, true)
	wantStatus(t, resp, http.StatusOK)
	resp = env.do(t, http.MethodPost, "/api/admin/audit-log",
		map[string]string{"action": "segundo", "type": "test", "details": "d2"}, true)
	wantStatus(t, resp, http.StatusOK)

	resp = env.do(t, http.MethodGet, "/api/admin/audit-log", nil, true)
	wantStatus(t, resp, http.StatusOK)
	var listing struct {
		Success bool                `json:"success"`
		Logs    []domain.AuditEntry `json:"logs"`
	}
	decodeInto(t, resp, &listing)
	if len(listing.Logs) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(listing.Logs))
	}
	if listing.Logs[0].Action != "segundo" {
		t.Errorf("expected newest-first ordering, got %q first", listing.Logs[0].Action)
	}
	if listing.Logs[0].Username != "admin" {
		t.Errorf("expected default username admin, got %q", listing.Logs[0].Username)
	}

	resp = env.do(t, http.MethodDelete, "/api/admin/audit-log", nil, true)
	wantStatus(t, resp, http.StatusOK)

	resp = env.do(t, http.MethodGet, "/api/admin/audit-log", nil, true)
	decodeInto(t, resp, &listing)
	if len(listing.Logs) != 0 {
		t.Fatalf("expected empty log after clear, got %d entries", len(listing.Logs))
	}
}

func TestIntegration_LoginWritesAuditEntry(t *testing.T) {
	env := newTestEnv(t, testUser, testPass)

	resp := env.do(t, http.MethodPost, "/api/admin/login",
		map[string]string{"username": testUser, "password": testPass}, false)
	wantStatus(t, resp, http.StatusOK)
	env.recorder.Flush()

	resp = env.do(t, http.MethodGet, "/api/admin/audit-log", nil, true)
	var listing struct {
		Logs []domain.AuditEntry `json:"logs"`
	}
	decodeInto(t, resp, &listing)
	if len(listing.Logs) != 1 || listing.Logs[0].Action != "Login" {
		t.Fatalf("expected one Login entry, got %+v", listing.Logs)
	}
}

// uploadRequest builds a multipart request with the given file fields.
func uploadRequest(t *testing.T, url, fieldName string, filenames []string, extra map[string]string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for i, name := range filenames {
		fw, err := w.CreateFormFile(fieldName, name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		fmt.Fprintf(fw, "image-bytes-%d", i)
	}
	for k, v := range extra {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "session-token"})
	return req
}

func TestIntegration_UploadDishImage(t *testing.T) {
	env := newTestEnv(t, testUser, testPass)

	req := uploadRequest(t, env.srv.URL+"/api/admin/upload-dish-image", "file", []string{"original-name.png"}, nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	wantStatus(t, resp, http.StatusOK)

	var result struct {
		Success   bool   `json:"success"`
		ImagePath string `json:"imagePath"`
	}
	decodeInto(t, resp, &result)
	if !result.Success {
		t.Fatal("expected success:true")
	}
	if !strings.HasPrefix(result.ImagePath, "/dish-images/") {
		t.Errorf("expected path under /dish-images/, got %q", result.ImagePath)
	}
	if strings.Contains(result.ImagePath, "original-name") {
		t.Errorf("stored path must not contain the original filename: %q", result.ImagePath)
	}

	// The stored file is reachable under the public static prefix.
	staticResp := env.do(t, http.MethodGet, result.ImagePath, nil, false)
	wantStatus(t, staticResp, http.StatusOK)
}

func TestIntegration_UploadMissingFile(t *testing.T) {
	env := newTestEnv(t, testUser, testPass)

	req := uploadRequest(t, env.srv.URL+"/api/admin/upload-dish-image", "other-field", []string{"x.png"}, nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	wantStatus(t, resp, http.StatusBadRequest)
}

func TestIntegration_GenericUploadAndPhotoLifecycle(t *testing.T) {
	env := newTestEnv(t, testUser, testPass)

	req := uploadRequest(t, env.srv.URL+"/api/admin/upload", "files",
		[]string{"a.jpg", "b.jpg"}, map[string]string{"type": "menu"})
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	wantStatus(t, resp, http.StatusOK)

	var uploaded struct {
		Photos []domain.PhotoMeta `json:"photos"`
	}
	decodeInto(t, resp, &uploaded)
	if len(uploaded.Photos) != 2 {
		t.Fatalf("expected 2 photos, got %d", len(uploaded.Photos))
	}

	resp = env.do(t, http.MethodGet, "/api/admin/photos?type=menu", nil, true)
	wantStatus(t, resp, http.StatusOK)
	var photos []domain.PhotoMeta
	decodeInto(t, resp, &photos)
	if len(photos) != 2 {
		t.Fatalf("expected 2 menu photos, got %d", len(photos))
	}

	resp = env.do(t, http.MethodGet, "/api/admin/photos?type=gallery", nil, true)
	var galleryPhotos []domain.PhotoMeta
	decodeInto(t, resp, &galleryPhotos)
	if len(galleryPhotos) != 0 {
		t.Fatalf("expected no gallery photos, got %d", len(galleryPhotos))
	}

	resp = env.do(t, http.MethodDelete, "/api/admin/photos/"+photos[0].ID, nil, true)
	wantStatus(t, resp, http.StatusOK)

	// File is gone from disk too.
	stored := filepath.Join(env.publicDir, filepath.FromSlash(strings.TrimPrefix(photos[0].Path, "/")))
	if _, err := os.Stat(stored); !os.IsNotExist(err) {
		t.Errorf("expected %s to be deleted", stored)
	}

	resp = env.do(t, http.MethodDelete, "/api/admin/photos/"+photos[0].ID, nil, true)
	wantStatus(t, resp, http.StatusNotFound)
}

func TestIntegration_GenericUploadRejectsBadType(t *testing.T) {
	env := newTestEnv(t, testUser, testPass)

	req := uploadRequest(t, env.srv.URL+"/api/admin/upload", "files",
		[]string{"a.jpg"}, map[string]string{"type": "banners"})
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	wantStatus(t, resp, http.StatusBadRequest)
}

func TestIntegration_GalleryLifecycle(t *testing.T) {
	env := newTestEnv(t, testUser, testPass)
	env.seedCollection(t, "gallery", "[]")

	img := domain.GalleryImage{ID: 10, Src: "/uploads/feedfacecafebeef.jpg", Title: "Terraza", Badge: "Popular"}
	resp := env.do(t, http.MethodPut, "/api/admin/gallery", img, true)
	wantStatus(t, resp, http.StatusOK)
	env.recorder.Flush()

	resp = env.do(t, http.MethodGet, "/api/admin/gallery", nil, true)
	var images []domain.GalleryImage
	decodeInto(t, resp, &images)
	if len(images) != 1 || images[0] != img {
		t.Fatalf("round-trip mismatch: %+v", images)
	}

	resp = env.do(t, http.MethodDelete, "/api/admin/gallery/10", nil, true)
	wantStatus(t, resp, http.StatusOK)

	resp = env.do(t, http.MethodDelete, "/api/admin/gallery/10", nil, true)
	wantStatus(t, resp, http.StatusNotFound)

	// The upsert and delete each left an audit trail.
	env.recorder.Flush()
	resp = env.do(t, http.MethodGet, "/api/admin/audit-log", nil, true)
	var listing struct {
		Logs []domain.AuditEntry `json:"logs"`
	}
	decodeInto(t, resp, &listing)
	if len(listing.Logs) != 2 {
		t.Fatalf("expected 2 audit entries, got %d", len(listing.Logs))
	}
	if !strings.Contains(listing.Logs[0].Action, "Eliminó foto") {
		t.Errorf("expected delete audit entry first, got %q", listing.Logs[0].Action)
	}
}
