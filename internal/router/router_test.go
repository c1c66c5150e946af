package router

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"pawcare-admin/internal/config"
	"pawcare-admin/internal/consts"
	"pawcare-admin/internal/model"
	"pawcare-admin/internal/modules"
	userrepo "pawcare-admin/internal/modules/user/repo"
	"pawcare-admin/internal/platform/service"
	"pawcare-admin/internal/storage"
	"pawcare-admin/internal/testutils"
	"pawcare-admin/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type testServer struct {
	handler http.Handler
	engine  *gin.Engine
	db      *gorm.DB
	cfg     *config.Config
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testutils.TestConfig(t)
	gdb := testutils.SetupDB(t)
	backend, err := storage.NewLocalBackend(cfg.Upload.Path, cfg.Upload.URLPrefix)
	if err != nil {
		t.Fatalf("NewLocalBackend: %v", err)
	}

	appService := service.NewAppService(cfg, nil)
	appModules := modules.New(appService, gdb, userrepo.NewUserRepository(gdb), storage.New(backend))
	rt := NewRouter(appModules, appService, nil)

	engine := gin.New()
	rt.Init(engine)
	return &testServer{handler: rt.Handler(engine), engine: engine, db: gdb, cfg: cfg}
}

func (s *testServer) seedUser(t *testing.T, username, role string) {
	t.Helper()
	hashed, err := utils.NewPasswordHasher(s.cfg.Security).Hash("Passw0rd")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := &model.User{Username: username, Email: username + "@example.com", Password: hashed, Role: role, IsActive: true}
	if err := s.db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func (s *testServer) login(t *testing.T, username string) string {
	t.Helper()
	w := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"username": username, "password": "Passw0rd"})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: %d %s", username, w.Code, w.Body.String())
	}
	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Data.Token == "" {
		t.Fatalf("login response %s: %v", w.Body.String(), err)
	}
	return body.Data.Token
}

func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		payload, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func (s *testServer) doMultipart(t *testing.T, method, path, token string, data any, fileField string, files ...[]byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	payload, _ := json.Marshal(data)
	if err := mw.WriteField("data", string(payload)); err != nil {
		t.Fatalf("write field: %v", err)
	}
	for i, f := range files {
		fw, err := mw.CreateFormFile(fileField, "photo"+string(rune('a'+i))+".png")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		_, _ = fw.Write(f)
	}
	_ = mw.Close()

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	var body struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	if !body.Success {
		t.Fatalf("expected success envelope, got %s", w.Body.String())
	}
	if dst != nil {
		if err := json.Unmarshal(body.Data, dst); err != nil {
			t.Fatalf("decode data %s: %v", body.Data, err)
		}
	}
}

func TestInit_RegistersCoreRoutes(t *testing.T) {
	s := newTestServer(t)

	wants := []string{
		"GET /health",
		"POST /api/auth/register",
		"POST /api/auth/login",
		"GET /api/auth/me",
		"PUT /api/auth/change-password",
		"GET /api/auth/users",
		"PATCH /api/auth/users/:id/toggle-status",
		"PATCH /api/auth/users/:id/reset-password",
		"GET /api/auth/stats",
		"GET /api/vet",
		"GET /api/vet/search",
		"PUT /api/rescue-team/:id",
		"DELETE /api/animal-food/:id",
		"POST /api/education/:id/like",
		"POST /api/reports",
		"GET /api/reports/stats",
		"POST /api/reports/:id/notes",
		"PATCH /api/reports/:id/status",
	}

	have := make(map[string]bool)
	for _, r := range s.engine.Routes() {
		have[r.Method+" "+r.Path] = true
	}
	for _, w := range wants {
		if !have[w] {
			t.Fatalf("missing route: %s", w)
		}
	}
}

func TestHealthAndNotFound(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var health healthResponse
	_ = json.Unmarshal(w.Body.Bytes(), &health)
	if health.Status != "OK" || health.Timestamp == "" {
		t.Fatalf("unexpected health body %s", w.Body.String())
	}

	w = s.do(http.MethodGet, "/api/nope", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestAdminRoutes_RoleGate(t *testing.T) {
	s := newTestServer(t)
	s.seedUser(t, "root", consts.RoleAdmin)
	s.seedUser(t, "bob", consts.RoleUser)

	if w := s.do(http.MethodGet, "/api/auth/users", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous: expected 401, got %d", w.Code)
	}
	if w := s.do(http.MethodGet, "/api/auth/users", s.login(t, "bob"), nil); w.Code != http.StatusForbidden {
		t.Fatalf("user: expected 403, got %d", w.Code)
	}
	if w := s.do(http.MethodGet, "/api/auth/users", s.login(t, "root"), nil); w.Code != http.StatusOK {
		t.Fatalf("admin: expected 200, got %d %s", w.Code, w.Body.String())
	}
}

func TestVetRoutes_MultipartImageIsServed(t *testing.T) {
	s := newTestServer(t)
	s.seedUser(t, "alice", consts.RoleUser)
	token := s.login(t, "alice")

	w := s.doMultipart(t, http.MethodPost, "/api/vet", token, map[string]any{
		"hospital": "Happy Paws",
		"address":  "1 Main St",
		"phone":    "+15551234567",
	}, "image", testutils.PNG())
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d %s", w.Code, w.Body.String())
	}

	var vet model.VetEntry
	decodeData(t, w, &vet)
	if vet.Image.URL == "" || vet.Image.Mimetype != "image/png" || !vet.IsActive {
		t.Fatalf("unexpected vet entry: %+v", vet)
	}

	w = s.do(http.MethodGet, vet.Image.URL, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("image: expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Cache-Control"); got != s.cfg.Server.StaticCacheControl {
		t.Fatalf("Cache-Control = %q", got)
	}

	w = s.do(http.MethodGet, "/api/vet/search?q=happy", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("search: expected 200, got %d", w.Code)
	}
	var page struct {
		Items      []model.VetEntry `json:"items"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	decodeData(t, w, &page)
	if page.Pagination.Total != 1 || len(page.Items) != 1 {
		t.Fatalf("unexpected search page: %+v", page)
	}

	if w := s.do(http.MethodGet, "/api/vet", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous list: expected 401, got %d", w.Code)
	}
}

func TestEducationRoutes_CountsViewsAndLikes(t *testing.T) {
	s := newTestServer(t)
	s.seedUser(t, "alice", consts.RoleUser)
	token := s.login(t, "alice")

	w := s.do(http.MethodPost, "/api/education", token, map[string]any{
		"tips":  "Brush your dog weekly",
		"url":   "https://example.com/brushing",
		"title": "Brushing",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d %s", w.Code, w.Body.String())
	}
	var entry model.Education
	decodeData(t, w, &entry)

	path := "/api/education/" + idPath(entry.ID)
	s.do(http.MethodGet, path, token, nil)
	w = s.do(http.MethodGet, path, token, nil)
	decodeData(t, w, &entry)
	if entry.Views != 2 {
		t.Fatalf("expected 2 views, got %d", entry.Views)
	}

	w = s.do(http.MethodPost, path+"/like", token, nil)
	var like struct {
		Likes int64 `json:"likes"`
	}
	decodeData(t, w, &like)
	if like.Likes != 1 {
		t.Fatalf("expected 1 like, got %d", like.Likes)
	}

	if w := s.do(http.MethodPost, "/api/education/999/like", token, nil); w.Code != http.StatusNotFound {
		t.Fatalf("missing entry: expected 404, got %d", w.Code)
	}
}

func TestReportRoutes_PublicCreateAndTriage(t *testing.T) {
	s := newTestServer(t)
	s.seedUser(t, "root", consts.RoleAdmin)
	s.seedUser(t, "bob", consts.RoleUser)

	w := s.doMultipart(t, http.MethodPost, "/api/reports", "", map[string]any{
		"animalType":      "Dog",
		"animalCondition": consts.AnimalConditionInjured,
		"location":        "Park",
		"description":     "Limping near the fountain",
	}, "photos", testutils.PNG(), testutils.PNG())
	if w.Code != http.StatusCreated {
		t.Fatalf("public create: expected 201, got %d %s", w.Code, w.Body.String())
	}
	var report model.Report
	decodeData(t, w, &report)
	if len(report.Photos) != 2 || report.Status != consts.ReportStatusPending || report.ReportedBy != nil {
		t.Fatalf("unexpected report: %+v", report)
	}

	if w := s.do(http.MethodGet, "/api/reports", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous list: expected 401, got %d", w.Code)
	}

	bob := s.login(t, "bob")
	root := s.login(t, "root")
	path := "/api/reports/" + idPath(report.ID)

	if w := s.do(http.MethodPost, path+"/notes", bob, map[string]string{"content": "Volunteer on the way"}); w.Code != http.StatusOK {
		t.Fatalf("add note: expected 200, got %d %s", w.Code, w.Body.String())
	}
	if w := s.do(http.MethodPatch, path+"/status", bob, map[string]string{"status": consts.ReportStatusInProgress}); w.Code != http.StatusForbidden {
		t.Fatalf("user status change: expected 403, got %d", w.Code)
	}
	if w := s.do(http.MethodPatch, path+"/status", root, map[string]string{"status": "Teleported"}); w.Code != http.StatusBadRequest {
		t.Fatalf("bad status: expected 400, got %d", w.Code)
	}

	w = s.do(http.MethodPatch, path+"/status", root, map[string]string{"status": consts.ReportStatusInProgress})
	if w.Code != http.StatusOK {
		t.Fatalf("status change: expected 200, got %d %s", w.Code, w.Body.String())
	}
	decodeData(t, w, &report)
	if report.Status != consts.ReportStatusInProgress || len(report.Notes) != 1 || report.Notes[0].Author == nil {
		t.Fatalf("unexpected report after triage: %+v", report)
	}

	w = s.do(http.MethodGet, "/api/reports/stats", root, nil)
	var stats struct {
		TotalReports      int64 `json:"totalReports"`
		InProgressReports int64 `json:"inProgressReports"`
	}
	decodeData(t, w, &stats)
	if stats.TotalReports != 1 || stats.InProgressReports != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	if w := s.do(http.MethodDelete, path, root, nil); w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}
	if w := s.do(http.MethodGet, path, root, nil); w.Code != http.StatusNotFound {
		t.Fatalf("after delete: expected 404, got %d", w.Code)
	}
}

func idPath(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func TestReportRoutes_PhotoUploadsExceedDefaultBodyLimit(t *testing.T) {
	s := newTestServer(t)

	photo := append(testutils.PNG(), make([]byte, 6<<20)...)
	w := s.doMultipart(t, http.MethodPost, "/api/reports", "", map[string]any{
		"animalType":      "Cat",
		"animalCondition": consts.AnimalConditionSick,
		"location":        "Harbour",
		"description":     "Hiding under a car",
	}, "photos", photo, photo)
	if w.Code != http.StatusCreated {
		t.Fatalf("two large photos: expected 201, got %d %s", w.Code, w.Body.String())
	}
	var report model.Report
	decodeData(t, w, &report)
	if len(report.Photos) != 2 || report.Photos[0].Size != int64(len(photo)) {
		t.Fatalf("unexpected photos: %+v", report.Photos)
	}

	// routes without uploads keep the server default
	oversized := bytes.Repeat([]byte("a"), 11<<20)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(oversized))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("oversized login: expected 413, got %d", rec.Code)
	}
}
