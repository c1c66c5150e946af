package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	authservice "pawcare-admin/internal/modules/auth/service"
	"pawcare-admin/internal/modules/common/httpx"
	userrepo "pawcare-admin/internal/modules/user/repo"
	platformservice "pawcare-admin/internal/platform/service"
	"pawcare-admin/internal/testutils"
	"pawcare-admin/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	testService *authservice.Service
	testHandler *Handler
)

func setupTestDB(t *testing.T) *gorm.DB {
	gin.SetMode(gin.TestMode)
	utils.RegisterGinValidations()
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(testutils.TestConfig(t), nil)
	testService = authservice.New(appService, userrepo.NewUserRepository(gdb))
	testHandler = New(testService)
	return gdb
}

// asUser stands in for the auth middleware.
func asUser(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(httpx.ContextUserID, id)
		c.Next()
	}
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return env
}
