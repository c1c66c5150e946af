package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pawcare-admin/internal/modules/common/httpx"
	userrepo "pawcare-admin/internal/modules/user/repo"
	userservice "pawcare-admin/internal/modules/user/service"
	platformservice "pawcare-admin/internal/platform/service"
	"pawcare-admin/internal/testutils"
	"pawcare-admin/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var testHandler *Handler

func setupTestDB(t *testing.T) *gorm.DB {
	gin.SetMode(gin.TestMode)
	utils.RegisterGinValidations()
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(testutils.TestConfig(t), nil)
	testHandler = New(userservice.New(appService, userrepo.NewUserRepository(gdb)))
	return gdb
}

func asUser(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(httpx.ContextUserID, id)
		c.Next()
	}
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
