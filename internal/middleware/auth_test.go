package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pawcare-admin/internal/consts"
	"pawcare-admin/internal/model"
	"pawcare-admin/internal/modules/common/httpx"
	platformservice "pawcare-admin/internal/platform/service"

	"github.com/gin-gonic/gin"
)

func testUser() *model.User {
	u := &model.User{Username: "alice", Role: consts.RoleAdmin, IsActive: true}
	u.ID = 1
	return u
}

func TestAuthenticate_MissingHeaderUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/x", Authenticate(&stubAuthorizer{token: "good", user: testUser()}), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Success || env.Message != "Access denied. No token provided." {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestAuthenticate_MalformedHeaderUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/x", Authenticate(&stubAuthorizer{token: "good", user: testUser()}), func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, header := range []string{"good", "Basic good", "Bearer ", "bearer good"} {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, w.Code)
		}
	}
}

func TestAuthenticate_ValidTokenSetsContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/x", Authenticate(&stubAuthorizer{token: "good", user: testUser()}), func(c *gin.Context) {
		id, _ := httpx.CurrentUserID(c)
		if id != 1 || c.GetString(httpx.ContextUsername) != "alice" || httpx.CurrentRole(c) != consts.RoleAdmin {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestAuthenticate_MapsAccountErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid", platformservice.NewUnauthorizedError("Invalid token"), http.StatusUnauthorized},
		{"expired", platformservice.NewUnauthorizedError("Token expired"), http.StatusUnauthorized},
		{"inactive", platformservice.NewInactiveError("Account is deactivated"), http.StatusForbidden},
		{"locked", platformservice.NewLockedError("Account is temporarily locked"), http.StatusLocked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/x", Authenticate(&stubAuthorizer{err: tt.err}), func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			req.Header.Set("Authorization", "Bearer whatever")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, w.Code)
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/x", OptionalAuth(&stubAuthorizer{token: "good", user: testUser()}), func(c *gin.Context) {
		if _, ok := httpx.CurrentUserID(c); ok {
			c.String(http.StatusOK, "user")
			return
		}
		c.String(http.StatusOK, "anonymous")
	})

	cases := map[string]string{
		"":            "anonymous",
		"Bearer bad":  "anonymous",
		"Bearer good": "user",
	}
	for header, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK || w.Body.String() != want {
			t.Fatalf("header %q: got %d %q, want %q", header, w.Code, w.Body.String(), want)
		}
	}
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	withRole := func(role string) gin.HandlerFunc {
		return func(c *gin.Context) {
			if role != "" {
				c.Set(httpx.ContextUserID, uint(9))
				c.Set(httpx.ContextRole, role)
			}
			c.Next()
		}
	}

	tests := []struct {
		role string
		code int
	}{
		{"", http.StatusUnauthorized},
		{consts.RoleUser, http.StatusForbidden},
		{consts.RoleAdmin, http.StatusOK},
	}
	for _, tt := range tests {
		r := gin.New()
		r.GET("/x", withRole(tt.role), RequireRole(consts.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		if w.Code != tt.code {
			t.Fatalf("role %q: expected %d, got %d", tt.role, tt.code, w.Code)
		}
	}
}
