package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRegisterAndLogin(t *testing.T) {
	setupTestDB(t)

	r := gin.New()
	r.POST("/register", testHandler.Register)
	r.POST("/login", testHandler.Login)

	w := doJSON(r, http.MethodPost, "/register", gin.H{
		"username": "alice",
		"email":    "alice@x.com",
		"password": "Passw0rd",
		"role":     "admin",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	var reg struct {
		User  map[string]any `json:"user"`
		Token string         `json:"token"`
	}
	if err := json.Unmarshal(decode(t, w).Data, &reg); err != nil {
		t.Fatalf("decode register data: %v", err)
	}
	if reg.User["role"] != "user" {
		t.Fatalf("self-registration must not pick its role, got %v", reg.User["role"])
	}
	if _, ok := reg.User["password"]; ok {
		t.Fatalf("password must never be serialized")
	}

	w = doJSON(r, http.MethodPost, "/login", gin.H{"username": "alice", "password": "Passw0rd"})
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "$2a$") {
		t.Fatalf("login response leaked a hash: %s", w.Body.String())
	}

	w = doJSON(r, http.MethodPost, "/login", gin.H{"email": "ALICE@x.com", "password": "Passw0rd"})
	if w.Code != http.StatusOK {
		t.Fatalf("login by email: expected 200, got %d", w.Code)
	}
}

func TestRegister_ValidationErrors(t *testing.T) {
	setupTestDB(t)

	r := gin.New()
	r.POST("/register", testHandler.Register)

	w := doJSON(r, http.MethodPost, "/register", gin.H{"username": "a b", "email": "nope", "password": "x"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	env := decode(t, w)
	if env.Success || len(env.Errors) == 0 {
		t.Fatalf("expected field errors, got %s", w.Body.String())
	}
}

func TestRegister_DuplicateReturnsConflict(t *testing.T) {
	setupTestDB(t)

	r := gin.New()
	r.POST("/register", testHandler.Register)

	body := gin.H{"username": "alice", "email": "alice@x.com", "password": "Passw0rd"}
	if w := doJSON(r, http.MethodPost, "/register", body); w.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d", w.Code)
	}
	body["email"] = "other@x.com"
	if w := doJSON(r, http.MethodPost, "/register", body); w.Code != http.StatusConflict {
		t.Fatalf("duplicate: expected 409, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestLogin_LockoutReturns423(t *testing.T) {
	setupTestDB(t)

	r := gin.New()
	r.POST("/register", testHandler.Register)
	r.POST("/login", testHandler.Login)

	doJSON(r, http.MethodPost, "/register", gin.H{"username": "alice", "email": "alice@x.com", "password": "Passw0rd"})

	for i := 0; i < 5; i++ {
		w := doJSON(r, http.MethodPost, "/login", gin.H{"username": "alice", "password": "wrong"})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected 401, got %d", i+1, w.Code)
		}
	}

	w := doJSON(r, http.MethodPost, "/login", gin.H{"username": "alice", "password": "Passw0rd"})
	if w.Code != http.StatusLocked {
		t.Fatalf("expected 423, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestMeAndChangePassword(t *testing.T) {
	setupTestDB(t)

	r := gin.New()
	r.POST("/register", testHandler.Register)
	r.POST("/login", testHandler.Login)

	w := doJSON(r, http.MethodPost, "/register", gin.H{"username": "alice", "email": "alice@x.com", "password": "Passw0rd"})
	var reg struct {
		User struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	_ = json.Unmarshal(decode(t, w).Data, &reg)

	authed := r.Group("/", asUser(reg.User.ID))
	authed.GET("/me", testHandler.Me)
	authed.PUT("/change-password", testHandler.ChangePassword)
	r.GET("/anon-me", testHandler.Me)

	if w := doJSON(r, http.MethodGet, "/me", nil); w.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/anon-me", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("me without identity: expected 401, got %d", w.Code)
	}

	w = doJSON(r, http.MethodPut, "/change-password", gin.H{"currentPassword": "bad", "newPassword": "N3wPassword"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("wrong current password: expected 400, got %d", w.Code)
	}
	w = doJSON(r, http.MethodPut, "/change-password", gin.H{"currentPassword": "Passw0rd", "newPassword": "N3wPassword"})
	if w.Code != http.StatusOK {
		t.Fatalf("change password: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if w := doJSON(r, http.MethodPost, "/login", gin.H{"username": "alice", "password": "N3wPassword"}); w.Code != http.StatusOK {
		t.Fatalf("login with new password: expected 200, got %d", w.Code)
	}
}
