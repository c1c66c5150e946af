package middleware

import (
	"context"
	"net/http"
	"strings"

	"pawcare-admin/internal/model"
	authservice "pawcare-admin/internal/modules/auth/service"
	"pawcare-admin/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// TokenAuthorizer resolves a bearer token to the account it was issued for.
type TokenAuthorizer interface {
	AuthorizeToken(ctx context.Context, token string) (*model.User, error)
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func setIdentity(c *gin.Context, user *model.User) {
	c.Set(httpx.ContextUserID, user.ID)
	c.Set(httpx.ContextUsername, user.Username)
	c.Set(httpx.ContextRole, user.Role)
}

// Authenticate requires a valid bearer token for an active, unlocked account.
func Authenticate(auth TokenAuthorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			httpx.Fail(c, http.StatusUnauthorized, "Access denied. No token provided.", nil)
			return
		}

		user, err := auth.AuthorizeToken(c.Request.Context(), token)
		if err != nil {
			httpx.WriteServiceError(c, err, "Authentication failed")
			return
		}

		setIdentity(c, user)
		c.Next()
	}
}

// OptionalAuth attaches the caller's identity when a usable token is sent
// and lets anonymous requests through.
func OptionalAuth(auth TokenAuthorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if user, err := auth.AuthorizeToken(c.Request.Context(), token); err == nil {
				setIdentity(c, user)
			}
		}
		c.Next()
	}
}

// RequireRole admits only callers whose role is in roles. It must run after
// Authenticate.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var identity *authservice.Identity
		if id, ok := httpx.CurrentUserID(c); ok {
			identity = &authservice.Identity{
				UserID:   id,
				Username: c.GetString(httpx.ContextUsername),
				Role:     httpx.CurrentRole(c),
			}
		}

		if err := authservice.RequireRole(identity, roles...); err != nil {
			httpx.WriteServiceError(c, err, "Access denied")
			return
		}
		c.Next()
	}
}
