package httpx

import (
	"net/http"
	"strconv"

	"pawcare-admin/internal/utils"

	"github.com/gin-gonic/gin"
)

// Keys set on the gin context by the auth middleware.
const (
	ContextUserID   = "id"
	ContextUsername = "username"
	ContextRole     = "role"
)

// ListQuery holds the list options shared by every collection endpoint.
type ListQuery struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
	Search    string `form:"search"`
}

// ParseID reads a positive numeric path parameter. On failure it writes a 400
// and returns false.
func ParseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		BadRequest(c, "Invalid ID")
		return 0, false
	}
	return uint(id), true
}

// WriteBindError reports a request binding failure with field details when
// the validator produced them.
func WriteBindError(c *gin.Context, err error) {
	if isMaxBytes(err) {
		WriteServiceError(c, err, "Request body too large")
		return
	}
	WriteServiceError(c, utils.ToValidationError(err), "Invalid request body")
}

// CurrentUserID returns the authenticated user id, if any.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}

func CurrentRole(c *gin.Context) string {
	return c.GetString(ContextRole)
}

// RequireUserID is CurrentUserID for handlers behind the auth middleware.
// It writes a 401 when no identity is attached.
func RequireUserID(c *gin.Context) (uint, bool) {
	id, ok := CurrentUserID(c)
	if !ok {
		Fail(c, http.StatusUnauthorized, "Authentication required", nil)
	}
	return id, ok
}
