package service

import (
	platformservice "pawcare-admin/internal/platform/service"
)

// Identity is the authenticated caller attached to a request.
type Identity struct {
	UserID   uint
	Username string
	Role     string
}

// RequireRole checks identity against the allowed roles. A nil identity is
// unauthenticated; an empty allowed list admits any authenticated caller.
func RequireRole(identity *Identity, allowed ...string) error {
	if identity == nil || identity.UserID == 0 {
		return platformservice.NewUnauthorizedError("Authentication required")
	}
	if len(allowed) == 0 {
		return nil
	}
	for _, role := range allowed {
		if identity.Role == role {
			return nil
		}
	}
	return platformservice.NewForbiddenError("Access denied. Insufficient permissions.")
}
