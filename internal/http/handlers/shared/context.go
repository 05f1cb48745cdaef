package shared

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	ContextUserIDKey = "user_id"
	ContextRoleKey   = "user_role"
)

// GetContextUint reads a uint value from the request context, writing the
// error response itself on failure.
func GetContextUint(c *gin.Context, key string) (uint, bool) {
	value, exists := c.Get(key)
	if !exists {
		RespondError(c, http.StatusUnauthorized, "error.unauthorized", nil)
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v < 0 {
			RespondError(c, http.StatusUnauthorized, "error.unauthorized", nil)
			return 0, false
		}
		return uint(v), true
	case float64:
		if v < 0 {
			RespondError(c, http.StatusUnauthorized, "error.unauthorized", nil)
			return 0, false
		}
		return uint(v), true
	default:
		RespondError(c, http.StatusInternalServerError, "error.internal", nil)
		return 0, false
	}
}

// GetUserID reads the authenticated principal's id.
func GetUserID(c *gin.Context) (uint, bool) {
	return GetContextUint(c, ContextUserIDKey)
}

// GetRole reads the authenticated principal's role.
func GetRole(c *gin.Context) string {
	if value, ok := c.Get(ContextRoleKey); ok {
		if role, ok := value.(string); ok {
			return role
		}
	}
	return ""
}
