package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
)

// identityKey stores the authenticated domain.Author in the request context.
const identityKey = contextKey("identity")

// GetIdentityFromContext retrieves the authenticated user from the request context.
// It returns the identity and a boolean indicating if it was found.
func GetIdentityFromContext(c *gin.Context) (domain.Author, bool) {
	identity, ok := c.Request.Context().Value(identityKey).(domain.Author)
	if !ok || identity.UserID <= 0 {
		return domain.Author{}, false
	}
	return identity, true
}

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
func GetUserIDFromContext(c *gin.Context) (int64, bool) {
	identity, ok := GetIdentityFromContext(c)
	if !ok {
		return 0, false
	}
	return identity.UserID, true
}
