package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dbelyakov/finbook/internal/common"
	"github.com/dbelyakov/finbook/internal/server/models"
)

const currentUserKey = "currentUser"

// authMiddleware resolves the bearer token on every protected call. A
// missing, malformed, or expired token aborts with 401; a valid token whose
// user no longer exists aborts with 404. On success the CurrentUser handle
// is stored in the request context for the handler.
func (s *HTTPServer) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				token = parts[1]
			}
		}

		// Query parameter fallback for downloads, where callers cannot
		// always set headers.
		if token == "" {
			token = c.Query("token")
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "unauthorized"})
			return
		}

		user, err := s.users.CurrentUser(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": "user not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "unauthorized"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// currentUser returns the identity stored by authMiddleware.
func currentUser(c *gin.Context) *models.CurrentUser {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.CurrentUser)
	return user
}
