package middleware

import (
	"net/http"
	"strings"

	"github.com/aurumtrade/aurum-api/internal/auth"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Context keys set by Authenticate.
const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// BearerToken extracts the token from the request's Authorization header.
// It returns "" when the header is absent or not a Bearer credential.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// Authenticate resolves the request's bearer token to a live session and
// aborts with 401 when there is none. The mutation actions gate themselves;
// this middleware guards plain admin read endpoints.
func Authenticate(provider *auth.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization header. A valid Bearer token is required."})
			c.Abort()
			return
		}

		session, err := provider.GetSession(c.Request.Context(), token)
		if err != nil {
			log.WithError(err).Error("Session lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve session"})
			c.Abort()
			return
		}
		if session == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, session.UserID)
		c.Set(ContextUserRole, session.Role)
		c.Next()
	}
}
