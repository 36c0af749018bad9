package middleware

import (
	"net/http"
	"strings"

	"bikeandbed-backend/models"
	"bikeandbed-backend/services"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID = "userId"
	ContextRole   = "role"
)

// AuthRequired validates the bearer token and stashes the caller's id and
// role in the context.
func AuthRequired(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"code": "error.unauthenticated", "message": "missing bearer token"},
			})
			return
		}

		userID, role, err := auth.VerifyToken(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"code": "error.invalidToken", "message": "invalid or expired token"},
			})
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextRole, string(role))
		c.Next()
	}
}

// RequireRole gates a role-scoped route group. Wrong role gets a 403 with
// the entry point the client should fall back to — the HTTP rendition of
// the screen-area redirect.
func RequireRole(required models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := models.Role(c.GetString(ContextRole))
		if role != required {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{
					"code":     "error.wrongRole",
					"message":  "this area requires the " + string(required) + " role",
					"redirect": "/splash",
				},
			})
			return
		}
		c.Next()
	}
}

// UserID pulls the authenticated caller's id out of the context.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
