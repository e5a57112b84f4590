package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/praveenkumar11901/marketplace-api/models"
)

// RequireRole rejects any caller whose token does not carry the given role.
// Runs after ValidateToken.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get(CtxRole)
		if !exists || val != string(role) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}
