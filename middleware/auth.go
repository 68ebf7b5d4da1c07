package middleware

import (
	"net/http"
	"strings"

	"fitbook/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates the bearer token and, when requiredRole is
// non-empty, enforces the role claim. The authenticated subject id lands in
// the context under "subjectID".
func JWTAuthMiddleware(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, role, err := utils.TokenClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		if requiredRole != "" && role != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Set("subjectID", subject)
		c.Set("role", role)
		c.Next()
	}
}
