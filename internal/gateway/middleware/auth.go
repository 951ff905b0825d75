package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sourcing-planner/internal/utils"
)

const ClaimsKey = "claims"

// JWTAuth requires a Bearer token signed with secret. When disabled is set
// every request passes through unauthenticated.
func JWTAuth(secret []byte, disabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if disabled {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(tokenStr) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authorization header required",
			})
			return
		}

		claims, err := utils.ParseToken(secret, strings.TrimSpace(tokenStr))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set("user_id", claims.Subject)
		c.Next()
	}
}
