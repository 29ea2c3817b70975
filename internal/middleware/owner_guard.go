package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OwnerGuard rejects requests whose user_id path segment differs from the
// verified subject. The comparison is exact and case-sensitive, and runs
// before any handler touches the repository.
func OwnerGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := c.GetString(UserIDKey)
		if subject == "" {
			unauthorized(c, "Not authenticated")
			return
		}

		if c.Param("user_id") != subject {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"detail": "Access denied: You can only access your own tasks",
			})
			return
		}

		c.Next()
	}
}
