package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"todoapp/internal/auth"
	"todoapp/internal/logger"
)

// UserIDKey is the gin context key holding the verified subject identifier.
const UserIDKey = "userID"

// JWTAuthMiddleware extracts the bearer token, verifies it and stores the
// subject in the context. Failures answer 401 with a WWW-Authenticate
// challenge; the token itself is never logged or echoed.
func JWTAuthMiddleware(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthorized(c, "Authorization header is required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(c, "Authorization header format must be Bearer {token}")
			return
		}

		subject, err := verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			logger.Warn("authentication failed",
				zap.String("request_id", c.GetString(RequestIDKey)),
				zap.Error(err))
			unauthorized(c, err.Error())
			return
		}

		c.Set(UserIDKey, subject)
		c.Next()
	}
}

func unauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": detail})
}
