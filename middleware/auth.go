package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"filedepot/auth"
)

const claimsKey = "claims"

// Auth guards a route group with bearer-token verification. A missing or
// malformed Authorization header is a 400; a bad signature or expired
// token is a 401. Verified claims are placed in the request context.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer") {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "invalid headers",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "invalid headers",
			})
			return
		}

		claims, err := auth.Verify(parts[1], secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
			})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the verified claims set by Auth, or nil on an
// unprotected route.
func ClaimsFromContext(c *gin.Context) *auth.Claims {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
