package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/trendly/pricetrack/pkg/auth"
)

// UserIDKey context key for the authenticated user id
const UserIDKey = "user_id"

// UserEmailKey context key for the authenticated user email
const UserEmailKey = "user_email"

// JWTAuth Bearer token 鉴权中间件，校验失败时短路后续处理
func JWTAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
			return
		}
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(UserIDKey, claims.Sub)
		c.Set(UserEmailKey, claims.Email)
		c.Next()
	}
}
