package middleware

import (
	"net/http"
	"strings"

	"studio-service/services"

	"github.com/gin-gonic/gin"
)

// TokenCookie is where the auth controllers park the access token.
const TokenCookie = "token"

// Auth guards a route group with the access token, taken from the token
// cookie or an Authorization bearer header.
func Auth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(TokenCookie)
		if err != nil || tokenStr == "" {
			header := c.GetHeader("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				tokenStr = strings.TrimPrefix(header, "Bearer ")
			}
		}
		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		if _, err := tokens.ValidateToken(tokenStr); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Next()
	}
}
