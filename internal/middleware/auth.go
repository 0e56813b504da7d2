package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userIDKey = "userID"

// RequireSession verifies the bearer session token minted by the identity
// provider and records the acting user id for request logging. The service
// only trusts the pass/fail decision; no role or tenant claims are read.
func RequireSession(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "missing bearer token"})
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid session token"})
			return
		}

		if subject, err := token.Claims.GetSubject(); err == nil {
			c.Set(userIDKey, subject)
		}

		c.Next()
	}
}

// UserID returns the authenticated user id, empty when auth is disabled.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
