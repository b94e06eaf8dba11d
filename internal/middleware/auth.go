package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/inkpress/core/internal/pkg/jwt"
	"github.com/inkpress/core/internal/pkg/response"
)

// ContextKeyAdmin marks a request as authenticated.
const ContextKeyAdmin = "is_admin"

// Auth returns a middleware that enforces admin token authentication.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ValidateToken(extractToken(c)); err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeyAdmin, true)
		c.Next()
	}
}

// OptionalAuth marks the request as admin when a valid token is present but
// never blocks it. Read endpoints use it to include drafts for admins.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ValidateToken(extractToken(c)); err == nil {
			c.Set(ContextKeyAdmin, true)
		}
		c.Next()
	}
}

// IsAuthenticated reports whether the request carries a valid admin token.
func IsAuthenticated(c *gin.Context) bool {
	v, ok := c.Get(ContextKeyAdmin)
	return ok && v == true
}

// ValidateToken validates a raw bearer token.
func ValidateToken(rawToken string) error {
	token := NormalizeToken(rawToken)
	if token == "" {
		return errors.New("token is required")
	}
	_, err := jwt.Parse(token)
	return err
}

// NormalizeToken strips the Bearer prefix and whitespace.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		token = strings.TrimSpace(token[len("bearer "):])
	}
	return token
}

func extractToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		return h
	}
	return c.Query("token")
}
