package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"adept_play/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// Context keys set by JWTAuthMiddleware
const (
	KeyUserID = "userID" // Account ID from the token
	KeyRole   = "role"   // Role claimed by the token
)

// JWTAuthMiddleware validates JWT tokens and extracts user information
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(KeyUserID, claims.UserID) // Store userID in context
		c.Set(KeyRole, claims.Role)     // Store role in context
		c.Next()                        // Proceed to the next handler
	}
}

// UserID returns the authenticated account ID, false if the request carried none
func UserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(KeyUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// Role returns the role claimed by the request token
func Role(c *gin.Context) string {
	return c.GetString(KeyRole)
}
