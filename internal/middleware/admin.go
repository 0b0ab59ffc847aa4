package middleware

import (
	"context"  // Lookup context
	"net/http" // HTTP status codes

	"adept_play/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
)

// AccountLookup resolves an account by ID
type AccountLookup interface {
	Account(ctx context.Context, id int64) (domain.Profile, error)
}

// RequireRole checks the caller's role against the stored account on each request,
// so a token outliving a reset or role change is refused
func RequireRole(accounts AccountLookup, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := UserID(c) // Get userID from context
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// The token must claim the role before we touch the store
		if Role(c) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": role + " access required"})
			return
		}
		acct, err := accounts.Account(c.Request.Context(), userID) // Fetch account from the store
		if err != nil || acct.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": role + " access required"})
			return
		}
		c.Next()
	}
}

// AdminOnlyMiddleware checks the user's role from the store on each request
func AdminOnlyMiddleware(accounts AccountLookup) gin.HandlerFunc {
	return RequireRole(accounts, domain.RoleAdmin)
}

// UserOnlyMiddleware admits player accounts only
func UserOnlyMiddleware(accounts AccountLookup) gin.HandlerFunc {
	return RequireRole(accounts, domain.RoleUser)
}
