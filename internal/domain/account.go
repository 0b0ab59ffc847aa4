package domain

import "github.com/shopspring/decimal" // Fixed-point money

// Role values
const (
	RoleUser  = "user"  // Regular player
	RoleAdmin = "admin" // Platform administrator
)

// Account Model
type Account struct {
	ID            int64           `json:"id"`            // Collection-scoped identifier
	Username      string          `json:"username"`      // Unique, case-sensitive
	Email         string          `json:"email"`         // Unique
	Password      string          `json:"password"`      // Bcrypt hash of the secret
	WalletBalance decimal.Decimal `json:"walletBalance"` // Never negative
	Role          string          `json:"role"`          // Role: user or admin
}

// Profile is an account without its credential
type Profile struct {
	ID            int64           `json:"id"`            // Account ID
	Username      string          `json:"username"`      // Username
	Email         string          `json:"email"`         // Email address
	WalletBalance decimal.Decimal `json:"walletBalance"` // Current balance
	Role          string          `json:"role"`          // Role: user or admin
}

// Profile strips the credential from the account
func (a Account) Profile() Profile {
	return Profile{
		ID:            a.ID,
		Username:      a.Username,
		Email:         a.Email,
		WalletBalance: a.WalletBalance,
		Role:          a.Role,
	}
}

// ValidRole reports whether role is one of the known roles
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}
