package utils

import (
	"errors" // Error values
	"time"   // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
	"github.com/google/uuid"       // Token identifiers
)

// TokenTTL is how long a session token stays valid
const TokenTTL = 24 * time.Hour

// JWT Claims
type Claims struct {
	UserID               int64  `json:"user_id"` // Custom claim for account ID
	Role                 string `json:"role"`    // Role the session was opened with
	jwt.RegisteredClaims        // Standard JWT claims
}

// GenerateJWT creates a session token for an authenticated account
func GenerateJWT(userID int64, role, secret string, now time.Time) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty") // Refuse to sign with an empty key
	}
	claims := Claims{
		UserID: userID, // Account ID
		Role:   role,   // Session role
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),                      // Unique token ID
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)), // Expiry
			IssuedAt:  jwt.NewNumericDate(now),               // Issued at
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseJWT parses and validates a session token
func ParseJWT(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err // Expired, malformed or wrongly signed
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil // Return claims if valid
	}
	return nil, jwt.ErrSignatureInvalid
}
