package utils

import (
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// HashPassword hashes a secret with bcrypt at the given cost
func HashPassword(secret string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost // Fall back on out-of-range costs
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether secret matches the stored hash
func CheckPassword(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
