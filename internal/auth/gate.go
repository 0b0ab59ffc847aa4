// Package auth verifies credentials against stored accounts.
package auth

import (
	"context"

	"adept_play/internal/domain"
	"adept_play/internal/utils"

	"github.com/sirupsen/logrus"
)

// Source hands out a private copy of the database for reading.
type Source interface {
	View(ctx context.Context, fn func(db *domain.Database) error) error
}

// dummyHash is compared against when the username is unknown so every
// failure path costs one bcrypt comparison.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z4Z7Ue7C9y6Zf8uQ0lJ1S9zK"

type Gate struct {
	src Source
}

func NewGate(src Source) *Gate {
	return &Gate{src: src}
}

// Authenticate returns the sanitized account matching username, secret and
// role. Any mismatch yields domain.ErrInvalidCredential.
func (g *Gate) Authenticate(ctx context.Context, username, secret, role string) (domain.Profile, error) {
	var (
		hash    = dummyHash
		profile domain.Profile
		known   bool
	)
	err := g.src.View(ctx, func(db *domain.Database) error {
		if acct := db.AccountByUsername(username); acct != nil && acct.Role == role {
			hash, profile, known = acct.Password, acct.Profile(), true
		}
		return nil
	})
	if err != nil {
		return domain.Profile{}, err
	}
	if ok := utils.CheckPassword(hash, secret); !ok || !known {
		logrus.WithFields(logrus.Fields{"username": username, "role": role}).Info("Login rejected")
		return domain.Profile{}, domain.ErrInvalidCredential
	}
	return profile, nil
}
