package ledger

import (
	"context"
	"fmt"
	"strings"

	"adept_play/internal/domain"
	"adept_play/internal/utils"

	"github.com/sirupsen/logrus"
)

// Signup creates a user account and credits the welcome bonus.
func (e *Engine) Signup(ctx context.Context, username, email, secret string) (domain.Profile, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || secret == "" {
		return domain.Profile{}, fmt.Errorf("%w: username, email and password are required", domain.ErrInvalidInput)
	}
	hash, err := utils.HashPassword(secret, e.hashCost)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("hash password: %w", err)
	}

	var created domain.Profile
	err = e.repo.Update(ctx, func(db *domain.Database) error {
		if db.AccountByUsername(username) != nil {
			return domain.ErrDuplicateUsername
		}
		if db.AccountByEmail(email) != nil {
			return domain.ErrDuplicateEmail
		}
		db.Accounts = append(db.Accounts, domain.Account{
			ID:            db.Counters.Next(domain.CollectionUsers),
			Username:      username,
			Email:         email,
			Password:      hash,
			WalletBalance: domain.Amount(0),
			Role:          domain.RoleUser,
		})
		acct := &db.Accounts[len(db.Accounts)-1]
		e.record(db, acct, WelcomeBonus, domain.TypeCredit, domain.CategoryWelcomeBonus, "Welcome Bonus")
		created = acct.Profile()
		return nil
	})
	if err != nil {
		return domain.Profile{}, err
	}
	logrus.WithFields(logrus.Fields{
		"user_id":  created.ID,
		"username": created.Username,
		"amount":   WelcomeBonus.String(),
	}).Info("Account created")
	return created, nil
}

// ChangePassword replaces the secret of the account with id and role after
// verifying the current one.
func (e *Engine) ChangePassword(ctx context.Context, accountID int64, role, current, next string) error {
	if !domain.ValidRole(role) {
		return fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
	}
	if next == "" {
		return fmt.Errorf("%w: new password is required", domain.ErrInvalidInput)
	}
	hash, err := utils.HashPassword(next, e.hashCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	err = e.repo.Update(ctx, func(db *domain.Database) error {
		acct := db.Account(accountID)
		if acct == nil || acct.Role != role {
			return fmt.Errorf("%w: %s %d", domain.ErrNotFound, role, accountID)
		}
		if !utils.CheckPassword(acct.Password, current) {
			return domain.ErrInvalidCredential
		}
		acct.Password = hash
		return nil
	})
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"user_id": accountID, "role": role}).Info("Password changed")
	return nil
}
