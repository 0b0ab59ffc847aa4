// Package ledger implements the money-moving and state-changing operations
// of the platform. Each operation is one store cycle: load, validate,
// mutate, persist. A failed validation persists nothing.
package ledger

import (
	"context"
	"time"

	"adept_play/internal/domain"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// WelcomeBonus is credited to every new signup.
var WelcomeBonus = domain.Amount(500)

// Repository runs one atomic read-modify-write cycle.
type Repository interface {
	Update(ctx context.Context, fn func(db *domain.Database) error) error
}

type Engine struct {
	repo     Repository
	now      func() time.Time
	hashCost int
}

type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithHashCost(cost int) Option {
	return func(e *Engine) { e.hashCost = cost }
}

func New(repo Repository, opts ...Option) *Engine {
	e := &Engine{repo: repo, now: time.Now, hashCost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// record appends a ledger entry for amount and applies it to acct. Zero
// amounts move no money and leave no entry.
func (e *Engine) record(db *domain.Database, acct *domain.Account, amount decimal.Decimal, typ, category, desc string) {
	if !amount.IsPositive() {
		return
	}
	tx := domain.Transaction{
		ID:          db.Counters.Next(domain.CollectionTransactions),
		UserID:      acct.ID,
		Amount:      amount,
		Type:        typ,
		Category:    category,
		Description: desc,
		CreatedAt:   e.now().UTC(),
	}
	db.Transactions = append(db.Transactions, tx)
	acct.WalletBalance = acct.WalletBalance.Add(tx.Signed())
}
