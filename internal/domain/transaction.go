package domain

import (
	"time" // Creation time

	"github.com/shopspring/decimal" // Fixed-point money
)

// Transaction types
const (
	TypeCredit = "credit" // Adds to the balance
	TypeDebit  = "debit"  // Subtracts from the balance
)

// Transaction categories
const (
	CategoryInitialBalance = "initial_balance" // Seeded opening balance
	CategoryWelcomeBonus   = "welcome_bonus"   // Signup credit
	CategoryEntryFee       = "entry_fee"       // Tournament join debit
	CategoryPrize          = "prize"           // Winner payout credit
)

// Transaction Model, append-only
type Transaction struct {
	ID          int64           `json:"id"`          // Collection-scoped identifier
	UserID      int64           `json:"userId"`      // Owning account
	Amount      decimal.Decimal `json:"amount"`      // Always positive
	Type        string          `json:"type"`        // Transaction type: credit, debit
	Category    string          `json:"category"`    // What caused the balance change
	Description string          `json:"description"` // Human readable reason
	CreatedAt   time.Time       `json:"createdAt"`   // Time of the balance change
}

// Signed returns the amount as it affects the balance
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TypeDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}
