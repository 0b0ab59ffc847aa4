package domain

import (
	"time" // Match time

	"github.com/shopspring/decimal" // Fixed-point money
)

// Tournament status values
const (
	StatusUpcoming  = "Upcoming"  // Open for entry
	StatusLive      = "Live"      // Room details published
	StatusCompleted = "Completed" // Winner declared, terminal
)

// Tournament Model
type Tournament struct {
	ID           int64           `json:"id"`                     // Collection-scoped identifier
	Title        string          `json:"title"`                  // Display title
	GameName     string          `json:"gameName"`               // Game being played
	EntryFee     decimal.Decimal `json:"entryFee"`               // Debited on join
	PrizePool    decimal.Decimal `json:"prizePool"`              // Credited to the winner
	MatchTime    time.Time       `json:"matchTime"`              // Scheduled start
	RoomID       string          `json:"roomId,omitempty"`       // Match room identifier
	RoomPassword string          `json:"roomPassword,omitempty"` // Match room password
	Status       string          `json:"status"`                 // Upcoming, Live or Completed
	WinnerID     *int64          `json:"winnerId,omitempty"`     // Set iff Completed
}

// Completed reports whether a winner has been declared
func (t Tournament) Completed() bool {
	return t.Status == StatusCompleted
}

// NewTournament holds the admin-supplied fields of a tournament
type NewTournament struct {
	Title     string          `json:"title"`     // Display title
	GameName  string          `json:"gameName"`  // Game being played
	EntryFee  decimal.Decimal `json:"entryFee"`  // Entry fee, >= 0
	PrizePool decimal.Decimal `json:"prizePool"` // Prize pool, >= 0
	MatchTime time.Time       `json:"matchTime"` // Scheduled start
}
