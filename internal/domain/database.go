package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Collection names understood by the allocator
const (
	CollectionUsers          = "users"
	CollectionTournaments    = "tournaments"
	CollectionParticipations = "participations"
	CollectionTransactions   = "transactions"
)

// Counters holds the last ID issued per collection.
type Counters struct {
	Users          int64 `json:"users"`
	Tournaments    int64 `json:"tournaments"`
	Participations int64 `json:"participations"`
	Transactions   int64 `json:"transactions"`
}

func (c *Counters) slot(collection string) *int64 {
	switch collection {
	case CollectionUsers:
		return &c.Users
	case CollectionTournaments:
		return &c.Tournaments
	case CollectionParticipations:
		return &c.Participations
	case CollectionTransactions:
		return &c.Transactions
	}
	return nil
}

// Next issues the next ID for collection. It panics on an unknown
// collection name since that can only be a programming error.
func (c *Counters) Next(collection string) int64 {
	n := c.slot(collection)
	if n == nil {
		panic(fmt.Sprintf("domain: unknown collection %q", collection))
	}
	*n++
	return *n
}

// Max returns the per-collection maximum of c and o.
func (c Counters) Max(o Counters) Counters {
	return Counters{
		Users:          max(c.Users, o.Users),
		Tournaments:    max(c.Tournaments, o.Tournaments),
		Participations: max(c.Participations, o.Participations),
		Transactions:   max(c.Transactions, o.Transactions),
	}
}

// Database is the whole persisted document.
type Database struct {
	Accounts       []Account       `json:"accounts"`
	Tournaments    []Tournament    `json:"tournaments"`
	Participations []Participation `json:"participations"`
	Transactions   []Transaction   `json:"transactions"`
	Counters       Counters        `json:"autoincrement"`
}

// Account returns a pointer into db for the account with id, or nil.
func (db *Database) Account(id int64) *Account {
	for i := range db.Accounts {
		if db.Accounts[i].ID == id {
			return &db.Accounts[i]
		}
	}
	return nil
}

// AccountByUsername looks an account up by exact username.
func (db *Database) AccountByUsername(username string) *Account {
	for i := range db.Accounts {
		if db.Accounts[i].Username == username {
			return &db.Accounts[i]
		}
	}
	return nil
}

// AccountByEmail looks an account up by exact email.
func (db *Database) AccountByEmail(email string) *Account {
	for i := range db.Accounts {
		if db.Accounts[i].Email == email {
			return &db.Accounts[i]
		}
	}
	return nil
}

// Tournament returns a pointer into db for the tournament with id, or nil.
func (db *Database) Tournament(id int64) *Tournament {
	for i := range db.Tournaments {
		if db.Tournaments[i].ID == id {
			return &db.Tournaments[i]
		}
	}
	return nil
}

// Joined reports whether userID already has a participation in tournamentID.
func (db *Database) Joined(userID, tournamentID int64) bool {
	for _, p := range db.Participations {
		if p.UserID == userID && p.TournamentID == tournamentID {
			return true
		}
	}
	return false
}

// JoinedSet returns the IDs of every tournament userID has joined.
func (db *Database) JoinedSet(userID int64) map[int64]struct{} {
	set := make(map[int64]struct{})
	for _, p := range db.Participations {
		if p.UserID == userID {
			set[p.TournamentID] = struct{}{}
		}
	}
	return set
}

// HighWater returns counters at least as large as every ID present in db.
// Documents written by hand or by older versions may carry stale counters.
func (db *Database) HighWater() Counters {
	hw := db.Counters
	for _, a := range db.Accounts {
		hw.Users = max(hw.Users, a.ID)
	}
	for _, t := range db.Tournaments {
		hw.Tournaments = max(hw.Tournaments, t.ID)
	}
	for _, p := range db.Participations {
		hw.Participations = max(hw.Participations, p.ID)
	}
	for _, tx := range db.Transactions {
		hw.Transactions = max(hw.Transactions, tx.ID)
	}
	return hw
}

// LedgerBalance reduces userID's transactions to the balance they imply.
func (db *Database) LedgerBalance(userID int64) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range db.Transactions {
		if tx.UserID == userID {
			sum = sum.Add(tx.Signed())
		}
	}
	return sum
}
