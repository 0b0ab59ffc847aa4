package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersNextIsStrictlyIncreasing(t *testing.T) {
	c := Counters{Users: 3}
	assert.Equal(t, int64(4), c.Next(CollectionUsers))
	assert.Equal(t, int64(5), c.Next(CollectionUsers))
	assert.Equal(t, int64(1), c.Next(CollectionTransactions))
	assert.Equal(t, int64(5), c.Users)
}

func TestCountersNextUnknownCollectionPanics(t *testing.T) {
	c := Counters{}
	assert.Panics(t, func() { c.Next("wallets") })
}

func TestCountersMax(t *testing.T) {
	a := Counters{Users: 5, Tournaments: 1, Participations: 7, Transactions: 2}
	b := Counters{Users: 3, Tournaments: 4, Participations: 7, Transactions: 9}
	assert.Equal(t, Counters{Users: 5, Tournaments: 4, Participations: 7, Transactions: 9}, a.Max(b))
}

func TestHighWaterCoversStaleCounters(t *testing.T) {
	db := &Database{
		Accounts:     []Account{{ID: 2}, {ID: 9}},
		Tournaments:  []Tournament{{ID: 1}},
		Transactions: []Transaction{{ID: 4}},
		Counters:     Counters{Users: 3, Tournaments: 6},
	}
	hw := db.HighWater()
	assert.Equal(t, int64(9), hw.Users)
	assert.Equal(t, int64(6), hw.Tournaments)
	assert.Equal(t, int64(0), hw.Participations)
	assert.Equal(t, int64(4), hw.Transactions)
}

func TestLookups(t *testing.T) {
	db := &Database{
		Accounts:       []Account{{ID: 1, Username: "player1", Email: "p1@test.com"}},
		Tournaments:    []Tournament{{ID: 7, Title: "Cup"}},
		Participations: []Participation{{ID: 1, UserID: 1, TournamentID: 7}},
	}

	require.NotNil(t, db.Account(1))
	assert.Nil(t, db.Account(2))
	assert.NotNil(t, db.AccountByUsername("player1"))
	assert.Nil(t, db.AccountByUsername("Player1"))
	assert.NotNil(t, db.AccountByEmail("p1@test.com"))
	require.NotNil(t, db.Tournament(7))
	assert.True(t, db.Joined(1, 7))
	assert.False(t, db.Joined(1, 8))
	assert.Contains(t, db.JoinedSet(1), int64(7))

	db.Account(1).Username = "renamed"
	assert.Equal(t, "renamed", db.Accounts[0].Username)
}

func TestLedgerBalance(t *testing.T) {
	db := &Database{Transactions: []Transaction{
		{UserID: 1, Amount: Amount(500), Type: TypeCredit},
		{UserID: 1, Amount: decimal.RequireFromString("99.50"), Type: TypeDebit},
		{UserID: 2, Amount: Amount(1000), Type: TypeCredit},
	}}
	assert.True(t, db.LedgerBalance(1).Equal(decimal.RequireFromString("400.50")))
	assert.True(t, db.LedgerBalance(3).IsZero())
}

func TestAccountProfileOmitsPassword(t *testing.T) {
	a := Account{ID: 1, Username: "u", Email: "e", Password: "hash", WalletBalance: Amount(5), Role: RoleUser}
	p := a.Profile()
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, "u", p.Username)
	assert.True(t, p.WalletBalance.Equal(Amount(5)))
}

func TestMoneyRoundsToCents(t *testing.T) {
	assert.Equal(t, "10.13", Money(decimal.RequireFromString("10.125")).StringFixed(2))
}
