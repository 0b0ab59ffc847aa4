package store

import (
	"time"

	"adept_play/internal/domain"
	"adept_play/internal/utils"
)

const day = 24 * time.Hour

type seedAccount struct {
	username, email, secret, role string
}

var seedAccounts = []seedAccount{
	{"player1", "player1@test.com", "password1", domain.RoleUser},
	{"player2", "player2@test.com", "password2", domain.RoleUser},
	{"admin", "admin@test.com", "admin123", domain.RoleAdmin},
}

// Seed builds the initial dataset dated relative to now. Balances are
// derived from the seed transactions so the ledger reconciles from the
// first load.
func Seed(now time.Time, hashCost int) (*domain.Database, error) {
	now = now.UTC()
	db := &domain.Database{
		Accounts:       []domain.Account{},
		Tournaments:    []domain.Tournament{},
		Participations: []domain.Participation{},
		Transactions:   []domain.Transaction{},
	}

	for _, a := range seedAccounts {
		hash, err := utils.HashPassword(a.secret, hashCost)
		if err != nil {
			return nil, err
		}
		db.Accounts = append(db.Accounts, domain.Account{
			ID:            db.Counters.Next(domain.CollectionUsers),
			Username:      a.username,
			Email:         a.email,
			Password:      hash,
			WalletBalance: domain.Amount(0),
			Role:          a.role,
		})
	}

	winner := int64(2)
	db.Tournaments = append(db.Tournaments,
		domain.Tournament{
			ID:           db.Counters.Next(domain.CollectionTournaments),
			Title:        "Valorant Vanguard Series",
			GameName:     "Valorant",
			EntryFee:     domain.Amount(100),
			PrizePool:    domain.Amount(1000),
			MatchTime:    now.Add(2 * day),
			RoomID:       "VAL123",
			RoomPassword: "pass",
			Status:       domain.StatusUpcoming,
		},
		domain.Tournament{
			ID:        db.Counters.Next(domain.CollectionTournaments),
			Title:     "BGMI Champions Cup",
			GameName:  "BGMI",
			EntryFee:  domain.Amount(50),
			PrizePool: domain.Amount(500),
			MatchTime: now.Add(3 * day),
			Status:    domain.StatusUpcoming,
		},
		domain.Tournament{
			ID:        db.Counters.Next(domain.CollectionTournaments),
			Title:     "Free Fire Frenzy",
			GameName:  "Free Fire",
			EntryFee:  domain.Amount(200),
			PrizePool: domain.Amount(400),
			MatchTime: now.Add(-day),
			Status:    domain.StatusCompleted,
			WinnerID:  &winner,
		},
	)

	for _, userID := range []int64{1, 2} {
		db.Participations = append(db.Participations, domain.Participation{
			ID:           db.Counters.Next(domain.CollectionParticipations),
			UserID:       userID,
			TournamentID: 3,
		})
	}

	ledger := []struct {
		userID   int64
		amount   int64
		typ      string
		category string
		desc     string
		at       time.Time
	}{
		{1, 1200, domain.TypeCredit, domain.CategoryInitialBalance, "Initial Balance", now.Add(-2 * day)},
		{2, 300, domain.TypeCredit, domain.CategoryInitialBalance, "Initial Balance", now.Add(-2 * day)},
		{1, 200, domain.TypeDebit, domain.CategoryEntryFee, "Entry for Free Fire Frenzy", now.Add(-day - time.Hour)},
		{2, 200, domain.TypeDebit, domain.CategoryEntryFee, "Entry for Free Fire Frenzy", now.Add(-day - time.Hour)},
		{2, 400, domain.TypeCredit, domain.CategoryPrize, "Won Free Fire Frenzy", now.Add(-day)},
	}
	for _, l := range ledger {
		tx := domain.Transaction{
			ID:          db.Counters.Next(domain.CollectionTransactions),
			UserID:      l.userID,
			Amount:      domain.Amount(l.amount),
			Type:        l.typ,
			Category:    l.category,
			Description: l.desc,
			CreatedAt:   l.at,
		}
		db.Transactions = append(db.Transactions, tx)
		acct := db.Account(l.userID)
		acct.WalletBalance = acct.WalletBalance.Add(tx.Signed())
	}

	return db, nil
}
