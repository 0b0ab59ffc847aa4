package ledger

import (
	"context"
	"fmt"
	"strings"

	"adept_play/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// CreateTournament adds an Upcoming tournament.
func (e *Engine) CreateTournament(ctx context.Context, in domain.NewTournament) (domain.Tournament, error) {
	switch {
	case strings.TrimSpace(in.Title) == "", strings.TrimSpace(in.GameName) == "":
		return domain.Tournament{}, fmt.Errorf("%w: title and game name are required", domain.ErrInvalidInput)
	case in.EntryFee.IsNegative(), in.PrizePool.IsNegative():
		return domain.Tournament{}, fmt.Errorf("%w: entry fee and prize pool must not be negative", domain.ErrInvalidInput)
	case in.MatchTime.IsZero():
		return domain.Tournament{}, fmt.Errorf("%w: match time is required", domain.ErrInvalidInput)
	}

	var created domain.Tournament
	err := e.repo.Update(ctx, func(db *domain.Database) error {
		created = domain.Tournament{
			ID:        db.Counters.Next(domain.CollectionTournaments),
			Title:     in.Title,
			GameName:  in.GameName,
			EntryFee:  domain.Money(in.EntryFee),
			PrizePool: domain.Money(in.PrizePool),
			MatchTime: in.MatchTime.UTC(),
			Status:    domain.StatusUpcoming,
		}
		db.Tournaments = append(db.Tournaments, created)
		return nil
	})
	if err != nil {
		return domain.Tournament{}, err
	}
	logrus.WithFields(logrus.Fields{
		"tournament_id": created.ID,
		"title":         created.Title,
		"entry_fee":     created.EntryFee.String(),
		"prize_pool":    created.PrizePool.String(),
	}).Info("Tournament created")
	return created, nil
}

// JoinTournament debits the entry fee and records the participation. The
// fee charged is always the tournament's recorded fee; entryFee is what the
// caller was shown and is only compared against it.
func (e *Engine) JoinTournament(ctx context.Context, userID, tournamentID int64, entryFee decimal.Decimal) (domain.Profile, error) {
	var (
		updated domain.Profile
		charged decimal.Decimal
	)
	err := e.repo.Update(ctx, func(db *domain.Database) error {
		acct := db.Account(userID)
		if acct == nil {
			return fmt.Errorf("%w: user %d", domain.ErrNotFound, userID)
		}
		t := db.Tournament(tournamentID)
		if t == nil {
			return fmt.Errorf("%w: tournament %d", domain.ErrNotFound, tournamentID)
		}
		if db.Joined(userID, tournamentID) {
			return domain.ErrAlreadyJoined
		}
		if t.Status != domain.StatusUpcoming {
			return domain.ErrTournamentClosed
		}
		charged = t.EntryFee
		if !entryFee.Equal(charged) {
			logrus.WithFields(logrus.Fields{
				"user_id":       userID,
				"tournament_id": tournamentID,
				"quoted_fee":    entryFee.String(),
				"recorded_fee":  charged.String(),
			}).Warn("Entry fee mismatch, charging recorded fee")
		}
		if acct.WalletBalance.LessThan(charged) {
			return domain.ErrInsufficientBalance
		}

		e.record(db, acct, charged, domain.TypeDebit, domain.CategoryEntryFee, "Entry for "+t.Title)
		db.Participations = append(db.Participations, domain.Participation{
			ID:           db.Counters.Next(domain.CollectionParticipations),
			UserID:       userID,
			TournamentID: tournamentID,
		})
		updated = acct.Profile()
		return nil
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id":       userID,
			"tournament_id": tournamentID,
			"error":         err.Error(),
		}).Warn("Join failed")
		return domain.Profile{}, err
	}
	logrus.WithFields(logrus.Fields{
		"user_id":       userID,
		"tournament_id": tournamentID,
		"amount":        charged.String(),
		"type":          domain.TypeDebit,
	}).Info("Tournament joined")
	return updated, nil
}

// DeclareWinner completes the tournament and credits the prize pool to
// winnerID. There is no way back from Completed.
func (e *Engine) DeclareWinner(ctx context.Context, tournamentID, winnerID int64) (domain.Tournament, error) {
	var completed domain.Tournament
	err := e.repo.Update(ctx, func(db *domain.Database) error {
		t := db.Tournament(tournamentID)
		if t == nil {
			return fmt.Errorf("%w: tournament %d", domain.ErrNotFound, tournamentID)
		}
		winner := db.Account(winnerID)
		if winner == nil {
			return fmt.Errorf("%w: user %d", domain.ErrNotFound, winnerID)
		}
		if t.Completed() {
			return domain.ErrAlreadyCompleted
		}

		id := winner.ID
		t.Status = domain.StatusCompleted
		t.WinnerID = &id
		e.record(db, winner, t.PrizePool, domain.TypeCredit, domain.CategoryPrize, "Won "+t.Title)
		completed = *t
		return nil
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tournament_id": tournamentID,
			"winner_id":     winnerID,
			"error":         err.Error(),
		}).Warn("Declare winner failed")
		return domain.Tournament{}, err
	}
	logrus.WithFields(logrus.Fields{
		"tournament_id": tournamentID,
		"winner_id":     winnerID,
		"amount":        completed.PrizePool.String(),
		"type":          domain.TypeCredit,
	}).Info("Winner declared")
	return completed, nil
}

// UpdateRoom publishes the match room. An Upcoming tournament goes Live;
// a Completed one is immutable.
func (e *Engine) UpdateRoom(ctx context.Context, tournamentID int64, roomID, roomPassword string) (domain.Tournament, error) {
	if strings.TrimSpace(roomID) == "" {
		return domain.Tournament{}, fmt.Errorf("%w: room id is required", domain.ErrInvalidInput)
	}
	var updated domain.Tournament
	err := e.repo.Update(ctx, func(db *domain.Database) error {
		t := db.Tournament(tournamentID)
		if t == nil {
			return fmt.Errorf("%w: tournament %d", domain.ErrNotFound, tournamentID)
		}
		if t.Completed() {
			return domain.ErrAlreadyCompleted
		}
		t.RoomID = roomID
		t.RoomPassword = roomPassword
		if t.Status == domain.StatusUpcoming {
			t.Status = domain.StatusLive
		}
		updated = *t
		return nil
	})
	if err != nil {
		return domain.Tournament{}, err
	}
	logrus.WithFields(logrus.Fields{
		"tournament_id": tournamentID,
		"status":        updated.Status,
	}).Info("Room updated")
	return updated, nil
}
