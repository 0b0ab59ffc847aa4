// Package query provides read-only views derived from the store.
package query

import (
	"context"
	"fmt"
	"sort"

	"adept_play/internal/domain"
)

// Source hands out a private copy of the database for reading.
type Source interface {
	View(ctx context.Context, fn func(db *domain.Database) error) error
}

type Queries struct {
	src Source
}

func New(src Source) *Queries {
	return &Queries{src: src}
}

// Detail is a tournament with its participants resolved to usernames.
type Detail struct {
	Tournament   domain.Tournament        `json:"tournament"`
	Participants []domain.ParticipantView `json:"participants"`
}

// Account returns the sanitized account with id.
func (q *Queries) Account(ctx context.Context, id int64) (domain.Profile, error) {
	var p domain.Profile
	err := q.src.View(ctx, func(db *domain.Database) error {
		acct := db.Account(id)
		if acct == nil {
			return fmt.Errorf("%w: user %d", domain.ErrNotFound, id)
		}
		p = acct.Profile()
		return nil
	})
	return p, err
}

// UpcomingFor lists Upcoming tournaments userID has not joined, soonest first.
func (q *Queries) UpcomingFor(ctx context.Context, userID int64) ([]domain.Tournament, error) {
	out := []domain.Tournament{}
	err := q.src.View(ctx, func(db *domain.Database) error {
		joined := db.JoinedSet(userID)
		for _, t := range db.Tournaments {
			if _, ok := joined[t.ID]; ok || t.Status != domain.StatusUpcoming {
				continue
			}
			out = append(out, t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortByMatchTime(out, true)
	return out, nil
}

// MyTournaments lists every tournament userID has joined, latest first.
func (q *Queries) MyTournaments(ctx context.Context, userID int64) ([]domain.Tournament, error) {
	out := []domain.Tournament{}
	err := q.src.View(ctx, func(db *domain.Database) error {
		joined := db.JoinedSet(userID)
		for _, t := range db.Tournaments {
			if _, ok := joined[t.ID]; ok {
				out = append(out, t)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortByMatchTime(out, false)
	return out, nil
}

// TransactionsFor lists userID's ledger, newest first.
func (q *Queries) TransactionsFor(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	out := []domain.Transaction{}
	err := q.src.View(ctx, func(db *domain.Database) error {
		for _, tx := range db.Transactions {
			if tx.UserID == userID {
				out = append(out, tx)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// TournamentDetail returns the tournament with id and its participants.
func (q *Queries) TournamentDetail(ctx context.Context, id int64) (Detail, error) {
	var d Detail
	err := q.src.View(ctx, func(db *domain.Database) error {
		t := db.Tournament(id)
		if t == nil {
			return fmt.Errorf("%w: tournament %d", domain.ErrNotFound, id)
		}
		d.Tournament = *t
		d.Participants = []domain.ParticipantView{}
		for _, p := range db.Participations {
			if p.TournamentID != id {
				continue
			}
			name := domain.UnknownUsername
			if acct := db.Account(p.UserID); acct != nil {
				name = acct.Username
			}
			d.Participants = append(d.Participants, domain.ParticipantView{Participation: p, Username: name})
		}
		return nil
	})
	return d, err
}

// AllTournaments lists every tournament, latest match first.
func (q *Queries) AllTournaments(ctx context.Context) ([]domain.Tournament, error) {
	var out []domain.Tournament
	err := q.src.View(ctx, func(db *domain.Database) error {
		out = append([]domain.Tournament{}, db.Tournaments...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortByMatchTime(out, false)
	return out, nil
}

// AllUsers lists every account with role user.
func (q *Queries) AllUsers(ctx context.Context) ([]domain.Profile, error) {
	out := []domain.Profile{}
	err := q.src.View(ctx, func(db *domain.Database) error {
		for _, a := range db.Accounts {
			if a.Role == domain.RoleUser {
				out = append(out, a.Profile())
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func sortByMatchTime(ts []domain.Tournament, ascending bool) {
	sort.SliceStable(ts, func(i, j int) bool {
		a, b := ts[i], ts[j]
		if a.MatchTime.Equal(b.MatchTime) {
			if ascending {
				return a.ID < b.ID
			}
			return a.ID > b.ID
		}
		if ascending {
			return a.MatchTime.Before(b.MatchTime)
		}
		return a.MatchTime.After(b.MatchTime)
	})
}
