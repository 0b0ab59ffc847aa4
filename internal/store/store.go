// Package store persists the whole platform database as a single document
// and serialises read-modify-write cycles against it.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"adept_play/internal/domain"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Store is the codec between a Backend slot and domain.Database.
type Store struct {
	backend  Backend
	now      func() time.Time
	hashCost int

	mu sync.Mutex
	// seen is the highest counter state loaded or saved during this store's
	// lifetime. Reseeding never issues IDs below it.
	seen domain.Counters
}

type Option func(*Store)

// WithClock sets the clock used to date seed records.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithHashCost sets the bcrypt cost used for seed credentials.
func WithHashCost(cost int) Option {
	return func(s *Store) { s.hashCost = cost }
}

func New(b Backend, opts ...Option) *Store {
	s := &Store{backend: b, now: time.Now, hashCost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns a private copy of the persisted database, seeding and
// persisting the initial dataset when nothing has been stored yet.
func (s *Store) Load(ctx context.Context) (*domain.Database, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Save replaces the persisted database with db.
func (s *Store) Save(ctx context.Context, db *domain.Database) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, db)
}

// Exists reports whether a database has ever been persisted.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.backend.Read(ctx)
	if errors.Is(err, ErrEmpty) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Reset discards the persisted database; the next Load reseeds.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.Delete(ctx); err != nil {
		return fmt.Errorf("reset store: %w", err)
	}
	logrus.Info("Store reset")
	return nil
}

// Update runs fn against a freshly loaded copy and persists it if fn
// succeeds. No other Update or Save interleaves with the cycle. When fn
// fails nothing is written.
func (s *Store) Update(ctx context.Context, fn func(db *domain.Database) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(db); err != nil {
		return err
	}
	return s.save(ctx, db)
}

// View runs fn against a freshly loaded copy. Changes made by fn are
// discarded.
func (s *Store) View(ctx context.Context, fn func(db *domain.Database) error) error {
	db, err := s.Load(ctx)
	if err != nil {
		return err
	}
	return fn(db)
}

func (s *Store) load(ctx context.Context) (*domain.Database, error) {
	body, err := s.backend.Read(ctx)
	if errors.Is(err, ErrEmpty) {
		return s.seed(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}
	var db domain.Database
	if err := json.Unmarshal(body, &db); err != nil {
		return nil, fmt.Errorf("decode store: %w", err)
	}
	s.seen = s.seen.Max(db.HighWater())
	return &db, nil
}

func (s *Store) save(ctx context.Context, db *domain.Database) error {
	db.Counters = db.HighWater()
	body, err := json.Marshal(db)
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := s.backend.Write(ctx, body); err != nil {
		return fmt.Errorf("save store: %w", err)
	}
	s.seen = s.seen.Max(db.Counters)
	return nil
}

func (s *Store) seed(ctx context.Context) (*domain.Database, error) {
	db, err := Seed(s.now(), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("build seed: %w", err)
	}
	db.Counters = db.Counters.Max(s.seen)
	if err := s.save(ctx, db); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"users":        len(db.Accounts),
		"tournaments":  len(db.Tournaments),
		"transactions": len(db.Transactions),
	}).Info("Store seeded")
	return db, nil
}
