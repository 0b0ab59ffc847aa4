package domain

import "errors"

// Failure reasons surfaced to callers. Every operation that returns one of
// these has left the store untouched.
var (
	ErrDuplicateUsername   = errors.New("username already exists")
	ErrDuplicateEmail      = errors.New("email already registered")
	ErrInvalidCredential   = errors.New("invalid credentials")
	ErrNotFound            = errors.New("not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAlreadyJoined       = errors.New("already joined this tournament")
	ErrAlreadyCompleted    = errors.New("tournament already completed")
	ErrTournamentClosed    = errors.New("tournament is not open for entry")
	ErrInvalidInput        = errors.New("invalid input")
)
