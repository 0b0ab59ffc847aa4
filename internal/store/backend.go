package store

import (
	"context"
	"errors"
	"sync"
)

// ErrEmpty is returned by Backend.Read when nothing has been persisted.
var ErrEmpty = errors.New("store: nothing persisted")

// Backend is a single persisted slot holding the serialized database.
// Writes replace the slot wholesale.
type Backend interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, body []byte) error
	Delete(ctx context.Context) error
}

// MemoryBackend keeps the slot in process memory.
type MemoryBackend struct {
	mu   sync.Mutex
	body []byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (m *MemoryBackend) Read(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.body == nil {
		return nil, ErrEmpty
	}
	return append([]byte(nil), m.body...), nil
}

func (m *MemoryBackend) Write(ctx context.Context, body []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.body = append([]byte(nil), body...)
	return nil
}

func (m *MemoryBackend) Delete(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.body = nil
	return nil
}
