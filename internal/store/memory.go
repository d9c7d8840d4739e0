// internal/store/memory.go
//
// In-memory session store: one game.Round per session.
//
// Characteristics:
//   - Sessions keyed by a random UUID.
//   - Concurrency-safe via RWMutex; Update runs its callback under the write
//     lock, so a round is never mutated by two requests at once.
//   - Optional TTL: sessions older than the TTL (by StartedAt) are treated
//     as missing and swept on every Save.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle-engine/internal/game"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Session ties a round to the player who owns it.
type Session struct {
	ID        string
	Mode      string // "normal" | "daily"
	Round     *game.Round
	StartedAt time.Time
	Recorded  bool // finished round already written to the results log
}

// Store defines the session persistence interface.
type Store interface {
	// Save persists or replaces a session. An empty ID is filled in.
	Save(ctx context.Context, s *Session) error

	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (*Session, error)

	// Update runs fn with exclusive access to the session.
	Update(ctx context.Context, id string, fn func(*Session) error) error

	// Delete forgets a session. Unknown IDs are ignored.
	Delete(ctx context.Context, id string) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration // zero keeps sessions forever
	now      func() time.Time
}

// Option configures the memory store.
type Option func(*memory)

// WithTTL expires sessions ttl after StartedAt. Zero disables expiry.
func WithTTL(ttl time.Duration) Option {
	return func(m *memory) { m.ttl = ttl }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *memory) { m.now = now }
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore(opts ...Option) Store {
	m := &memory{sessions: make(map[string]*Session), now: time.Now}
	for _, o := range opts {
		o(m)
	}
	return m
}

// NewID returns a fresh session identifier.
func NewID() string { return uuid.NewString() }

func (m *memory) expired(s *Session, now time.Time) bool {
	return m.ttl > 0 && now.Sub(s.StartedAt) >= m.ttl
}

// Save stores s and sweeps expired sessions. A zero StartedAt is set to now.
func (m *memory) Save(ctx context.Context, s *Session) error {
	if s == nil || s.Round == nil {
		return errors.New("store: session without round")
	}
	if s.ID == "" {
		s.ID = NewID()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	if s.StartedAt.IsZero() {
		s.StartedAt = now
	}
	for id, old := range m.sessions {
		if m.expired(old, now) {
			delete(m.sessions, id)
		}
	}
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lookup(id)
}

func (m *memory) Update(ctx context.Context, id string, fn func(*Session) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, err := m.lookup(id)
	if err != nil {
		return err
	}
	return fn(s)
}

// lookup returns a live session, dropping it if expired. Callers hold mu.
func (m *memory) lookup(id string) (*Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if m.expired(s, m.now()) {
		delete(m.sessions, id)
		return nil, ErrNotFound
	}
	return s, nil
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
