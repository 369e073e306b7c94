// Package session keeps the last computed analysis of each client session in memory.
package session

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/cottington/wealth-calculator/internal/domain"
	"github.com/google/uuid"
)

// ErrSessionNotFound is returned for unknown or expired session ids.
var ErrSessionNotFound = errors.New("session not found")

// Session describes the public metadata of a tracked session.
type Session struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Currency   string    `json:"currency"`
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`

	// Analysis is the last result; nil until something has been computed.
	Analysis *domain.Analysis `json:"analysis,omitempty"`
}

// Store is a concurrency-safe, TTL-bounded session map. Results are replaced,
// never mutated, so a returned Analysis can be read without holding the lock.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates a store whose sessions expire after ttl of inactivity.
// A ttl of zero disables expiry.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// SetClock replaces the time source; used by tests.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Create opens a new session for a client.
func (s *Store) Create(clientName, currency string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	now := s.now()
	sess := &Session{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Currency:   currency,
		CreatedAt:  now,
		LastActive: now,
	}
	s.sessions[sess.ID] = sess
	return *sess
}

// Get returns a snapshot of a session and marks it active.
func (s *Store) Get(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.lookup(id)
	if err != nil {
		return Session{}, err
	}
	sess.LastActive = s.now()
	return *sess, nil
}

// SaveProjection records a projection as the session's latest result. A goal
// computed earlier in the same session is kept alongside it.
func (s *Store) SaveProjection(id string, res *domain.ProjectionResult) (*domain.Analysis, error) {
	return s.update(id, func(a *domain.Analysis) { a.Projection = res })
}

// SaveGoal records a goal result as the session's latest result.
func (s *Store) SaveGoal(id string, res *domain.GoalResult) (*domain.Analysis, error) {
	return s.update(id, func(a *domain.Analysis) { a.Goal = res })
}

// Rename changes the client name printed on future reports.
func (s *Store) Rename(id, clientName string) (*domain.Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	sess.ClientName = clientName
	sess.LastActive = s.now()
	if sess.Analysis != nil {
		next := *sess.Analysis
		next.ClientName = clientName
		sess.Analysis = &next
	}
	return sess.Analysis, nil
}

func (s *Store) update(id string, apply func(*domain.Analysis)) (*domain.Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	now := s.now()
	next := domain.Analysis{ClientName: sess.ClientName, Currency: sess.Currency}
	if sess.Analysis != nil {
		next = *sess.Analysis
	}
	next.GeneratedAt = now
	apply(&next)
	sess.Analysis = &next
	sess.LastActive = now
	return sess.Analysis, nil
}

// Delete removes a session.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.lookup(id); err != nil {
		return err
	}
	delete(s.sessions, id)
	return nil
}

// List returns every live session, oldest first.
func (s *Store) List() []Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		if !s.expired(sess) {
			out = append(out, *sess)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// Len returns the number of stored sessions, expired or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops expired sessions and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps expired sessions every interval until ctx is cancelled.
func (s *Store) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// lookup must be called with the lock held.
func (s *Store) lookup(id string) (*Session, error) {
	sess, ok := s.sessions[id]
	if !ok || s.expired(sess) {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *Store) expired(sess *Session) bool {
	return s.ttl > 0 && s.now().Sub(sess.LastActive) > s.ttl
}
