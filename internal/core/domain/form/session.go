package form

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	ErrInvalidSessionID    = errors.New("session ID cannot be empty")
	ErrSessionNotFound     = errors.New("form session not found")
	ErrSessionLimitReached = errors.New("form session limit reached")
)

type AlreadyExistsError struct {
	ID string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("form session with id '%s' already exists", e.ID)
}

// Session serializes access to one Model and records the notifications it emits.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	model      *Model
	pending    []Event
	lastAccess time.Time
}

func NewSession(id string, rules *RuleSet, now time.Time) (*Session, error) {
	if id == "" {
		return nil, ErrInvalidSessionID
	}

	s := &Session{
		ID:         id,
		CreatedAt:  now,
		model:      New(rules),
		lastAccess: now,
	}
	s.model.OnValueChanged(s.record(ValueChanged))
	s.model.OnErrorsChanged(s.record(ErrorsChanged))
	s.model.OnErrorTextChanged(s.record(ErrorTextChanged))
	return s, nil
}

func (s *Session) GetID() string {
	return s.ID
}

func (s *Session) record(kind EventKind) Listener {
	return func(f Field) {
		s.pending = append(s.pending, Event{Kind: kind, Field: f})
	}
}

// Apply runs fn against the model and returns the events fired while it ran,
// along with the resulting state.
func (s *Session) Apply(fn func(m *Model)) ([]Event, Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = nil
	fn(s.model)
	events := s.pending
	s.pending = nil

	return events, s.model.Snapshot()
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.Snapshot()
}

// Touch marks the session as used at now. Earlier instants are ignored.
func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now.After(s.lastAccess) {
		s.lastAccess = now
	}
}

func (s *Session) LastAccess() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAccess
}

// IdleSince reports whether the session was last used before cutoff.
func (s *Session) IdleSince(cutoff time.Time) bool {
	return s.LastAccess().Before(cutoff)
}
