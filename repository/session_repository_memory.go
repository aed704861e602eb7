package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"tuition-negotiation/domain"
)

type memoryEntry struct {
	session   domain.Session
	expiresAt time.Time
}

// SessionRepositoryMemory is an in-memory implementation of
// SessionRepository. Sessions expire ttl after their last save.
type SessionRepositoryMemory struct {
	mu   sync.RWMutex
	ttl  time.Duration
	now  func() time.Time
	data map[uuid.UUID]memoryEntry
}

// NewSessionRepositoryMemory creates a new in-memory session repository.
func NewSessionRepositoryMemory(ttl time.Duration) *SessionRepositoryMemory {
	return &SessionRepositoryMemory{
		ttl:  ttl,
		now:  time.Now,
		data: make(map[uuid.UUID]memoryEntry),
	}
}

func (r *SessionRepositoryMemory) Get(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.data[id]
	if !ok || !r.now().Before(entry.expiresAt) {
		return domain.Session{}, ErrSessionNotFound
	}
	return detach(entry.session), nil
}

// Save stores a copy of the session and drops expired ones.
func (r *SessionRepositoryMemory) Save(ctx context.Context, session domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for id, entry := range r.data {
		if !now.Before(entry.expiresAt) {
			delete(r.data, id)
		}
	}

	r.data[session.ID] = memoryEntry{
		session:   detach(session),
		expiresAt: now.Add(r.ttl),
	}
	return nil
}

func (r *SessionRepositoryMemory) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.data, id)
	return nil
}

// detach copies the installment list so callers never share its backing
// array with the store. Results are replaced, never mutated, so their
// pointers can be shared.
func detach(s domain.Session) domain.Session {
	s.Installments = slices.Clone(s.Installments)
	return s
}
