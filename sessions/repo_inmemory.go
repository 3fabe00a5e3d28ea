package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.uber.org/atomic"

	apperrors "github.com/Vayain/soul-builder/internal/errors"
)

// DefaultExpiry is how long a session lives after creation.
const DefaultExpiry = 1 * time.Hour

var _ Repo = (*InMemoryRepo)(nil)

// InMemoryRepo is a thread-safe in-memory implementation of Repo.
// Every mutation is a read-modify-commit under the write lock, so concurrent
// updates to one session are serialised and a sweep never sees a partial map.
type InMemoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]Session
	expiry   time.Duration
	nowTime  func() time.Time

	created *atomic.Int64
	evicted *atomic.Int64
}

// InMemoryRepoOption modifies an InMemoryRepo.
type InMemoryRepoOption func(*InMemoryRepo)

// WithExpiry sets the expiry window measured from creation.
func WithExpiry(expiry time.Duration) InMemoryRepoOption {
	return func(r *InMemoryRepo) {
		if expiry > 0 {
			r.expiry = expiry
		}
	}
}

// WithNowTime sets the clock (primarily for testing)
func WithNowTime(nowFunc func() time.Time) InMemoryRepoOption {
	return func(r *InMemoryRepo) {
		r.nowTime = nowFunc
	}
}

// NewInMemoryRepo creates a new in-memory session repository
func NewInMemoryRepo(options ...InMemoryRepoOption) *InMemoryRepo {
	r := &InMemoryRepo{
		sessions: make(map[string]Session),
		expiry:   DefaultExpiry,
		nowTime:  time.Now,
		created:  atomic.NewInt64(0),
		evicted:  atomic.NewInt64(0),
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Create inserts a fresh session. An empty sessionID is replaced with a UUID.
func (r *InMemoryRepo) Create(sessionID string) (Session, bool) {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.sessions[sessionID]; ok {
		return existing, false
	}

	session := New(sessionID, r.nowTime())
	r.sessions[sessionID] = session
	r.created.Inc()
	log.Debug().Str("session_id", sessionID).Msg("session created")
	return session, true
}

// Get retrieves a session by ID
func (r *InMemoryRepo) Get(sessionID string) (Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[sessionID]
	return session, ok
}

// Mutate runs fn against a copy of the stored session and commits the copy
// when fn succeeds. The stored session is returned untouched on error.
func (r *InMemoryRepo) Mutate(sessionID string, fn func(*Session) error) (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return Session{}, apperrors.ErrSessionNotFound
	}

	updated := session
	if err := fn(&updated); err != nil {
		return session, err
	}
	updated.ID = session.ID
	updated.CreatedAt = session.CreatedAt
	r.sessions[sessionID] = updated
	return updated, nil
}

// Delete removes a session by ID
func (r *InMemoryRepo) Delete(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[sessionID]; !ok {
		return false
	}
	delete(r.sessions, sessionID)
	return true
}

// Count returns the number of stored sessions
func (r *InMemoryRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// DeleteExpired removes every session whose age at now exceeds the expiry
// window. Activity does not extend a session's life.
func (r *InMemoryRepo) DeleteExpired(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for sessionID, session := range r.sessions {
		if now.Sub(session.CreatedAt) > r.expiry {
			delete(r.sessions, sessionID)
			removed++
		}
	}
	if removed > 0 {
		r.evicted.Add(int64(removed))
		log.Info().Int("evicted", removed).Int("remaining", len(r.sessions)).Msg("expired sessions swept")
	}
	return removed
}

// Sweep runs DeleteExpired against the repo clock.
func (r *InMemoryRepo) Sweep() int {
	return r.DeleteExpired(r.nowTime())
}

// Run sweeps on every tick of interval until ctx is done.
func (r *InMemoryRepo) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Debug().Dur("interval", interval).Dur("expiry", r.expiry).Msg("session sweeper started")
	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Stats returns the running totals alongside the active count.
func (r *InMemoryRepo) Stats() Stats {
	return Stats{
		Active:  r.Count(),
		Created: r.created.Load(),
		Evicted: r.evicted.Load(),
	}
}
