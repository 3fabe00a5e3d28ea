package sessions

import (
	"context"
	"time"
)

// Repo defines the interface for session storage operations.
// Absence is reported as a false flag or ErrSessionNotFound, never as a failure
// of the store itself.
type Repo interface {
	// Create inserts a fresh session, or returns the live one unchanged.
	Create(sessionID string) (session Session, created bool)

	// Get retrieves a session by ID
	Get(sessionID string) (Session, bool)

	// Mutate applies fn to a copy of the session and commits it if fn returns nil
	Mutate(sessionID string, fn func(*Session) error) (Session, error)

	// Delete removes a session by ID
	Delete(sessionID string) bool

	// Count returns the number of stored sessions
	Count() int

	// DeleteExpired removes sessions created longer than the expiry window before now
	DeleteExpired(now time.Time) int

	// Sweep runs DeleteExpired against the repo clock
	Sweep() int

	// Stats reports active, created and evicted totals
	Stats() Stats

	// Run sweeps expired sessions every interval until ctx is cancelled
	Run(ctx context.Context, interval time.Duration)
}

// Stats reports how many sessions are live and how many were ever created and evicted.
type Stats struct {
	Active  int   `json:"activeSessions"`
	Created int64 `json:"sessionsCreated"`
	Evicted int64 `json:"sessionsEvicted"`
}
