package bot

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"skycord/internal/weather"
)

var (
	errSessionExpired  = errors.New("interactive session expired")
	errSessionNotOwner = errors.New("interactive session owned by another user")
)

// weatherSession is the interactive state behind one weather message. The
// snapshot is fetched once; button presses only re-render it.
type weatherSession struct {
	ID        string
	Snapshot  *weather.Snapshot
	Location  weather.Location
	Selection weather.ViewSelection
	OwnerID   string
	ExpiresAt time.Time
}

// SessionStore keeps live weather sessions keyed by ID. Expired sessions
// are removed by a periodic sweep.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*weatherSession
	ttl      time.Duration
	logger   *zap.Logger
}

func NewSessionStore(ttl time.Duration, logger *zap.Logger) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*weatherSession),
		ttl:      ttl,
		logger:   logger,
	}
}

// Create registers a new session and returns a copy of it. The initial
// selection is the current-conditions tab in metric units. Pointers to the
// stored session never leave the store; all access goes through its lock.
func (s *SessionStore) Create(snap *weather.Snapshot, loc weather.Location, ownerID string) weatherSession {
	session := &weatherSession{
		ID:       uuid.NewString(),
		Snapshot: snap,
		Location: loc,
		Selection: weather.ViewSelection{
			Tab:   weather.TabCurrent,
			Units: weather.UnitsMetric,
		},
		OwnerID:   ownerID,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return *session
}

// Get returns a copy of the session if it exists and has not expired.
// Each hit extends the expiry.
func (s *SessionStore) Get(id string) (weatherSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return weatherSession{}, false
	}
	if time.Now().After(session.ExpiresAt) {
		delete(s.sessions, id)
		return weatherSession{}, false
	}
	session.ExpiresAt = time.Now().Add(s.ttl)
	return *session, true
}

// UpdateSelection applies fn to the session's view selection under the
// store lock and returns a copy of the updated session. Button presses run
// on separate gateway goroutines, so the mutation must not happen on a
// shared pointer outside the lock. Presses by anyone but the session owner
// are rejected.
func (s *SessionStore) UpdateSelection(id, requesterID string, fn func(*weather.ViewSelection)) (weatherSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return weatherSession{}, errSessionExpired
	}
	if time.Now().After(session.ExpiresAt) {
		delete(s.sessions, id)
		return weatherSession{}, errSessionExpired
	}
	if session.OwnerID != "" && requesterID != session.OwnerID {
		return weatherSession{}, errSessionNotOwner
	}

	fn(&session.Selection)
	session.ExpiresAt = time.Now().Add(s.ttl)
	return *session, nil
}

// Sweep removes expired sessions and returns how many were dropped.
func (s *SessionStore) Sweep() int {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		s.logger.Debug("Swept expired weather sessions",
			zap.Int("removed", removed),
			zap.Int("remaining", len(s.sessions)))
	}
	return removed
}

// Len reports the number of live sessions, expired or not.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
