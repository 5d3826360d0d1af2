package planner

import (
	"github.com/OpenTransitTools/ptoplanner/business/optimizer"
	"github.com/google/uuid"
	"sync"
	"time"
)

// sessionContainer holds every open planning session by id and provides thread safe access to them
type sessionContainer struct {
	mu       sync.Mutex
	reducer  *optimizer.Reducer
	clock    func() time.Time
	sessions map[string]*optimizer.Session
}

// makeSessionContainer sessionContainer factory
func makeSessionContainer(reducer *optimizer.Reducer, clock func() time.Time) *sessionContainer {
	return &sessionContainer{
		reducer:  reducer,
		clock:    clock,
		sessions: make(map[string]*optimizer.Session),
	}
}

// createSession opens a new session for the current year, with stored preferences loaded
func (c *sessionContainer) createSession() (string, *optimizer.Session) {
	id := uuid.NewString()
	session := optimizer.MakeSession(c.reducer, c.clock)
	session.Mount()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[id] = session
	return id, session
}

// getSession returns the session for id, false if there is none or it has expired
func (c *sessionContainer) getSession(id string) (*optimizer.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	session, present := c.sessions[id]
	return session, present
}

// expireSessions removes all sessions idle for "expireAfterSeconds" or longer.
// returns the number of sessions removed and how many remain.
func (c *sessionContainer) expireSessions(at time.Time, expireAfterSeconds int) (removed int, currentSize int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expireAfter := time.Duration(expireAfterSeconds) * time.Second
	previousSize := len(c.sessions)
	for id, session := range c.sessions {
		if at.Sub(session.LastActivity()) >= expireAfter {
			delete(c.sessions, id)
		}
	}
	currentSize = len(c.sessions)
	return previousSize - currentSize, currentSize
}
