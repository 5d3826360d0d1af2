package optimizer

import (
	"github.com/OpenTransitTools/ptoplanner/business/data/preferences"
	"sync"
	"time"
)

// Session holds the State of one planning session.
// Dispatch calls are applied one at a time, in the order they acquire the session.
type Session struct {
	mu           sync.Mutex
	reducer      *Reducer
	clock        func() time.Time
	state        State
	lastActivity time.Time
}

// MakeSession starts a session with an empty plan for the current year of clock
func MakeSession(reducer *Reducer, clock func() time.Time) *Session {
	now := clock()
	return &Session{
		reducer:      reducer,
		clock:        clock,
		state:        InitialState(now),
		lastActivity: now,
	}
}

// Mount restores the stored settings for the session's year without saving them again.
// Only settings that differ from the defaults are applied.
func (s *Session) Mount() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	year := s.state.SelectedYear
	prefs := s.reducer.prefs
	if days := prefs.GetStoredDays(year); days != "" {
		s.apply(LoadDays{Days: days})
	}
	if strategy := prefs.GetStoredStrategy(year); strategy != preferences.Balanced {
		s.apply(LoadStrategy{Strategy: strategy})
	}
	if prefs.GetStoredSaturdayWorkingDay(year) {
		s.apply(LoadSaturdayWorkingDay{Working: true})
	}
	return s.state.clone()
}

// Dispatch applies action and returns the resulting State
func (s *Session) Dispatch(action Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(action)
	return s.state.clone()
}

// State returns a copy of the current State
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// LastActivity returns when the session was created or last changed
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

func (s *Session) apply(action Action) {
	s.state = s.reducer.Reduce(s.state, action)
	s.lastActivity = s.clock()
}
