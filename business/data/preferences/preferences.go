// Package preferences persists coarse planner settings, scoped to a single planning year
package preferences

import (
	"context"
	"encoding/json"
	"fmt"
	logger "log"
	"sort"
	"strconv"
	"strings"
	"time"
)

const storageKeyBase = "preferences"

// Strategy is the optimization objective used to distribute PTO days across a year
type Strategy string

const (
	Balanced          Strategy = "balanced"
	LongWeekends      Strategy = "longWeekends"
	MiniBreaks        Strategy = "miniBreaks"
	WeekLongBreaks    Strategy = "weekLongBreaks"
	ExtendedVacations Strategy = "extendedVacations"
)

// Strategies lists every known Strategy
var Strategies = []Strategy{Balanced, LongWeekends, MiniBreaks, WeekLongBreaks, ExtendedVacations}

// ParseStrategy returns the Strategy named s, or false if s is not a known strategy
func ParseStrategy(s string) (Strategy, bool) {
	for _, strategy := range Strategies {
		if string(strategy) == s {
			return strategy, true
		}
	}
	return "", false
}

// Preferences is the stored record for one year. Nil fields were never written.
type Preferences struct {
	Days               *string   `json:"days,omitempty"`
	Strategy           *Strategy `json:"strategy,omitempty"`
	SaturdayWorkingDay *bool     `json:"isSaturdayWorkingDay,omitempty"`
}

// merge returns p overlaid with the non nil fields of update
func (p Preferences) merge(update Preferences) Preferences {
	if update.Days != nil {
		p.Days = update.Days
	}
	if update.Strategy != nil {
		p.Strategy = update.Strategy
	}
	if update.SaturdayWorkingDay != nil {
		p.SaturdayWorkingDay = update.SaturdayWorkingDay
	}
	return p
}

// StorageKey returns the key the preferences for year are stored under
func StorageKey(year int) string {
	return fmt.Sprintf("%s_%d", storageKeyBase, year)
}

// yearFromStorageKey reverses StorageKey
func yearFromStorageKey(key string) (int, bool) {
	prefix := storageKeyBase + "_"
	if !strings.HasPrefix(key, prefix) {
		return 0, false
	}
	year, err := strconv.Atoi(key[len(prefix):])
	if err != nil {
		return 0, false
	}
	return year, true
}

// Store reads and writes Preferences through a Repository.
// Failures never reach the caller: reads degrade to empty Preferences and writes are logged and dropped,
// a planning session always keeps its in memory values.
type Store struct {
	log       *logger.Logger
	repo      Repository
	ioTimeout time.Duration
}

// MakeStore builds a Store over repo
func MakeStore(log *logger.Logger, repo Repository) *Store {
	return &Store{
		log:       log,
		repo:      repo,
		ioTimeout: 5 * time.Second,
	}
}

// GetStoredPreferences returns the preferences saved for year, empty if none are stored or they cannot be read
func (s *Store) GetStoredPreferences(year int) Preferences {
	ctx, cancel := context.WithTimeout(context.Background(), s.ioTimeout)
	defer cancel()

	key := StorageKey(year)
	data, found, err := s.repo.Get(ctx, key)
	if err != nil {
		s.log.Printf("unable to read preferences %s, error: %s", key, err)
		return Preferences{}
	}
	if !found {
		return Preferences{}
	}
	var prefs Preferences
	if err = json.Unmarshal(data, &prefs); err != nil {
		s.log.Printf("discarding unreadable preferences %s, error: %s", key, err)
		return Preferences{}
	}
	return prefs
}

// StorePreferences merges update into the preferences stored for year
func (s *Store) StorePreferences(update Preferences, year int) {
	merged := s.GetStoredPreferences(year).merge(update)
	data, err := json.Marshal(merged)
	if err != nil {
		s.log.Printf("Failed to store preferences: %s", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.ioTimeout)
	defer cancel()
	if err = s.repo.Put(ctx, StorageKey(year), data); err != nil {
		s.log.Printf("Failed to store preferences: %s", err)
	}
}

// StoreDays saves the raw PTO days input for year
func (s *Store) StoreDays(days string, year int) {
	s.StorePreferences(Preferences{Days: &days}, year)
}

// StoreStrategy saves the optimization strategy for year
func (s *Store) StoreStrategy(strategy Strategy, year int) {
	s.StorePreferences(Preferences{Strategy: &strategy}, year)
}

// StoreSaturdayWorkingDay saves whether Saturday is a working day in year
func (s *Store) StoreSaturdayWorkingDay(saturdayWorking bool, year int) {
	s.StorePreferences(Preferences{SaturdayWorkingDay: &saturdayWorking}, year)
}

// GetStoredDays returns the saved PTO days input for year, "" when unset
func (s *Store) GetStoredDays(year int) string {
	prefs := s.GetStoredPreferences(year)
	if prefs.Days == nil {
		return ""
	}
	return *prefs.Days
}

// GetStoredStrategy returns the saved strategy for year, Balanced when unset or unknown
func (s *Store) GetStoredStrategy(year int) Strategy {
	prefs := s.GetStoredPreferences(year)
	if prefs.Strategy == nil {
		return Balanced
	}
	if strategy, ok := ParseStrategy(string(*prefs.Strategy)); ok {
		return strategy
	}
	return Balanced
}

// GetStoredSaturdayWorkingDay returns whether Saturday was saved as a working day for year, false when unset
func (s *Store) GetStoredSaturdayWorkingDay(year int) bool {
	prefs := s.GetStoredPreferences(year)
	if prefs.SaturdayWorkingDay == nil {
		return false
	}
	return *prefs.SaturdayWorkingDay
}

// StoredYears returns the years that have preferences saved, in ascending order
func (s *Store) StoredYears() []int {
	ctx, cancel := context.WithTimeout(context.Background(), s.ioTimeout)
	defer cancel()

	keys, err := s.repo.Keys(ctx)
	if err != nil {
		s.log.Printf("unable to list stored preferences, error: %s", err)
		return make([]int, 0)
	}
	years := make([]int, 0, len(keys))
	for _, key := range keys {
		if year, ok := yearFromStorageKey(key); ok {
			years = append(years, year)
		}
	}
	sort.Ints(years)
	return years
}
