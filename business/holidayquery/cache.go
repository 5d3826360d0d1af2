// Package holidayquery serves holiday lookups through a staleness cache and feeds detected holidays into planning sessions
package holidayquery

import (
	"github.com/OpenTransitTools/ptoplanner/business/data/holidays"
	logger "log"
	"strings"
	"sync"
	"time"
)

// HolidayStaleness is how long a holiday list is served before it is looked up again
const HolidayStaleness = 24 * time.Hour

// Source looks up reference holiday data, implemented by holidays.Provider
type Source interface {
	Countries() []holidays.Country
	States(country string) []holidays.State
	Regions(country string, state string) []holidays.State
	PublicHolidays(year int, region holidays.Region) []holidays.Holiday
	AllHolidays(year int, region holidays.Region) []holidays.Holiday
}

type queryKind string

const (
	countriesQuery      queryKind = "countries"
	statesQuery         queryKind = "states"
	regionsQuery        queryKind = "regions"
	publicHolidaysQuery queryKind = "holidays"
	allHolidaysQuery    queryKind = "allHolidays"
)

// cacheKey identifies one lookup. Fields that do not apply to a kind are left empty.
type cacheKey struct {
	kind    queryKind
	country string
	state   string
	year    int
}

type cacheEntry struct {
	value    interface{}
	loadedAt time.Time
}

// Cache remembers Source results. Countries, states and regions are kept until invalidated,
// holiday lists are looked up again once they are older than HolidayStaleness.
type Cache struct {
	log              *logger.Logger
	source           Source
	clock            func() time.Time
	holidayStaleness time.Duration
	mu               sync.Mutex
	entries          map[cacheKey]cacheEntry
}

// MakeCache builds a Cache in front of source
func MakeCache(log *logger.Logger, source Source, clock func() time.Time) *Cache {
	return &Cache{
		log:              log,
		source:           source,
		clock:            clock,
		holidayStaleness: HolidayStaleness,
		entries:          make(map[cacheKey]cacheEntry),
	}
}

// Countries returns the supported countries
func (c *Cache) Countries() []holidays.Country {
	value := c.get(cacheKey{kind: countriesQuery}, func() interface{} {
		return c.source.Countries()
	})
	return append([]holidays.Country(nil), value.([]holidays.Country)...)
}

// States returns the subdivisions of country
func (c *Cache) States(country string) []holidays.State {
	key := cacheKey{kind: statesQuery, country: normalize(country)}
	value := c.get(key, func() interface{} {
		return c.source.States(key.country)
	})
	return append([]holidays.State(nil), value.([]holidays.State)...)
}

// Regions returns the regions of a country subdivision
func (c *Cache) Regions(country string, state string) []holidays.State {
	key := cacheKey{kind: regionsQuery, country: normalize(country), state: normalize(state)}
	value := c.get(key, func() interface{} {
		return c.source.Regions(key.country, key.state)
	})
	return append([]holidays.State(nil), value.([]holidays.State)...)
}

// PublicHolidays returns the public holidays of region in year
func (c *Cache) PublicHolidays(year int, region holidays.Region) []holidays.Holiday {
	return c.holidays(publicHolidaysQuery, year, region, c.source.PublicHolidays)
}

// AllHolidays returns every holiday of region in year
func (c *Cache) AllHolidays(year int, region holidays.Region) []holidays.Holiday {
	return c.holidays(allHolidaysQuery, year, region, c.source.AllHolidays)
}

func (c *Cache) holidays(kind queryKind,
	year int,
	region holidays.Region,
	lookup func(int, holidays.Region) []holidays.Holiday) []holidays.Holiday {

	key := cacheKey{kind: kind, country: normalize(region.Country), state: normalize(region.State), year: year}
	value := c.get(key, func() interface{} {
		return lookup(year, holidays.Region{Country: key.country, State: key.state})
	})
	return append([]holidays.Holiday(nil), value.([]holidays.Holiday)...)
}

// Invalidate drops cached holiday lists for country in year so they are looked up again.
// An empty country matches every country and a year of 0 matches every year.
// Returns the number of entries dropped.
func (c *Cache) Invalidate(country string, year int) int {
	country = normalize(country)
	c.mu.Lock()
	defer c.mu.Unlock()
	dropped := 0
	for key := range c.entries {
		if key.kind != publicHolidaysQuery && key.kind != allHolidaysQuery {
			continue
		}
		if country != "" && key.country != country {
			continue
		}
		if year != 0 && key.year != year {
			continue
		}
		delete(c.entries, key)
		dropped++
	}
	c.log.Printf("invalidated %d cached holiday lists for country %q year %d\n", dropped, country, year)
	return dropped
}

// get returns the cached value for key, calling load when it is missing or stale
func (c *Cache) get(key cacheKey, load func() interface{}) interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.clock()
	if entry, present := c.entries[key]; present && !c.stale(key, entry, now) {
		return entry.value
	}
	value := load()
	c.entries[key] = cacheEntry{value: value, loadedAt: now}
	return value
}

func (c *Cache) stale(key cacheKey, entry cacheEntry, now time.Time) bool {
	if key.kind != publicHolidaysQuery && key.kind != allHolidaysQuery {
		return false
	}
	return now.Sub(entry.loadedAt) >= c.holidayStaleness
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
