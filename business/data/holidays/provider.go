package holidays

import (
	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
	"sort"
	"strings"
	"time"
)

const (
	CountryIndia        = "IN"
	CountryUnitedStates = "US"
)

// Provider answers holiday lookups by country. India is served from the static table, the United States from
// the federal holidays known to rickar/cal. Other countries yield empty results.
type Provider struct {
	federalHolidays []*cal.Holiday
}

// MakeProvider builds a Provider with the supported country calendars
func MakeProvider() *Provider {
	return &Provider{
		federalHolidays: []*cal.Holiday{
			us.NewYear,
			us.MlkDay,
			us.PresidentsDay,
			us.MemorialDay,
			us.Juneteenth,
			us.IndependenceDay,
			us.LaborDay,
			us.ColumbusDay,
			us.VeteransDay,
			us.ThanksgivingDay,
			us.ChristmasDay,
		},
	}
}

// Countries returns the countries holidays are available for, ordered by name
func (p *Provider) Countries() []Country {
	countries := []Country{
		{CountryCode: CountryIndia, Name: "India"},
		{CountryCode: CountryUnitedStates, Name: "United States"},
	}
	sort.Slice(countries, func(i, j int) bool {
		return countries[i].Name < countries[j].Name
	})
	return countries
}

// States returns the subdivisions known for country
func (p *Provider) States(country string) []State {
	if normalizeCountry(country) == CountryIndia {
		return GetIndianStates()
	}
	return make([]State, 0)
}

// Regions returns sub-state regions. No supported country is divided below state level.
func (p *Provider) Regions(country string, state string) []State {
	return make([]State, 0)
}

// PublicHolidays returns the holidays in year a planner should treat as days off in region
func (p *Provider) PublicHolidays(year int, region Region) []Holiday {
	switch normalizeCountry(region.Country) {
	case CountryIndia:
		return GetIndianHolidays(year, region.State)
	case CountryUnitedStates:
		return p.calendarHolidays(year, true)
	}
	return make([]Holiday, 0)
}

// AllHolidays returns every holiday in year for region, including bank holidays and observances
func (p *Provider) AllHolidays(year int, region Region) []Holiday {
	switch normalizeCountry(region.Country) {
	case CountryIndia:
		return GetIndianHolidays(year, region.State)
	case CountryUnitedStates:
		return p.calendarHolidays(year, false)
	}
	return make([]Holiday, 0)
}

// CalendarHolidays returns the rickar/cal holidays backing country, nil when the country is table driven
func (p *Provider) CalendarHolidays(country string) []*cal.Holiday {
	if normalizeCountry(country) == CountryUnitedStates {
		return p.federalHolidays
	}
	return nil
}

// calendarHolidays calculates the observed dates of the federal holidays in year.
// holidays that did not exist in year (Juneteenth before 2021) are skipped
func (p *Provider) calendarHolidays(year int, publicOnly bool) []Holiday {
	results := make([]Holiday, 0, len(p.federalHolidays))
	for _, h := range p.federalHolidays {
		if publicOnly && h.Type != cal.ObservancePublic {
			continue
		}
		_, observed := h.Calc(year)
		if observed.IsZero() {
			continue
		}
		// calendar dates are calculated in the calendar's location, keep the civil date
		date := observed.Format(DateLayout)
		day, err := time.Parse(DateLayout, date)
		if err != nil {
			continue
		}
		results = append(results, Holiday{
			Date:  date,
			Name:  h.Name,
			Type:  observanceType(h.Type),
			Start: day,
			End:   day,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Date < results[j].Date
	})
	return results
}

func observanceType(t cal.ObservanceType) HolidayType {
	switch t {
	case cal.ObservancePublic:
		return Public
	case cal.ObservanceBank:
		return Bank
	}
	return Observance
}

func normalizeCountry(country string) string {
	return strings.ToUpper(strings.TrimSpace(country))
}
