// Package holidays provides the reference holiday tables used when planning time off
package holidays

import (
	"sort"
	"time"
)

// DateLayout is the yyyy-MM-dd form every holiday date is stored and exchanged in
const DateLayout = "2006-01-02"

// HolidayType classifies how widely a holiday is observed
type HolidayType string

const (
	Public     HolidayType = "public"
	Bank       HolidayType = "bank"
	Optional   HolidayType = "optional"
	Observance HolidayType = "observance"
)

// Holiday is a single day holiday as returned to planners.
// Start and End are both midnight UTC of Date, holidays never span more than one day.
type Holiday struct {
	Date  string      `json:"date"`
	Name  string      `json:"name"`
	Type  HolidayType `json:"type"`
	Start time.Time   `json:"start"`
	End   time.Time   `json:"end"`
	Rule  string      `json:"rule"`
}

// State is a subdivision of a country that may observe its own holidays
type State struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Country is a country holidays can be looked up for
type Country struct {
	CountryCode string `json:"countryCode"`
	Name        string `json:"name"`
}

// Region identifies the country and optional state holidays are requested for
type Region struct {
	Country string `json:"country"`
	State   string `json:"state,omitempty"`
}

// indianHoliday is one row of the static India table.
// A nil states slice marks a national holiday.
type indianHoliday struct {
	date   string
	name   string
	kind   HolidayType
	states []string
}

// indianStates maps state and union territory codes to display names
var indianStates = map[string]string{
	"AN": "Andaman and Nicobar Islands",
	"AP": "Andhra Pradesh",
	"AR": "Arunachal Pradesh",
	"AS": "Assam",
	"BR": "Bihar",
	"CH": "Chandigarh",
	"CG": "Chhattisgarh",
	"DH": "Dadra and Nagar Haveli and Daman and Diu",
	"DL": "Delhi",
	"GA": "Goa",
	"GJ": "Gujarat",
	"HR": "Haryana",
	"HP": "Himachal Pradesh",
	"JK": "Jammu and Kashmir",
	"JH": "Jharkhand",
	"KA": "Karnataka",
	"KL": "Kerala",
	"LA": "Ladakh",
	"LD": "Lakshadweep",
	"MP": "Madhya Pradesh",
	"MH": "Maharashtra",
	"MN": "Manipur",
	"ML": "Meghalaya",
	"MZ": "Mizoram",
	"NL": "Nagaland",
	"OR": "Odisha",
	"PY": "Puducherry",
	"PB": "Punjab",
	"RJ": "Rajasthan",
	"SK": "Sikkim",
	"TN": "Tamil Nadu",
	"TG": "Telangana",
	"TR": "Tripura",
	"UP": "Uttar Pradesh",
	"UK": "Uttarakhand",
	"WB": "West Bengal",
}

// GetIndianHolidays returns the holidays for year observed in state.
// National holidays are always included. State holidays are included when they list state, or when state is
// empty, in which case every holiday in the table is returned.
// Years missing from the table produce an empty slice.
func GetIndianHolidays(year int, state string) []Holiday {
	results := make([]Holiday, 0)
	for _, h := range indianHolidaysData[year] {
		if !h.observedIn(state) {
			continue
		}
		day, err := time.Parse(DateLayout, h.date)
		if err != nil {
			continue
		}
		results = append(results, Holiday{
			Date:  h.date,
			Name:  h.name,
			Type:  h.kind,
			Start: day,
			End:   day,
		})
	}
	return results
}

// observedIn reports whether the holiday applies to state under the table's filtering rules
func (h indianHoliday) observedIn(state string) bool {
	if h.states == nil || state == "" {
		return true
	}
	for _, s := range h.states {
		if s == state {
			return true
		}
	}
	return false
}

// GetIndianStates returns every Indian state and union territory ordered by code
func GetIndianStates() []State {
	results := make([]State, 0, len(indianStates))
	for code, name := range indianStates {
		results = append(results, State{Code: code, Name: name})
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Code < results[j].Code
	})
	return results
}

// IndianStateName returns the display name for code, and false if code is not a known state
func IndianStateName(code string) (string, bool) {
	name, present := indianStates[code]
	return name, present
}
