// Package optimizer holds the state of one PTO planning session and the transitions that change it
package optimizer

import (
	"encoding/json"
	"github.com/OpenTransitTools/ptoplanner/business/data/preferences"
	"time"
)

// DateLayout is the yyyy-MM-dd form dates are keyed by
const DateLayout = "2006-01-02"

// displayLayout names manually selected days, e.g. "April 6, 2025"
const displayLayout = "January 2, 2006"

// Holiday is a day off shared by everyone in a region, or a day the planner marked by hand
type Holiday struct {
	Date           string   `json:"date"`
	Name           string   `json:"name"`
	AlternateNames []string `json:"alternateNames,omitempty"`
}

// CompanyDayOff is an organization specific non working day
type CompanyDayOff struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// FieldErrors holds validation messages for a name/date form
type FieldErrors struct {
	Name string `json:"name,omitempty"`
	Date string `json:"date,omitempty"`
}

func (f *FieldErrors) empty() bool {
	return f == nil || (f.Name == "" && f.Date == "")
}

// Errors holds the per field validation messages of a State
type Errors struct {
	Days       string       `json:"days,omitempty"`
	CompanyDay *FieldErrors `json:"companyDay,omitempty"`
	Holiday    *FieldErrors `json:"holiday,omitempty"`
}

// Empty returns true when no field has a validation message
func (e Errors) Empty() bool {
	return e.Days == "" && e.CompanyDay.empty() && e.Holiday.empty()
}

func (e Errors) clone() Errors {
	c := Errors{Days: e.Days}
	if e.CompanyDay != nil {
		companyDay := *e.CompanyDay
		c.CompanyDay = &companyDay
	}
	if e.Holiday != nil {
		holiday := *e.Holiday
		c.Holiday = &holiday
	}
	return c
}

// holidaySource records how a holiday entered the plan
type holidaySource int

const (
	// listedSource holidays were added or set directly, they are not part of the date selection
	listedSource holidaySource = iota
	// detectedSource holidays came from a regional holiday lookup
	detectedSource
	// manualSource holidays were toggled on by the planner
	manualSource
)

func (s holidaySource) selected() bool {
	return s == detectedSource || s == manualSource
}

// holidayEntry is one day in the canonical holiday list.
// Both the Holidays and SelectedDates views are derived from the entries.
// replaced holds the listed holiday a manual toggle took the place of, restored when the toggle is undone.
type holidayEntry struct {
	holiday  Holiday
	source   holidaySource
	replaced *Holiday
}

func (e holidayEntry) clone() holidayEntry {
	c := holidayEntry{holiday: cloneHoliday(e.holiday), source: e.source}
	if e.replaced != nil {
		replaced := cloneHoliday(*e.replaced)
		c.replaced = &replaced
	}
	return c
}

// State is the full planning session for one year.
// Days is kept as raw text so partial input can be held while it is being typed, see ParsedDays.
// A State is a value: transitions return a new State and never modify the slices of the one they are given.
type State struct {
	Days               string
	Strategy           preferences.Strategy
	CompanyDaysOff     []CompanyDayOff
	SelectedYear       int
	SaturdayWorkingDay bool
	Errors             Errors
	entries            []holidayEntry
}

// InitialState returns an empty plan for the calendar year of now
func InitialState(now time.Time) State {
	return initialStateForYear(now.Year())
}

func initialStateForYear(year int) State {
	return State{
		Days:           "",
		Strategy:       preferences.Balanced,
		CompanyDaysOff: make([]CompanyDayOff, 0),
		SelectedYear:   year,
		Errors:         Errors{},
		entries:        make([]holidayEntry, 0),
	}
}

// Holidays returns every holiday in the plan in the order they were added
func (s State) Holidays() []Holiday {
	results := make([]Holiday, len(s.entries))
	for i, e := range s.entries {
		results[i] = cloneHoliday(e.holiday)
	}
	return results
}

// SelectedDates returns the dates that were detected or toggled on, in the order they were added
func (s State) SelectedDates() []time.Time {
	results := make([]time.Time, 0, len(s.entries))
	for _, e := range s.entries {
		if !e.source.selected() {
			continue
		}
		if day, err := time.Parse(DateLayout, e.holiday.Date); err == nil {
			results = append(results, day)
		}
	}
	return results
}

// ParsedDays returns the PTO budget as a number, false while the input is empty
func (s State) ParsedDays() (int, bool) {
	if s.Days == "" {
		return 0, false
	}
	return parseLeadingInt(s.Days)
}

// clone returns a State that shares no slices with s
func (s State) clone() State {
	c := s
	c.CompanyDaysOff = append(make([]CompanyDayOff, 0, len(s.CompanyDaysOff)), s.CompanyDaysOff...)
	c.entries = make([]holidayEntry, len(s.entries))
	for i, e := range s.entries {
		c.entries[i] = e.clone()
	}
	c.Errors = s.Errors.clone()
	return c
}

func cloneHoliday(h Holiday) Holiday {
	if h.AlternateNames != nil {
		h.AlternateNames = append([]string(nil), h.AlternateNames...)
	}
	return h
}

// jsonState is the wire form of State
type jsonState struct {
	Days               string               `json:"days"`
	Strategy           preferences.Strategy `json:"strategy"`
	CompanyDaysOff     []CompanyDayOff      `json:"companyDaysOff"`
	Holidays           []Holiday            `json:"holidays"`
	SelectedDates      []string             `json:"selectedDates"`
	SelectedYear       int                  `json:"selectedYear"`
	SaturdayWorkingDay bool                 `json:"isSaturdayWorkingDay"`
	Errors             Errors               `json:"errors"`
}

// MarshalJSON writes the State with its derived holiday views, selected dates in yyyy-MM-dd form
func (s State) MarshalJSON() ([]byte, error) {
	selectedDates := make([]string, 0)
	for _, d := range s.SelectedDates() {
		selectedDates = append(selectedDates, d.Format(DateLayout))
	}
	companyDays := s.CompanyDaysOff
	if companyDays == nil {
		companyDays = make([]CompanyDayOff, 0)
	}
	return json.Marshal(jsonState{
		Days:               s.Days,
		Strategy:           s.Strategy,
		CompanyDaysOff:     companyDays,
		Holidays:           s.Holidays(),
		SelectedDates:      selectedDates,
		SelectedYear:       s.SelectedYear,
		SaturdayWorkingDay: s.SaturdayWorkingDay,
		Errors:             s.Errors,
	})
}
