package optimizer

import (
	"github.com/OpenTransitTools/ptoplanner/business/data/preferences"
	logger "log"
	"time"
)

// PreferenceStore saves and restores the per year settings of a plan.
// Implementations handle their own failures, a plan always keeps its in memory values.
type PreferenceStore interface {
	StoreDays(days string, year int)
	StoreStrategy(strategy preferences.Strategy, year int)
	StoreSaturdayWorkingDay(saturdayWorking bool, year int)
	GetStoredDays(year int) string
	GetStoredStrategy(year int) preferences.Strategy
	GetStoredSaturdayWorkingDay(year int) bool
}

// Reducer applies Actions to States, writing settings through to a PreferenceStore
type Reducer struct {
	log   *logger.Logger
	prefs PreferenceStore
}

// MakeReducer builds a Reducer that saves settings to prefs
func MakeReducer(log *logger.Logger, prefs PreferenceStore) *Reducer {
	return &Reducer{
		log:   log,
		prefs: prefs,
	}
}

// Reduce returns the State that results from applying action to state.
// state is never modified. Invalid input is reported in the Errors of the returned State.
func (r *Reducer) Reduce(state State, action Action) State {
	next := state.clone()
	switch a := action.(type) {
	case SetDays:
		if !validDays(a.Days) {
			next.Errors.Days = DaysErrorMessage
			return next
		}
		r.prefs.StoreDays(a.Days, next.SelectedYear)
		next.Days = a.Days
		next.Errors.Days = ""
	case LoadDays:
		next.Days = a.Days
		next.Errors.Days = ""
	case SetStrategy:
		r.prefs.StoreStrategy(a.Strategy, next.SelectedYear)
		next.Strategy = a.Strategy
	case LoadStrategy:
		next.Strategy = a.Strategy
	case SetSaturdayWorkingDay:
		r.prefs.StoreSaturdayWorkingDay(a.Working, next.SelectedYear)
		next.SaturdayWorkingDay = a.Working
	case LoadSaturdayWorkingDay:
		next.SaturdayWorkingDay = a.Working
	case SetCompanyDays:
		next.CompanyDaysOff = append(make([]CompanyDayOff, 0, len(a.Days)), a.Days...)
	case AddCompanyDay:
		if errs := ValidateCompanyDay(a.Day); errs != nil {
			next.Errors.CompanyDay = errs
			return next
		}
		next.CompanyDaysOff = upsertCompanyDay(next.CompanyDaysOff, a.Day)
		next.Errors.CompanyDay = nil
	case RemoveCompanyDay:
		next.CompanyDaysOff = removeCompanyDays(next.CompanyDaysOff, a.Date)
	case SetError:
		r.setError(&next.Errors, a.Field, a.Message)
	case ClearErrors:
		next.Errors = Errors{}
	case AddHoliday:
		next.entries = upsertHoliday(next.entries, a.Holiday)
		next.Errors.Holiday = nil
	case RemoveHoliday:
		next.entries = removeEntries(next.entries, a.Date)
	case ToggleDate:
		next.entries = toggleDate(next.entries, a.Date)
	case ClearHolidays:
		next.entries = make([]holidayEntry, 0)
	case ClearCompanyDays:
		next.CompanyDaysOff = make([]CompanyDayOff, 0)
	case SetDetectedHolidays:
		next.entries = detectedEntries(a.Holidays)
		next.Errors.Holiday = nil
	case SetHolidays:
		next.entries = listedEntries(next.entries, a.Holidays)
	case SetSelectedYear:
		next = initialStateForYear(a.Year)
		next.Days = r.prefs.GetStoredDays(a.Year)
		next.Strategy = r.prefs.GetStoredStrategy(a.Year)
		next.SaturdayWorkingDay = r.prefs.GetStoredSaturdayWorkingDay(a.Year)
	default:
		r.log.Printf("ignoring unsupported action %T", action)
	}
	return next
}

// setError records message against a field path such as "days" or "companyDay.name"
func (r *Reducer) setError(errs *Errors, field string, message string) {
	switch field {
	case "days":
		errs.Days = message
	case "companyDay.name", "companyDay.date":
		if errs.CompanyDay == nil {
			errs.CompanyDay = &FieldErrors{}
		}
		setFieldError(errs.CompanyDay, field[len("companyDay."):], message)
	case "holiday.name", "holiday.date":
		if errs.Holiday == nil {
			errs.Holiday = &FieldErrors{}
		}
		setFieldError(errs.Holiday, field[len("holiday."):], message)
	default:
		r.log.Printf("ignoring error for unknown field %q", field)
	}
}

func setFieldError(errs *FieldErrors, name string, message string) {
	if name == "name" {
		errs.Name = message
	} else {
		errs.Date = message
	}
}

func upsertCompanyDay(days []CompanyDayOff, day CompanyDayOff) []CompanyDayOff {
	for i := range days {
		if days[i].Date == day.Date {
			days[i] = day
			return days
		}
	}
	return append(days, day)
}

func removeCompanyDays(days []CompanyDayOff, date string) []CompanyDayOff {
	results := make([]CompanyDayOff, 0, len(days))
	for _, day := range days {
		if day.Date != date {
			results = append(results, day)
		}
	}
	return results
}

// upsertHoliday replaces the holiday on the same date in place, keeping how it entered the plan, or appends a listed holiday.
// A listed holiday hidden by a selection is forgotten, so removing the selection removes the day.
func upsertHoliday(entries []holidayEntry, holiday Holiday) []holidayEntry {
	holiday = cloneHoliday(holiday)
	for i := range entries {
		if entries[i].holiday.Date == holiday.Date {
			entries[i].holiday = holiday
			entries[i].replaced = nil
			return entries
		}
	}
	return append(entries, holidayEntry{holiday: holiday, source: listedSource})
}

func removeEntries(entries []holidayEntry, date string) []holidayEntry {
	results := make([]holidayEntry, 0, len(entries))
	for _, e := range entries {
		if e.holiday.Date != date {
			results = append(results, e)
		}
	}
	return results
}

// toggleDate removes the selection for the day of at, or selects it under its display name.
// A listed holiday on that day is replaced while selected and restored when the selection is removed.
func toggleDate(entries []holidayEntry, at time.Time) []holidayEntry {
	date := at.Format(DateLayout)
	manual := Holiday{Date: date, Name: at.Format(displayLayout)}
	for i, e := range entries {
		if e.holiday.Date != date {
			continue
		}
		if !e.source.selected() {
			listed := e.holiday
			entries[i] = holidayEntry{holiday: manual, source: manualSource, replaced: &listed}
			return entries
		}
		if e.replaced != nil {
			entries[i] = holidayEntry{holiday: *e.replaced, source: listedSource}
			return entries
		}
		return removeEntries(entries, date)
	}
	return append(entries, holidayEntry{holiday: manual, source: manualSource})
}

// detectedEntries builds selected entries from a holiday lookup.
// Holidays sharing a date collapse into the first, the other names becoming its alternate names.
func detectedEntries(list []Holiday) []holidayEntry {
	entries := make([]holidayEntry, 0, len(list))
	for _, h := range list {
		if i := indexOfDate(entries, h.Date); i >= 0 {
			entries[i].holiday = withAlternateName(entries[i].holiday, h.Name)
			continue
		}
		entries = append(entries, holidayEntry{
			holiday: Holiday{Date: h.Date, Name: h.Name},
			source:  detectedSource,
		})
	}
	return entries
}

// listedEntries replaces the holiday list with list. Days already in the plan keep how they entered it,
// so a selected day stays selected while it is still listed.
func listedEntries(current []holidayEntry, list []Holiday) []holidayEntry {
	entries := make([]holidayEntry, 0, len(list))
	for _, h := range list {
		if i := indexOfDate(entries, h.Date); i >= 0 {
			entries[i].holiday = withAlternateName(entries[i].holiday, h.Name)
			continue
		}
		entry := holidayEntry{holiday: cloneHoliday(h), source: listedSource}
		if i := indexOfDate(current, h.Date); i >= 0 {
			entry.source = current[i].source
		}
		entries = append(entries, entry)
	}
	return entries
}

func indexOfDate(entries []holidayEntry, date string) int {
	for i, e := range entries {
		if e.holiday.Date == date {
			return i
		}
	}
	return -1
}

func withAlternateName(h Holiday, name string) Holiday {
	if name == h.Name {
		return h
	}
	for _, alternate := range h.AlternateNames {
		if alternate == name {
			return h
		}
	}
	h.AlternateNames = append(h.AlternateNames, name)
	return h
}
