package optimizer

import (
	"github.com/OpenTransitTools/ptoplanner/business/data/preferences"
	"time"
)

// ActionType names an Action on the wire
type ActionType string

const (
	SetDaysType                ActionType = "SET_DAYS"
	LoadDaysType               ActionType = "LOAD_DAYS"
	SetStrategyType            ActionType = "SET_STRATEGY"
	LoadStrategyType           ActionType = "LOAD_STRATEGY"
	SetSaturdayWorkingDayType  ActionType = "SET_SATURDAY_WORKING_DAY"
	LoadSaturdayWorkingDayType ActionType = "LOAD_SATURDAY_WORKING_DAY"
	SetCompanyDaysType         ActionType = "SET_COMPANY_DAYS"
	AddCompanyDayType          ActionType = "ADD_COMPANY_DAY"
	RemoveCompanyDayType       ActionType = "REMOVE_COMPANY_DAY"
	SetErrorType               ActionType = "SET_ERROR"
	ClearErrorsType            ActionType = "CLEAR_ERRORS"
	AddHolidayType             ActionType = "ADD_HOLIDAY"
	RemoveHolidayType          ActionType = "REMOVE_HOLIDAY"
	ToggleDateType             ActionType = "TOGGLE_DATE"
	ClearHolidaysType          ActionType = "CLEAR_HOLIDAYS"
	ClearCompanyDaysType       ActionType = "CLEAR_COMPANY_DAYS"
	SetDetectedHolidaysType    ActionType = "SET_DETECTED_HOLIDAYS"
	SetHolidaysType            ActionType = "SET_HOLIDAYS"
	SetSelectedYearType        ActionType = "SET_SELECTED_YEAR"
)

// Action is a request to change a State, applied by Reducer.Reduce.
// The set of actions is closed, only the types in this package implement it.
type Action interface {
	Type() ActionType
	isAction()
}

// SetDays replaces the PTO budget after validating it and saves it for the selected year
type SetDays struct {
	Days string
}

// LoadDays replaces the PTO budget without saving it, used when restoring stored preferences
type LoadDays struct {
	Days string
}

// SetStrategy replaces the strategy and saves it for the selected year
type SetStrategy struct {
	Strategy preferences.Strategy
}

// LoadStrategy replaces the strategy without saving it
type LoadStrategy struct {
	Strategy preferences.Strategy
}

// SetSaturdayWorkingDay changes whether Saturday counts as a working day and saves it for the selected year
type SetSaturdayWorkingDay struct {
	Working bool
}

// LoadSaturdayWorkingDay changes whether Saturday counts as a working day without saving it
type LoadSaturdayWorkingDay struct {
	Working bool
}

// SetCompanyDays replaces every company day off, without validation
type SetCompanyDays struct {
	Days []CompanyDayOff
}

// AddCompanyDay validates a company day off and inserts it, replacing any entry for the same date
type AddCompanyDay struct {
	Day CompanyDayOff
}

// RemoveCompanyDay removes every company day off on Date
type RemoveCompanyDay struct {
	Date string
}

// SetError records a validation message for Field.
// Field is "days", or "companyDay" or "holiday" followed by ".name" or ".date".
type SetError struct {
	Field   string
	Message string
}

// ClearErrors removes every validation message
type ClearErrors struct{}

// AddHoliday inserts a holiday, replacing any holiday on the same date
type AddHoliday struct {
	Holiday Holiday
}

// RemoveHoliday removes the holiday on Date
type RemoveHoliday struct {
	Date string
}

// ToggleDate marks Date as a day off, or removes the mark if it is already selected
type ToggleDate struct {
	Date time.Time
}

// ClearHolidays removes every holiday and selected date
type ClearHolidays struct{}

// ClearCompanyDays removes every company day off
type ClearCompanyDays struct{}

// SetDetectedHolidays replaces every holiday with the result of a regional holiday lookup, all of which become selected dates
type SetDetectedHolidays struct {
	Holidays []Holiday
}

// SetHolidays replaces every holiday with holidays that are not selected dates
type SetHolidays struct {
	Holidays []Holiday
}

// SetSelectedYear starts a new plan for Year from the preferences stored for that year
type SetSelectedYear struct {
	Year int
}

func (SetDays) Type() ActionType                { return SetDaysType }
func (LoadDays) Type() ActionType               { return LoadDaysType }
func (SetStrategy) Type() ActionType            { return SetStrategyType }
func (LoadStrategy) Type() ActionType           { return LoadStrategyType }
func (SetSaturdayWorkingDay) Type() ActionType  { return SetSaturdayWorkingDayType }
func (LoadSaturdayWorkingDay) Type() ActionType { return LoadSaturdayWorkingDayType }
func (SetCompanyDays) Type() ActionType         { return SetCompanyDaysType }
func (AddCompanyDay) Type() ActionType          { return AddCompanyDayType }
func (RemoveCompanyDay) Type() ActionType       { return RemoveCompanyDayType }
func (SetError) Type() ActionType               { return SetErrorType }
func (ClearErrors) Type() ActionType            { return ClearErrorsType }
func (AddHoliday) Type() ActionType             { return AddHolidayType }
func (RemoveHoliday) Type() ActionType          { return RemoveHolidayType }
func (ToggleDate) Type() ActionType             { return ToggleDateType }
func (ClearHolidays) Type() ActionType          { return ClearHolidaysType }
func (ClearCompanyDays) Type() ActionType       { return ClearCompanyDaysType }
func (SetDetectedHolidays) Type() ActionType    { return SetDetectedHolidaysType }
func (SetHolidays) Type() ActionType            { return SetHolidaysType }
func (SetSelectedYear) Type() ActionType        { return SetSelectedYearType }

func (SetDays) isAction()                {}
func (LoadDays) isAction()               {}
func (SetStrategy) isAction()            {}
func (LoadStrategy) isAction()           {}
func (SetSaturdayWorkingDay) isAction()  {}
func (LoadSaturdayWorkingDay) isAction() {}
func (SetCompanyDays) isAction()         {}
func (AddCompanyDay) isAction()          {}
func (RemoveCompanyDay) isAction()       {}
func (SetError) isAction()               {}
func (ClearErrors) isAction()            {}
func (AddHoliday) isAction()             {}
func (RemoveHoliday) isAction()          {}
func (ToggleDate) isAction()             {}
func (ClearHolidays) isAction()          {}
func (ClearCompanyDays) isAction()       {}
func (SetDetectedHolidays) isAction()    {}
func (SetHolidays) isAction()            {}
func (SetSelectedYear) isAction()        {}
