package optimizer

import (
	"github.com/OpenTransitTools/ptoplanner/business/data/holidays"
	"github.com/OpenTransitTools/ptoplanner/business/data/preferences"
)

// Summary is a compact description of a State, published whenever a session changes
type Summary struct {
	Year               int                  `json:"year"`
	Days               string               `json:"days"`
	DaysValid          bool                 `json:"daysValid"`
	Strategy           preferences.Strategy `json:"strategy"`
	SaturdayWorkingDay bool                 `json:"isSaturdayWorkingDay"`
	HolidayCount       int                  `json:"holidayCount"`
	SelectedDateCount  int                  `json:"selectedDateCount"`
	CompanyDayCount    int                  `json:"companyDayCount"`
	WorkingDays        int                  `json:"workingDays"`
	HasErrors          bool                 `json:"hasErrors"`
}

// Summarize describes state. WorkingDays counts the working days of the selected year
// that are neither a holiday nor a company day off.
func Summarize(state State) Summary {
	days, parsed := state.ParsedDays()
	week := holidays.MakeWorkWeek(state.SaturdayWorkingDay)
	for _, h := range state.entries {
		week.AddDaysOff(h.holiday.Date)
	}
	for _, d := range state.CompanyDaysOff {
		week.AddDaysOff(d.Date)
	}
	return Summary{
		Year:               state.SelectedYear,
		Days:               state.Days,
		DaysValid:          parsed && days >= MinDays && days <= MaxDays,
		Strategy:           state.Strategy,
		SaturdayWorkingDay: state.SaturdayWorkingDay,
		HolidayCount:       len(state.entries),
		SelectedDateCount:  len(state.SelectedDates()),
		CompanyDayCount:    len(state.CompanyDaysOff),
		WorkingDays:        week.WorkdaysInYear(state.SelectedYear),
		HasErrors:          !state.Errors.Empty(),
	}
}
