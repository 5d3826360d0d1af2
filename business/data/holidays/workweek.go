package holidays

import (
	"github.com/rickar/cal/v2"
	"time"
)

// WorkWeek decides which days of a year are working days for a 5 or 6 day work week.
// Days off added by date string are checked alongside any rickar/cal holidays.
type WorkWeek struct {
	calendar *cal.BusinessCalendar
	daysOff  map[string]bool
}

// MakeWorkWeek builds a Monday to Friday WorkWeek, or Monday to Saturday when saturdayWorking is true
func MakeWorkWeek(saturdayWorking bool) *WorkWeek {
	calendar := cal.NewBusinessCalendar()
	calendar.SetWorkday(time.Saturday, saturdayWorking)
	return &WorkWeek{
		calendar: calendar,
		daysOff:  make(map[string]bool),
	}
}

// AddDaysOff marks yyyy-MM-dd dates as non working. Unparseable dates are ignored.
func (w *WorkWeek) AddDaysOff(dates ...string) {
	for _, date := range dates {
		if _, err := time.Parse(DateLayout, date); err != nil {
			continue
		}
		w.daysOff[date] = true
	}
}

// AddCalendarHolidays marks rickar/cal holidays as non working on their observed dates
func (w *WorkWeek) AddCalendarHolidays(h ...*cal.Holiday) {
	w.calendar.AddHoliday(h...)
}

// IsWorkday returns true if at falls on a working weekday that is not a day off
func (w *WorkWeek) IsWorkday(at time.Time) bool {
	if w.daysOff[at.Format(DateLayout)] {
		return false
	}
	return w.calendar.IsWorkday(at)
}

// WorkdaysBetween counts working days from start to end inclusive
func (w *WorkWeek) WorkdaysBetween(start time.Time, end time.Time) int {
	count := 0
	day := time.Date(start.Year(), start.Month(), start.Day(), 12, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), end.Day(), 12, 0, 0, 0, time.UTC)
	for !day.After(last) {
		if w.IsWorkday(day) {
			count++
		}
		day = day.AddDate(0, 0, 1)
	}
	return count
}

// WorkdaysInYear counts working days in year
func (w *WorkWeek) WorkdaysInYear(year int) int {
	return w.WorkdaysBetween(time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC))
}
