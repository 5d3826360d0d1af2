// Package calendar writes all day events as iCalendar documents
package calendar

import (
	"fmt"
	ical "github.com/arran4/golang-ical"
	"io"
	"time"
)

// Event is a single all day event
type Event struct {
	UID         string
	Date        time.Time
	Summary     string
	Description string
	Category    string
}

// Render writes events to w as an iCalendar document published by productID.
// stamp is recorded as the creation time of every event.
func Render(w io.Writer, productID string, stamp time.Time, events []Event) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, e := range events {
		if e.UID == "" {
			return fmt.Errorf("event %q on %s has no uid", e.Summary, e.Date.Format("2006-01-02"))
		}
		start := time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), 0, 0, 0, 0, time.UTC)
		event := cal.AddEvent(e.UID)
		event.SetDtStampTime(stamp.UTC())
		event.SetAllDayStartAt(start)
		event.SetAllDayEndAt(start.AddDate(0, 0, 1))
		event.SetSummary(e.Summary)
		if e.Description != "" {
			event.SetDescription(e.Description)
		}
		if e.Category != "" {
			event.SetProperty(ical.ComponentPropertyCategories, e.Category)
		}
	}
	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("unable to write calendar: %w", err)
	}
	return nil
}
