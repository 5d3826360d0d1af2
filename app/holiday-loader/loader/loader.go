// Package loader lists, exports and announces reference holidays from the command line
package loader

import (
	"encoding/json"
	"fmt"
	"github.com/OpenTransitTools/ptoplanner/business/data/holidays"
	"github.com/OpenTransitTools/ptoplanner/business/holidayquery"
	"github.com/OpenTransitTools/ptoplanner/foundation/calendar"
	"io"
	logger "log"
	"strings"
	"text/tabwriter"
	"time"
)

const calendarProductId = "-//OpenTransitTools//holiday-loader//EN"

// Publisher sends raw messages to a subject, satisfied by *nats.Conn
type Publisher interface {
	Publish(subject string, data []byte) error
}

//ListHolidays writes a table of the holidays observed in region during year
func ListHolidays(log *logger.Logger, w io.Writer, source holidayquery.Source, region holidays.Region, year int, all bool) error {
	list := lookup(source, region, year, all)
	log.Printf("found %d holidays for %s %s in %d", len(list), region.Country, region.State, year)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "DATE\tTYPE\tNAME"); err != nil {
		return err
	}
	for _, h := range list {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", h.Date, h.Type, h.Name); err != nil {
			return err
		}
	}
	return tw.Flush()
}

//ListStates writes the subdivisions holidays can be requested for in country
func ListStates(w io.Writer, source holidayquery.Source, country string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "CODE\tNAME"); err != nil {
		return err
	}
	for _, s := range source.States(country) {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", s.Code, s.Name); err != nil {
			return err
		}
	}
	return tw.Flush()
}

//WriteCalendar writes the holidays observed in region during year as an iCalendar document
func WriteCalendar(w io.Writer, source holidayquery.Source, region holidays.Region, year int, all bool, stamp time.Time) error {
	list := lookup(source, region, year, all)
	events := make([]calendar.Event, 0, len(list))
	for i, h := range list {
		events = append(events, calendar.Event{
			UID:      fmt.Sprintf("%s-%d@%s", h.Date, i, regionDomain(region)),
			Date:     h.Start,
			Summary:  h.Name,
			Category: string(h.Type),
		})
	}
	return calendar.Render(w, calendarProductId, stamp, events)
}

//PublishUpdate announces that the holidays of country in year changed so planner caches reload them
func PublishUpdate(log *logger.Logger, publisher Publisher, subject string, country string, year int) error {
	update := holidayquery.Update{Country: strings.ToUpper(country), Year: year}
	jsonData, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("error marshaling holiday update to json: error:%w", err)
	}
	if err = publisher.Publish(subject, jsonData); err != nil {
		return fmt.Errorf("unable to publish holiday update to %s: %w", subject, err)
	}
	log.Printf("published holiday update %s to %s", string(jsonData), subject)
	return nil
}

func lookup(source holidayquery.Source, region holidays.Region, year int, all bool) []holidays.Holiday {
	if all {
		return source.AllHolidays(year, region)
	}
	return source.PublicHolidays(year, region)
}

//regionDomain names region in calendar uids, such as tn.in.holiday-loader
func regionDomain(region holidays.Region) string {
	parts := []string{strings.ToLower(region.Country), "holiday-loader"}
	if region.State != "" {
		parts = append([]string{strings.ToLower(region.State)}, parts...)
	}
	return strings.Join(parts, ".")
}
