package holidays

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestGetIndianHolidays(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		state     string
		wantCount int
	}{
		{
			name:      "every holiday without state filter",
			year:      2025,
			state:     "",
			wantCount: 77,
		},
		{
			name:      "national and Tamil Nadu holidays",
			year:      2025,
			state:     "TN",
			wantCount: 34,
		},
		{
			name:      "unknown state only gets national holidays",
			year:      2026,
			state:     "ZZ",
			wantCount: 27,
		},
		{
			name:      "year missing from table",
			year:      2019,
			state:     "",
			wantCount: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			got := GetIndianHolidays(tt.year, tt.state)
			is.True(got != nil)
			is.Equal(len(got), tt.wantCount)
		})
	}
}

func TestGetIndianHolidays_StateFiltering(t *testing.T) {
	is := is.New(t)

	tamilNadu := GetIndianHolidays(2025, "TN")
	names := make(map[string]bool)
	for _, h := range tamilNadu {
		names[h.Name] = true
	}
	is.True(names["Republic Day"])     // national holiday always present
	is.True(names["Pongal"])           // listed for TN
	is.True(!names["Makar Sankranti"]) // not observed in TN
	is.True(!names["Onam"])            // Kerala only
}

func TestGetIndianHolidays_Shape(t *testing.T) {
	is := is.New(t)
	got := GetIndianHolidays(2025, "")
	is.True(len(got) > 0)

	first := got[0]
	is.Equal(first.Date, "2025-01-26")
	is.Equal(first.Name, "Republic Day")
	is.Equal(first.Type, Public)
	want := time.Date(2025, 1, 26, 0, 0, 0, 0, time.UTC)
	is.Equal(first.Start, want)
	is.Equal(first.End, want)
	is.Equal(first.Rule, "")
}

func TestGetIndianStates(t *testing.T) {
	is := is.New(t)
	states := GetIndianStates()
	is.Equal(len(states), 36)
	is.Equal(states[0], State{Code: "AN", Name: "Andaman and Nicobar Islands"})
	for i := 1; i < len(states); i++ {
		is.True(states[i-1].Code < states[i].Code)
	}
	name, ok := IndianStateName("KL")
	is.True(ok)
	is.Equal(name, "Kerala")
	_, ok = IndianStateName("XX")
	is.True(!ok)
}

func TestProvider(t *testing.T) {
	is := is.New(t)
	p := MakeProvider()

	countries := p.Countries()
	is.Equal(len(countries), 2)
	is.Equal(countries[0].CountryCode, CountryIndia)

	is.Equal(len(p.States("in")), 36)
	is.Equal(len(p.States("US")), 0)
	is.Equal(len(p.Regions("IN", "TN")), 0)

	is.Equal(len(p.PublicHolidays(2025, Region{Country: "IN", State: "TN"})), 34)
	is.Equal(len(p.PublicHolidays(2025, Region{Country: "FR"})), 0)

	federal := p.PublicHolidays(2025, Region{Country: "US"})
	is.Equal(len(federal), 11)
	is.Equal(federal[0].Date, "2025-01-01")
	is.Equal(federal[len(federal)-1].Date, "2025-12-25")
	for i := 1; i < len(federal); i++ {
		is.True(federal[i-1].Date <= federal[i].Date)
	}

	// Juneteenth was first observed in 2021
	is.Equal(len(p.AllHolidays(2019, Region{Country: "US"})), 10)
	is.True(p.CalendarHolidays("US") != nil)
	is.True(p.CalendarHolidays("IN") == nil)
}

func TestWorkWeek(t *testing.T) {
	tests := []struct {
		name            string
		saturdayWorking bool
		daysOff         []string
		want            int
	}{
		{
			name: "five day week",
			want: 261,
		},
		{
			name:            "six day week",
			saturdayWorking: true,
			want:            313,
		},
		{
			name:    "weekday and weekend days off",
			daysOff: []string{"2025-01-01", "2025-01-04", "not-a-date"},
			want:    260,
		},
		{
			name:            "saturday day off counts on a six day week",
			saturdayWorking: true,
			daysOff:         []string{"2025-01-04"},
			want:            312,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			w := MakeWorkWeek(tt.saturdayWorking)
			w.AddDaysOff(tt.daysOff...)
			is.Equal(w.WorkdaysInYear(2025), tt.want)
		})
	}
}

func TestWorkWeek_CalendarHolidays(t *testing.T) {
	is := is.New(t)
	p := MakeProvider()
	w := MakeWorkWeek(false)
	w.AddCalendarHolidays(p.CalendarHolidays("US")...)

	is.True(!w.IsWorkday(time.Date(2025, 7, 4, 12, 0, 0, 0, time.UTC)))
	is.True(w.IsWorkday(time.Date(2025, 7, 7, 12, 0, 0, 0, time.UTC)))
	is.Equal(w.WorkdaysInYear(2025), 250)
}
