package planner

import (
	"bytes"
	logger "log"
	"strings"
	"testing"
	"time"

	"github.com/OpenTransitTools/ptoplanner/business/data/holidays"
	"github.com/OpenTransitTools/ptoplanner/business/holidayquery"
	"github.com/matryer/is"
	"github.com/nats-io/nats.go"
)

func TestProcessHolidayUpdateFromMsg(t *testing.T) {
	tests := []struct {
		name        string
		payload     string
		wantLogLine string
	}{
		{
			name:        "one country and year",
			payload:     `{"country":"IN","year":2025}`,
			wantLogLine: `holiday update for country:"IN" year:2025 dropped 2 cached holiday lists`,
		},
		{
			name:        "every country",
			payload:     `{"year":2025}`,
			wantLogLine: `holiday update for country:"" year:2025 dropped 3 cached holiday lists`,
		},
		{
			name:        "other year",
			payload:     `{"country":"IN","year":2026}`,
			wantLogLine: `holiday update for country:"IN" year:2026 dropped 0 cached holiday lists`,
		},
		{
			name:        "bad payload",
			payload:     `{"country":`,
			wantLogLine: "error parsing holiday update",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			logBuf := &bytes.Buffer{}
			log := logger.New(logBuf, "", 0)
			cache := holidayquery.MakeCache(log, holidays.MakeProvider(), func() time.Time { return testNow })
			cache.PublicHolidays(2025, holidays.Region{Country: "IN"})
			cache.PublicHolidays(2025, holidays.Region{Country: "IN", State: "TN"})
			cache.PublicHolidays(2025, holidays.Region{Country: "US"})
			cache.States("IN")

			processHolidayUpdateFromMsg(log, &nats.Msg{Data: []byte(tt.payload)}, cache)
			is.True(strings.Contains(logBuf.String(), tt.wantLogLine))
		})
	}
}
