package optimizer

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/OpenTransitTools/ptoplanner/business/data/preferences"
	"github.com/matryer/is"
)

func TestSession_Mount(t *testing.T) {
	is := is.New(t)
	r, store := makeTestReducer()
	store.StoreDays("18", 2025)
	store.StoreStrategy(preferences.LongWeekends, 2025)
	store.StoreSaturdayWorkingDay(true, 2025)
	store.StoreDays("5", 2026)

	session := MakeSession(r, func() time.Time { return testNow })
	state := session.Mount()
	is.Equal(state.SelectedYear, 2025)
	is.Equal(state.Days, "18")
	is.Equal(state.Strategy, preferences.LongWeekends)
	is.True(state.SaturdayWorkingDay)
}

func TestSession_MountWithNothingStored(t *testing.T) {
	is := is.New(t)
	r, store := makeTestReducer()
	session := MakeSession(r, func() time.Time { return testNow })
	state := session.Mount()
	is.Equal(state.Days, "")
	is.Equal(state.Strategy, preferences.Balanced)
	// mounting never writes
	is.Equal(len(store.StoredYears()), 0)
}

func TestSession_DispatchTracksActivity(t *testing.T) {
	is := is.New(t)
	r, _ := makeTestReducer()
	now := testNow
	session := MakeSession(r, func() time.Time { return now })
	is.Equal(session.LastActivity(), testNow)

	now = testNow.Add(time.Minute)
	state := session.Dispatch(SetDays{Days: "10"})
	is.Equal(state.Days, "10")
	is.Equal(session.LastActivity(), testNow.Add(time.Minute))
}

func TestSession_StateIsACopy(t *testing.T) {
	is := is.New(t)
	r, _ := makeTestReducer()
	session := MakeSession(r, func() time.Time { return testNow })
	session.Dispatch(AddCompanyDay{Day: CompanyDayOff{Date: "2025-12-26", Name: "Office Closure"}})

	state := session.State()
	state.CompanyDaysOff[0].Name = "changed by caller"
	is.Equal(session.State().CompanyDaysOff[0].Name, "Office Closure")
}

func TestSession_ConcurrentDispatch(t *testing.T) {
	is := is.New(t)
	r, _ := makeTestReducer()
	session := MakeSession(r, func() time.Time { return testNow })

	wg := sync.WaitGroup{}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			session.Dispatch(ToggleDate{Date: day(2025, time.January, 1).AddDate(0, 0, i)})
		}(i)
	}
	wg.Wait()
	state := session.State()
	is.Equal(len(state.Holidays()), 50)
	is.Equal(len(state.SelectedDates()), 50)
}

func TestDecodeAction(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Action
	}{
		{name: "set days", message: `{"type":"SET_DAYS","payload":"10"}`, want: SetDays{Days: "10"}},
		{name: "load days", message: `{"type":"LOAD_DAYS","payload":"4"}`, want: LoadDays{Days: "4"}},
		{
			name:    "set strategy",
			message: `{"type":"SET_STRATEGY","payload":"miniBreaks"}`,
			want:    SetStrategy{Strategy: preferences.MiniBreaks},
		},
		{
			name:    "saturday",
			message: `{"type":"SET_SATURDAY_WORKING_DAY","payload":true}`,
			want:    SetSaturdayWorkingDay{Working: true},
		},
		{
			name:    "add company day",
			message: `{"type":"ADD_COMPANY_DAY","payload":{"date":"2025-12-26","name":"Office Closure"}}`,
			want:    AddCompanyDay{Day: CompanyDayOff{Date: "2025-12-26", Name: "Office Closure"}},
		},
		{
			name:    "set company days",
			message: `{"type":"SET_COMPANY_DAYS","payload":[{"date":"2025-12-26","name":"Office Closure"}]}`,
			want:    SetCompanyDays{Days: []CompanyDayOff{{Date: "2025-12-26", Name: "Office Closure"}}},
		},
		{
			name:    "remove company day",
			message: `{"type":"REMOVE_COMPANY_DAY","payload":"2025-12-26"}`,
			want:    RemoveCompanyDay{Date: "2025-12-26"},
		},
		{
			name:    "set error",
			message: `{"type":"SET_ERROR","payload":{"field":"holiday.name","message":"Name is required"}}`,
			want:    SetError{Field: "holiday.name", Message: "Name is required"},
		},
		{name: "clear errors", message: `{"type":"CLEAR_ERRORS"}`, want: ClearErrors{}},
		{
			name:    "add holiday",
			message: `{"type":"ADD_HOLIDAY","payload":{"date":"2025-08-15","name":"Independence Day"}}`,
			want:    AddHoliday{Holiday: Holiday{Date: "2025-08-15", Name: "Independence Day"}},
		},
		{
			name:    "remove holiday",
			message: `{"type":"REMOVE_HOLIDAY","payload":"2025-08-15"}`,
			want:    RemoveHoliday{Date: "2025-08-15"},
		},
		{
			name:    "toggle date",
			message: `{"type":"TOGGLE_DATE","payload":"2025-04-06"}`,
			want:    ToggleDate{Date: day(2025, time.April, 6)},
		},
		{name: "clear holidays", message: `{"type":"CLEAR_HOLIDAYS"}`, want: ClearHolidays{}},
		{name: "clear company days", message: `{"type":"CLEAR_COMPANY_DAYS"}`, want: ClearCompanyDays{}},
		{
			name:    "set detected holidays",
			message: `{"type":"SET_DETECTED_HOLIDAYS","payload":[{"date":"2025-01-26","name":"Republic Day"}]}`,
			want:    SetDetectedHolidays{Holidays: []Holiday{{Date: "2025-01-26", Name: "Republic Day"}}},
		},
		{
			name:    "set holidays empty",
			message: `{"type":"SET_HOLIDAYS","payload":[]}`,
			want:    SetHolidays{Holidays: []Holiday{}},
		},
		{
			name:    "set selected year",
			message: `{"type":"SET_SELECTED_YEAR","payload":2026}`,
			want:    SetSelectedYear{Year: 2026},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			var message ActionMessage
			is.NoErr(json.Unmarshal([]byte(tt.message), &message))
			got, err := message.Action()
			is.NoErr(err)
			is.Equal(got, tt.want)
		})
	}
}

func TestDecodeAction_Errors(t *testing.T) {
	tests := []struct {
		name       string
		actionType ActionType
		payload    string
		want       error
	}{
		{name: "unknown type", actionType: "SET_MOOD", payload: `"happy"`, want: ErrUnknownAction},
		{name: "missing payload", actionType: SetDaysType, payload: ``, want: ErrInvalidPayload},
		{name: "wrong payload type", actionType: SetDaysType, payload: `10`, want: ErrInvalidPayload},
		{name: "unknown strategy", actionType: SetStrategyType, payload: `"sabbatical"`, want: ErrInvalidPayload},
		{name: "bad toggle date", actionType: ToggleDateType, payload: `"April 6"`, want: ErrInvalidPayload},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			_, err := DecodeAction(tt.actionType, json.RawMessage(tt.payload))
			is.True(errors.Is(err, tt.want))
		})
	}
}

func TestDecodeAction_ToggleTimestampUsesItsOwnDay(t *testing.T) {
	is := is.New(t)
	action, err := DecodeAction(ToggleDateType, json.RawMessage(`"2025-04-06T23:30:00+05:30"`))
	is.NoErr(err)
	r, _ := makeTestReducer()
	state := r.Reduce(InitialState(testNow), action)
	is.Equal(state.Holidays(), []Holiday{{Date: "2025-04-06", Name: "April 6, 2025"}})
}

func TestSummarize(t *testing.T) {
	is := is.New(t)
	r, _ := makeTestReducer()
	state := reduceAll(r, InitialState(testNow),
		LoadDays{Days: "12"},
		SetDetectedHolidays{Holidays: []Holiday{
			{Date: "2025-01-01", Name: "New Year"},
			{Date: "2025-01-04", Name: "Saturday Festival"},
		}},
		AddHoliday{Holiday: Holiday{Date: "2025-10-02", Name: "Gandhi Jayanti"}},
		AddCompanyDay{Day: CompanyDayOff{Date: "2025-12-26", Name: "Office Closure"}})

	summary := Summarize(state)
	is.Equal(summary, Summary{
		Year:              2025,
		Days:              "12",
		DaysValid:         true,
		Strategy:          preferences.Balanced,
		HolidayCount:      3,
		SelectedDateCount: 2,
		CompanyDayCount:   1,
		// 261 weekdays less Jan 1, Oct 2 and Dec 26
		WorkingDays: 258,
	})

	saturdays := Summarize(r.Reduce(state, LoadSaturdayWorkingDay{Working: true}))
	// 313 working days in a six day week less Jan 1, Jan 4, Oct 2 and Dec 26
	is.Equal(saturdays.WorkingDays, 309)
	is.True(saturdays.SaturdayWorkingDay)
}
