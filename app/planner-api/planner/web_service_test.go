package planner

import (
	"bytes"
	"encoding/json"
	"errors"
	logger "log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/OpenTransitTools/ptoplanner/business/data/holidays"
	"github.com/OpenTransitTools/ptoplanner/business/data/preferences"
	"github.com/OpenTransitTools/ptoplanner/business/holidayquery"
	"github.com/OpenTransitTools/ptoplanner/business/optimizer"
	ical "github.com/arran4/golang-ical"
	"github.com/matryer/is"
)

var testNow = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

// recordingDestination keeps published session updates
type recordingDestination struct {
	mu      sync.Mutex
	updates []*SessionUpdate
	err     error
}

func (d *recordingDestination) Publish(update *SessionUpdate) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.updates = append(d.updates, update)
	return d.err
}

type testFixture struct {
	router      http.Handler
	store       *preferences.Store
	sessions    *sessionContainer
	destination *recordingDestination
}

func makeTestFixture() *testFixture {
	log := logger.New(&bytes.Buffer{}, "", 0)
	clock := func() time.Time { return testNow }
	store := preferences.MakeStore(log, preferences.MakeMemoryRepository())
	sessions := makeSessionContainer(optimizer.MakeReducer(log, store), clock)
	destination := &recordingDestination{}
	publisher := makeSessionPublisher(log, destination, clock)
	cache := holidayquery.MakeCache(log, holidays.MakeProvider(), clock)
	service := makePlannerService(log, sessions, cache, publisher, clock)
	return &testFixture{
		router:      createRouter(service),
		store:       store,
		sessions:    sessions,
		destination: destination,
	}
}

func (f *testFixture) do(method string, target string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

// sessionJSON mirrors the json written for a SessionResponse
type sessionJSON struct {
	Id    string `json:"id"`
	State struct {
		Days           string                    `json:"days"`
		Strategy       string                    `json:"strategy"`
		CompanyDaysOff []optimizer.CompanyDayOff `json:"companyDaysOff"`
		Holidays       []optimizer.Holiday       `json:"holidays"`
		SelectedDates  []string                  `json:"selectedDates"`
		SelectedYear   int                       `json:"selectedYear"`
		Errors         map[string]interface{}    `json:"errors"`
	} `json:"state"`
	Summary optimizer.Summary `json:"summary"`
}

func decodeSession(t *testing.T, rec *httptest.ResponseRecorder) sessionJSON {
	var s sessionJSON
	if err := json.Unmarshal(rec.Body.Bytes(), &s); err != nil {
		t.Fatalf("unable to decode session response %s: %v", rec.Body.String(), err)
	}
	return s
}

func (f *testFixture) createSession(t *testing.T) string {
	rec := f.do(http.MethodPost, "/sessions", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected session to be created, got %d", rec.Code)
	}
	return decodeSession(t, rec).Id
}

func TestDefaultRoute(t *testing.T) {
	is := is.New(t)
	rec := makeTestFixture().do(http.MethodGet, "/", "")
	is.Equal(rec.Code, http.StatusOK)
	is.Equal(rec.Header().Get("Application-Status"), "OK")
}

func TestReferenceRoutes(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantCode  int
		wantCount int
	}{
		{name: "countries", target: "/countries", wantCode: http.StatusOK, wantCount: 2},
		{name: "indian states", target: "/countries/in/states", wantCode: http.StatusOK, wantCount: 36},
		{name: "us states", target: "/countries/US/states", wantCode: http.StatusOK, wantCount: 0},
		{name: "national holidays", target: "/holidays/IN/2025", wantCode: http.StatusOK, wantCount: 77},
		{name: "state holidays", target: "/holidays/IN/2025?state=TN", wantCode: http.StatusOK, wantCount: 34},
		{name: "year without data", target: "/holidays/IN/2030", wantCode: http.StatusOK, wantCount: 0},
		{name: "us public holidays", target: "/holidays/US/2025", wantCode: http.StatusOK, wantCount: 11},
		{name: "bad year", target: "/holidays/IN/next", wantCode: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			rec := makeTestFixture().do(http.MethodGet, tt.target, "")
			is.Equal(rec.Code, tt.wantCode)
			if tt.wantCode != http.StatusOK {
				return
			}
			var results []map[string]interface{}
			is.NoErr(json.Unmarshal(rec.Body.Bytes(), &results))
			is.Equal(len(results), tt.wantCount)
		})
	}
}

func TestCreateSession_LoadsStoredPreferences(t *testing.T) {
	is := is.New(t)
	f := makeTestFixture()
	f.store.StoreDays("18", 2025)
	f.store.StoreStrategy(preferences.MiniBreaks, 2025)

	rec := f.do(http.MethodPost, "/sessions", "")
	is.Equal(rec.Code, http.StatusCreated)
	s := decodeSession(t, rec)
	is.True(s.Id != "")
	is.Equal(s.State.SelectedYear, 2025)
	is.Equal(s.State.Days, "18")
	is.Equal(s.State.Strategy, "miniBreaks")

	rec = f.do(http.MethodGet, "/sessions/"+s.Id, "")
	is.Equal(rec.Code, http.StatusOK)
	is.Equal(decodeSession(t, rec).Id, s.Id)
}

func TestSessionNotFound(t *testing.T) {
	is := is.New(t)
	f := makeTestFixture()
	for _, target := range []string{"/sessions/missing", "/sessions/missing/calendar.ics"} {
		rec := f.do(http.MethodGet, target, "")
		is.Equal(rec.Code, http.StatusNotFound)
	}
	rec := f.do(http.MethodPost, "/sessions/missing/actions", `{"type":"CLEAR_ERRORS"}`)
	is.Equal(rec.Code, http.StatusNotFound)
}

func TestDispatchAction(t *testing.T) {
	is := is.New(t)
	f := makeTestFixture()
	id := f.createSession(t)

	rec := f.do(http.MethodPost, "/sessions/"+id+"/actions", `{"type":"SET_DAYS","payload":"10"}`)
	is.Equal(rec.Code, http.StatusOK)
	s := decodeSession(t, rec)
	is.Equal(s.State.Days, "10")
	is.True(s.Summary.DaysValid)
	is.Equal(f.store.GetStoredDays(2025), "10")

	rec = f.do(http.MethodPost, "/sessions/"+id+"/actions", `{"type":"SET_DAYS","payload":"400"}`)
	is.Equal(rec.Code, http.StatusOK)
	s = decodeSession(t, rec)
	is.Equal(s.State.Days, "10")
	is.Equal(s.State.Errors["days"], optimizer.DaysErrorMessage)
	is.True(s.Summary.HasErrors)

	rec = f.do(http.MethodPost, "/sessions/"+id+"/actions", `{"type":"TOGGLE_DATE","payload":"2025-04-06"}`)
	is.Equal(rec.Code, http.StatusOK)
	s = decodeSession(t, rec)
	is.Equal(s.State.Holidays, []optimizer.Holiday{{Date: "2025-04-06", Name: "April 6, 2025"}})
	is.Equal(s.State.SelectedDates, []string{"2025-04-06"})

	is.Equal(len(f.destination.updates), 3)
	last := f.destination.updates[2]
	is.Equal(last.SessionId, id)
	is.Equal(last.Action, "TOGGLE_DATE")
	is.Equal(last.Timestamp, testNow.Unix())
	is.Equal(last.Summary.SelectedDateCount, 1)
}

func TestDispatchAction_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `SET_DAYS`},
		{name: "unknown action", body: `{"type":"SET_MOOD","payload":"happy"}`},
		{name: "bad payload", body: `{"type":"SET_SELECTED_YEAR","payload":"soon"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			f := makeTestFixture()
			id := f.createSession(t)
			rec := f.do(http.MethodPost, "/sessions/"+id+"/actions", tt.body)
			is.Equal(rec.Code, http.StatusBadRequest)
			var e ErrorResponse
			is.NoErr(json.Unmarshal(rec.Body.Bytes(), &e))
			is.True(e.Error != "")
			is.Equal(len(f.destination.updates), 0)
		})
	}
}

func TestDetectHolidays(t *testing.T) {
	is := is.New(t)
	f := makeTestFixture()
	id := f.createSession(t)

	rec := f.do(http.MethodPost, "/sessions/"+id+"/detect", "")
	is.Equal(rec.Code, http.StatusBadRequest)

	rec = f.do(http.MethodPost, "/sessions/"+id+"/detect?country=IN", "")
	is.Equal(rec.Code, http.StatusOK)
	s := decodeSession(t, rec)
	is.Equal(len(s.State.SelectedDates), len(s.State.Holidays))
	is.Equal(s.Summary.HolidayCount, len(s.State.Holidays))
	is.Equal(f.destination.updates[0].Action, "SET_DETECTED_HOLIDAYS")
}

func TestImportCompanyDays(t *testing.T) {
	is := is.New(t)
	f := makeTestFixture()
	id := f.createSession(t)

	body := "company_days:\n  - {date: 2025-12-26, name: Office Closure}\n  - {date: 2025-12-31, name: Year End}\n"
	rec := f.do(http.MethodPost, "/sessions/"+id+"/company-days", body)
	is.Equal(rec.Code, http.StatusOK)
	s := decodeSession(t, rec)
	is.Equal(s.State.CompanyDaysOff, []optimizer.CompanyDayOff{
		{Date: "2025-12-26", Name: "Office Closure"},
		{Date: "2025-12-31", Name: "Year End"},
	})

	rec = f.do(http.MethodPost, "/sessions/"+id+"/company-days", "company_days:\n  - {date: soon, name: Party}\n")
	is.Equal(rec.Code, http.StatusBadRequest)
	session, _ := f.sessions.getSession(id)
	is.Equal(len(session.State().CompanyDaysOff), 2)
}

func TestExportCalendar(t *testing.T) {
	is := is.New(t)
	f := makeTestFixture()
	id := f.createSession(t)
	f.do(http.MethodPost, "/sessions/"+id+"/actions", `{"type":"TOGGLE_DATE","payload":"2025-04-06"}`)
	f.do(http.MethodPost, "/sessions/"+id+"/actions",
		`{"type":"ADD_COMPANY_DAY","payload":{"date":"2025-12-26","name":"Office Closure"}}`)

	rec := f.do(http.MethodGet, "/sessions/"+id+"/calendar.ics", "")
	is.Equal(rec.Code, http.StatusOK)
	is.True(strings.HasPrefix(rec.Header().Get("Content-Type"), "text/calendar"))
	cal, err := ical.ParseCalendar(bytes.NewReader(rec.Body.Bytes()))
	is.NoErr(err)
	is.Equal(len(cal.Events()), 2)
}

func TestSessionPublisher_FailuresAreLogged(t *testing.T) {
	is := is.New(t)
	logged := &bytes.Buffer{}
	destination := &recordingDestination{err: errors.New("nats unavailable")}
	publisher := makeSessionPublisher(logger.New(logged, "", 0), destination, func() time.Time { return testNow })
	publisher.publishSession("abc", "SET_DAYS", optimizer.InitialState(testNow))
	is.Equal(len(destination.updates), 1)
	is.True(strings.Contains(logged.String(), "nats unavailable"))
}

func TestSessionContainer_Expire(t *testing.T) {
	is := is.New(t)
	log := logger.New(&bytes.Buffer{}, "", 0)
	now := testNow
	reducer := optimizer.MakeReducer(log, preferences.MakeStore(log, preferences.MakeMemoryRepository()))
	sessions := makeSessionContainer(reducer, func() time.Time { return now })

	idle, _ := sessions.createSession()
	now = testNow.Add(30 * time.Minute)
	active, session := sessions.createSession()
	now = testNow.Add(50 * time.Minute)
	session.Dispatch(optimizer.SetDays{Days: "3"})

	removed, size := sessions.expireSessions(testNow.Add(time.Hour), 3600)
	is.Equal(removed, 1)
	is.Equal(size, 1)
	_, present := sessions.getSession(idle)
	is.True(!present)
	_, present = sessions.getSession(active)
	is.True(present)
}
