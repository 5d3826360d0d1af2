package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/OpenTransitTools/ptoplanner/business/companydays"
	"github.com/OpenTransitTools/ptoplanner/business/data/holidays"
	"github.com/OpenTransitTools/ptoplanner/business/holidayquery"
	"github.com/OpenTransitTools/ptoplanner/business/optimizer"
	"github.com/OpenTransitTools/ptoplanner/foundation/calendar"
	"github.com/gorilla/mux"
	"io"
	logger "log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// maxBodyBytes limits request bodies, action and company day documents are small
const maxBodyBytes = 1 << 20

const calendarProductId = "-//OpenTransitTools//ptoplanner//EN"

//defaultHttpHandler simple default http handler for default route
type defaultHttpHandler struct {
}

//ServeHTTP implements defaultHttpHandler http.Handler interface
func (h *defaultHttpHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Add("Application-Status", "OK")
}

//plannerService holds data needed to respond and log planner requests
type plannerService struct {
	log       *logger.Logger
	sessions  *sessionContainer
	cache     *holidayquery.Cache
	detector  *holidayquery.Detector
	publisher *sessionPublisher
	clock     func() time.Time
}

//plannerService factory
func makePlannerService(log *logger.Logger,
	sessions *sessionContainer,
	cache *holidayquery.Cache,
	publisher *sessionPublisher,
	clock func() time.Time) *plannerService {
	return &plannerService{
		log:       log,
		sessions:  sessions,
		cache:     cache,
		detector:  holidayquery.MakeDetector(log, cache),
		publisher: publisher,
		clock:     clock,
	}
}

//SessionResponse is the json response for a planning session
type SessionResponse struct {
	Id      string            `json:"id"`
	State   optimizer.State   `json:"state"`
	Summary optimizer.Summary `json:"summary"`
}

//ErrorResponse is the json response for a rejected request
type ErrorResponse struct {
	Error string `json:"error"`
}

func makeSessionResponse(id string, state optimizer.State) *SessionResponse {
	return &SessionResponse{
		Id:      id,
		State:   state,
		Summary: optimizer.Summarize(state),
	}
}

//countries responds with the supported countries
func (p *plannerService) countries(w http.ResponseWriter, _ *http.Request) {
	p.writeJSON(w, http.StatusOK, p.cache.Countries())
}

//states responds with the subdivisions of the country in the path
func (p *plannerService) states(w http.ResponseWriter, r *http.Request) {
	p.writeJSON(w, http.StatusOK, p.cache.States(mux.Vars(r)["country"]))
}

//holidays responds with the public holidays of a country and year, every holiday when "all" is true
func (p *plannerService) holidays(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		p.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid year %q", vars["year"]))
		return
	}
	region := holidays.Region{Country: vars["country"], State: r.FormValue("state")}
	if strings.ToLower(r.FormValue("all")) == "true" {
		p.writeJSON(w, http.StatusOK, p.cache.AllHolidays(year, region))
		return
	}
	p.writeJSON(w, http.StatusOK, p.cache.PublicHolidays(year, region))
}

//createSession opens a new planning session
func (p *plannerService) createSession(w http.ResponseWriter, _ *http.Request) {
	id, session := p.sessions.createSession()
	p.log.Printf("created session %s", id)
	p.writeJSON(w, http.StatusCreated, makeSessionResponse(id, session.State()))
}

//getSession responds with the current state of a session
func (p *plannerService) getSession(w http.ResponseWriter, r *http.Request) {
	id, session, ok := p.lookupSession(w, r)
	if !ok {
		return
	}
	p.writeJSON(w, http.StatusOK, makeSessionResponse(id, session.State()))
}

//dispatchAction applies the json action in the request body to a session
func (p *plannerService) dispatchAction(w http.ResponseWriter, r *http.Request) {
	id, session, ok := p.lookupSession(w, r)
	if !ok {
		return
	}
	var message optimizer.ActionMessage
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&message); err != nil {
		p.writeError(w, http.StatusBadRequest, fmt.Errorf("unable to read action: %w", err))
		return
	}
	action, err := message.Action()
	if err != nil {
		p.writeError(w, http.StatusBadRequest, err)
		return
	}
	p.respondWithChange(w, id, string(action.Type()), session.Dispatch(action))
}

//detectHolidays replaces the holidays of a session with those of the requested region
func (p *plannerService) detectHolidays(w http.ResponseWriter, r *http.Request) {
	id, session, ok := p.lookupSession(w, r)
	if !ok {
		return
	}
	country := r.FormValue("country")
	if country == "" {
		p.writeError(w, http.StatusBadRequest, errors.New("country is required"))
		return
	}
	state := p.detector.Detect(session, holidays.Region{Country: country, State: r.FormValue("state")})
	p.respondWithChange(w, id, string(optimizer.SetDetectedHolidaysType), state)
}

//importCompanyDays replaces the company days off of a session with those in the yaml request body
func (p *plannerService) importCompanyDays(w http.ResponseWriter, r *http.Request) {
	id, session, ok := p.lookupSession(w, r)
	if !ok {
		return
	}
	days, err := companydays.Parse(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		p.writeError(w, http.StatusBadRequest, err)
		return
	}
	state := session.Dispatch(optimizer.SetCompanyDays{Days: days})
	p.respondWithChange(w, id, string(optimizer.SetCompanyDaysType), state)
}

//exportCalendar responds with the holidays and company days off of a session as an iCalendar document
func (p *plannerService) exportCalendar(w http.ResponseWriter, r *http.Request) {
	id, session, ok := p.lookupSession(w, r)
	if !ok {
		return
	}
	buf := &bytes.Buffer{}
	if err := calendar.Render(buf, calendarProductId, p.clock(), sessionEvents(id, session.State())); err != nil {
		p.log.Printf("Error rendering calendar for session %s, error:%s", id, err)
		http.Error(w, "Error serving request", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"pto-%d.ics\"", session.State().SelectedYear))
	bytesWritten, err := w.Write(buf.Bytes())
	if err != nil {
		p.log.Printf("Error writing bytes to http.ResponseWriter, error:%s", err)
		return
	}
	p.log.Printf("wrote %d bytes of calendar for session %s", bytesWritten, id)
}

//respondWithChange publishes the changed session and responds with its state
func (p *plannerService) respondWithChange(w http.ResponseWriter, id string, action string, state optimizer.State) {
	p.publisher.publishSession(id, action, state)
	p.writeJSON(w, http.StatusOK, makeSessionResponse(id, state))
}

//lookupSession finds the session named in the path, responding with 404 when there is none
func (p *plannerService) lookupSession(w http.ResponseWriter, r *http.Request) (string, *optimizer.Session, bool) {
	id := mux.Vars(r)["id"]
	session, present := p.sessions.getSession(id)
	if !present {
		p.writeError(w, http.StatusNotFound, fmt.Errorf("session %q not found", id))
		return id, nil, false
	}
	return id, session, true
}

func (p *plannerService) writeError(w http.ResponseWriter, status int, err error) {
	p.writeJSON(w, status, &ErrorResponse{Error: err.Error()})
}

func (p *plannerService) writeJSON(w http.ResponseWriter, status int, value interface{}) {
	jsonData, err := json.Marshal(value)
	if err != nil {
		p.log.Printf("Error marshaling response to json: error:%v\n", err)
		http.Error(w, "Error serving request", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	byteCount, err := w.Write(jsonData)
	if err != nil {
		p.log.Printf("Error writing json response: %s", err)
		return
	}
	p.log.Printf("wrote %d bytes in json response.", byteCount)
}

//sessionEvents lists the days off of a session as all day calendar events
func sessionEvents(id string, state optimizer.State) []calendar.Event {
	events := make([]calendar.Event, 0)
	selected := make(map[string]bool)
	for _, d := range state.SelectedDates() {
		selected[d.Format(optimizer.DateLayout)] = true
	}
	for _, h := range state.Holidays() {
		day, err := time.Parse(optimizer.DateLayout, h.Date)
		if err != nil {
			continue
		}
		category := "Holiday"
		if !selected[h.Date] {
			category = "Listed Holiday"
		}
		events = append(events, calendar.Event{
			UID:         fmt.Sprintf("%s-holiday@%s", h.Date, id),
			Date:        day,
			Summary:     h.Name,
			Description: strings.Join(h.AlternateNames, ", "),
			Category:    category,
		})
	}
	for _, c := range state.CompanyDaysOff {
		day, err := time.Parse(optimizer.DateLayout, c.Date)
		if err != nil {
			continue
		}
		events = append(events, calendar.Event{
			UID:      fmt.Sprintf("%s-company@%s", c.Date, id),
			Date:     day,
			Summary:  c.Name,
			Category: "Company Day Off",
		})
	}
	return events
}

//createRouter routes planner requests to service
func createRouter(service *plannerService) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/", &defaultHttpHandler{})
	r.HandleFunc("/countries", service.countries).Methods(http.MethodGet)
	r.HandleFunc("/countries/{country}/states", service.states).Methods(http.MethodGet)
	r.HandleFunc("/holidays/{country}/{year:[0-9]+}", service.holidays).Methods(http.MethodGet)
	r.HandleFunc("/sessions", service.createSession).Methods(http.MethodPost)
	r.HandleFunc("/sessions/{id}", service.getSession).Methods(http.MethodGet)
	r.HandleFunc("/sessions/{id}/actions", service.dispatchAction).Methods(http.MethodPost)
	r.HandleFunc("/sessions/{id}/detect", service.detectHolidays).Methods(http.MethodPost)
	r.HandleFunc("/sessions/{id}/company-days", service.importCompanyDays).Methods(http.MethodPost)
	r.HandleFunc("/sessions/{id}/calendar.ics", service.exportCalendar).Methods(http.MethodGet)
	return r
}

//createServer creates configured http.Server for responding to planner requests
func createServer(service *plannerService, httpPort int) *http.Server {
	srv := &http.Server{
		Addr: strings.Join([]string{"0.0.0.0", strconv.Itoa(httpPort)}, ":"),
		// Good practice to set timeouts to avoid Slowloris attacks.
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      createRouter(service),
	}
	return srv
}

//runWebService starts up planner web service, and terminates on shutdown signal. Caller adds to wg before starting it
func runWebService(log *logger.Logger,
	wg *sync.WaitGroup,
	service *plannerService,
	httpPort int,
	shutdownSignal chan bool,
) {
	defer wg.Done()
	srv := createServer(service, httpPort)
	log.Printf("Starting server on port %d", httpPort)
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			log.Printf("server ListenAndServe ended. %s", err)
		}
	}()

	<-shutdownSignal
	log.Printf("ending webservice on shutdown signal")
	shutdownCtx, serverCancelFunc := context.WithTimeout(context.Background(), time.Duration(5)*time.Second)
	defer serverCancelFunc()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("error shutting down webservice, error:%s", err)
	}
}
