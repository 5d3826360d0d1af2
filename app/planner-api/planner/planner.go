package planner

import (
	"github.com/OpenTransitTools/ptoplanner/business/data/holidays"
	"github.com/OpenTransitTools/ptoplanner/business/holidayquery"
	"github.com/OpenTransitTools/ptoplanner/business/optimizer"
	"github.com/nats-io/nats.go"
	logger "log"
	"os"
	"sync"
	"time"
)

// Config holds the settings StartServices needs
type Config struct {
	ExpireSessionSeconds int
	HttpPort             int
	HolidayUpdateSubject string
	SessionUpdateSubject string
}

//StartServices brings up backgroundLoop, holidayUpdateListener and webservice. Exits application on shutdown signal
func StartServices(log *logger.Logger,
	cfg Config,
	prefs optimizer.PreferenceStore,
	natsConn *nats.Conn,
	shutdownSignal chan os.Signal) {

	wg := sync.WaitGroup{}

	//create shared containers
	cache := holidayquery.MakeCache(log, holidays.MakeProvider(), time.Now)
	sessions := makeSessionContainer(optimizer.MakeReducer(log, prefs), time.Now)
	publisher := makeSessionPublisher(log, &natsSessionPublicationDestination{
		natsConn:      natsConn,
		updateSubject: cfg.SessionUpdateSubject,
	}, time.Now)
	service := makePlannerService(log, sessions, cache, publisher, time.Now)

	//create shutdown channels
	backgroundLoopShutdown := make(chan bool, 1)
	holidayUpdateListenerShutdown := make(chan bool, 1)
	webServiceShutdown := make(chan bool, 1)

	//start all child services, each calls wg.Done when it returns
	wg.Add(3)
	go runBackgroundLoop(log, &wg, sessions, backgroundLoopShutdown, cfg.ExpireSessionSeconds)
	go runHolidayUpdateListener(log, &wg, natsConn, cache, cfg.HolidayUpdateSubject, holidayUpdateListenerShutdown)
	go runWebService(log, &wg, service, cfg.HttpPort, webServiceShutdown)

	<-shutdownSignal
	log.Printf("Exiting on shutdown signal, shutting down subroutines")
	backgroundLoopShutdown <- true
	holidayUpdateListenerShutdown <- true
	webServiceShutdown <- true
	wg.Wait()
	log.Printf("Subroutines shut down, exiting planner service")
}

//runBackgroundLoop periodically removes idle sessions from sessionContainer. Caller adds to wg before starting it
func runBackgroundLoop(log *logger.Logger,
	wg *sync.WaitGroup,
	sessions *sessionContainer,
	shutdownSignal chan bool,
	expireSessionSeconds int) {
	defer wg.Done()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-shutdownSignal:
			log.Printf("Exiting background loop on shutdown signal")
			return
		case <-ticker.C:
		}

		removed, currentSize := sessions.expireSessions(time.Now(), expireSessionSeconds)
		log.Printf("Session collection has %d sessions. Removed %d idle sessions", currentSize, removed)
	}
}
