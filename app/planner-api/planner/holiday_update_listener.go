package planner

import (
	"github.com/OpenTransitTools/ptoplanner/business/holidayquery"
	"github.com/nats-io/nats.go"
	logger "log"
	"os"
	"sync"
)

//runHolidayUpdateListener starts NATS subscription on holidayUpdateSubject for holidayquery.Update messages.
//Drops the cached holiday lists each update covers. Ends NATS subscription and returns on shutdownSignal.
//Caller adds to wg before starting it
func runHolidayUpdateListener(
	log *logger.Logger,
	wg *sync.WaitGroup,
	natsConn *nats.Conn,
	cache *holidayquery.Cache,
	holidayUpdateSubject string,
	shutdownSignal chan bool) {
	defer wg.Done()

	ch := make(chan *nats.Msg, 64)
	log.Printf("Subscribing to holiday updates on subject:%s on nats: %v\n", holidayUpdateSubject,
		natsConn.Servers())
	sub, err := natsConn.ChanSubscribe(holidayUpdateSubject, ch)
	if err != nil {
		log.Printf("Unable to establish subscription to nats server: %v\n", err)
		os.Exit(1)
	}

	for {
		select {
		case msg := <-ch:
			processHolidayUpdateFromMsg(log, msg, cache)
		case <-shutdownSignal:
			log.Printf("ending holiday update listener on shutdown signal\n")
			log.Printf("unsubscribing to nats\n")
			err = sub.Unsubscribe()
			if err != nil {
				log.Printf("Error unsubscribing to nats:%s", err)
			}
			return
		}
	}
}

//processHolidayUpdateFromMsg un-marshal holidayquery.Update from nats.Msg and apply it to the cache
func processHolidayUpdateFromMsg(log *logger.Logger, msg *nats.Msg, cache *holidayquery.Cache) {
	update, err := holidayquery.ParseUpdate(msg.Data)
	if err != nil {
		log.Printf("error parsing holiday update: %s, payload:%s", err, string(msg.Data))
		return
	}
	dropped := cache.Apply(update)
	log.Printf("holiday update for country:%q year:%d dropped %d cached holiday lists", update.Country, update.Year, dropped)
}
