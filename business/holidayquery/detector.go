package holidayquery

import (
	"github.com/OpenTransitTools/ptoplanner/business/data/holidays"
	"github.com/OpenTransitTools/ptoplanner/business/optimizer"
	logger "log"
)

// Detector looks up the public holidays of a region and applies them to planning sessions
type Detector struct {
	log   *logger.Logger
	cache *Cache
}

// MakeDetector builds a Detector reading through cache
func MakeDetector(log *logger.Logger, cache *Cache) *Detector {
	return &Detector{
		log:   log,
		cache: cache,
	}
}

// Detect replaces the holidays of session with the public holidays of region for the session's year.
// The replacement is applied as a single SetDetectedHolidays action.
func (d *Detector) Detect(session *optimizer.Session, region holidays.Region) optimizer.State {
	year := session.State().SelectedYear
	found := d.cache.PublicHolidays(year, region)
	detected := make([]optimizer.Holiday, len(found))
	for i, h := range found {
		detected[i] = optimizer.Holiday{Date: h.Date, Name: h.Name}
	}
	d.log.Printf("detected %d holidays for %s/%s in %d\n", len(detected), region.Country, region.State, year)
	return session.Dispatch(optimizer.SetDetectedHolidays{Holidays: detected})
}
