package holidayquery

import (
	"encoding/json"
	"fmt"
)

// Update announces that the holiday data for Country in Year changed.
// An empty Country or a Year of 0 covers every country or year.
type Update struct {
	Country string `json:"country"`
	Year    int    `json:"year"`
}

// ParseUpdate reads an Update from its JSON form
func ParseUpdate(data []byte) (Update, error) {
	var update Update
	if err := json.Unmarshal(data, &update); err != nil {
		return update, fmt.Errorf("unable to parse holiday update: %w", err)
	}
	return update, nil
}

// Apply drops the cached holiday lists covered by update, returning how many were dropped
func (c *Cache) Apply(update Update) int {
	return c.Invalidate(update.Country, update.Year)
}
