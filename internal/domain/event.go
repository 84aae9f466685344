package domain

import (
	"cmp"
	"slices"
	"time"
)

// DateLayout is the only accepted planner date format
const DateLayout = "2006-01-02"

// Event is a date-stamped planner event
type Event struct {
	ID    int    `json:"id"`
	Date  string `json:"date"` // YYYY-MM-DD
	Title string `json:"title"`
}

// ParseDate parses a planner date
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// SortEvents sorts events by date, then by id
func SortEvents(events []Event) {
	slices.SortFunc(events, func(a, b Event) int {
		if c := cmp.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// NextEventID returns max(id)+1, or 1 for an empty planner
func NextEventID(events []Event) int {
	next := 0
	for _, ev := range events {
		if ev.ID > next {
			next = ev.ID
		}
	}
	return next + 1
}
