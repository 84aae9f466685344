package ports

import (
	"io"

	"offjournal/internal/domain"
)

// CalendarEncoder writes planner events in a calendar interchange format
type CalendarEncoder interface {
	Encode(w io.Writer, events []domain.Event) error
}
