package calendar

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"

	"offjournal/internal/domain"
	"offjournal/internal/ports"
)

const (
	icalVersion = "2.0"
	icalProdID  = "-//offjournal//Planner//EN"
	icalName    = "offjournal planner"
	uidDomain   = "offjournal"
)

// stubCalendar is written for an empty planner; a VCALENDAR without children does not encode
const stubCalendar = "BEGIN:VCALENDAR\r\nVERSION:" + icalVersion + "\r\nPRODID:" + icalProdID + "\r\nEND:VCALENDAR\r\n"

// Encoder implements ports.CalendarEncoder producing iCalendar (RFC 5545)
type Encoder struct {
	now func() time.Time
}

var _ ports.CalendarEncoder = (*Encoder)(nil)

// NewEncoder creates an iCalendar encoder
func NewEncoder() *Encoder {
	return &Encoder{now: time.Now}
}

// Encode writes one all-day VEVENT per planner event
func (e *Encoder) Encode(w io.Writer, events []domain.Event) error {
	if len(events) == 0 {
		_, err := io.WriteString(w, stubCalendar)
		return err
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, icalVersion)
	cal.Props.SetText(ical.PropProductID, icalProdID)
	cal.Props.SetText("X-WR-CALNAME", icalName)
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")

	stamp := ical.NewProp(ical.PropDateTimeStamp)
	stamp.SetDateTime(e.now().UTC())

	for _, ev := range events {
		day, err := domain.ParseDate(ev.Date)
		if err != nil {
			return fmt.Errorf("event %d: %w", ev.ID, err)
		}

		vevent := ical.NewEvent()
		vevent.Props.SetText(ical.PropUID, fmt.Sprintf("event-%d@%s", ev.ID, uidDomain))
		vevent.Props.SetText(ical.PropSummary, ev.Title)
		vevent.Props.Set(stamp)

		start := ical.NewProp(ical.PropDateTimeStart)
		start.SetDate(day)
		vevent.Props.Set(start)

		cal.Children = append(cal.Children, vevent.Component)
	}

	return ical.NewEncoder(w).Encode(cal)
}
