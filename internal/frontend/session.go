// Package frontend holds the diary and planner front-end state machine:
// the command dispatcher, the response router and the editor save lifecycle.
// It is independent of any rendering toolkit.
package frontend

import "offjournal/internal/domain"

// View is the top-level screen
type View int

const (
	ViewDiary View = iota
	ViewPlanner
)

func (v View) String() string {
	switch v {
	case ViewDiary:
		return "diary"
	case ViewPlanner:
		return "planner"
	default:
		return "unknown"
	}
}

// Status is the message shown in the status line
type Status struct {
	Text string
	// Persistent statuses stay until replaced
	Persistent bool
}

// Session is the transient UI state. It is rebuilt from backend responses
// and owned by exactly one Controller.
type Session struct {
	View View

	CurrentEntryID string
	Dirty          bool
	EditorOpen     bool
	Buffer         string
	// LastSaved is the content last sent to or received from the backend
	LastSaved string

	// AllEntries is the unfiltered list snapshot
	AllEntries     []domain.EntrySummary
	VisibleEntries []domain.EntrySummary
	Query          string

	Events       []domain.Event
	PlannerDate  string
	PlannerTitle string

	Mood   *domain.MoodReport
	Status Status

	// Busy counts in-flight requests per command family
	Busy map[string]int
}

func newSession() *Session {
	return &Session{
		View:           ViewDiary,
		AllEntries:     []domain.EntrySummary{},
		VisibleEntries: []domain.EntrySummary{},
		Events:         []domain.Event{},
		Busy:           make(map[string]int),
	}
}

// entryIndex returns the position of id in the visible list, or -1
func (s *Session) entryIndex(id string) int {
	if id == "" {
		return -1
	}
	for i, e := range s.VisibleEntries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// entryTitle looks up the title of id in the unfiltered cache
func (s *Session) entryTitle(id string) string {
	for _, e := range s.AllEntries {
		if e.ID == id {
			return e.Title
		}
	}
	return ""
}
