package frontend

import (
	"fmt"

	"offjournal/internal/bridge"
)

// EntryRow is one line of the diary list
type EntryRow struct {
	ID       string
	Title    string
	Selected bool
}

// EventRow is one line of the planner list
type EventRow struct {
	ID    int
	Date  string
	Title string
}

// ViewModel is everything a renderer needs to draw the current screen
type ViewModel struct {
	View View

	Entries      []EntryRow
	Query        string
	EmptyMessage string
	ShowWelcome  bool

	EntryID    string
	EntryTitle string
	Content    string
	Dirty      bool
	Mood       string

	Events       []EventRow
	PlannerDate  string
	PlannerTitle string

	Status           string
	StatusPersistent bool
	DiaryBusy        bool
	PlannerBusy      bool
}

// Project derives the view model from a session. It has no side effects.
func Project(s *Session) ViewModel {
	vm := ViewModel{
		View:             s.View,
		Query:            s.Query,
		ShowWelcome:      !s.EditorOpen,
		PlannerDate:      s.PlannerDate,
		PlannerTitle:     s.PlannerTitle,
		Status:           s.Status.Text,
		StatusPersistent: s.Status.Persistent,
		DiaryBusy:        s.Busy[bridge.FamilyDiary] > 0,
		PlannerBusy:      s.Busy[bridge.FamilyPlanner] > 0,
	}

	vm.Entries = make([]EntryRow, 0, len(s.VisibleEntries))
	for _, e := range s.VisibleEntries {
		vm.Entries = append(vm.Entries, EntryRow{
			ID:       e.ID,
			Title:    e.Title,
			Selected: e.ID == s.CurrentEntryID,
		})
	}
	switch {
	case len(vm.Entries) > 0:
	case s.Query != "":
		vm.EmptyMessage = fmt.Sprintf("No entries match %q.", s.Query)
	default:
		vm.EmptyMessage = "No entries yet. Create one to get started."
	}

	if s.EditorOpen {
		vm.EntryID = s.CurrentEntryID
		vm.EntryTitle = s.entryTitle(s.CurrentEntryID)
		vm.Content = s.Buffer
		vm.Dirty = s.Dirty
	}
	if s.Mood != nil {
		vm.Mood = fmt.Sprintf("%s (+%d / -%d)", s.Mood.Mood, s.Mood.PositiveScore, s.Mood.NegativeScore)
	}

	vm.Events = make([]EventRow, 0, len(s.Events))
	for _, ev := range s.Events {
		vm.Events = append(vm.Events, EventRow{ID: ev.ID, Date: ev.Date, Title: ev.Title})
	}

	return vm
}
