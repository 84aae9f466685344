package domain

import "testing"

func TestSortEvents(t *testing.T) {
	events := []Event{
		{ID: 3, Date: "2026-01-01", Title: "New year"},
		{ID: 2, Date: "2025-10-31", Title: "Halloween"},
		{ID: 1, Date: "2025-10-31", Title: "Costume shopping"},
	}

	SortEvents(events)

	wantIDs := []int{1, 2, 3}
	for i, id := range wantIDs {
		if events[i].ID != id {
			t.Fatalf("position %d: expected id %d, got %d", i, id, events[i].ID)
		}
	}
}

func TestNextEventID(t *testing.T) {
	if got := NextEventID(nil); got != 1 {
		t.Errorf("empty planner: expected 1, got %d", got)
	}
	if got := NextEventID([]Event{{ID: 4}, {ID: 2}}); got != 5 {
		t.Errorf("expected 5, got %d", got)
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2025-12-25"); err != nil {
		t.Errorf("expected valid date, got %v", err)
	}
	if _, err := ParseDate("25-12-2025"); err == nil {
		t.Error("expected error for day-first date")
	}
}
