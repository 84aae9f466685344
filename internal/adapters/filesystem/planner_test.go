package filesystem

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"offjournal/internal/application"
	"offjournal/internal/domain"
)

func TestPlannerStore_AddSortsAndNumbers(t *testing.T) {
	dataDir := t.TempDir()
	store := NewPlannerStore(dataDir)

	for _, in := range []struct{ date, title string }{
		{"2025-09-01", "C"},
		{"2025-07-15", "A"},
		{"2025-07-15", "B"},
	} {
		if _, err := store.Add(in.date, in.title); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	events, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []domain.Event{
		{ID: 2, Date: "2025-07-15", Title: "A"},
		{ID: 3, Date: "2025-07-15", Title: "B"},
		{ID: 1, Date: "2025-09-01", Title: "C"},
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %+v, want %+v", i, events[i], want[i])
		}
	}

	// the file itself is kept sorted
	data, err := os.ReadFile(filepath.Join(dataDir, PlannerFile))
	if err != nil {
		t.Fatal(err)
	}
	var onDisk []domain.Event
	if err := json.Unmarshal(data, &onDisk); err != nil {
		t.Fatal(err)
	}
	if onDisk[0].ID != 2 {
		t.Errorf("file not sorted: %+v", onDisk)
	}
}

func TestPlannerStore_IDsFollowMax(t *testing.T) {
	store := NewPlannerStore(t.TempDir())
	store.Add("2025-01-01", "one")
	store.Add("2025-01-02", "two")
	store.Add("2025-01-03", "three")

	if err := store.Delete(2); err != nil {
		t.Fatal(err)
	}
	ev, err := store.Add("2025-01-04", "four")
	if err != nil {
		t.Fatal(err)
	}
	if ev.ID != 4 {
		t.Errorf("expected id 4, got %d", ev.ID)
	}
}

func TestPlannerStore_UpdateDeleteUnknown(t *testing.T) {
	store := NewPlannerStore(t.TempDir())
	store.Add("2025-01-01", "one")

	if err := store.Update(7, "2025-01-01", "x"); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("Update: expected ErrNotFound, got %v", err)
	}
	if err := store.Delete(7); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("Delete: expected ErrNotFound, got %v", err)
	}

	if err := store.Update(1, "2024-12-31", "moved"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	events, _ := store.List()
	if events[0].Date != "2024-12-31" || events[0].Title != "moved" {
		t.Errorf("event not updated: %+v", events[0])
	}
}

func TestPlannerStore_CorruptFileReadsEmpty(t *testing.T) {
	dataDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dataDir, PlannerFile), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewPlannerStore(dataDir)
	events, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected empty planner, got %+v", events)
	}

	ev, err := store.Add("2025-01-01", "fresh")
	if err != nil {
		t.Fatal(err)
	}
	if ev.ID != 1 {
		t.Errorf("expected id 1, got %d", ev.ID)
	}
}
