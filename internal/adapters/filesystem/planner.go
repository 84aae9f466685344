package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"offjournal/internal/application"
	"offjournal/internal/domain"
)

// PlannerFile is the name of the planner store under the data directory
const PlannerFile = "planner.json"

// PlannerStore implements ports.PlannerRepository on a single JSON file
type PlannerStore struct {
	mu   sync.Mutex
	path string
}

// NewPlannerStore creates a planner store rooted at dataDir
func NewPlannerStore(dataDir string) *PlannerStore {
	if strings.HasPrefix(dataDir, "~") {
		home, _ := os.UserHomeDir()
		dataDir = filepath.Join(home, dataDir[1:])
	}
	return &PlannerStore{path: filepath.Join(dataDir, PlannerFile)}
}

// List returns all events sorted by date
func (s *PlannerStore) List() ([]domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(), nil
}

// Add appends an event with the next free id
func (s *PlannerStore) Add(date, title string) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.load()
	ev := domain.Event{
		ID:    domain.NextEventID(events),
		Date:  date,
		Title: title,
	}
	if err := s.save(append(events, ev)); err != nil {
		return nil, err
	}
	return &ev, nil
}

// Update replaces the date and title of an event
func (s *PlannerStore) Update(id int, date, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.load()
	for i := range events {
		if events[i].ID == id {
			events[i].Date = date
			events[i].Title = title
			return s.save(events)
		}
	}
	return &application.NotFoundError{Kind: "event", ID: strconv.Itoa(id)}
}

// Delete removes an event
func (s *PlannerStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.load()
	for i := range events {
		if events[i].ID == id {
			return s.save(append(events[:i], events[i+1:]...))
		}
	}
	return &application.NotFoundError{Kind: "event", ID: strconv.Itoa(id)}
}

// load reads the planner file. A missing or corrupt file reads as empty.
func (s *PlannerStore) load() []domain.Event {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []domain.Event{}
	}
	var events []domain.Event
	if err := json.Unmarshal(data, &events); err != nil || events == nil {
		return []domain.Event{}
	}
	domain.SortEvents(events)
	return events
}

func (s *PlannerStore) save(events []domain.Event) error {
	domain.SortEvents(events)

	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data folder: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write planner: %w", err)
	}
	return os.Rename(tmp, s.path)
}
