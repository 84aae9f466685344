package ports

import "offjournal/internal/domain"

// EntryRepository defines the interface for journal entry storage
type EntryRepository interface {
	// List returns all entries, newest first
	List() ([]domain.EntrySummary, error)

	// Get returns the entry whose id prefixes a stored filename
	Get(id string) (*domain.Entry, error)

	// Create stores a new entry with seeded content
	Create(title string) (*domain.EntrySummary, error)

	// Update replaces the content of an existing entry
	Update(id, content string) error

	// Delete removes an entry
	Delete(id string) error

	// Path resolves the file backing an entry
	Path(id string) (string, error)
}

// PlannerRepository defines the interface for planner event storage
type PlannerRepository interface {
	List() ([]domain.Event, error)
	Add(date, title string) (*domain.Event, error)
	Update(id int, date, title string) error
	Delete(id int) error
}
