package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"offjournal/internal/application"
	"offjournal/internal/domain"
)

// EntriesDir is the folder under the data directory holding entry files
const EntriesDir = "entries"

// Repository implements ports.EntryRepository using one markdown file per entry
type Repository struct {
	dir string
	now func() time.Time
}

// NewRepository creates a new filesystem repository rooted at dataDir
func NewRepository(dataDir string) *Repository {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~") {
		home, _ := os.UserHomeDir()
		dataDir = filepath.Join(home, dataDir[1:])
	}
	return &Repository{
		dir: filepath.Join(dataDir, EntriesDir),
		now: time.Now,
	}
}

// WithClock replaces the clock used to stamp new entries
func (r *Repository) WithClock(now func() time.Time) *Repository {
	r.now = now
	return r
}

// Dir returns the entries folder
func (r *Repository) Dir() string {
	return r.dir
}

// List returns all entries, newest first
func (r *Repository) List() ([]domain.EntrySummary, error) {
	files, err := os.ReadDir(r.dir)
	if os.IsNotExist(err) {
		return []domain.EntrySummary{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	var names []string
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != domain.EntryExt {
			continue
		}
		names = append(names, f.Name())
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	entries := make([]domain.EntrySummary, 0, len(names))
	for _, name := range names {
		entries = append(entries, domain.ParseEntryFilename(name))
	}
	return entries, nil
}

// Get returns the entry whose filename starts with id
func (r *Repository) Get(id string) (*domain.Entry, error) {
	path, err := r.Path(id)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read entry %s: %w", id, err)
	}

	return &domain.Entry{
		EntrySummary: domain.ParseEntryFilename(path),
		Content:      string(data),
	}, nil
}

// Create writes a new entry stamped with the current time.
// When an entry already holds that second the stamp moves forward.
func (r *Repository) Create(title string) (*domain.EntrySummary, error) {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create entries folder: %w", err)
	}

	created := r.now()
	id := domain.NewEntryID(created)
	for r.exists(id) {
		created = created.Add(time.Second)
		id = domain.NewEntryID(created)
	}

	name := domain.FormatEntryFilename(id, title)
	path := filepath.Join(r.dir, name)
	if filepath.Dir(path) != r.dir {
		return nil, &application.ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("title %q does not make a valid file name", title),
		}
	}
	if err := os.WriteFile(path, []byte(domain.InitialContent(title, created)), 0644); err != nil {
		return nil, fmt.Errorf("failed to write entry: %w", err)
	}

	s := domain.ParseEntryFilename(name)
	return &s, nil
}

// Update replaces the content of an existing entry
func (r *Repository) Update(id, content string) error {
	path, err := r.Path(id)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write entry %s: %w", id, err)
	}
	return nil
}

// Delete removes an entry file
func (r *Repository) Delete(id string) error {
	path, err := r.Path(id)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

// Path resolves the file backing an entry
func (r *Repository) Path(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.ContainsAny(id, `/\`) {
		return "", application.ErrInvalidID
	}

	files, err := os.ReadDir(r.dir)
	if err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to read entries: %w", err)
	}

	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != domain.EntryExt {
			continue
		}
		if strings.HasPrefix(f.Name(), id) {
			return filepath.Join(r.dir, f.Name()), nil
		}
	}

	return "", &application.NotFoundError{Kind: "entry", ID: id}
}

func (r *Repository) exists(id string) bool {
	_, err := r.Path(id)
	return err == nil
}
