package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"offjournal/internal/application"
	"offjournal/internal/domain"
)

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

// memEntries is an in-memory EntryRepository
type memEntries struct {
	entries map[string]*domain.Entry
	next    int
	failErr error
}

func newMemEntries(seed ...domain.Entry) *memEntries {
	m := &memEntries{entries: make(map[string]*domain.Entry), next: 1}
	for i := range seed {
		e := seed[i]
		m.entries[e.ID] = &e
	}
	return m
}

func (m *memEntries) List() ([]domain.EntrySummary, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	var out []domain.EntrySummary
	for _, e := range m.entries {
		out = append(out, e.EntrySummary)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Filename > out[j].Filename })
	return out, nil
}

func (m *memEntries) Get(id string) (*domain.Entry, error) {
	e, ok := m.entries[id]
	if !ok {
		return nil, &application.NotFoundError{Kind: "entry", ID: id}
	}
	cp := *e
	return &cp, nil
}

func (m *memEntries) Create(title string) (*domain.EntrySummary, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	id := fmt.Sprintf("2025071510%04d", m.next)
	m.next++
	e := &domain.Entry{
		EntrySummary: domain.ParseEntryFilename(domain.FormatEntryFilename(id, title)),
		Content:      "# " + title + "\n",
	}
	m.entries[id] = e
	s := e.EntrySummary
	return &s, nil
}

func (m *memEntries) Update(id, content string) error {
	e, ok := m.entries[id]
	if !ok {
		return &application.NotFoundError{Kind: "entry", ID: id}
	}
	e.Content = content
	return nil
}

func (m *memEntries) Delete(id string) error {
	if _, ok := m.entries[id]; !ok {
		return &application.NotFoundError{Kind: "entry", ID: id}
	}
	delete(m.entries, id)
	return nil
}

func (m *memEntries) Path(id string) (string, error) {
	e, ok := m.entries[id]
	if !ok {
		return "", &application.NotFoundError{Kind: "entry", ID: id}
	}
	return "/journal/entries/" + e.Filename, nil
}

// memPlanner is an in-memory PlannerRepository
type memPlanner struct {
	events []domain.Event
}

func (m *memPlanner) List() ([]domain.Event, error) {
	out := make([]domain.Event, len(m.events))
	copy(out, m.events)
	return out, nil
}

func (m *memPlanner) Add(date, title string) (*domain.Event, error) {
	ev := domain.Event{ID: domain.NextEventID(m.events), Date: date, Title: title}
	m.events = append(m.events, ev)
	return &ev, nil
}

func (m *memPlanner) Update(id int, date, title string) error {
	for i := range m.events {
		if m.events[i].ID == id {
			m.events[i].Date = date
			m.events[i].Title = title
			return nil
		}
	}
	return &application.NotFoundError{Kind: "event", ID: fmt.Sprint(id)}
}

func (m *memPlanner) Delete(id int) error {
	for i := range m.events {
		if m.events[i].ID == id {
			m.events = append(m.events[:i], m.events[i+1:]...)
			return nil
		}
	}
	return &application.NotFoundError{Kind: "event", ID: fmt.Sprint(id)}
}

// lineEncoder writes one "date title" line per event
type lineEncoder struct{}

func (lineEncoder) Encode(w io.Writer, events []domain.Event) error {
	for _, ev := range events {
		if _, err := fmt.Fprintf(w, "%s %s\n", ev.Date, ev.Title); err != nil {
			return err
		}
	}
	return nil
}

// fakeEncryptor records calls instead of running gpg
type fakeEncryptor struct {
	available bool
	encrypted []string
}

func (f *fakeEncryptor) Encrypt(path, recipient string) (string, error) {
	f.encrypted = append(f.encrypted, path+":"+recipient)
	return path + ".gpg", nil
}

func (f *fakeEncryptor) Decrypt(path string) (string, error) {
	return strings.TrimSuffix(path, ".gpg"), nil
}

func (f *fakeEncryptor) IsAvailable() bool { return f.available }

// memMedia is an in-memory MediaStore
type memMedia struct {
	files map[string][]string
}

func (m *memMedia) Add(entryID, srcPath string) (string, error) {
	if m.files == nil {
		m.files = make(map[string][]string)
	}
	name := srcPath[strings.LastIndex(srcPath, "/")+1:]
	for _, f := range m.files[entryID] {
		if f == name {
			return "", application.ErrAlreadyExists
		}
	}
	m.files[entryID] = append(m.files[entryID], name)
	return name, nil
}

func (m *memMedia) List(entryID string) ([]string, error) {
	return m.files[entryID], nil
}

func (m *memMedia) Remove(entryID, filename string) error {
	files := m.files[entryID]
	for i, f := range files {
		if f == filename {
			m.files[entryID] = append(files[:i], files[i+1:]...)
			return nil
		}
	}
	return &application.NotFoundError{Kind: "attachment", ID: filename}
}
