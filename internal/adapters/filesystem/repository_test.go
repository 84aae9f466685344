package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"offjournal/internal/application"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestRepository_CreateListGet(t *testing.T) {
	dataDir := t.TempDir()
	created := time.Date(2025, 7, 15, 10, 0, 0, 0, time.Local)
	repo := NewRepository(dataDir).WithClock(fixedClock(created))

	entry, err := repo.Create("My  First Entry")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if entry.ID != "20250715100000" {
		t.Errorf("expected id 20250715100000, got %s", entry.ID)
	}
	if entry.Filename != "20250715100000_My_First_Entry.md" {
		t.Errorf("unexpected filename %s", entry.Filename)
	}
	if entry.Title != "My First Entry" {
		t.Errorf("unexpected title %q", entry.Title)
	}

	full, err := repo.Get(entry.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	for _, want := range []string{"# My  First Entry", "Date: 2025-07-15 10:00:00", "Write your thoughts here..."} {
		if !strings.Contains(full.Content, want) {
			t.Errorf("content missing %q:\n%s", want, full.Content)
		}
	}
}

func TestRepository_ListNewestFirst(t *testing.T) {
	dataDir := t.TempDir()
	dir := filepath.Join(dataDir, EntriesDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{
		"20250101090000_Older.md",
		"20250715100000_Newer.md",
		"20250301120000.md",
		"notes.txt",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "20259999999999_Folder.md"), 0755); err != nil {
		t.Fatal(err)
	}

	entries, err := NewRepository(dataDir).List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := []struct{ id, title string }{
		{"20250715100000", "Newer"},
		{"20250301120000", "Untitled"},
		{"20250101090000", "Older"},
	}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d: %+v", len(want), len(entries), entries)
	}
	for i, w := range want {
		if entries[i].ID != w.id || entries[i].Title != w.title {
			t.Errorf("entries[%d] = %+v, want %s %q", i, entries[i], w.id, w.title)
		}
	}
}

func TestRepository_ListMissingFolder(t *testing.T) {
	entries, err := NewRepository(t.TempDir()).List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestRepository_CreateSameSecond(t *testing.T) {
	repo := NewRepository(t.TempDir()).WithClock(fixedClock(time.Date(2025, 7, 15, 10, 0, 0, 0, time.Local)))

	a, err := repo.Create("A")
	if err != nil {
		t.Fatal(err)
	}
	b, err := repo.Create("B")
	if err != nil {
		t.Fatal(err)
	}
	if a.ID == b.ID {
		t.Fatalf("both entries got id %s", a.ID)
	}
	if b.ID != "20250715100001" {
		t.Errorf("expected second entry one second later, got %s", b.ID)
	}
}

func TestRepository_UpdateDelete(t *testing.T) {
	repo := NewRepository(t.TempDir())

	entry, err := repo.Create("Scratch")
	if err != nil {
		t.Fatal(err)
	}

	if err := repo.Update(entry.ID, "new text"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	full, _ := repo.Get(entry.ID)
	if full.Content != "new text" {
		t.Errorf("content = %q", full.Content)
	}

	if err := repo.Delete(entry.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.Get(entry.ID); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Update(entry.ID, "x"); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound on update, got %v", err)
	}
}

func TestRepository_PathRejectsEmptyID(t *testing.T) {
	if _, err := NewRepository(t.TempDir()).Path("  "); !errors.Is(err, application.ErrInvalidID) {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
}

func TestRepository_CreateKeepsFilesInEntriesFolder(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		wantFile  string
		wantTitle string
	}{
		{"slash in title", "Work/Life", "20250715100000_Work_Life.md", "Work Life"},
		{"traversal", "x/../../../escaped", "20250715100000_x_.._.._.._escaped.md", "x .. .. .. escaped"},
		{"backslash traversal", `..\..\escaped`, "20250715100000_.._.._escaped.md", ".. .. escaped"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataDir := t.TempDir()
			created := time.Date(2025, 7, 15, 10, 0, 0, 0, time.Local)
			repo := NewRepository(dataDir).WithClock(fixedClock(created))

			entry, err := repo.Create(tt.title)
			if err != nil {
				t.Fatalf("Create(%q) failed: %v", tt.title, err)
			}
			if entry.ID != "20250715100000" {
				t.Errorf("ID = %q, want 20250715100000", entry.ID)
			}
			if entry.Filename != tt.wantFile {
				t.Errorf("Filename = %q, want %q", entry.Filename, tt.wantFile)
			}
			if entry.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", entry.Title, tt.wantTitle)
			}

			if _, err := os.Stat(filepath.Join(dataDir, EntriesDir, tt.wantFile)); err != nil {
				t.Errorf("expected entry file inside entries folder: %v", err)
			}
			top, err := os.ReadDir(dataDir)
			if err != nil {
				t.Fatal(err)
			}
			if len(top) != 1 || top[0].Name() != EntriesDir {
				t.Errorf("data dir should only hold %s, got %v", EntriesDir, top)
			}
			if _, err := os.Stat(filepath.Join(filepath.Dir(dataDir), "escaped.md")); !os.IsNotExist(err) {
				t.Errorf("file escaped the data directory")
			}
		})
	}
}

func TestRepository_PathRejectsSeparators(t *testing.T) {
	repo := NewRepository(t.TempDir())
	for _, id := range []string{"../entries", `..\x`} {
		if _, err := repo.Path(id); !errors.Is(err, application.ErrInvalidID) {
			t.Errorf("Path(%q): expected ErrInvalidID, got %v", id, err)
		}
	}
}
