package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// IDLayout is the timestamp layout used for entry identifiers
const IDLayout = "20060102150405"

// UntitledTitle is used when an entry filename carries no title part
const UntitledTitle = "Untitled"

// EntryExt is the file extension of entry files
const EntryExt = ".md"

// EntrySummary is the list form of a journal entry
type EntrySummary struct {
	ID       string `json:"id"`       // e.g., "20250715100000"
	Title    string `json:"title"`    // e.g., "My First Entry"
	Filename string `json:"filename"` // e.g., "20250715100000_My_First_Entry.md"
}

// Entry is a journal entry with its content
type Entry struct {
	EntrySummary
	Content string `json:"content"`
}

// ParseEntryFilename extracts id and title from an entry filename.
// "20250715100000_My_First_Entry.md" -> {ID: "20250715100000", Title: "My First Entry"}
func ParseEntryFilename(name string) EntrySummary {
	base := filepath.Base(name)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	id, rest, found := strings.Cut(stem, "_")
	title := UntitledTitle
	if found {
		title = strings.ReplaceAll(rest, "_", " ")
	}

	return EntrySummary{
		ID:       id,
		Title:    title,
		Filename: base,
	}
}

// FormatEntryFilename builds the filename for a new entry.
// Path separators count as whitespace and NUL bytes are dropped, then
// whitespace runs collapse into single underscores. The result never
// leaves the folder it is joined to.
func FormatEntryFilename(id, title string) string {
	safe := strings.Join(strings.Fields(strings.Map(filenameRune, title)), "_")
	if safe == "" {
		safe = UntitledTitle
	}
	return id + "_" + safe + EntryExt
}

func filenameRune(r rune) rune {
	if r == 0 {
		return -1
	}
	if r == '/' || r == '\\' || r == filepath.Separator {
		return ' '
	}
	return r
}

// NewEntryID returns the identifier for an entry created at t
func NewEntryID(t time.Time) string {
	return t.Format(IDLayout)
}

// InitialContent returns the seed content of a freshly created entry
func InitialContent(title string, created time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", strings.TrimSpace(title))
	fmt.Fprintf(&b, "Date: %s\n\n", created.Format("2006-01-02 15:04:05"))
	b.WriteString("Write your thoughts here...\n")
	return b.String()
}
