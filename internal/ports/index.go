package ports

import "offjournal/internal/domain"

// EntryIndex provides searchable access to entry titles and content.
// The index is a cache; the entry repository stays the source of truth.
type EntryIndex interface {
	// Lifecycle
	Open(dbPath string) error
	Close() error

	// SyncFull rebuilds the index from the given entries
	SyncFull(entries []domain.Entry) (*domain.SyncStats, error)

	// Upsert and Remove keep a single entry current
	Upsert(entry domain.Entry) error
	Remove(id string) error

	// Search matches query against titles and content, newest first
	Search(query string) ([]domain.EntrySummary, error)

	// Batch updates
	BeginTx() (IndexTx, error)
}

// IndexTx represents a transaction for atomic index updates
type IndexTx interface {
	UpsertEntry(entry domain.Entry) error
	DeleteEntry(id string) error
	DeleteAll() error

	Commit() error
	Rollback() error
}
