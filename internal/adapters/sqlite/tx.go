package sqlite

import (
	"database/sql"

	"offjournal/internal/domain"
	"offjournal/internal/ports"
)

// indexTx implements ports.IndexTx
type indexTx struct {
	tx *sql.Tx
}

// Ensure indexTx implements IndexTx
var _ ports.IndexTx = (*indexTx)(nil)

// UpsertEntry inserts or updates an entry
func (t *indexTx) UpsertEntry(entry domain.Entry) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO entries (id, title, filename, content)
		VALUES (?, ?, ?, ?)
	`, entry.ID, entry.Title, entry.Filename, entry.Content)
	return err
}

// DeleteEntry removes an entry by id
func (t *indexTx) DeleteEntry(id string) error {
	_, err := t.tx.Exec(`DELETE FROM entries WHERE id = ?`, id)
	return err
}

// DeleteAll empties the index
func (t *indexTx) DeleteAll() error {
	_, err := t.tx.Exec(`DELETE FROM entries`)
	return err
}

// Commit commits the transaction
func (t *indexTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *indexTx) Rollback() error {
	return t.tx.Rollback()
}
