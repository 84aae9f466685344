package sqlite

import (
	"time"

	"offjournal/internal/domain"
)

// SyncFull replaces the index contents with entries
func (idx *Index) SyncFull(entries []domain.Entry) (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	var before int
	if err := idx.db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&before); err != nil {
		return nil, err
	}

	tx, err := idx.BeginTx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := tx.DeleteAll(); err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := tx.UpsertEntry(e); err != nil {
			return nil, err
		}
		stats.EntriesIndexed++
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	if removed := before - stats.EntriesIndexed; removed > 0 {
		stats.EntriesRemoved = removed
	}
	stats.Duration = time.Since(start)
	return stats, nil
}

// Upsert keeps a single entry current
func (idx *Index) Upsert(entry domain.Entry) error {
	tx, err := idx.BeginTx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.UpsertEntry(entry); err != nil {
		return err
	}
	return tx.Commit()
}

// Remove drops an entry from the index
func (idx *Index) Remove(id string) error {
	tx, err := idx.BeginTx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.DeleteEntry(id); err != nil {
		return err
	}
	return tx.Commit()
}
