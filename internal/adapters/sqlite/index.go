package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"offjournal/internal/domain"
	"offjournal/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = "1"

// IndexFile is the default database name under the data directory
const IndexFile = "index.db"

// Index implements ports.EntryIndex using SQLite
type Index struct {
	db     *sql.DB
	dbPath string
}

// Ensure Index implements EntryIndex
var _ ports.EntryIndex = (*Index)(nil)

// NewIndex creates a new SQLite index
func NewIndex() *Index {
	return &Index{}
}

// Open initializes the index database at dbPath
func (idx *Index) Open(dbPath string) error {
	// Expand ~ in path
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}
	idx.dbPath = dbPath

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS entries (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			filename TEXT NOT NULL,
			content TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if err := idx.updateMeta(); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// NeedsFullRebuild returns true if the index was built by another schema
func (idx *Index) NeedsFullRebuild() bool {
	var version string
	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version)

	var count int
	idx.db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&count)

	return version != schemaVersion || count == 0
}

// updateMeta records the schema version
func (idx *Index) updateMeta() error {
	_, err := idx.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion)
	return err
}

// Search matches query against titles and content, newest first
func (idx *Index) Search(query string) ([]domain.EntrySummary, error) {
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"

	rows, err := idx.db.Query(`
		SELECT id, title, filename
		FROM entries
		WHERE lower(title) LIKE ? ESCAPE '\' OR lower(content) LIKE ? ESCAPE '\'
		ORDER BY filename DESC
	`, pattern, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.EntrySummary{}
	for rows.Next() {
		var e domain.EntrySummary
		if err := rows.Scan(&e.ID, &e.Title, &e.Filename); err != nil {
			return nil, err
		}
		results = append(results, e)
	}

	return results, rows.Err()
}

// escapeLike makes LIKE wildcards in s match literally
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// BeginTx starts a new transaction
func (idx *Index) BeginTx() (ports.IndexTx, error) {
	tx, err := idx.db.Begin()
	if err != nil {
		return nil, err
	}
	return &indexTx{tx: tx}, nil
}
