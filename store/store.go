// Package store persists user plugin decisions in a small SQLite
// database under the data directory, so enabling or disabling a tab
// survives application restarts.
package store

import (
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/yllada/tabdeck/common"
)

const schema = `
CREATE TABLE IF NOT EXISTS plugin_state (
	name    TEXT PRIMARY KEY,
	enabled INTEGER NOT NULL DEFAULT 1
);
`

// SQLiteStore implements common.PluginStateStore on a SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

var _ common.PluginStateStore = (*SQLiteStore)(nil)

// Open creates or opens the state database at path and ensures the
// schema exists.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, common.WrapError(err, "failed to open plugin state database")
	}
	// The database is tiny and accessed from UI callbacks only; one
	// connection avoids SQLITE_BUSY on concurrent writes.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, common.WrapError(err, "failed to initialize plugin state schema")
	}
	return &SQLiteStore{db: db}, nil
}

// DisabledNames returns the names of all plugins the user disabled.
func (s *SQLiteStore) DisabledNames() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM plugin_state WHERE enabled = 0`)
	if err != nil {
		return nil, common.WrapError(err, "failed to query plugin state")
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, common.WrapError(err, "failed to scan plugin state row")
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, common.WrapError(err, "failed to read plugin state")
	}
	return names, nil
}

// SetEnabled records one plugin decision, inserting or updating as
// needed.
func (s *SQLiteStore) SetEnabled(name string, enabled bool) error {
	val := 0
	if enabled {
		val = 1
	}
	_, err := s.db.Exec(`
		INSERT INTO plugin_state (name, enabled) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET enabled = excluded.enabled`,
		name, val)
	if err != nil {
		return common.WrapError(err, "failed to save plugin state")
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
