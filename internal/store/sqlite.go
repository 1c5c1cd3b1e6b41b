package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteBackend stores the slot as a single row in a SQLite database.
type SQLiteBackend struct {
	db *sql.DB
}

const slotKey = "notes"

// DefaultDBPath returns the default database path.
func DefaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".quicktranscript", "notes.sqlite")
}

// OpenSQLite opens (creating if needed) the slot database at path.
func OpenSQLite(path string) (*SQLiteBackend, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Verify connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS slots (
			k TEXT PRIMARY KEY,
			v BLOB NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteBackend{db: db}, nil
}

// Close closes the database connection.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

func (b *SQLiteBackend) Load() ([]byte, bool, error) {
	var data []byte
	err := b.db.QueryRow(`SELECT v FROM slots WHERE k = ?`, slotKey).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load slot: %w", err)
	}
	return data, true, nil
}

func (b *SQLiteBackend) Save(data []byte) error {
	_, err := b.db.Exec(`
		INSERT INTO slots (k, v) VALUES (?, ?)
		ON CONFLICT(k) DO UPDATE SET v = excluded.v
	`, slotKey, data)
	if err != nil {
		return fmt.Errorf("save slot: %w", err)
	}
	return nil
}

func (b *SQLiteBackend) Delete() error {
	if _, err := b.db.Exec(`DELETE FROM slots WHERE k = ?`, slotKey); err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}
	return nil
}
