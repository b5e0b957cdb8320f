// Package records keeps a history of level clears in SQLite, using the
// pure-Go modernc.org/sqlite driver.
package records

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store is an open records database.
type Store struct {
	db *sql.DB
}

// Clear is one completed run through a level.
type Clear struct {
	ID     int64
	Level  string
	Frames int // simulation frames from level entry to the exit
	Deaths int // deaths on the way
	At     time.Time
}

// Open creates or opens the database at dbPath. A leading ~ expands to the
// home directory.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("records: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("records: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("records: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("records: cannot connect to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("records: migration failed: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS clears (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level TEXT NOT NULL,
			frames INTEGER NOT NULL,
			deaths INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_clears_best ON clears(level, frames ASC);
	`)
	return err
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordClear stores a finished run and returns its ID.
func (s *Store) RecordClear(level string, frames, deaths int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO clears (level, frames, deaths) VALUES (?, ?, ?)",
		level, frames, deaths,
	)
	if err != nil {
		return 0, fmt.Errorf("records: cannot save clear: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("records: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// Best returns the fastest clear of level. ok is false when the level has
// never been cleared.
func (s *Store) Best(level string) (c Clear, ok bool, err error) {
	clears, err := s.Top(level, 1)
	if err != nil || len(clears) == 0 {
		return Clear{}, false, err
	}
	return clears[0], true, nil
}

// Top returns up to limit clears of level, fastest first. Ties go to the
// earlier run.
func (s *Store) Top(level string, limit int) ([]Clear, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level, frames, deaths, created_at
		 FROM clears
		 WHERE level = ?
		 ORDER BY frames ASC, id ASC
		 LIMIT ?`,
		level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("records: cannot query clears: %w", err)
	}
	defer rows.Close()

	var clears []Clear
	for rows.Next() {
		var c Clear
		var createdAt any
		if err := rows.Scan(&c.ID, &c.Level, &c.Frames, &c.Deaths, &createdAt); err != nil {
			return nil, fmt.Errorf("records: cannot scan row: %w", err)
		}
		switch v := createdAt.(type) {
		case time.Time:
			c.At = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				c.At = parsed
			}
		}
		clears = append(clears, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("records: row iteration error: %w", err)
	}
	return clears, nil
}

// Levels lists every level with at least one clear, sorted by name.
func (s *Store) Levels() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT level FROM clears ORDER BY level")
	if err != nil {
		return nil, fmt.Errorf("records: cannot query levels: %w", err)
	}
	defer rows.Close()

	var levels []string
	for rows.Next() {
		var level string
		if err := rows.Scan(&level); err != nil {
			return nil, fmt.Errorf("records: cannot scan row: %w", err)
		}
		levels = append(levels, level)
	}
	return levels, rows.Err()
}

// FormatFrames renders a frame count as seconds at the given tick rate.
func FormatFrames(frames, tps int) string {
	if tps <= 0 {
		tps = 60
	}
	return fmt.Sprintf("%d.%02ds", frames/tps, (frames%tps)*100/tps)
}
