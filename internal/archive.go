package internal

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// The archive mirrors the session history into a SQLite database so it can
// be queried with ad-hoc SQL or other tooling. The JSON snapshot stays the
// source of truth; every sync rebuilds the table from it.

const archiveSchema = `
CREATE TABLE IF NOT EXISTS sessions (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	project          TEXT NOT NULL,
	description      TEXT NOT NULL DEFAULT '',
	kind             TEXT NOT NULL,
	start_time       TEXT NOT NULL,
	end_time         TEXT NOT NULL,
	duration_seconds REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_project ON sessions(project);
`

// OpenArchive opens (creating if needed) the archive database at path.
func OpenArchive(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("archive ping failed: %w", err)
	}

	if _, err := db.Exec(archiveSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create archive schema: %w", err)
	}

	return db, nil
}

// SyncArchive replaces the archive contents with sessions, in one
// transaction. It returns the number of rows written.
func SyncArchive(db *sql.DB, sessions []Session) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin archive transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM sessions"); err != nil {
		return 0, fmt.Errorf("failed to clear archive: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO sessions
		(project, description, kind, start_time, end_time, duration_seconds)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare archive insert: %w", err)
	}
	defer stmt.Close()

	for _, sess := range sessions {
		_, err := stmt.Exec(
			sess.Project,
			sess.Description,
			string(sess.Kind),
			sess.Start.Format(time.RFC3339Nano),
			sess.End.Format(time.RFC3339Nano),
			sess.Duration().Seconds(),
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert session for %s: %w", sess.Project, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit archive transaction: %w", err)
	}

	return len(sessions), nil
}

// ArchiveTotals reads per-project totals back out of the archive, ordered
// by accumulated time descending.
func ArchiveTotals(db *sql.DB) ([]ProjectTotal, error) {
	rows, err := db.Query(`SELECT project, SUM(duration_seconds)
		FROM sessions GROUP BY project ORDER BY SUM(duration_seconds) DESC`)
	if err != nil {
		return nil, fmt.Errorf("archive query failed: %w", err)
	}
	defer rows.Close()

	var totals []ProjectTotal
	for rows.Next() {
		var project string
		var seconds float64
		if err := rows.Scan(&project, &seconds); err != nil {
			return nil, fmt.Errorf("archive scan failed: %w", err)
		}
		totals = append(totals, ProjectTotal{
			Project: project,
			Total:   time.Duration(seconds * float64(time.Second)),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("archive rows iteration error: %w", err)
	}

	return totals, nil
}
