// Package history records check runs in a SQLite database.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/footprint-tools/argspec/internal/domain"
	"github.com/footprint-tools/argspec/internal/history/migrations"
	"github.com/footprint-tools/argspec/internal/log"
)

// timestampLayout is fixed-width so stored timestamps sort in time order.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps a SQLite connection holding check records.
// It implements domain.HistoryStore.
type Store struct {
	db   *sql.DB
	path string
}

// New opens (creating if needed) the database at path and runs migrations.
func New(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}

	log.Debug("history: opening database at %s", path)

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err = configureSQLite(db, path); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// NewWithDB wraps an existing connection. Migrations are not run.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Path returns the database path, empty for NewWithDB stores.
func (s *Store) Path() string { return s.path }

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func configureSQLite(db *sql.DB, path string) error {
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
		return nil
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return nil
}

// setDBPermissions restricts the database and its WAL/SHM files to the owner.
func setDBPermissions(path string) {
	if path == ":memory:" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// Insert adds rec. An empty ID gets a random UUID and a zero Timestamp
// becomes now.
func (s *Store) Insert(rec domain.CheckRecord) error {
	if !rec.Outcome.IsValid() {
		return fmt.Errorf("history: invalid outcome %q", rec.Outcome)
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}
	if rec.Args == nil {
		rec.Args = []string{}
	}

	args, err := json.Marshal(rec.Args)
	if err != nil {
		return fmt.Errorf("encode args: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO checks
		 (id, spec_path, command, args, outcome, error_kind, message, flags, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.SpecPath,
		rec.Command,
		string(args),
		string(rec.Outcome),
		rec.ErrorKind,
		rec.Message,
		int64(rec.Flags),
		rec.Timestamp.UTC().Format(timestampLayout),
	)
	return err
}

// List returns records matching filter, newest first.
func (s *Store) List(filter domain.CheckFilter) ([]domain.CheckRecord, error) {
	query := `
		SELECT id, spec_path, command, args, outcome, error_kind, message, flags, timestamp
		FROM checks
	`

	var (
		clauses []string
		args    []any
	)

	if filter.SpecPath != "" {
		clauses = append(clauses, "spec_path = ?")
		args = append(args, filter.SpecPath)
	}

	if filter.Outcome != "" {
		clauses = append(clauses, "outcome = ?")
		args = append(args, string(filter.Outcome))
	}

	if filter.Since != nil {
		clauses = append(clauses, "timestamp >= ?")
		args = append(args, filter.Since.UTC().Format(timestampLayout))
	}

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY timestamp DESC, rowid DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CheckRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Count returns the number of stored records.
func (s *Store) Count() (int64, error) {
	var n int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM checks").Scan(&n)
	return n, err
}

// Clear deletes every record.
func (s *Store) Clear() (int64, error) {
	res, err := s.db.Exec("DELETE FROM checks")
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanRecord(rows *sql.Rows) (domain.CheckRecord, error) {
	var (
		rec     domain.CheckRecord
		args    string
		outcome string
		flags   int64
		ts      string
	)

	if err := rows.Scan(
		&rec.ID,
		&rec.SpecPath,
		&rec.Command,
		&args,
		&outcome,
		&rec.ErrorKind,
		&rec.Message,
		&flags,
		&ts,
	); err != nil {
		return domain.CheckRecord{}, err
	}

	if err := json.Unmarshal([]byte(args), &rec.Args); err != nil {
		return domain.CheckRecord{}, fmt.Errorf("decode args of %s: %w", rec.ID, err)
	}

	t, err := time.Parse(timestampLayout, ts)
	if err != nil {
		return domain.CheckRecord{}, err
	}

	rec.Outcome = domain.Outcome(outcome)
	rec.Flags = uint32(flags)
	rec.Timestamp = t
	return rec, nil
}

var _ domain.HistoryStore = (*Store)(nil)
