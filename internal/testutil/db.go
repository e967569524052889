// Package testutil holds helpers shared by package tests.
package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/argspec/internal/domain"
	"github.com/footprint-tools/argspec/internal/history"
	"github.com/footprint-tools/argspec/internal/history/migrations"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	err = migrations.Run(db)
	require.NoError(t, err, "failed to run migrations")

	return db
}

// NewTestHistory returns a history store over NewTestDB.
func NewTestHistory(t *testing.T) *history.Store {
	t.Helper()
	return history.NewWithDB(NewTestDB(t))
}

// SeedChecks inserts records into s.
func SeedChecks(t *testing.T, s domain.HistoryStore, records []domain.CheckRecord) {
	t.Helper()

	for _, rec := range records {
		err := s.Insert(rec)
		require.NoError(t, err, "failed to seed record: %+v", rec)
	}
}
