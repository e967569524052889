package history_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/argspec/internal/domain"
	"github.com/footprint-tools/argspec/internal/history"
	"github.com/footprint-tools/argspec/internal/testutil"
)

func sampleRecords(base time.Time) []domain.CheckRecord {
	return []domain.CheckRecord{
		{ID: "a", SpecPath: "hello.yaml", Command: "hello", Args: []string{"bob"}, Outcome: domain.OutcomeOK, Timestamp: base},
		{ID: "b", SpecPath: "hello.yaml", Command: "hello", Args: []string{"-size", "x"}, Outcome: domain.OutcomeError,
			ErrorKind: "garbage at end of number", Message: "Garbage at end of number: 'x' in -size", Timestamp: base.Add(time.Minute)},
		{ID: "c", SpecPath: "demo.toml", Command: "demo", Args: []string{"-h"}, Outcome: domain.OutcomeHelp, Flags: 1 << 3, Timestamp: base.Add(2 * time.Minute)},
	}
}

func TestStore_InsertAndList(t *testing.T) {
	s := testutil.NewTestHistory(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	testutil.SeedChecks(t, s, sampleRecords(base))

	got, err := s.List(domain.CheckFilter{})
	require.NoError(t, err)
	require.Len(t, got, 3)

	// newest first
	require.Equal(t, "c", got[0].ID)
	require.Equal(t, "a", got[2].ID)

	require.Equal(t, []string{"-h"}, got[0].Args)
	require.Equal(t, uint32(8), got[0].Flags)
	require.True(t, base.Add(2*time.Minute).Equal(got[0].Timestamp))

	require.Equal(t, domain.OutcomeError, got[1].Outcome)
	require.Equal(t, "garbage at end of number", got[1].ErrorKind)
}

func TestStore_ListFilter(t *testing.T) {
	s := testutil.NewTestHistory(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	testutil.SeedChecks(t, s, sampleRecords(base))

	since := base.Add(30 * time.Second)

	tests := []struct {
		name   string
		filter domain.CheckFilter
		want   []string
	}{
		{"spec path", domain.CheckFilter{SpecPath: "hello.yaml"}, []string{"b", "a"}},
		{"outcome", domain.CheckFilter{Outcome: domain.OutcomeHelp}, []string{"c"}},
		{"since", domain.CheckFilter{Since: &since}, []string{"c", "b"}},
		{"limit", domain.CheckFilter{Limit: 1}, []string{"c"}},
		{"combined", domain.CheckFilter{SpecPath: "hello.yaml", Since: &since}, []string{"b"}},
		{"no match", domain.CheckFilter{SpecPath: "nope"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.List(tt.filter)
			require.NoError(t, err)

			var ids []string
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			require.Equal(t, tt.want, ids)
		})
	}
}

func TestStore_InsertDefaults(t *testing.T) {
	s := testutil.NewTestHistory(t)

	require.NoError(t, s.Insert(domain.CheckRecord{SpecPath: "x.yaml", Command: "x", Outcome: domain.OutcomeOK}))

	got, err := s.List(domain.CheckFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].ID, 36)
	require.Equal(t, []string{}, got[0].Args)
	require.WithinDuration(t, time.Now(), got[0].Timestamp, time.Minute)
}

func TestStore_SubSecondOrder(t *testing.T) {
	s := testutil.NewTestHistory(t)
	base := time.Date(2026, 3, 1, 12, 0, 5, 0, time.UTC)
	testutil.SeedChecks(t, s, []domain.CheckRecord{
		{ID: "older", Command: "x", Outcome: domain.OutcomeOK, Timestamp: base},
		{ID: "newer", Command: "x", Outcome: domain.OutcomeOK, Timestamp: base.Add(500 * time.Millisecond)},
	})

	ids := func(filter domain.CheckFilter) []string {
		got, err := s.List(filter)
		require.NoError(t, err)
		var out []string
		for _, r := range got {
			out = append(out, r.ID)
		}
		return out
	}

	require.Equal(t, []string{"newer", "older"}, ids(domain.CheckFilter{}))

	since := base.Add(250 * time.Millisecond)
	require.Equal(t, []string{"newer"}, ids(domain.CheckFilter{Since: &since}))

	got, err := s.List(domain.CheckFilter{Limit: 1})
	require.NoError(t, err)
	require.True(t, base.Add(500*time.Millisecond).Equal(got[0].Timestamp))
}

func TestStore_InsertRejects(t *testing.T) {
	s := testutil.NewTestHistory(t)
	require.Error(t, s.Insert(domain.CheckRecord{Outcome: "maybe"}))

	require.NoError(t, s.Insert(domain.CheckRecord{ID: "dup", Outcome: domain.OutcomeOK}))
	require.Error(t, s.Insert(domain.CheckRecord{ID: "dup", Outcome: domain.OutcomeOK}))
}

func TestStore_CountAndClear(t *testing.T) {
	s := testutil.NewTestHistory(t)
	testutil.SeedChecks(t, s, sampleRecords(time.Now()))

	n, err := s.Count()
	require.NoError(t, err)
	require.Equal(t, int64(3), n)

	removed, err := s.Clear()
	require.NoError(t, err)
	require.Equal(t, int64(3), removed)

	n, err = s.Count()
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")

	s, err := history.New(path)
	require.NoError(t, err)
	require.Equal(t, path, s.Path())

	require.NoError(t, s.Insert(domain.CheckRecord{Command: "x", Outcome: domain.OutcomeOK}))
	require.NoError(t, s.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// reopening keeps records and skips applied migrations
	s, err = history.New(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	n, err := s.Count()
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}
