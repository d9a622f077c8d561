package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/discovery/internal/database/repository"
)

func TestMigrateSeedAndQuery(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	require.NoError(t, RunMigrations(dbPath))
	require.NoError(t, RunMigrations(dbPath), "second run must be a no-op")

	v, dirty, err := Version(dbPath)
	require.NoError(t, err)
	require.False(t, dirty)
	require.Equal(t, uint(2), v)

	db, err := Open(dbPath, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, SeedDefaults(ctx, db))
	require.NoError(t, SeedDefaults(ctx, db))

	crewRepo := repository.NewCrewRepo(db)
	crew, err := crewRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, crew, 5)
	require.Equal(t, "Dave Bowman", crew[0].Name)
	require.Equal(t, CrewID("Dave Bowman"), crew[0].ID)

	frank, err := crewRepo.ByName(ctx, "Frank Poole")
	require.NoError(t, err)
	require.NotNil(t, frank)
	require.NoError(t, crewRepo.UpdateStatus(ctx, frank.ID, "lost"))
	frank, err = crewRepo.ByName(ctx, "Frank Poole")
	require.NoError(t, err)
	require.Equal(t, "lost", frank.Status)

	nobody, err := crewRepo.ByName(ctx, "Heywood Floyd")
	require.NoError(t, err)
	require.Nil(t, nobody)
}

func TestDoorRequests(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "doors.db")
	require.NoError(t, RunMigrations(dbPath))
	db, err := Open(dbPath, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := repository.NewDoorRequestRepo(db)
	base := time.Date(2001, time.April, 3, 22, 0, 0, 0, time.UTC)
	for i, outcome := range []string{"refused", "refused", "opened"} {
		require.NoError(t, repo.Insert(ctx, repository.DoorRequest{
			ID:          CrewID(outcome) + string(rune('a'+i)),
			RequestedBy: "Dave",
			Outcome:     outcome,
			Message:     "msg",
			RequestedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	recent, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, "opened", recent[0].Outcome)
	require.True(t, recent[0].RequestedAt.Equal(base.Add(2*time.Minute)))

	counts, err := repo.CountByOutcome(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string]int{"refused": 2, "opened": 1}, counts)
}

func TestCrewUpsert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "crew.db")
	require.NoError(t, RunMigrations(dbPath))
	db, err := Open(dbPath, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := repository.NewCrewRepo(db)
	floyd := repository.CrewMember{
		ID:        CrewID("Heywood Floyd"),
		Name:      "Heywood Floyd",
		Role:      "Chairman",
		Status:    "awake",
		SortOrder: 5,
	}
	require.NoError(t, repo.Upsert(ctx, floyd))

	floyd.Status = "hibernating"
	require.NoError(t, repo.Upsert(ctx, floyd))

	crew, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, crew, 1)
	require.Equal(t, "hibernating", crew[0].Status)
}

func TestOpenAppliesBusyTimeout(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		timeout time.Duration
		want    int
	}{
		{"configured", 1500 * time.Millisecond, 1500},
		{"default", 0, 5000},
	} {
		t.Run(tc.name, func(t *testing.T) {
			db, err := Open(filepath.Join(t.TempDir(), "busy.db"), tc.timeout)
			require.NoError(t, err)
			t.Cleanup(func() { _ = db.Close() })

			var got int
			require.NoError(t, db.QueryRow("PRAGMA busy_timeout").Scan(&got))
			require.Equal(t, tc.want, got)
		})
	}
}
