package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func sampleRun(quantum int) *Run {
	return &Run{
		Source:          "programas",
		Quantum:         quantum,
		IOWait:          2,
		Promotion:       "head",
		Averages:        "integer",
		Processes:       3,
		Switches:        7,
		Instructions:    11,
		AvgSwitches:     2,
		AvgInstructions: 1,
		Trace:           "Carregando A\nQUANTUM: 2\n",
	}
}

func TestSaveRun_AssignsIDAndTimestamp(t *testing.T) {
	store := newTestStore(t)
	r := sampleRun(2)

	require.NoError(t, store.SaveRun(context.Background(), r))

	assert.True(t, strings.HasPrefix(r.ID, "run_"), "id %q", r.ID)
	assert.False(t, r.CreatedAt.IsZero())
}

func TestGetRun_RoundTripsEveryField(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	r := sampleRun(2)
	r.CreatedAt = time.Date(2024, 3, 1, 12, 30, 0, 123, time.UTC)
	require.NoError(t, store.SaveRun(ctx, r))

	got, err := store.GetRun(ctx, r.ID)
	require.NoError(t, err)

	assert.Equal(t, r, got)
}

func TestGetRun_UnknownID(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetRun(context.Background(), "run_missing")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "run_missing")
}

func TestSaveRun_DuplicateID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	r := sampleRun(1)
	r.ID = "run_fixed"
	require.NoError(t, store.SaveRun(ctx, r))

	dup := sampleRun(2)
	dup.ID = "run_fixed"
	assert.Error(t, store.SaveRun(ctx, dup))
}

func TestListRuns_NewestFirstWithoutTrace(t *testing.T) {
	// GIVEN three runs created a minute apart
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for q := 1; q <= 3; q++ {
		r := sampleRun(q)
		r.CreatedAt = base.Add(time.Duration(q) * time.Minute)
		require.NoError(t, store.SaveRun(ctx, r))
	}

	// WHEN listed
	runs, err := store.ListRuns(ctx, 0)
	require.NoError(t, err)

	// THEN the newest comes first and traces are omitted
	require.Len(t, runs, 3)
	assert.Equal(t, []int{3, 2, 1}, []int{runs[0].Quantum, runs[1].Quantum, runs[2].Quantum})
	for _, r := range runs {
		assert.Empty(t, r.Trace)
	}

	limited, err := store.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestListRuns_Empty(t *testing.T) {
	store := newTestStore(t)

	runs, err := store.ListRuns(context.Background(), 10)

	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestMigrate_Idempotent(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Migrate(context.Background()))
}
