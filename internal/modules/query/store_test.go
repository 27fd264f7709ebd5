// README: Memory store tests (run with -race).
package query

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelrelay/internal/modules/prompt"
	"travelrelay/internal/types"
)

func TestMemoryStoreAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	for i := 1; i <= 3; i++ {
		r, err := store.Append(ctx, Record{ID: 99, Destination: types.Text("Goa")})
		require.NoError(t, err)
		assert.Equal(t, i, r.ID)
	}

	list, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, r := range list {
		assert.Equal(t, i+1, r.ID)
	}
}

func TestMemoryStoreListIsSnapshot(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_, _ = store.Append(ctx, Record{Response: "first"})

	list, _ := store.List(ctx)
	list[0].Response = "mutated"

	again, _ := store.List(ctx)
	assert.Equal(t, "first", again[0].Response)
}

func TestMemoryStoreConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	const n = 200
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Append(ctx, Record{})
			_, _ = store.List(ctx)
		}()
	}
	wg.Wait()

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, n)
	seen := make(map[int]bool, n)
	for i, r := range list {
		assert.Equal(t, i+1, r.ID)
		seen[r.ID] = true
	}
	assert.Len(t, seen, n)
}

func TestNewRecordDefaults(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 7, 42, 0, time.Local)
	r := NewRecord(prompt.Request{}, "reply", now)

	assert.Equal(t, "Unknown", r.Destination.String())
	assert.Equal(t, "Unknown", r.Days.String())
	assert.Equal(t, "Unknown", r.Budget.String())
	assert.Equal(t, "", r.Preferences.String())
	assert.True(t, r.Preferences.IsSet())
	assert.Equal(t, "", r.Prompt.String())
	assert.Equal(t, "2024-05-01 09:07", r.Timestamp)
	assert.Equal(t, StatusCompleted, r.Status)
	assert.Equal(t, "reply", r.Response)
}
