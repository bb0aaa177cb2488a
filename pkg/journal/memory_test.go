package journal_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/powerauth/pkg/journal"
	"github.com/dmitrymomot/powerauth/pkg/outcome"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("lists newest first", func(t *testing.T) {
		t.Parallel()
		store := journal.NewMemoryStore(0)
		for i := range 3 {
			require.NoError(t, store.Record(ctx, journal.NewEntry("s1", fmt.Sprintf("op%d", i), nil)))
		}
		require.NoError(t, store.Record(ctx, journal.NewEntry("s2", "other", nil)))

		entries, err := store.List(ctx, "s1", 0)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "op2", entries[0].Op)
		assert.Equal(t, "op0", entries[2].Op)

		entries, err = store.List(ctx, "s1", 2)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "op2", entries[0].Op)
	})

	t.Run("trims to max entries", func(t *testing.T) {
		t.Parallel()
		store := journal.NewMemoryStore(2)
		for i := range 5 {
			require.NoError(t, store.Record(ctx, journal.NewEntry("s1", fmt.Sprintf("op%d", i), nil)))
		}
		entries, err := store.List(ctx, "s1", 10)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "op4", entries[0].Op)
		assert.Equal(t, "op3", entries[1].Op)
	})

	t.Run("unknown session", func(t *testing.T) {
		t.Parallel()
		entries, err := journal.NewMemoryStore(0).List(ctx, "missing", 5)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("rejects incomplete entries", func(t *testing.T) {
		t.Parallel()
		store := journal.NewMemoryStore(0)
		assert.ErrorIs(t, store.Record(ctx, journal.Entry{Op: "sign"}), journal.ErrMissingSessionID)
		assert.ErrorIs(t, store.Record(ctx, journal.Entry{SessionID: "s1"}), journal.ErrMissingOp)
	})

	t.Run("concurrent records", func(t *testing.T) {
		t.Parallel()
		store := journal.NewMemoryStore(0)
		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = store.Record(ctx, journal.NewEntry("s1", "sign", outcome.New("sign", outcome.WrongCode, nil)))
			}()
		}
		wg.Wait()

		entries, err := store.List(ctx, "s1", 0)
		require.NoError(t, err)
		assert.Len(t, entries, 20)
		assert.Equal(t, 20, journal.Summarize(entries)[outcome.WrongCode])
	})
}
