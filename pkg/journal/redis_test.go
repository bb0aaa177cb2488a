package journal_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/powerauth/pkg/journal"
	"github.com/dmitrymomot/powerauth/pkg/outcome"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		mr, client := newRedis(t)
		store := journal.NewRedisStore(client, journal.RedisConfig{KeyPrefix: "test:"})

		failure := outcome.New("validate_activation_response", outcome.WrongData, nil)
		first := journal.NewEntry("s1", "start_activation", nil)
		second := journal.NewEntry("s1", "validate_activation_response", failure)
		require.NoError(t, store.Record(ctx, first))
		require.NoError(t, store.Record(ctx, second))

		assert.True(t, mr.Exists("test:s1"))

		entries, err := store.List(ctx, "s1", 0)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, second.ID, entries[0].ID)
		assert.Equal(t, failure.ID, entries[0].ID)
		assert.Equal(t, outcome.WrongData, entries[0].Outcome())
		assert.True(t, second.At.Equal(entries[0].At))
		assert.Equal(t, first.ID, entries[1].ID)
		assert.Equal(t, outcome.OK, entries[1].Outcome())
	})

	t.Run("trims to max entries", func(t *testing.T) {
		t.Parallel()
		_, client := newRedis(t)
		store := journal.NewRedisStore(client, journal.RedisConfig{KeyPrefix: "test:", MaxEntries: 3})

		for i := range 5 {
			require.NoError(t, store.Record(ctx, journal.NewEntry("s1", fmt.Sprintf("op%d", i), nil)))
		}
		n, err := client.LLen(ctx, "test:s1").Result()
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)

		entries, err := store.List(ctx, "s1", 2)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "op4", entries[0].Op)
		assert.Equal(t, "op3", entries[1].Op)
	})

	t.Run("unknown codes decode as general failure", func(t *testing.T) {
		t.Parallel()
		_, client := newRedis(t)
		store := journal.NewRedisStore(client, journal.RedisConfig{KeyPrefix: "test:"})

		raw := `{"id":"00000000-0000-0000-0000-000000000001","session_id":"s1","op":"sign","code":77,"name":"Future","at":"2026-01-02T03:04:05Z"}`
		require.NoError(t, client.LPush(ctx, "test:s1", raw).Err())

		entries, err := store.List(ctx, "s1", 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 77, entries[0].Code)
		assert.Equal(t, outcome.GeneralFailure, entries[0].Outcome())
	})

	t.Run("corrupted entry", func(t *testing.T) {
		t.Parallel()
		_, client := newRedis(t)
		store := journal.NewRedisStore(client, journal.RedisConfig{KeyPrefix: "test:"})

		require.NoError(t, client.LPush(ctx, "test:s1", "not json").Err())
		_, err := store.List(ctx, "s1", 0)
		assert.ErrorIs(t, err, journal.ErrFailedToList)
	})

	t.Run("rejects incomplete entries", func(t *testing.T) {
		t.Parallel()
		_, client := newRedis(t)
		store := journal.NewRedisStore(client, journal.RedisConfig{})
		assert.ErrorIs(t, store.Record(ctx, journal.Entry{Op: "sign"}), journal.ErrMissingSessionID)
	})

	t.Run("server down", func(t *testing.T) {
		t.Parallel()
		mr, client := newRedis(t)
		store := journal.NewRedisStore(client, journal.RedisConfig{})
		mr.Close()
		assert.ErrorIs(t, store.Record(ctx, journal.NewEntry("s1", "sign", nil)), journal.ErrFailedToRecord)
	})
}

func TestConnect(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		mr := miniredis.RunT(t)
		client, err := journal.Connect(ctx, journal.RedisConfig{
			ConnectionURL:  "redis://" + mr.Addr() + "/0",
			RetryAttempts:  1,
			RetryInterval:  10 * time.Millisecond,
			ConnectTimeout: time.Second,
		})
		require.NoError(t, err)
		defer client.Close()
		assert.NoError(t, journal.Healthcheck(client)(ctx))
	})

	t.Run("invalid url", func(t *testing.T) {
		t.Parallel()
		_, err := journal.Connect(ctx, journal.RedisConfig{
			ConnectionURL:  "mysql://nope",
			ConnectTimeout: time.Second,
		})
		assert.ErrorIs(t, err, journal.ErrFailedToParseRedisConnString)
	})

	t.Run("unreachable", func(t *testing.T) {
		t.Parallel()
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()
		_, err := journal.Connect(ctx, journal.RedisConfig{
			ConnectionURL:  "redis://" + addr + "/0",
			RetryAttempts:  2,
			RetryInterval:  10 * time.Millisecond,
			ConnectTimeout: 2 * time.Second,
		})
		assert.ErrorIs(t, err, journal.ErrRedisNotReady)
	})

	t.Run("no wait after last attempt", func(t *testing.T) {
		t.Parallel()
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		start := time.Now()
		_, err := journal.Connect(ctx, journal.RedisConfig{
			ConnectionURL: "redis://" + addr + "/0?max_retries=-1",
			RetryAttempts: 1,
			RetryInterval: time.Minute,
		})
		assert.ErrorIs(t, err, journal.ErrRedisNotReady)
		assert.NotErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), 30*time.Second)
	})
}

func TestHealthcheckFails(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	assert.ErrorIs(t, journal.Healthcheck(client)(context.Background()), journal.ErrHealthcheckFailed)
}
