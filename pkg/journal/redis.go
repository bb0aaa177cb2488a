package journal

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig configures the Redis backed journal.
type RedisConfig struct {
	ConnectionURL  string        `env:"JOURNAL_REDIS_URL,required" envDefault:"redis://localhost:6379/0"` // "redis://:password@localhost:6379/0"
	RetryAttempts  int           `env:"JOURNAL_REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"JOURNAL_REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"JOURNAL_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
	KeyPrefix      string        `env:"JOURNAL_REDIS_KEY_PREFIX" envDefault:"powerauth:outcomes:"`
	MaxEntries     int           `env:"JOURNAL_MAX_ENTRIES" envDefault:"1000"` // per session
}

// Connect opens a Redis client and waits until it answers PING, retrying
// RetryAttempts times with RetryInterval between attempts.
func Connect(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	attempts := max(cfg.RetryAttempts, 1)
	for attempt := range attempts {
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		if attempt == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrRedisNotReady
}

// Healthcheck returns a probe that pings the journal's Redis server.
func Healthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}

// RedisStore keeps one capped list per session. New entries are pushed to the
// head so LRANGE returns them newest first.
type RedisStore struct {
	client     redis.UniversalClient
	prefix     string
	maxEntries int
}

// NewRedisStore creates a store on top of an existing client.
func NewRedisStore(client redis.UniversalClient, cfg RedisConfig) *RedisStore {
	maxEntries := cfg.MaxEntries
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &RedisStore{
		client:     client,
		prefix:     cfg.KeyPrefix,
		maxEntries: maxEntries,
	}
}

func (s *RedisStore) key(sessionID string) string {
	return s.prefix + sessionID
}

func (s *RedisStore) Record(ctx context.Context, e Entry) error {
	if err := validate(e); err != nil {
		return err
	}

	data, err := json.Marshal(e)
	if err != nil {
		return errors.Join(ErrFailedToRecord, err)
	}

	key := s.key(e.SessionID)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, data)
		pipe.LTrim(ctx, key, 0, int64(s.maxEntries-1))
		return nil
	})
	if err != nil {
		return errors.Join(ErrFailedToRecord, err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context, sessionID string, limit int) ([]Entry, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	raw, err := s.client.LRange(ctx, s.key(sessionID), 0, stop).Result()
	if err != nil {
		return nil, errors.Join(ErrFailedToList, err)
	}

	entries := make([]Entry, 0, len(raw))
	for _, item := range raw {
		var e Entry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			return nil, errors.Join(ErrFailedToList, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
