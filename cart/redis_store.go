package cart

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// RedisStore persists each session's cart as a JSON blob under cart:<sid>.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (map[string]Entry, error) {
	data, err := s.rdb.Get(ctx, cartKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries map[string]Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		// A corrupt blob should not brick the session; start fresh.
		logger.Warn().Err(err).Str("session_id", sessionID).Msg("discarding unreadable cart payload")
		return nil, nil
	}
	return entries, nil
}

func (s *RedisStore) Set(ctx context.Context, sessionID string, entries map[string]Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, cartKey(sessionID), data, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, cartKey(sessionID)).Err()
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}
