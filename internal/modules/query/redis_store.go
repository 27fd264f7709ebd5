package query

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const queriesKey = "travel:queries"

// RedisStore keeps records in a Redis list. A record's id is its 1-based
// list position, which RPUSH hands back atomically as the new length.
type RedisStore struct {
	redis *redis.Client
	key   string
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{redis: client, key: queriesKey}
}

func (s *RedisStore) Append(ctx context.Context, r Record) (Record, error) {
	r.ID = 0
	payload, err := json.Marshal(r)
	if err != nil {
		return Record{}, fmt.Errorf("redis store: marshal record: %w", err)
	}
	n, err := s.redis.RPush(ctx, s.key, payload).Result()
	if err != nil {
		return Record{}, fmt.Errorf("redis store: rpush: %w", err)
	}
	r.ID = int(n)
	return r, nil
}

func (s *RedisStore) List(ctx context.Context) ([]Record, error) {
	items, err := s.redis.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis store: lrange: %w", err)
	}
	out := make([]Record, 0, len(items))
	for i, item := range items {
		var r Record
		if err := json.Unmarshal([]byte(item), &r); err != nil {
			return nil, fmt.Errorf("redis store: decode record %d: %w", i+1, err)
		}
		r.ID = i + 1
		out = append(out, r)
	}
	return out, nil
}
