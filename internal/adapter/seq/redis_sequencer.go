package seq

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	domain "github.com/LeonardBuda/forever-zama/internal/entity"
	"github.com/LeonardBuda/forever-zama/internal/usecase"
)

// RedisSequencer issues numbers from a Redis INCR on a single key:
// atomic across processes and durable across restarts, so numbers never
// collide or get reissued.
type RedisSequencer struct {
	rdb *redis.Client
	key string
}

func NewRedisSequencer(rdb *redis.Client, key string) *RedisSequencer {
	if key == "" {
		key = "orders:sequence"
	}
	return &RedisSequencer{rdb: rdb, key: key}
}

func (s *RedisSequencer) Next(ctx context.Context) (string, error) {
	n, err := s.rdb.Incr(ctx, s.key).Result()
	if err != nil {
		return "", fmt.Errorf("order sequence incr: %w", err)
	}
	return domain.FormatOrderNumber(n), nil
}

var _ usecase.Sequencer = (*RedisSequencer)(nil)
