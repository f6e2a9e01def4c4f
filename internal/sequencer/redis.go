package sequencer

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis is a Sequencer backed by INCR on a single key. It survives restarts
// and is shared by every instance pointing at the same key.
type Redis struct {
	redis *redis.Client
	key   string
}

func NewRedis(redisClient *redis.Client, key string) *Redis {
	return &Redis{redis: redisClient, key: key}
}

func (r *Redis) Next(ctx context.Context) (int64, error) {
	n, err := r.redis.Incr(ctx, r.key).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSequencerUnavailable, err)
	}
	return n, nil
}
