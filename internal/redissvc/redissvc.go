package redissvc

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	strikeKeyPrefix = "ratelimit:strikes:"
	banKeyPrefix    = "ratelimit:ban:"
)

// RedisService stores rate-limit strikes and bans; it satisfies ban.Store.
type RedisService struct {
	rdb *redis.Client
}

func NewRedisService(rdb *redis.Client) *RedisService {
	return &RedisService{rdb: rdb}
}

func (s *RedisService) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *RedisService) IsBanned(ctx context.Context, target string) (bool, error) {
	n, err := s.rdb.Exists(ctx, banKeyPrefix+target).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// AddStrike increments the strike counter of target. The counter expires one
// window after the first strike.
func (s *RedisService) AddStrike(ctx context.Context, target string, window time.Duration) (int64, error) {
	key := strikeKeyPrefix + target
	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// Ban marks target as banned for d and resets its strikes.
func (s *RedisService) Ban(ctx context.Context, target string, d time.Duration) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, banKeyPrefix+target, time.Now().UTC().Format(time.RFC3339), d)
		pipe.Del(ctx, strikeKeyPrefix+target)
		return nil
	})
	return err
}
