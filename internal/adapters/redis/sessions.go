package redisad

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pingvi095/wifi/internal/adapters/observability"
)

const sessionPrefix = "session:"

// Sessions stores admin tokens in Redis; expiry is delegated to key TTLs.
type Sessions struct{ c *redis.Client }

func New(addr, pass string, db int) *Sessions {
	return &Sessions{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func (s *Sessions) Set(ctx context.Context, token, username string, ttl time.Duration) error {
	observability.ObserveCache("sessions", "set")
	return s.c.Set(ctx, sessionPrefix+token, username, ttl).Err()
}

func (s *Sessions) Get(ctx context.Context, token string) (string, bool, error) {
	v, err := s.c.Get(ctx, sessionPrefix+token).Result()
	if err == redis.Nil {
		observability.ObserveCache("sessions", "miss")
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	observability.ObserveCache("sessions", "hit")
	return v, true, nil
}

func (s *Sessions) Del(ctx context.Context, token string) error {
	observability.ObserveCache("sessions", "del")
	return s.c.Del(ctx, sessionPrefix+token).Err()
}
