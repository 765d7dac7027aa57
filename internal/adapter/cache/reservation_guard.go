package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock only while it still holds our token, so
// an expired lock taken over by another attempt is left alone.
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`

type ReservationGuard struct {
	client *redis.Client
}

func NewReservationGuard(client *redis.Client) *ReservationGuard {
	return &ReservationGuard{client: client}
}

func (g *ReservationGuard) Acquire(ctx context.Context, key string, token string, ttl time.Duration) (bool, error) {
	return g.client.SetNX(ctx, key, token, ttl).Result()
}

func (g *ReservationGuard) Release(ctx context.Context, key string, token string) error {
	return g.client.Eval(ctx, releaseScript, []string{key}, token).Err()
}
