// Package lock provides short lived leases in redis, used to keep replicas
// from working on the same item at the same time.
package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// releaseScript deletes the key only if it still holds the caller's token.
const releaseScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`

type client interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// Locker hands out leases with a fixed TTL.
type Locker struct {
	client client
	prefix string
	ttl    time.Duration
}

func NewLocker(c client, prefix string, ttl time.Duration) *Locker {
	return &Locker{client: c, prefix: prefix, ttl: ttl}
}

// TryLock takes the lease on key. ok is false when another holder has it.
// The returned token must be passed to Unlock.
func (l *Locker) TryLock(ctx context.Context, key string) (string, bool, error) {
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, l.prefix+key, token, l.ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("acquire lease %s: %w", key, err)
	}

	return token, ok, nil
}

// Unlock releases the lease if it is still held with token.
func (l *Locker) Unlock(ctx context.Context, key, token string) error {
	if err := l.client.Eval(ctx, releaseScript, []string{l.prefix + key}, token).Err(); err != nil && err != redis.Nil {
		return fmt.Errorf("release lease %s: %w", key, err)
	}

	return nil
}
