package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var sharedRedis *redis.Client

// NewRedis returns a client connected to a process-wide miniredis instance,
// started on first use. The refresh token allowlist lives here during tests.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		sharedRedis = redis.NewClient(&redis.Options{Addr: server.Addr()})
	})
	return sharedRedis
}

// ClearRedis drops every key so scenarios start without leftover tokens.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
