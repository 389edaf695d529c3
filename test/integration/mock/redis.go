// Package mock provides in-process doubles for the database and Redis used by the BDD suite.
package mock

import (
	"context"
	"path"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisMock *Redis

// Redis pairs a miniredis server with a client connected to it.
type Redis struct {
	Server *miniredis.Miniredis
	Client *redis.Client
}

// NewRedis starts the shared miniredis server. Every call returns the same instance.
func NewRedis() *Redis {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisMock = &Redis{
			Server: server,
			Client: redis.NewClient(&redis.Options{Addr: server.Addr()}),
		}
	})
	return redisMock
}

// Clear drops every key so scenarios start from an empty cache.
func (r *Redis) Clear() error {
	return r.Client.FlushAll(context.TODO()).Err()
}

// CountKeys returns how many keys match a glob pattern.
func (r *Redis) CountKeys(pattern string) int {
	count := 0
	for _, key := range r.Server.Keys() {
		if ok, _ := path.Match(pattern, key); ok {
			count++
		}
	}
	return count
}
