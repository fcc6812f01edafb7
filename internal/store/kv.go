// Package store implements the local key-value persistence layer.  The
// whole durable state of the system is two flat records: the booking
// ledger under the "bookings" key and the active identity under the
// "user" key.  Each record is serialized as a single JSON value and
// rewritten in full on every mutation; there is no versioning and no
// partial-write recovery.
package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned by KV.Get when the key has never been written
// or has been deleted.  Callers treat it as "empty", never as a failure.
var ErrNotFound = errors.New("store: key not found")

// KV is the minimal key-value contract the stores are written against.
// The production implementation is Redis; tests substitute a mock or an
// in-memory map.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}

// RedisKV adapts a go-redis client to the KV interface, mapping
// redis.Nil onto ErrNotFound.
type RedisKV struct {
	client *redis.Client
}

// NewRedisKV returns a RedisKV bound to the given client.
func NewRedisKV(client *redis.Client) *RedisKV { return &RedisKV{client: client} }

func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	return v, err
}

func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	// Records live forever; expiry 0 means no TTL.
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *RedisKV) Del(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
