package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mohozompur-madrasa/madrasa-site/internal/config"
)

const redisTimeout = 3 * time.Second

// RedisStorage implements fiber.Storage on a go-redis client. Every key is prefixed.
type RedisStorage struct {
	client *redis.Client
	prefix string
}

// NewRedisStorage connects to redis and checks the connection with a ping.
func NewRedisStorage(cfg config.Redis) (*RedisStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewRedisStorageFromClient(client, cfg.KeyPrefix), nil
}

// NewRedisStorageFromClient wraps an existing client.
func NewRedisStorageFromClient(client *redis.Client, prefix string) *RedisStorage {
	return &RedisStorage{client: client, prefix: prefix}
}

func (r *RedisStorage) key(k string) string {
	return r.prefix + k
}

// Get returns nil, nil for a missing key.
func (r *RedisStorage) Get(key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}

	return val, err
}

// Set stores val. A zero exp keeps the key forever.
func (r *RedisStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	return r.client.Set(ctx, r.key(key), val, exp).Err()
}

// Delete removes key.
func (r *RedisStorage) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	return r.client.Del(ctx, r.key(key)).Err()
}

// Reset removes every key under the prefix.
func (r *RedisStorage) Reset() error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	iter := r.client.Scan(ctx, 0, r.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}

	return iter.Err()
}

// Close closes the client.
func (r *RedisStorage) Close() error {
	return r.client.Close()
}
