package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSlot хранит значения кеша в Redis, чтобы несколько клиентов делили один кеш
type RedisSlot struct {
	client *redis.Client
}

// NewRedisSlot connects to redis with short timeouts.
func NewRedisSlot(ctx context.Context, addr string) (*RedisSlot, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis недоступен (%s): %w", addr, err)
	}

	return &RedisSlot{client: client}, nil
}

// NewRedisSlotFromClient оборачивает готовый клиент
func NewRedisSlotFromClient(client *redis.Client) *RedisSlot {
	return &RedisSlot{client: client}
}

func (r *RedisSlot) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("ошибка чтения ключа %s: %w", key, err)
	}
	return data, true, nil
}

func (r *RedisSlot) Set(ctx context.Context, key string, data []byte) error {
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("ошибка сохранения ключа %s: %w", key, err)
	}
	return nil
}

func (r *RedisSlot) Close() error {
	return r.client.Close()
}
