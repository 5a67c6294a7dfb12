package client

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slog"

	"studentdash/internal/domain/student"
)

// DefaultCacheKey - ключ, под которым лежит локальная копия коллекции
const DefaultCacheKey = "localStudents"

// Cache - локальная копия коллекции, переживающая перезапуск клиента
type Cache interface {
	// Load никогда не возвращает ошибку: отсутствующее или битое значение
	// читается как пустой список.
	Load(ctx context.Context) []student.Student
	Prepend(ctx context.Context, s student.Student) error
	RemoveByID(ctx context.Context, id string) error
	Replace(ctx context.Context, s student.Student) error
}

// KVCache хранит коллекцию одним JSON-массивом в Slot
type KVCache struct {
	slot Slot
	key  string
	log  *slog.Logger
}

func NewKVCache(slot Slot, key string, log *slog.Logger) *KVCache {
	if key == "" {
		key = DefaultCacheKey
	}
	return &KVCache{
		slot: slot,
		key:  key,
		log:  log.With("component", "local_cache", "key", key),
	}
}

func (c *KVCache) Load(ctx context.Context) []student.Student {
	data, ok, err := c.slot.Get(ctx, c.key)
	if err != nil {
		c.log.Warn("Не удалось прочитать локальный кеш", "error", err)
		return []student.Student{}
	}
	if !ok || len(data) == 0 {
		return []student.Student{}
	}

	var list []student.Student
	if err := json.Unmarshal(data, &list); err != nil {
		c.log.Warn("Локальный кеш поврежден, используем пустой список", "error", err)
		return []student.Student{}
	}
	if list == nil {
		return []student.Student{}
	}
	return list
}

func (c *KVCache) Prepend(ctx context.Context, s student.Student) error {
	list := c.Load(ctx)
	return c.save(ctx, append([]student.Student{s}, list...))
}

func (c *KVCache) RemoveByID(ctx context.Context, id string) error {
	return c.save(ctx, student.WithoutID(c.Load(ctx), id))
}

func (c *KVCache) Replace(ctx context.Context, s student.Student) error {
	list, replaced := student.ReplaceByID(c.Load(ctx), s)
	if !replaced {
		return nil
	}
	return c.save(ctx, list)
}

func (c *KVCache) save(ctx context.Context, list []student.Student) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	if err := c.slot.Set(ctx, c.key, data); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}
