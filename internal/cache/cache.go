package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// InvalidationWindow - время, в течение которого после Invalidate запись
// не попадает в кеш. Закрывает гонку, когда чтение из бд началось до
// обновления, а Set пришел после инвалидации.
const InvalidationWindow = 5 * time.Second

// setUnlessInvalidated пишет значение, только если нет метки недавней инвалидации
var setUnlessInvalidated = redis.NewScript(`
if redis.call("EXISTS", KEYS[2]) == 1 then
	return 0
end
if tonumber(ARGV[2]) > 0 then
	redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[2])
else
	redis.call("SET", KEYS[1], ARGV[1])
end
return 1
`)

// Cache - кеш записей по идентификатору в Redis, значения хранятся в JSON
type Cache[T any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// New создает кеш с ключами вида "<prefix>:<id>"
func New[T any](client *redis.Client, prefix string, ttl time.Duration) *Cache[T] {
	return &Cache[T]{client: client, prefix: prefix, ttl: ttl}
}

// Key возвращает ключ Redis для идентификатора
func (c *Cache[T]) Key(id string) string {
	return fmt.Sprintf("%s:%s", c.prefix, id)
}

func (c *Cache[T]) guardKey(id string) string {
	return c.Key(id) + ":invalidated"
}

// Get возвращает запись из кеша. Промах - (nil, nil).
func (c *Cache[T]) Get(ctx context.Context, id string) (*T, error) {
	val, err := c.client.Get(ctx, c.Key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s from cache: %w", c.prefix, err)
	}

	item := new(T)
	if err := json.Unmarshal(val, item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s from cache: %w", c.prefix, err)
	}
	return item, nil
}

// Set сохраняет запись в кеш на время ttl. В течение InvalidationWindow
// после Invalidate запись молча не сохраняется.
func (c *Cache[T]) Set(ctx context.Context, id string, item *T) error {
	val, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal %s for cache: %w", c.prefix, err)
	}
	keys := []string{c.Key(id), c.guardKey(id)}
	if err := setUnlessInvalidated.Run(ctx, c.client, keys, val, c.ttl.Milliseconds()).Err(); err != nil {
		return fmt.Errorf("failed to set %s in cache: %w", c.prefix, err)
	}
	return nil
}

// Invalidate удаляет запись из кеша и ставит метку инвалидации
func (c *Cache[T]) Invalidate(ctx context.Context, id string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, c.Key(id))
		pipe.Set(ctx, c.guardKey(id), 1, InvalidationWindow)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate %s cache: %w", c.prefix, err)
	}
	return nil
}
