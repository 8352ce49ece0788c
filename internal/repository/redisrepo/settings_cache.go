package redisrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const settingKeyPrefix = "settings:"

// SettingsCache сквозной кеш таблицы настроек. Настройки читаются на каждый
// запрос вебхука, при этом меняются только из админки.
type SettingsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSettingsCache(client *redis.Client, ttl time.Duration) *SettingsCache {
	return &SettingsCache{client: client, ttl: ttl}
}

func (c *SettingsCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, settingKeyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("getting cached setting %q: %s", key, err.Error())
	}
	return value, true, nil
}

func (c *SettingsCache) Set(ctx context.Context, key string, value string) error {
	if err := c.client.Set(ctx, settingKeyPrefix+key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("caching setting %q: %s", key, err.Error())
	}
	return nil
}

func (c *SettingsCache) Invalidate(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, settingKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("invalidating cached setting %q: %s", key, err.Error())
	}
	return nil
}
