package redisrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const updateKeyPrefix = "tg:update:"

// UpdateDeduper отсекает повторные доставки одного и того же update от Telegram.
// Telegram ретраит вебхук до получения 200, поэтому один update может прийти
// несколько раз.
type UpdateDeduper struct {
	client *redis.Client
	ttl    time.Duration
}

func NewUpdateDeduper(client *redis.Client, ttl time.Duration) *UpdateDeduper {
	return &UpdateDeduper{client: client, ttl: ttl}
}

// Seen возвращает true, если update с таким id уже обрабатывался. Атомарность
// дает SETNX: первый вызов записывает ключ и получает false, все последующие - true.
func (d *UpdateDeduper) Seen(ctx context.Context, updateID int64) (bool, error) {
	key := fmt.Sprintf("%s%d", updateKeyPrefix, updateID)
	ok, err := d.client.SetNX(ctx, key, 1, d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("deduping update %d: %s", updateID, err.Error())
	}
	return !ok, nil
}
