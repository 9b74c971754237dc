package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// BalanceCache 余额快照缓存，写流水时写穿，读余额优先命中
type BalanceCache struct {
	redis *redis.Client
}

func NewBalanceCache(redis *redis.Client) *BalanceCache {
	return &BalanceCache{redis: redis}
}

func (b *BalanceCache) key(userID uint64) string {
	return fmt.Sprintf("ecomcredits:credit:balance:%d", userID)
}

func (b *BalanceCache) Set(ctx context.Context, userID uint64, balance int64) error {
	return b.redis.Set(ctx, b.key(userID), balance, 10*time.Minute).Err()
}

// Get 第二返回值表示是否命中
func (b *BalanceCache) Get(ctx context.Context, userID uint64) (int64, bool) {
	val, err := b.redis.Get(ctx, b.key(userID)).Result()
	if err != nil {
		return 0, false
	}
	balance, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return balance, true
}

func (b *BalanceCache) Del(ctx context.Context, userID uint64) error {
	return b.redis.Del(ctx, b.key(userID)).Err()
}
