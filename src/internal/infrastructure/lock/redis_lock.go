package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackyeh168/gas_shop/src/internal/domain/order"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyPrefix      = "gas_shop:lock:"
	releaseTimeout = 2 * time.Second
)

// 只刪除自己持有的鎖（token 相符才 DEL）
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisCheckoutLock 以 SET NX PX 實作的結帳短鎖
//
// 鎖在 TTL 後自動失效，持有者當機也不會永久阻擋結帳。
type RedisCheckoutLock struct {
	client redis.UniversalClient
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisCheckoutLock 創建 Redis 結帳鎖
func NewRedisCheckoutLock(client redis.UniversalClient, ttl time.Duration, logger *zap.Logger) *RedisCheckoutLock {
	return &RedisCheckoutLock{client: client, ttl: ttl, logger: logger}
}

// Acquire 取得鎖；已被持有時返回 order.ErrCheckoutInProgress
func (l *RedisCheckoutLock) Acquire(ctx context.Context, key string) (func(), error) {
	redisKey := keyPrefix + key
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock %s: %w", redisKey, err)
	}
	if !ok {
		return nil, order.ErrCheckoutInProgress.WithContext("key", key)
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			// 請求的 ctx 可能已取消，釋放使用獨立逾時
			releaseCtx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
			defer cancel()
			if err := releaseScript.Run(releaseCtx, l.client, []string{redisKey}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
				l.logger.Warn("failed to release checkout lock", zap.String("key", redisKey), zap.Error(err))
			}
		})
	}
	return release, nil
}
