package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackyeh168/gas_shop/src/internal/interfaces/rest/response"
	"golang.org/x/time/rate"
)

// KeyedLimiter 依 key（使用者）分開計算的 token bucket
type KeyedLimiter struct {
	mu       sync.Mutex
	limiters map[string]*entry
	limit    rate.Limit
	burst    int
	idle     time.Duration
	now      func() time.Time
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewKeyedLimiter 每個 key 每秒 perSecond 次、可瞬間 burst 次；閒置超過 idle 的 key 會被清掉
func NewKeyedLimiter(perSecond float64, burst int, idle time.Duration) *KeyedLimiter {
	return &KeyedLimiter{
		limiters: make(map[string]*entry),
		limit:    rate.Limit(perSecond),
		burst:    burst,
		idle:     idle,
		now:      time.Now,
	}
}

// Allow 消耗 key 的一個 token
func (l *KeyedLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.limiters[key]
	if !ok {
		l.evictIdle(now)
		e = &entry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

func (l *KeyedLimiter) evictIdle(now time.Time) {
	for k, e := range l.limiters {
		if now.Sub(e.lastSeen) > l.idle {
			delete(l.limiters, k)
		}
	}
}

// RateLimit 依已驗證的使用者限流；須放在 RequireUser 之後
func RateLimit(l *KeyedLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.GetString(UserIDKey)) {
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
