package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"PersonalFinance/pkg/redis"
	"PersonalFinance/pkg/response"
)

var (
	ErrTooManyRequests = response.NewError(http.StatusTooManyRequests, "too many requests")
)

type limiter interface {
	Allow(ctx context.Context, ip string) bool
}

const (
	visitorIdleTTL = 3 * time.Minute
	sweepInterval  = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiter struct {
	bucket    map[string]*visitor
	rate      rate.Limit
	burstSize int
	mutex     *sync.Mutex
	now       func() time.Time
	lastSweep time.Time
}

func newRateLimiter(reqRate rate.Limit, burstSize int) *rateLimiter {
	return &rateLimiter{
		bucket:    make(map[string]*visitor),
		rate:      reqRate,
		burstSize: burstSize,
		mutex:     &sync.Mutex{},
		now:       time.Now,
		lastSweep: time.Now(),
	}
}

func (r *rateLimiter) GetLimiterFrom(ip string) *rate.Limiter {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	now := r.now()
	r.sweep(now)

	v, exist := r.bucket[ip]
	if !exist {
		v = &visitor{limiter: rate.NewLimiter(r.rate, r.burstSize)}
		r.bucket[ip] = v
	}
	v.lastSeen = now

	return v.limiter
}

// sweep drops buckets of clients idle longer than visitorIdleTTL. Callers hold the mutex.
func (r *rateLimiter) sweep(now time.Time) {
	if now.Sub(r.lastSweep) < sweepInterval {
		return
	}
	r.lastSweep = now

	for ip, v := range r.bucket {
		if now.Sub(v.lastSeen) > visitorIdleTTL {
			delete(r.bucket, ip)
		}
	}
}

func (r *rateLimiter) Allow(_ context.Context, ip string) bool {
	return r.GetLimiterFrom(ip).Allow()
}

// redisRateLimiter counts requests per IP in one-second windows stored in Redis,
// so every instance behind a load balancer sees the same counts.
type redisRateLimiter struct {
	store  redis.IRedis
	limit  int
	window time.Duration
	log    *logrus.Logger
}

func newRedisRateLimiter(store redis.IRedis, limit int, log *logrus.Logger) *redisRateLimiter {
	return &redisRateLimiter{
		store:  store,
		limit:  limit,
		window: time.Second,
		log:    log,
	}
}

func (r *redisRateLimiter) Allow(ctx context.Context, ip string) bool {
	slot := time.Now().UnixNano() / int64(r.window)
	key := fmt.Sprintf("ratelimit:%s:%d", ip, slot)

	count, err := r.store.IncrWindow(ctx, key, r.window)
	if err != nil {
		// Fail open: a Redis outage must not take the API down with it.
		r.log.WithFields(logrus.Fields{
			"ip":    ip,
			"error": err.Error(),
		}).Error("Rate limit counter unavailable")
		return true
	}

	return count <= int64(r.limit)
}

func (m *middleware) NewRateLimiter(ctx *fiber.Ctx) error {
	clientIP := ctx.IP()

	if !m.rateLimitter.Allow(ctx.UserContext(), clientIP) {
		m.log.Warnf("too many requests for IP %s", clientIP)
		return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": ErrTooManyRequests.Error(),
		})
	}

	return ctx.Next()
}
