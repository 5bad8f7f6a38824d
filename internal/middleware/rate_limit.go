package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"dessertbook/internal/metrics"
)

// RateLimitConfig defines configuration for rate limiting
type RateLimitConfig struct {
	Window    time.Duration
	Limit     int
	KeyPrefix string
}

// WindowCounter increments the hit counter of key, expiring it after window.
type WindowCounter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

type redisCounter struct {
	client *redis.Client
}

// NewRedisCounter counts hits with INCR and EXPIRE in one pipeline.
func NewRedisCounter(client *redis.Client) WindowCounter {
	return &redisCounter{client: client}
}

func (r *redisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := r.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// RateLimiter is a fixed-window limiter keyed by user id, or client IP for
// anonymous callers.
type RateLimiter struct {
	counter WindowCounter
	config  RateLimitConfig
	now     func() time.Time
}

func NewRateLimiter(counter WindowCounter, config RateLimitConfig) *RateLimiter {
	return &RateLimiter{counter: counter, config: config, now: time.Now}
}

// IsAllowed returns allowed, remaining requests and the window reset time.
func (rl *RateLimiter) IsAllowed(ctx context.Context, subject string) (bool, int, time.Time, error) {
	windowStart := rl.now().Truncate(rl.config.Window)
	key := fmt.Sprintf("%s:%s:%d", rl.config.KeyPrefix, subject, windowStart.Unix())

	count, err := rl.counter.Incr(ctx, key, rl.config.Window)
	if err != nil {
		return false, 0, time.Time{}, err
	}

	remaining := rl.config.Limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return int(count) <= rl.config.Limit, remaining, windowStart.Add(rl.config.Window), nil
}

// Middleware fails open when the counter is unavailable.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := "ip:" + c.ClientIP()
		if userID := c.GetInt64("user_id"); userID != 0 {
			subject = "user:" + strconv.FormatInt(userID, 10)
		}

		allowed, remaining, resetTime, err := rl.IsAllowed(c.Request.Context(), subject)
		if err != nil {
			log.Printf("rate_limit_error prefix=%s subject=%s error=%q", rl.config.KeyPrefix, subject, err.Error())
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			metrics.RateLimited.Inc()
			c.Header("Retry-After", strconv.Itoa(int(time.Until(resetTime).Seconds())+1))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "RATE_LIMITED",
					"message": fmt.Sprintf("Rate limit of %d requests per %v exceeded", rl.config.Limit, rl.config.Window),
				},
			})
			return
		}

		c.Next()
	}
}
