// Package middleware provides authentication, logging, tracing and rate
// limiting middleware for the HTTP API.
package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"nhaf/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// FailPolicy decides what happens to a request when Redis cannot count it.
type FailPolicy int

const (
	// FailOpen lets the request through.
	FailOpen FailPolicy = iota
	// FailClosed answers 503.
	FailClosed
)

// KeyFunc derives the rate-limit identity of a request.
type KeyFunc func(c *fiber.Ctx) string

// KeyByIP keys by authenticated staff user when present, otherwise by remote IP.
func KeyByIP(c *fiber.Ctx) string {
	if uid := c.Locals("userID"); uid != nil {
		return fmt.Sprintf("user:%v", uid)
	}
	return "ip:" + c.IP()
}

// KeyByCookie keys by the named cookie, falling back to KeyByIP when absent.
// Anonymous chat visitors share an IP behind NAT more often than not.
func KeyByCookie(name string) KeyFunc {
	return func(c *fiber.Ctx) string {
		if v := c.Cookies(name); v != "" {
			return name + ":" + v
		}
		return KeyByIP(c)
	}
}

// Limit is one fixed-window bucket: at most Limit requests per Window for
// each Key. An empty Name buckets by request path.
type Limit struct {
	Name   string
	Limit  int
	Window time.Duration
	Policy FailPolicy
	Key    KeyFunc
}

var errNoRedis = errors.New("rate limit store not configured")

// limitsDisabled reports whether the running environment skips rate limits.
// Unset APP_ENV counts as development.
func limitsDisabled() bool {
	switch os.Getenv("APP_ENV") {
	case "", "test", "development", "stress":
		return true
	}
	return false
}

// allow increments the window counter for bucket and reports whether the
// request fits. The first hit of a window sets its expiry.
func allow(ctx context.Context, rdb redis.Cmdable, bucket string, l Limit) (bool, error) {
	if rdb == nil {
		return false, errNoRedis
	}
	key := "rl:" + bucket
	n, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		rdb.Expire(ctx, key, l.Window)
	}
	return n <= int64(l.Limit), nil
}

// RateLimit enforces l against Redis. Limits are skipped outside
// production-like environments.
func RateLimit(rdb redis.Cmdable, l Limit) fiber.Handler {
	return newRateLimiter(rdb, l, limitsDisabled)
}

func newRateLimiter(rdb redis.Cmdable, l Limit, disabled func() bool) fiber.Handler {
	if l.Key == nil {
		l.Key = KeyByIP
	}
	retryAfter := strconv.Itoa(int(l.Window.Seconds()))

	return func(c *fiber.Ctx) error {
		if disabled() {
			return c.Next()
		}
		name := l.Name
		if name == "" {
			name = c.Path()
		}

		ok, err := allow(c.UserContext(), rdb, name+":"+l.Key(c), l)
		switch {
		case err != nil && l.Policy == FailClosed:
			Logger.WarnContext(c.UserContext(), "rate limit store unavailable",
				slog.String("bucket", name),
				slog.String("error", err.Error()),
			)
			return models.RespondWithError(c, fiber.StatusServiceUnavailable,
				models.NewUnavailableError("rate limit unavailable", nil))
		case err != nil:
			return c.Next()
		case !ok:
			c.Set(fiber.HeaderRetryAfter, retryAfter)
			return models.RespondWithError(c, fiber.StatusTooManyRequests,
				models.NewRateLimitError("rate limit exceeded"))
		}
		return c.Next()
	}
}
