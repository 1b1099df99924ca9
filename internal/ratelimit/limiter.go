package ratelimit

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Config describes one route class.
type Config struct {
	// Class keys the window map together with the client address.
	Class string
	// Max requests admitted per client address per Window.
	Max    int
	Window time.Duration
	// Message returned with 429 responses.
	Message string
	// RefundSuccess refunds requests that complete below 400, so e.g. a
	// successful login does not count against the quota.
	RefundSuccess bool
	// Skip disables the limiter for matching requests. Must be set
	// explicitly; there is no hidden default bypass.
	Skip func(c *fiber.Ctx) bool
}

// Route classes mirror the deployed policy: login 5/min, register 3/15min,
// everything else 100/15min, each per client address.
var (
	LoginConfig = Config{
		Class:         "login",
		Max:           5,
		Window:        1 * time.Minute,
		Message:       "Too many login attempts. Please try again after 1 minute.",
		RefundSuccess: true,
	}

	RegisterConfig = Config{
		Class:   "register",
		Max:     3,
		Window:  15 * time.Minute,
		Message: "Too many registration attempts. Please try again after 15 minutes.",
	}

	APIConfig = Config{
		Class:   "api",
		Max:     100,
		Window:  15 * time.Minute,
		Message: "Too many requests from this IP. Please try again after 15 minutes.",
	}
)

// New builds a Fiber middleware enforcing cfg against store, keyed by
// (class, client IP).
func New(store Store, cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.Skip != nil && cfg.Skip(c) {
			return c.Next()
		}

		key := cfg.Class + ":" + c.IP()
		res := store.Increment(key, cfg.Window)

		if res.Count > cfg.Max {
			retryAfter := int((res.RetryAfter + time.Second - 1) / time.Second)

			log.Warn().
				Str("class", cfg.Class).
				Str("ip", c.IP()).
				Int("count", res.Count).
				Msg("rate limit exceeded")

			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success":    false,
				"message":    cfg.Message,
				"retryAfter": retryAfter,
				"limit":      cfg.Max,
				"windowMs":   cfg.Window.Milliseconds(),
			})
		}

		err := c.Next()

		if cfg.RefundSuccess && err == nil && c.Response().StatusCode() < fiber.StatusBadRequest {
			store.Decrement(key)
		}

		return err
	}
}
