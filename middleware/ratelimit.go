package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimitKeyByUser keys on the authenticated user, falling back to the client IP.
func RateLimitKeyByUser(c *fiber.Ctx) string {
	if userID, ok := c.Locals("userId").(string); ok && userID != "" {
		return "user:" + userID
	}
	return "ip:" + c.IP()
}

// RateLimiter allows limit requests per minute per user.
func RateLimiter(limit int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:          limit,
		Expiration:   1 * time.Minute,
		KeyGenerator: RateLimitKeyByUser,
		LimitReached: func(c *fiber.Ctx) error {
			return JsonResponse(c, fiber.StatusTooManyRequests, false, "Too many requests. Please try again later.", nil)
		},
	})
}
