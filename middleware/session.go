package middleware

import (
	"learnhub/services"

	"github.com/gofiber/fiber/v2"
)

// SessionGuard rejects tokens that do not belong to the signed-in user. A
// token issued before logout, or for another account, stops working as soon
// as the session changes. Must run after JWTMiddleware.
func SessionGuard(users services.UserSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(string)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: User ID not found", nil)
		}
		current, ok := users.CurrentUser()
		if !ok || current.ID != userID {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Session expired, please log in again!", nil)
		}
		c.Locals("user", current)
		return c.Next()
	}
}
