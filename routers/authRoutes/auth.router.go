package authRoutes

import (
	authController "learnhub/controllers/auth"
	"learnhub/middleware"
	authValidator "learnhub/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, ctrl *authController.AuthController, guard fiber.Handler) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidator.Register(), ctrl.Register)
	authGroup.Post("/login", authValidator.Login(), ctrl.Login)
	authGroup.Post("/logout", middleware.JWTMiddleware, guard, ctrl.Logout)
	authGroup.Get("/me", middleware.JWTMiddleware, guard, ctrl.Me)
}
