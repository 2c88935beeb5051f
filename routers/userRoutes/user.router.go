package userProfileRoutes

import (
	courseController "learnhub/controllers/course"
	userController "learnhub/controllers/userControllers"
	"learnhub/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, profile *userController.ProfileController, enrollments *courseController.EnrollmentController, guard fiber.Handler) {
	userGroup := app.Group("/user", middleware.JWTMiddleware, guard)

	userGroup.Get("/profile", profile.Profile)
	userGroup.Get("/enrollments", enrollments.List)
}
