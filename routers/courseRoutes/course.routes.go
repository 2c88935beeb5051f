package courseRoutes

import (
	courseController "learnhub/controllers/course"
	"learnhub/middleware"
	courseValidator "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App, ctrl *courseController.EnrollmentController, guard fiber.Handler) {
	courseGroup := app.Group("/course", middleware.JWTMiddleware, guard)

	courseGroup.Post("/:id/enroll", courseValidator.CourseID(), ctrl.Enroll)
	courseGroup.Get("/:id/progress", courseValidator.CourseID(), ctrl.Progress)
	courseGroup.Put("/:id/progress", courseValidator.CourseID(), courseValidator.UpdateProgress(), ctrl.UpdateProgress)
}
