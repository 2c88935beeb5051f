package examRoutes

import (
	examController "learnhub/controllers/exam"
	"learnhub/middleware"
	examValidator "learnhub/validators/exam"

	"github.com/gofiber/fiber/v2"
)

// SetupExamRoutes registers the exam session endpoints. Requests are rate
// limited per user.
func SetupExamRoutes(app *fiber.App, ctrl *examController.ExamController, guard fiber.Handler, rateLimit int) {
	examGroup := app.Group("/exam", middleware.JWTMiddleware, guard, middleware.RateLimiter(rateLimit))

	examGroup.Get("/:courseId", examValidator.CourseID(), ctrl.Session)
	examGroup.Post("/:courseId/start", examValidator.CourseID(), ctrl.Start)
	examGroup.Post("/:courseId/answer", examValidator.CourseID(), examValidator.Answer(), ctrl.Answer)
	examGroup.Post("/:courseId/navigate", examValidator.CourseID(), examValidator.Navigate(), ctrl.Navigate)
	examGroup.Post("/:courseId/submit", examValidator.CourseID(), ctrl.Submit)
	examGroup.Post("/:courseId/retake", examValidator.CourseID(), ctrl.Retake)
	examGroup.Get("/:courseId/results", examValidator.CourseID(), ctrl.Results)
}
