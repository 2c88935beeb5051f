package catalogRoutes

import (
	catalogController "learnhub/controllers/catalog"
	catalogValidator "learnhub/validators/catalog"
	courseValidator "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCatalogRoutes registers the public, read-only catalog endpoints.
func SetupCatalogRoutes(app *fiber.App, ctrl *catalogController.CatalogController) {
	catalogGroup := app.Group("/catalog")

	catalogGroup.Get("/courses", catalogValidator.CourseList(), ctrl.Courses)
	catalogGroup.Get("/courses/grouped", catalogValidator.CourseList(), ctrl.GroupedCourses)
	catalogGroup.Get("/courses/:id", courseValidator.CourseID(), ctrl.Course)
	catalogGroup.Get("/categories", ctrl.Categories)
	catalogGroup.Get("/exams", ctrl.Exams)
	catalogGroup.Get("/reading", catalogValidator.ReadingList(), ctrl.Reading)
	catalogGroup.Get("/jobs", ctrl.Jobs)
	catalogGroup.Get("/stats", ctrl.Stats)
}
