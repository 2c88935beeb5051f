package courseValidator

import (
	"strings"

	"learnhub/middleware"
	"learnhub/validators"

	"github.com/gofiber/fiber/v2"
)

type ProgressRequest struct {
	Progress *int `json:"progress" validate:"required,min=0,max=100"`
}

// CourseID checks the :id route parameter and stores it as "courseID".
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := strings.TrimSpace(c.Params("id"))
		if courseID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}
		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// UpdateProgress accepts percentages from 0 to 100.
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", *reqData.Progress)
		return c.Next()
	}
}
