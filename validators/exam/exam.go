package examValidator

import (
	"strings"

	"learnhub/middleware"
	"learnhub/validators"

	"github.com/gofiber/fiber/v2"
)

// Navigation directions
const (
	DirectionNext     = "next"
	DirectionPrevious = "previous"
	DirectionJump     = "jump"
)

type AnswerRequest struct {
	QuestionID string `json:"question_id" validate:"required"`
	Option     *int   `json:"option" validate:"required,min=0"`
}

type NavigateRequest struct {
	Direction string `json:"direction" validate:"required,oneof=next previous jump"`
	Index     *int   `json:"index" validate:"omitempty,min=0"`
}

// CourseID checks the :courseId route parameter and stores it as "courseID".
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := strings.TrimSpace(c.Params("courseId"))
		if courseID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}
		c.Locals("courseID", courseID)
		return c.Next()
	}
}

func Answer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AnswerRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAnswer", reqData)
		return c.Next()
	}
}

// Navigate requires an index when jumping.
func Navigate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(NavigateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := validators.Struct(reqData)
		if reqData.Direction == DirectionJump && reqData.Index == nil {
			errors["index"] = "index is required when jumping!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedNavigate", reqData)
		return c.Next()
	}
}
