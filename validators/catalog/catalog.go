package catalogValidator

import (
	"learnhub/catalog"
	"learnhub/middleware"
	"learnhub/validators"

	"github.com/gofiber/fiber/v2"
)

type CourseQuery struct {
	Category string `query:"category" json:"category"`
	Level    string `query:"level" json:"level" validate:"omitempty,oneof=All Beginner Intermediate Advanced"`
}

// CourseList checks the optional category and level filters.
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseQuery)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedFilter", catalog.CourseFilter{Category: reqData.Category, Level: reqData.Level})
		return c.Next()
	}
}

type ReadingQuery struct {
	Category string `query:"category" json:"category" validate:"omitempty,oneof=All News International Books"`
}

// ReadingList checks the optional reading category.
func ReadingList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReadingQuery)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}
		if reqData.Category == "" {
			reqData.Category = catalog.All
		}

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCategory", reqData.Category)
		return c.Next()
	}
}
