package courseController

import (
	"learnhub/catalog"
	"learnhub/middleware"
	"learnhub/services/enrollment"

	"github.com/gofiber/fiber/v2"
)

type EnrollmentController struct {
	catalog *catalog.Catalog
	ledger  *enrollment.Ledger
}

func NewEnrollmentController(cat *catalog.Catalog, ledger *enrollment.Ledger) *EnrollmentController {
	return &EnrollmentController{catalog: cat, ledger: ledger}
}

// Enroll is idempotent; a repeat call returns the existing enrollment.
func (h *EnrollmentController) Enroll(c *fiber.Ctx) error {
	course, err := h.catalog.CourseByID(c.Locals("courseID").(string))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	enrolled := h.ledger.IsEnrolled(c.UserContext(), course.ID)
	record, err := h.ledger.Enroll(c.UserContext(), course.ID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if enrolled {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Already enrolled in this course.", record)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled successfully.", record)
}

func (h *EnrollmentController) Progress(c *fiber.Ctx) error {
	course, err := h.catalog.CourseByID(c.Locals("courseID").(string))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	ctx := c.UserContext()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully.", fiber.Map{
		"course_id": course.ID,
		"enrolled":  h.ledger.IsEnrolled(ctx, course.ID),
		"progress":  h.ledger.Progress(ctx, course.ID),
	})
}

// UpdateProgress on a course the user is not enrolled in succeeds without effect.
func (h *EnrollmentController) UpdateProgress(c *fiber.Ctx) error {
	course, err := h.catalog.CourseByID(c.Locals("courseID").(string))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	percent := c.Locals("validatedProgress").(int)

	ctx := c.UserContext()
	if err := h.ledger.UpdateProgress(ctx, course.ID, percent); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully.", fiber.Map{
		"course_id": course.ID,
		"enrolled":  h.ledger.IsEnrolled(ctx, course.ID),
		"progress":  h.ledger.Progress(ctx, course.ID),
	})
}

func (h *EnrollmentController) List(c *fiber.Ctx) error {
	list, err := h.ledger.List(c.UserContext())
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully.", list)
}
