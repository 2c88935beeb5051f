package middleware

import (
	"errors"
	"log"

	"learnhub/catalog"
	"learnhub/services"
	"learnhub/services/examsession"
	"learnhub/services/identity"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse maps service errors onto the response envelope. Unknown
// errors are logged and reported as 500.
func ErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotAuthenticated), errors.Is(err, identity.ErrInvalidCredentials):
		return JsonResponse(c, fiber.StatusUnauthorized, false, err.Error(), nil)
	case errors.Is(err, catalog.ErrCourseNotFound), errors.Is(err, catalog.ErrExamNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	case errors.Is(err, identity.ErrEmailTaken),
		errors.Is(err, examsession.ErrAlreadyStarted),
		errors.Is(err, examsession.ErrAttemptCompleted),
		errors.Is(err, examsession.ErrNotInProgress),
		errors.Is(err, examsession.ErrNotCompleted),
		errors.Is(err, examsession.ErrRetakeNotAllowed):
		return JsonResponse(c, fiber.StatusConflict, false, err.Error(), nil)
	case errors.Is(err, examsession.ErrIncomplete),
		errors.Is(err, examsession.ErrUnknownQuestion),
		errors.Is(err, examsession.ErrInvalidOption),
		errors.Is(err, examsession.ErrInvalidIndex):
		return JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}
	log.Printf("[HTTP] %s %s failed: %v", c.Method(), c.Path(), err)
	return JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
}
