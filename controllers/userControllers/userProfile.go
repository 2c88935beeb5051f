package userController

import (
	"learnhub/middleware"
	"learnhub/services/profile"

	"github.com/gofiber/fiber/v2"
)

type ProfileController struct {
	profile *profile.Service
}

func NewProfileController(profile *profile.Service) *ProfileController {
	return &ProfileController{profile: profile}
}

func (h *ProfileController) Profile(c *fiber.Ctx) error {
	summary, err := h.profile.Summary(c.UserContext())
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully.", summary)
}
