package authController

import (
	"log"

	"learnhub/middleware"
	"learnhub/models"
	"learnhub/services/identity"
	authValidator "learnhub/validators/auth"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	identity *identity.Service
}

func NewAuthController(identity *identity.Service) *AuthController {
	return &AuthController{identity: identity}
}

func respondWithToken(c *fiber.Ctx, status int, message string, user models.User) error {
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email)
	if err != nil {
		log.Printf("[AUTH] Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}
	return middleware.JsonResponse(c, status, true, message, fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (a *AuthController) Register(c *fiber.Ctx) error {
	reqData := c.Locals("validatedUser").(*authValidator.RegisterRequest)

	user, err := a.identity.Register(c.UserContext(), reqData.Name, reqData.Email, reqData.Password)
	if err != nil {
		if err == identity.ErrEmailTaken {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
		}
		return middleware.ErrorResponse(c, err)
	}
	return respondWithToken(c, fiber.StatusCreated, "User registered successfully.", user)
}

func (a *AuthController) Login(c *fiber.Ctx) error {
	reqData := c.Locals("validatedUser").(*authValidator.LoginRequest)

	user, err := a.identity.Login(c.UserContext(), reqData.Email, reqData.Password)
	if err != nil {
		if err == identity.ErrInvalidCredentials {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
		}
		return middleware.ErrorResponse(c, err)
	}
	return respondWithToken(c, fiber.StatusOK, "Login successful.", user)
}

func (a *AuthController) Logout(c *fiber.Ctx) error {
	a.identity.Logout(c.UserContext())
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out successfully.", nil)
}

// Me returns the user resolved by the session guard.
func (a *AuthController) Me(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully.", user)
}
