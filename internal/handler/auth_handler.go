package handler

import (
	"bazar-dor-api/internal/i18n"
	"bazar-dor-api/internal/middleware"
	"bazar-dor-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles user authentication
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req service.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, i18n.KeyErrInvalidJSON)
	}

	response, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(response)
}

// Logout ends the caller's session on every device.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	id, err := uuid.Parse(getUserID(c))
	if err != nil {
		return badRequest(c, i18n.KeyErrInvalidID)
	}

	if err := h.authService.Logout(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Signed out", "redirect": "/"})
}

// Session reports whether the bearer token is a live admin session. It
// always answers 200.
// GET /api/v1/auth/session
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	return c.JSON(h.authService.Session(c.UserContext(), middleware.BearerToken(c)))
}
