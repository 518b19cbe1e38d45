package handler

import (
	"strings"

	"github.com/Reynaldo-Martinez2021/Bet-Mate/internal/auth/dto"
	"github.com/Reynaldo-Martinez2021/Bet-Mate/internal/auth/service"
	autherr "github.com/Reynaldo-Martinez2021/Bet-Mate/internal/errors"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Hello is the root health placeholder.
func (h *AuthHandler) Hello(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"response": "Hello World!"})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Body must contain username, password, and email")
	}
	if input.Username == "" || input.Password == "" || input.Email == "" {
		return badRequest(c, "Body must contain username, password, and email")
	}

	out, err := h.userService.Register(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Body must contain username and password")
	}
	if input.Username == "" || input.Password == "" {
		return badRequest(c, "Body must contain username and password")
	}

	out, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

// Refresh expects the refresh token in an "Authorization: Bearer <token>"
// header and the username in the body.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	token, ok := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return badRequest(c, "Authorization header must contain a bearer token")
	}

	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Body must contain username")
	}
	if input.Username == "" {
		return badRequest(c, "Body must contain username")
	}
	input.RefreshToken = token

	out, err := h.userService.Refresh(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var input dto.ForgotPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Body must contain email")
	}
	if input.Email == "" {
		return badRequest(c, "Body must contain email")
	}

	out, err := h.userService.InitiatePasswordReset(c.Context(), input.Email)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

// ResetPassword completes the flow started by ForgotPassword; the reset
// token arrives as a path parameter from the emailed link.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Body must contain username and password")
	}
	if input.Username == "" || input.Password == "" {
		return badRequest(c, "Body must contain username and password")
	}
	input.Token = c.Params("token")

	out, err := h.userService.CompletePasswordReset(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

// Logout is accepted but unimplemented: tokens are stateless, so there is
// nothing server-side to revoke. The fixed body is part of the contract.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"response": "Hello World!"})
}

func badRequest(c *fiber.Ctx, reason string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status": "error",
		"reason": reason,
	})
}

func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	if kind, ok := autherr.KindOf(err); ok {
		switch kind {
		case autherr.KindValidation, autherr.KindConflict, autherr.KindNotFound:
			status = fiber.StatusNotAcceptable
		case autherr.KindAuthentication:
			status = fiber.StatusUnauthorized
		case autherr.KindStorage:
			status = fiber.StatusInternalServerError
		}
	}

	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"reason": autherr.Reason(err),
	})
}
