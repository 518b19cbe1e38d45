package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Get("/", h.Hello)

	login := app.Group("/login")
	login.Get("/", h.Hello)
	login.Put("/new_user", h.Register)
	login.Put("/returning_user", h.Login)
	login.Put("/refresh", h.Refresh)
	login.Put("/forgot_password", h.ForgotPassword)
	login.Put("/reset_password/:token", h.ResetPassword)
	login.Put("/logout", h.Logout)
}
