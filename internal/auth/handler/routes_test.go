package handler_test

import (
	"net/http/httptest"
	"testing"

	"github.com/Reynaldo-Martinez2021/Bet-Mate/internal/auth/handler"
	"github.com/Reynaldo-Martinez2021/Bet-Mate/internal/auth/service"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every operation must be reachable at its registered method and path;
// anything else is a 404/405 from the router, never a handler response.
func TestRegisterRoutes(t *testing.T) {
	app := fiber.New()
	handler.RegisterRoutes(app, handler.NewAuthHandler(service.NewUserService(nil, nil, nil)))

	tests := []struct {
		method string
		path   string
	}{
		{method: fiber.MethodGet, path: "/"},
		{method: fiber.MethodGet, path: "/login/"},
		{method: fiber.MethodPut, path: "/login/new_user"},
		{method: fiber.MethodPut, path: "/login/returning_user"},
		{method: fiber.MethodPut, path: "/login/refresh"},
		{method: fiber.MethodPut, path: "/login/forgot_password"},
		{method: fiber.MethodPut, path: "/login/reset_password/some-token"},
		{method: fiber.MethodPut, path: "/login/logout"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tt.method, tt.path, nil))
			require.NoError(t, err)
			assert.NotEqual(t, fiber.StatusNotFound, resp.StatusCode)
			assert.NotEqual(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
		})
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	app := fiber.New()
	handler.RegisterRoutes(app, handler.NewAuthHandler(service.NewUserService(nil, nil, nil)))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPut, "/login/delete_user", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
