package handler

import (
	"net/http"

	"passport/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// Root describes the API surface for anyone poking at the base URL.
func Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "User Authentication API",
		"endpoints": map[string]string{
			"login":        "POST /auth/login",
			"register":     "POST /auth/register",
			"current_user": "GET /users/me",
		},
	}, "Service information")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
