package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func ErrBadRequest(c echo.Context, message string) error {
	if message == "" {
		message = "invalid request"
	}
	return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
}

func ErrInternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

// ErrStorage surfaces a failed archive or append verbatim. The submission is
// lost and the operator redoes it; there is no automatic retry.
func ErrStorage(c echo.Context, err error) error {
	return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
}
