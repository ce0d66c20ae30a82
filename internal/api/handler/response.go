package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// envelope is the canonical response wrapper: {success, data?, error?}.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// idResponse is the body returned by delete endpoints.
type idResponse struct {
	ID string `json:"id"`
}

func ok(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}
