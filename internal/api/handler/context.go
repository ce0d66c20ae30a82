package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/dentalflow/clinic-system/internal/api/middleware"
	"github.com/dentalflow/clinic-system/internal/core/domain"
)

// currentUser extracts the user resolved by the Auth middleware and performs
// a fast-fail check before any service call: an empty id means the
// middleware never ran for this route, which is a wiring bug surfaced as 401
// rather than a panic.
func currentUser(c echo.Context) (domain.User, error) {
	user, ok := middleware.UserFrom(c)
	if !ok || user.ID == "" {
		return domain.User{}, domain.ErrUnauthorized
	}
	return user, nil
}
