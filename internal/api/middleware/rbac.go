package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/dentalflow/clinic-system/internal/core/domain"
)

// RequireRoles enforces role-based access control. It must run after Auth;
// a request with no resolved user is rejected as unauthorized.
func RequireRoles(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := UserFrom(c)
			if !ok {
				return domain.ErrUnauthorized
			}
			if _, ok := allowed[user.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
