package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dentalflow/clinic-system/internal/core/domain"
	"github.com/dentalflow/clinic-system/internal/core/entity"
)

// userContextKey is where Auth stores the resolved user on the request.
const userContextKey = "user"

// Auth is the bearer-token gate. The token is literally the user id — there
// is deliberately no session or signature scheme in this system. The id is
// resolved against the user collection and the full user record is attached
// to the request context for downstream handlers.
func Auth(users *entity.Collection[domain.User]) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return domain.ErrUnauthorized
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return domain.ErrUnauthorized
			}

			userID := parts[1]
			ctx := c.Request().Context()
			exists, err := users.Exists(ctx, userID)
			if err != nil {
				return err
			}
			if !exists {
				return domain.ErrUnauthorized
			}
			user, err := users.GetState(ctx, userID)
			if err != nil {
				return err
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// UserFrom returns the user attached by Auth, if any.
func UserFrom(c echo.Context) (domain.User, bool) {
	user, ok := c.Get(userContextKey).(domain.User)
	return user, ok
}
