package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dentalflow/clinic-system/internal/core/domain"
)

func contextWithUser(e *echo.Echo, user domain.User) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(userContextKey, user)
	return c
}

func TestRequireRoles_Allowed(t *testing.T) {
	e := echo.New()
	c := contextWithUser(e, domain.User{ID: "1", Role: domain.RoleAdmin})

	called := false
	err := RequireRoles(domain.RoleAdmin, domain.RoleManager)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestRequireRoles_Forbidden(t *testing.T) {
	e := echo.New()
	c := contextWithUser(e, domain.User{ID: "p1", Role: domain.RolePatient})

	err := RequireRoles(domain.StaffRoles()...)(func(c echo.Context) error {
		t.Fatalf("next should not run")
		return nil
	})(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireRoles_NoUser(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := RequireRoles(domain.RoleAdmin)(func(c echo.Context) error { return nil })(c)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
