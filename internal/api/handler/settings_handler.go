package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dentalflow/clinic-system/internal/core/domain"
	"github.com/dentalflow/clinic-system/internal/core/ports"
)

type SettingsHandler struct {
	settingsService ports.SettingsService
}

func NewSettingsHandler(settingsService ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get returns the role-to-modules mapping, open to any authenticated user.
//
// @Summary      Get role permissions
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /api/settings/permissions [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	permissions, err := h.settingsService.Permissions(c.Request().Context())
	if err != nil {
		return err
	}
	return ok(c, permissions)
}

// Replace swaps the mapping wholesale. The route is Admin-gated.
//
// @Summary      Replace role permissions
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      object  true  "Role to module-list mapping"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      403   {object}  envelope
// @Router       /api/settings/permissions [post]
func (h *SettingsHandler) Replace(c echo.Context) error {
	var permissions domain.PermissionsMap
	if err := c.Bind(&permissions); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.settingsService.ReplacePermissions(c.Request().Context(), permissions)
	if err != nil {
		return err
	}
	return ok(c, updated)
}
