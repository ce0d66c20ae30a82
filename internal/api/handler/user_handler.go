package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dentalflow/clinic-system/internal/api/metrics"
	"github.com/dentalflow/clinic-system/internal/core/domain"
	"github.com/dentalflow/clinic-system/internal/core/ports"
)

// UserHandler covers the staff account endpoints. These stay hand-written
// rather than going through the CRUD factory because of the password-hash
// rules: assigned server-side on create, stripped from every response,
// preserved across partial updates.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type createUserRequest struct {
	Username string      `json:"username"  validate:"required"`
	Email    string      `json:"email"     validate:"required,email"`
	FullName string      `json:"full_name" validate:"required"`
	Role     domain.Role `json:"role"      validate:"required"`
	Phone    string      `json:"phone"`
}

// List returns all users, hashes stripped.
//
// @Summary      List staff users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return ok(c, users)
}

// Create adds a staff or portal account.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User fields"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required user fields")
	}
	if !req.Role.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown role")
	}

	user, err := h.userService.Create(c.Request().Context(), ports.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Role:     req.Role,
		Phone:    req.Phone,
	})
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("user").Inc()
	return ok(c, user)
}

// Update merges a partial document over the stored user.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "User id"
// @Param        body  body      object  true  "Partial user document"
// @Success      200   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id := c.Param("id")
	body, err := io.ReadAll(c.Request().Body)
	if err != nil || !json.Valid(body) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.userService.Update(c.Request().Context(), id, body)
	if err != nil {
		return err
	}
	return ok(c, user)
}

// Delete removes a user account.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.userService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.EntitiesDeletedTotal.WithLabelValues("user").Inc()
	return ok(c, idResponse{ID: id})
}
