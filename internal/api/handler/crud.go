package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dentalflow/clinic-system/internal/api/metrics"
	"github.com/dentalflow/clinic-system/internal/core/domain"
	"github.com/dentalflow/clinic-system/internal/core/entity"
)

// ScopeFunc narrows a listing for a Patient-role caller. It receives the
// full item set and returns only the rows the caller may see.
type ScopeFunc[T any] func(ctx context.Context, user domain.User, items []T) ([]T, error)

// Resource generates the five standard endpoints for one indexed entity
// kind: list, create, get, update, delete. Resources share identical
// envelope, status-code and merge semantics; anything that deviates (users,
// stock adjustment) gets a hand-written handler instead.
type Resource[T any] struct {
	path  string
	col   *entity.Collection[T]
	scope ScopeFunc[T]
}

// NewResource builds a Resource for path backed by col. A non-nil scope is
// applied to listings when the caller has the Patient role.
func NewResource[T any](path string, col *entity.Collection[T], scope ScopeFunc[T]) *Resource[T] {
	return &Resource[T]{path: path, col: col, scope: scope}
}

// Register wires the five routes onto the authenticated group.
func (r *Resource[T]) Register(g *echo.Group) {
	g.GET("/"+r.path, r.list)
	g.POST("/"+r.path, r.create)
	g.GET("/"+r.path+"/:id", r.get)
	g.PUT("/"+r.path+"/:id", r.update)
	g.DELETE("/"+r.path+"/:id", r.remove)
}

func (r *Resource[T]) list(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	items, err := r.col.List(c.Request().Context())
	if err != nil {
		return err
	}
	if r.scope != nil && user.Role == domain.RolePatient {
		items, err = r.scope(c.Request().Context(), user, items)
		if err != nil {
			return err
		}
	}
	return ok(c, items)
}

func (r *Resource[T]) create(c echo.Context) error {
	var item T
	if err := c.Bind(&item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	r.col.SetID(&item, uuid.NewString())
	now := time.Now().UTC().Format(time.RFC3339)
	if s, ok := any(&item).(interface{ StampCreated(string) }); ok {
		s.StampCreated(now)
	}
	if s, ok := any(&item).(interface{ StampUpdated(string) }); ok {
		s.StampUpdated(now)
	}

	if err := r.col.Save(c.Request().Context(), item); err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues(r.col.Kind()).Inc()
	return ok(c, item)
}

func (r *Resource[T]) get(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()

	exists, err := r.col.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	item, err := r.col.GetState(ctx, id)
	if err != nil {
		return err
	}
	return ok(c, item)
}

func (r *Resource[T]) update(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()

	exists, err := r.col.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil || !json.Valid(body) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	current, err := r.col.GetState(ctx, id)
	if err != nil {
		return err
	}
	merged, err := entity.MergePatch(current, body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	// The record id always equals the storage key, whatever the body said.
	r.col.SetID(&merged, id)
	if s, ok := any(&merged).(interface{ StampUpdated(string) }); ok {
		s.StampUpdated(time.Now().UTC().Format(time.RFC3339))
	}

	if err := r.col.Save(ctx, merged); err != nil {
		return err
	}
	return ok(c, merged)
}

func (r *Resource[T]) remove(c echo.Context) error {
	id := c.Param("id")

	deleted, err := r.col.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}

	metrics.EntitiesDeletedTotal.WithLabelValues(r.col.Kind()).Inc()
	return ok(c, idResponse{ID: id})
}

// ScopeToOwnPatient restricts a patients listing to the single record linked
// to the caller's user account. No linked record means an empty list, not an
// error.
func ScopeToOwnPatient() ScopeFunc[domain.Patient] {
	return func(_ context.Context, user domain.User, items []domain.Patient) ([]domain.Patient, error) {
		out := make([]domain.Patient, 0, 1)
		for _, p := range items {
			if p.UserID == user.ID {
				out = append(out, p)
				break
			}
		}
		return out, nil
	}
}

// ScopeToLinkedPatient restricts rows to those referencing the patient
// record linked to the caller's user account, resolved through the patients
// collection. patientID extracts the referencing field from a row.
func ScopeToLinkedPatient[T any](patients *entity.Collection[domain.Patient], patientID func(T) string) ScopeFunc[T] {
	return func(ctx context.Context, user domain.User, items []T) ([]T, error) {
		all, err := patients.List(ctx)
		if err != nil {
			return nil, err
		}
		var linked *domain.Patient
		for i := range all {
			if all[i].UserID == user.ID {
				linked = &all[i]
				break
			}
		}
		out := make([]T, 0, len(items))
		if linked == nil {
			return out, nil
		}
		for _, item := range items {
			if patientID(item) == linked.ID {
				out = append(out, item)
			}
		}
		return out, nil
	}
}
