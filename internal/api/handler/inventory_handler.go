package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dentalflow/clinic-system/internal/core/domain"
	"github.com/dentalflow/clinic-system/internal/core/entity"
)

// StockHandler is the hand-written stock-adjustment endpoint, separate from
// the generic inventory CRUD because it overwrites one field in place.
type StockHandler struct {
	items *entity.Collection[domain.InventoryItem]
}

func NewStockHandler(items *entity.Collection[domain.InventoryItem]) *StockHandler {
	return &StockHandler{items: items}
}

type stockRequest struct {
	// Pointer so that an absent quantity is distinguishable from zero.
	Quantity *float64 `json:"quantity"`
}

// Update overwrites an item's quantity on hand.
//
// @Summary      Set inventory stock level
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Inventory item id"
// @Param        body  body      stockRequest  true  "New quantity"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/inventory/{id}/stock [put]
func (h *StockHandler) Update(c echo.Context) error {
	id := c.Param("id")

	var req stockRequest
	if err := c.Bind(&req); err != nil || req.Quantity == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Quantity must be a number")
	}

	ctx := c.Request().Context()
	exists, err := h.items.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	updated, err := h.items.Mutate(ctx, id, func(item domain.InventoryItem) domain.InventoryItem {
		item.QuantityOnHand = *req.Quantity
		return item
	})
	if err != nil {
		return err
	}
	return ok(c, updated)
}
