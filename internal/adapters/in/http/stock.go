package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetStock handles GET /api/v1/stock/{productId}. The figure may come from
// the stock cache and lag behind recent sales.
func (s *Server) GetStock(c echo.Context, productID openapi_types.UUID) error {
	id, err := domainID("product id", productID)
	if err != nil {
		return s.writeError(c, err)
	}

	available, err := s.handlers.Inventory.AvailableStock(c.Request().Context(), id)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, servers.ProductStock{ProductId: productID, Quantity: available})
}

// SetStock handles PUT /api/v1/stock/{productId}.
func (s *Server) SetStock(c echo.Context, productID openapi_types.UUID) error {
	id, err := domainID("product id", productID)
	if err != nil {
		return s.writeError(c, err)
	}

	var req servers.SetStockJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewSetProductStockCommand(id, req.Quantity)
	if err != nil {
		return s.writeError(c, err)
	}

	ctx := c.Request().Context()
	if err = s.handlers.SetProductStock.Handle(ctx, cmd); err != nil {
		return s.writeError(c, err)
	}

	if s.invalidator != nil {
		if err = s.invalidator.Invalidate(ctx, id); err != nil {
			s.logger.WarnContext(ctx, "stock cache eviction failed", "product_id", id.String(), "error", err)
		}
	}

	return c.NoContent(http.StatusNoContent)
}
