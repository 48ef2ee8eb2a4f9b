package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"artvault/internal/cart"
	"artvault/internal/common"
	"artvault/internal/services"
)

// CartHandlers exposes the session cart over HTTP. Every mutation returns the
// refreshed cart summary so the client never recomputes totals.
type CartHandlers struct {
	carts          *cart.Store
	productService services.ProductService
}

func NewCartHandlers(carts *cart.Store, productService services.ProductService) *CartHandlers {
	return &CartHandlers{
		carts:          carts,
		productService: productService,
	}
}

// GetCart handles GET /cart
func (h *CartHandlers) GetCart(c echo.Context) error {
	sessionID, ok := common.GetSessionIDFromContext(c.Request().Context())
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	return c.JSON(http.StatusOK, h.carts.Summary(sessionID))
}

// AddItem handles POST /cart/items
func (h *CartHandlers) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID, ok := common.GetSessionIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	productID, err := common.ValidateUUID(req.ProductID, "product_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.productService.GetByID(ctx, productID)
	if err != nil {
		return common.SendNotFoundError(c, "Product")
	}

	if err := h.carts.AddItem(sessionID, product, req.Quantity); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, h.carts.Summary(sessionID))
}

// UpdateItem handles PUT /cart/items/:productID. A quantity of zero or below
// removes the line item.
func (h *CartHandlers) UpdateItem(c echo.Context) error {
	sessionID, ok := common.GetSessionIDFromContext(c.Request().Context())
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	productID, err := common.ValidateUUID(c.Param("productID"), "product id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	h.carts.SetQuantity(sessionID, productID, req.Quantity)
	return c.JSON(http.StatusOK, h.carts.Summary(sessionID))
}

// RemoveItem handles DELETE /cart/items/:productID. Removing an absent item
// is a no-op, not an error.
func (h *CartHandlers) RemoveItem(c echo.Context) error {
	sessionID, ok := common.GetSessionIDFromContext(c.Request().Context())
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	productID, err := common.ValidateUUID(c.Param("productID"), "product id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	h.carts.RemoveItem(sessionID, productID)
	return c.JSON(http.StatusOK, h.carts.Summary(sessionID))
}
