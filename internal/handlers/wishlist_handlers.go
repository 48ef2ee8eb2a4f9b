package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"artvault/internal/common"
	"artvault/internal/services"
	"artvault/internal/wishlist"
)

// WishlistHandlers exposes the session wishlist over HTTP.
type WishlistHandlers struct {
	wishlists      *wishlist.Store
	productService services.ProductService
}

func NewWishlistHandlers(wishlists *wishlist.Store, productService services.ProductService) *WishlistHandlers {
	return &WishlistHandlers{
		wishlists:      wishlists,
		productService: productService,
	}
}

// List handles GET /wishlist
func (h *WishlistHandlers) List(c echo.Context) error {
	sessionID, ok := common.GetSessionIDFromContext(c.Request().Context())
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	items := h.wishlists.List(sessionID)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

// Toggle handles POST /wishlist/:productID/toggle. Toggling twice restores
// the original membership.
func (h *WishlistHandlers) Toggle(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID, ok := common.GetSessionIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	productID, err := common.ValidateUUID(c.Param("productID"), "product id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.productService.GetByID(ctx, productID)
	if err != nil {
		return common.SendNotFoundError(c, "Product")
	}

	saved := h.wishlists.Toggle(sessionID, product)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"product_id": productID,
		"saved":      saved,
	})
}
