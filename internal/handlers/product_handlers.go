package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"artvault/internal/common"
	"artvault/internal/models"
	"artvault/internal/services"
)

// ProductHandlers handles HTTP requests for the catalog
type ProductHandlers struct {
	productService services.ProductService
}

// NewProductHandlers creates a new product handlers instance
func NewProductHandlers(productService services.ProductService) *ProductHandlers {
	return &ProductHandlers{productService: productService}
}

type productRequest struct {
	Title       string   `json:"title"`
	Artist      *string  `json:"artist"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price"`
	ImageURLs   []string `json:"image_urls"`
	Description string   `json:"description"`
	Provenance  *string  `json:"provenance"`
	Exhibitions *string  `json:"exhibitions"`
	Literature  *string  `json:"literature"`
	Medium      *string  `json:"medium"`
	Dimensions  *string  `json:"dimensions"`
	Condition   *string  `json:"condition"`
}

// CreateProduct handles POST /products
func (h *ProductHandlers) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	product := &models.Product{
		Title:       req.Title,
		Artist:      req.Artist,
		Category:    req.Category,
		Price:       req.Price,
		ImageURLs:   req.ImageURLs,
		Description: req.Description,
		Provenance:  req.Provenance,
		Exhibitions: req.Exhibitions,
		Literature:  req.Literature,
		Medium:      req.Medium,
		Dimensions:  req.Dimensions,
		Condition:   req.Condition,
	}

	if err := h.productService.Create(ctx, product); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Product created successfully",
		"product": product,
	})
}

// ListProducts handles GET /products
func (h *ProductHandlers) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	limit, offset := pagination(c)

	products, err := h.productService.List(ctx, limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list products")
	}
	if products == nil {
		products = []*models.Product{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": products,
		"limit":    limit,
		"offset":   offset,
	})
}

// GetProduct handles GET /products/:id
func (h *ProductHandlers) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "product id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.productService.GetByID(ctx, id)
	if err != nil {
		return common.SendNotFoundError(c, "Product")
	}

	return c.JSON(http.StatusOK, product)
}

// UpdateProduct handles PATCH /products/:id
func (h *ProductHandlers) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "product id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var update models.ProductUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	product, err := h.productService.Update(ctx, id, &update)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.SendNotFoundError(c, "Product")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Product updated successfully",
		"product": product,
	})
}

// DeleteProduct handles DELETE /products/:id
func (h *ProductHandlers) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "product id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.productService.Delete(ctx, id); err != nil {
		return common.SendServerError(c, "Failed to delete product")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Product deleted successfully",
	})
}

// ListByCategory handles GET /categories/:slug/products
func (h *ProductHandlers) ListByCategory(c echo.Context) error {
	ctx := c.Request().Context()
	limit, offset := pagination(c)

	products, err := h.productService.ListByCategory(ctx, c.Param("slug"), limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list category")
	}
	if products == nil {
		products = []*models.Product{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"category": c.Param("slug"),
		"products": products,
		"limit":    limit,
		"offset":   offset,
	})
}

// SearchProducts handles GET /products/search
func (h *ProductHandlers) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	limit, offset := pagination(c)

	products, err := h.productService.Search(ctx, c.QueryParam("q"), limit, offset)
	if err != nil {
		return common.SendServerError(c, "Search failed")
	}
	if products == nil {
		products = []*models.Product{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": products,
		"query":    c.QueryParam("q"),
		"limit":    limit,
		"offset":   offset,
	})
}

func pagination(c echo.Context) (int, int) {
	limit := 50
	offset := 0
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		if l, err := strconv.Atoi(limitParam); err == nil {
			limit = l
		}
	}
	if offsetParam := c.QueryParam("offset"); offsetParam != "" {
		if o, err := strconv.Atoi(offsetParam); err == nil {
			offset = o
		}
	}
	return common.ValidatePaginationParams(limit, offset)
}
