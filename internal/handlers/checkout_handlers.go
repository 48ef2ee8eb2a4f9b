package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jung-kurt/gofpdf"
	"github.com/labstack/echo/v4"

	"artvault/internal/common"
	"artvault/internal/config"
	"artvault/internal/models"
	"artvault/internal/services"
)

// ReceiptBucket holds generated order receipts, served via presigned URLs.
const ReceiptBucket = "artvault-receipts"

// CheckoutHandlers handles checkout, orders, and receipt generation.
type CheckoutHandlers struct {
	checkoutService services.CheckoutService
	storage         services.StorageService
	gallery         config.GallerySettings
}

func NewCheckoutHandlers(checkoutService services.CheckoutService, storage services.StorageService, gallery config.GallerySettings) *CheckoutHandlers {
	return &CheckoutHandlers{
		checkoutService: checkoutService,
		storage:         storage,
		gallery:         gallery,
	}
}

// Checkout handles POST /checkout
func (h *CheckoutHandlers) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID, ok := common.GetSessionIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req services.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	result, err := h.checkoutService.Checkout(ctx, sessionID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart), errors.Is(err, services.ErrMissingCustomer):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return common.SendServerError(c, "Checkout failed")
		}
	}

	return c.JSON(http.StatusCreated, result)
}

// Wallets handles GET /checkout/wallets
func (h *CheckoutHandlers) Wallets(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"wallets": h.checkoutService.Wallets(),
	})
}

// GetOrder handles GET /orders/:id
func (h *CheckoutHandlers) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "order id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.checkoutService.GetOrder(ctx, id)
	if err != nil {
		return common.SendNotFoundError(c, "Order")
	}

	return c.JSON(http.StatusOK, order)
}

// ListOrders handles GET /orders (admin)
func (h *CheckoutHandlers) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	limit, offset := pagination(c)

	orders, err := h.checkoutService.ListOrders(ctx, limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list orders")
	}
	if orders == nil {
		orders = []*models.Order{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"orders": orders,
		"limit":  limit,
		"offset": offset,
	})
}

// UpdateOrderStatus handles PUT /orders/:id/status (admin)
func (h *CheckoutHandlers) UpdateOrderStatus(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "order id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := h.checkoutService.UpdateOrderStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, services.ErrInvalidOrderStatus) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return common.SendServerError(c, "Failed to update order status")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Order status updated",
	})
}

// GenerateReceipt handles POST /orders/:id/receipt (admin). Renders a PDF
// receipt, stores it, and returns a short-lived download URL.
func (h *CheckoutHandlers) GenerateReceipt(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "order id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.checkoutService.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.SendNotFoundError(c, "Order")
		}
		return common.SendServerError(c, "Failed to load order")
	}

	pdfBytes, err := h.renderReceipt(order)
	if err != nil {
		return common.SendServerError(c, fmt.Sprintf("Failed to generate receipt: %v", err))
	}

	objectName := fmt.Sprintf("%s.pdf", order.ID.String())
	if err := h.storage.Upload(ctx, ReceiptBucket, objectName, bytes.NewReader(pdfBytes), int64(len(pdfBytes)), "application/pdf"); err != nil {
		return common.SendServerError(c, "Failed to store receipt")
	}

	url, err := h.storage.GetPresignedURL(ReceiptBucket, objectName, 24*time.Hour)
	if err != nil {
		return common.SendServerError(c, "Failed to generate download URL")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"order_id":    order.ID,
		"receipt_url": url,
		"expires_in":  "24h",
	})
}

func (h *CheckoutHandlers) renderReceipt(order *models.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	marginX := 20.0
	marginY := 20.0
	pdf.SetMargins(marginX, marginY, marginX)
	pdf.SetAutoPageBreak(true, marginY)

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(33, 37, 41)
	pdf.SetXY(marginX, marginY)
	pdf.Cell(0, 10, fmt.Sprintf("%s - ORDER RECEIPT", h.gallery.Name))
	pdf.Ln(15)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Order: %s", order.ID.String()))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Date: %s", order.CreatedAt.Format("02-Jan-2006")))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", order.Status))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 8, "BILL TO:")
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, order.CustomerName)
	pdf.Ln(6)
	pdf.Cell(0, 6, order.CustomerEmail)
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	headers := []string{"Piece", "Category", "Qty", "Price", "Amount"}
	colWidths := []float64{70, 30, 15, 25, 30}
	for i, header := range headers {
		pdf.CellFormat(colWidths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(255, 255, 255)
	for _, item := range order.Items {
		pdf.CellFormat(colWidths[0], 8, item.Title, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 8, item.Category, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[2], 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[3], 8, fmt.Sprintf("%.2f", item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[4], 8, fmt.Sprintf("%.2f", item.UnitPrice*float64(item.Quantity)), "1", 0, "R", false, 0, "")
		pdf.Ln(8)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Subtotal: %.2f", order.Subtotal))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Insurance (2%%): %.2f", order.Insurance))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Shipping: Free (white-glove delivery)")
	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %.2f", order.Total))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 5, fmt.Sprintf("Questions: %s", h.gallery.SupportEmail))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}
