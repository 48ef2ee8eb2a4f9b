package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"artvault/internal/cart"
	"artvault/internal/models"
	"artvault/internal/repositories"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrMissingCustomer    = errors.New("customer name and email are required")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

// CheckoutRequest carries the customer details captured at checkout. Payment
// itself happens out of band: the customer transfers to one of the settlement
// wallets and the gallery confirms manually.
type CheckoutRequest struct {
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	Notes         *string `json:"notes"`
}

// CheckoutResult is the order plus the settlement instructions.
type CheckoutResult struct {
	Order   *models.Order   `json:"order"`
	Wallets []models.Wallet `json:"wallets"`
}

type CheckoutService interface {
	Checkout(ctx context.Context, sessionID string, req *CheckoutRequest) (*CheckoutResult, error)
	Wallets() []models.Wallet
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, limit, offset int) ([]*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) error
}

type checkoutService struct {
	orderRepo repositories.OrderRepository
	carts     *cart.Store
	wallets   []models.Wallet
}

func NewCheckoutService(orderRepo repositories.OrderRepository, carts *cart.Store, wallets []models.Wallet) CheckoutService {
	return &checkoutService{
		orderRepo: orderRepo,
		carts:     carts,
		wallets:   wallets,
	}
}

// Checkout freezes the session cart into a pending-payment order. The cart is
// cleared only after the order row commits, so a failed checkout leaves the
// cart exactly as it was.
func (s *checkoutService) Checkout(ctx context.Context, sessionID string, req *CheckoutRequest) (*CheckoutResult, error) {
	if req.CustomerName == "" || req.CustomerEmail == "" {
		return nil, ErrMissingCustomer
	}

	summary := s.carts.Summary(sessionID)
	if len(summary.Items) == 0 {
		return nil, ErrEmptyCart
	}

	order := &models.Order{
		ID:            uuid.New(),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Notes:         req.Notes,
		Status:        models.OrderStatusPendingPayment,
		Subtotal:      summary.Subtotal,
		Insurance:     summary.Insurance,
		Shipping:      summary.Shipping,
		Total:         summary.Total,
	}
	for _, item := range summary.Items {
		order.Items = append(order.Items, &models.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Title:     item.Title,
			ImageURL:  item.ImageURL,
			Category:  item.Category,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.carts.Clear(sessionID)
	return &CheckoutResult{Order: order, Wallets: s.wallets}, nil
}

func (s *checkoutService) Wallets() []models.Wallet {
	return s.wallets
}

func (s *checkoutService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *checkoutService) ListOrders(ctx context.Context, limit, offset int) ([]*models.Order, error) {
	return s.orderRepo.List(ctx, limit, offset)
}

func (s *checkoutService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) error {
	switch status {
	case models.OrderStatusPendingPayment, models.OrderStatusPaid, models.OrderStatusShipped, models.OrderStatusCancelled:
	default:
		return ErrInvalidOrderStatus
	}
	return s.orderRepo.UpdateStatus(ctx, id, status)
}
