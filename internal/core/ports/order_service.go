package ports

import (
	"context"
	"time"

	"github.com/velora/storefront-admin/internal/core/domain"
)

// CheckoutItemInput is a single line in a checkout request.
type CheckoutItemInput struct {
	ProductID string
	Name      string
	UnitPrice float64
	Quantity  int
}

// CheckoutInput carries all data needed to place a new order.
type CheckoutInput struct {
	Customer        domain.Customer
	ShippingAddress domain.ShippingAddress
	Items           []CheckoutItemInput
	IdempotencyKey  string
}

// CheckoutResult summarizes a placed (or replayed) order.
type CheckoutResult struct {
	OrderNumber    string    `json:"order_number"`
	Status         string    `json:"status"`
	Amount         float64   `json:"amount"`
	PlacedAt       time.Time `json:"placed_at"`
	AlreadyExisted bool      `json:"-"`
}

// OrderService exposes checkout and order administration.
type OrderService interface {
	Checkout(ctx context.Context, in CheckoutInput) (*CheckoutResult, error)
	GetOrder(ctx context.Context, orderNumber string) (*domain.Order, error)
	ListOrders(ctx context.Context, filter ListOrdersFilter) ([]*domain.Order, int64, error)
	UpdateOrderStatus(ctx context.Context, orderNumber string, status domain.OrderStatus, notes string) (*domain.Order, error)
}
