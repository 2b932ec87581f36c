package ports

import (
	"context"
	"time"

	"github.com/velora/storefront-admin/internal/core/domain"
)

// ListOrdersFilter carries all query parameters for listing orders.
type ListOrdersFilter struct {
	Status string // optional: filter by order status
	Email  string // optional: filter by customer email
	Page   int    // 1-based
	Limit  int    // max rows per page (capped at 100 by service)
}

// OrderRepository defines persistence operations for orders.
//
// Create must map the store's unique-index violation on the idempotency key
// to domain.ErrOrderExists: two concurrent checkouts with the same key can
// both pass the lookup, the index decides the winner.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.Order, error)
	// List returns a page of orders matching filter and the total count.
	List(ctx context.Context, filter ListOrdersFilter) ([]*domain.Order, int64, error)
	// UpdateStatus atomically sets the order status and appends a history entry.
	UpdateStatus(ctx context.Context, orderNumber string, status domain.OrderStatus, ts time.Time, notes string) error
}
