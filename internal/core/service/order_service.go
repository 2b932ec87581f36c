package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/velora/storefront-admin/internal/core/domain"
	"github.com/velora/storefront-admin/internal/core/ports"
)

const maxOrderPageSize = 100

// CheckoutDedup abstracts the idempotency store (Redis).
type CheckoutDedup interface {
	IsDuplicate(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}

type orderService struct {
	repo  ports.OrderRepository
	dedup CheckoutDedup
	log   zerolog.Logger
}

// NewOrderService returns an OrderService implementation.
func NewOrderService(repo ports.OrderRepository, dedup CheckoutDedup, log zerolog.Logger) ports.OrderService {
	return &orderService{repo: repo, dedup: dedup, log: log}
}

// Checkout places a new order. When an idempotency key is supplied and has
// been seen before, the previously placed order is returned without side
// effects. The redis check fails open, but the durable store lookup does not:
// a failed lookup blocks the checkout rather than risking a duplicate order.
func (s *orderService) Checkout(ctx context.Context, in ports.CheckoutInput) (*ports.CheckoutResult, error) {
	if len(in.Items) == 0 {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "items", Message: "items must not be empty"},
		}}
	}

	if in.IdempotencyKey != "" {
		if dup, err := s.dedup.IsDuplicate(ctx, in.IdempotencyKey); err != nil {
			s.log.Warn().Err(err).Str("idempotency_key", in.IdempotencyKey).Msg("dedup check failed, falling back to store lookup")
		} else if dup {
			s.log.Debug().Str("idempotency_key", in.IdempotencyKey).Msg("checkout replay via dedup cache")
		}
		existing, err := s.repo.FindByIdempotencyKey(ctx, in.IdempotencyKey)
		switch {
		case err == nil:
			s.log.Info().Str("idempotency_key", in.IdempotencyKey).Str("order_number", existing.OrderNumber).Msg("idempotent checkout replay")
			return replayResult(existing), nil
		case !errors.Is(err, domain.ErrOrderNotFound):
			return nil, fmt.Errorf("checkout: idempotency lookup: %w", err)
		}
	}

	now := time.Now().UTC()
	items := make([]domain.OrderItem, 0, len(in.Items))
	var amount float64
	for _, it := range in.Items {
		items = append(items, domain.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		})
		// amount is always recomputed server-side, client totals are ignored
		amount += it.UnitPrice * float64(it.Quantity)
	}

	order := &domain.Order{
		OrderNumber:     generateOrderNumber(),
		Customer:        in.Customer,
		ShippingAddress: in.ShippingAddress,
		Items:           items,
		Amount:          amount,
		Status:          domain.OrderPlaced,
		IdempotencyKey:  in.IdempotencyKey,
		PlacedAt:        now,
		StatusHistory: []domain.OrderStatusEntry{
			{Status: domain.OrderPlaced, Timestamp: now},
		},
	}

	if err := s.repo.Create(ctx, order); err != nil {
		// A concurrent checkout with the same key won the insert race; the
		// unique index on the key is the authoritative guard, replay from it.
		if errors.Is(err, domain.ErrOrderExists) && in.IdempotencyKey != "" {
			existing, lookupErr := s.repo.FindByIdempotencyKey(ctx, in.IdempotencyKey)
			if lookupErr != nil {
				return nil, fmt.Errorf("checkout: replay after duplicate insert: %w", lookupErr)
			}
			s.log.Info().Str("idempotency_key", in.IdempotencyKey).Str("order_number", existing.OrderNumber).Msg("idempotent checkout replay after insert race")
			return replayResult(existing), nil
		}
		s.log.Error().Err(err).Msg("failed to place order")
		return nil, err
	}

	if in.IdempotencyKey != "" {
		if err := s.dedup.Mark(ctx, in.IdempotencyKey); err != nil {
			s.log.Warn().Err(err).Str("idempotency_key", in.IdempotencyKey).Msg("failed to set dedup key")
		}
	}

	s.log.Info().Str("order_number", order.OrderNumber).Float64("amount", amount).Msg("order placed")

	return &ports.CheckoutResult{
		OrderNumber: order.OrderNumber,
		Status:      string(order.Status),
		Amount:      order.Amount,
		PlacedAt:    order.PlacedAt,
	}, nil
}

func replayResult(o *domain.Order) *ports.CheckoutResult {
	return &ports.CheckoutResult{
		OrderNumber:    o.OrderNumber,
		Status:         string(o.Status),
		Amount:         o.Amount,
		PlacedAt:       o.PlacedAt,
		AlreadyExisted: true,
	}
}

func (s *orderService) GetOrder(ctx context.Context, orderNumber string) (*domain.Order, error) {
	return s.repo.FindByOrderNumber(ctx, orderNumber)
}

func (s *orderService) ListOrders(ctx context.Context, filter ports.ListOrdersFilter) ([]*domain.Order, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > maxOrderPageSize {
		filter.Limit = maxOrderPageSize
	}
	return s.repo.List(ctx, filter)
}

// UpdateOrderStatus applies a status transition guarded by the order state
// machine and appends a history entry.
func (s *orderService) UpdateOrderStatus(ctx context.Context, orderNumber string, status domain.OrderStatus, notes string) (*domain.Order, error) {
	order, err := s.repo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidOrderTransition, order.Status, status)
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateStatus(ctx, orderNumber, status, now, notes); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	order.Status = status
	order.StatusHistory = append(order.StatusHistory, domain.OrderStatusEntry{
		Status:    status,
		Timestamp: now,
		Notes:     notes,
	})

	s.log.Info().Str("order_number", orderNumber).Str("status", string(status)).Msg("order status updated")
	return order, nil
}

// generateOrderNumber returns a unique order number in the format ORD-XXXXXXXX.
func generateOrderNumber() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("ORD-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("ORD-%08X", b)
}
