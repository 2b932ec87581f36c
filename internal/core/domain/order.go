package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPlaced     OrderStatus = "placed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// validOrderTransitions defines the allowed state machine transitions.
var validOrderTransitions = map[OrderStatus][]OrderStatus{
	OrderPlaced:     {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered},
}

var ErrOrderNotFound = errors.New("order not found")
var ErrOrderExists = errors.New("order already exists")
var ErrInvalidOrderTransition = errors.New("invalid order status transition")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validOrderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Customer identifies who placed an order.
type Customer struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Phone string `json:"phone" bson:"phone"`
}

// ShippingAddress is the delivery destination.
type ShippingAddress struct {
	Address  string `json:"address" bson:"address"`
	City     string `json:"city" bson:"city"`
	State    string `json:"state,omitempty" bson:"state,omitempty"`
	Postcode string `json:"postcode" bson:"postcode"`
}

// OrderItem is a single purchased line.
type OrderItem struct {
	ProductID string  `json:"product_id" bson:"product_id"`
	Name      string  `json:"name" bson:"name"`
	UnitPrice float64 `json:"unit_price" bson:"unit_price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// OrderStatusEntry records a single status transition on an order.
type OrderStatusEntry struct {
	Status    OrderStatus `json:"status" bson:"status"`
	Timestamp time.Time   `json:"timestamp" bson:"timestamp"`
	Notes     string      `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Order is the checkout aggregate root.
type Order struct {
	ID              string             `json:"id" bson:"_id,omitempty"`
	OrderNumber     string             `json:"order_number" bson:"order_number"`
	Customer        Customer           `json:"customer" bson:"customer"`
	ShippingAddress ShippingAddress    `json:"shipping_address" bson:"shipping_address"`
	Items           []OrderItem        `json:"items" bson:"items"`
	Amount          float64            `json:"amount" bson:"amount"`
	Status          OrderStatus        `json:"status" bson:"status"`
	IdempotencyKey  string             `json:"idempotency_key,omitempty" bson:"idempotency_key,omitempty"`
	PlacedAt        time.Time          `json:"placed_at" bson:"placed_at"`
	StatusHistory   []OrderStatusEntry `json:"status_history" bson:"status_history"`
}
