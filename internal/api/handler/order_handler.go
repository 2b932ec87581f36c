package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/velora/storefront-admin/internal/api/metrics"
	"github.com/velora/storefront-admin/internal/core/domain"
	"github.com/velora/storefront-admin/internal/core/ports"
)

// OrderHandler exposes checkout and order administration.
type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// --- Request types ---

type checkoutItemRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	Name      string  `json:"name"       validate:"required"`
	UnitPrice float64 `json:"unit_price" validate:"gt=0"`
	Quantity  int     `json:"quantity"   validate:"gt=0"`
}

type checkoutCustomerRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

type checkoutAddressRequest struct {
	Address  string `json:"address"  validate:"required"`
	City     string `json:"city"     validate:"required"`
	State    string `json:"state"`
	Postcode string `json:"postcode" validate:"required"`
}

type checkoutRequest struct {
	Customer        checkoutCustomerRequest `json:"customer"         validate:"required"`
	ShippingAddress checkoutAddressRequest  `json:"shipping_address" validate:"required"`
	Items           []checkoutItemRequest   `json:"items"            validate:"required,min=1,dive"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=processing shipped delivered cancelled"`
	Notes  string `json:"notes"`
}

type orderListResponse struct {
	Orders []*domain.Order `json:"orders"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

// Checkout handles POST /v1/checkout and places an order. A repeated
// Idempotency-Key returns the original order without side effects.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string           false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      checkoutRequest  true   "Order details"
// @Success      201              {object}  Envelope
// @Failure      422              {object}  Envelope
// @Router       /v1/checkout [post]
func (h *OrderHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	items := make([]ports.CheckoutItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ports.CheckoutItemInput{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}

	result, err := h.orders.Checkout(c.Request().Context(), ports.CheckoutInput{
		Customer: domain.Customer{
			Name:  req.Customer.Name,
			Email: req.Customer.Email,
			Phone: req.Customer.Phone,
		},
		ShippingAddress: domain.ShippingAddress{
			Address:  req.ShippingAddress.Address,
			City:     req.ShippingAddress.City,
			State:    req.ShippingAddress.State,
			Postcode: req.ShippingAddress.Postcode,
		},
		Items:          items,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}

	metrics.OrdersPlacedTotal.WithLabelValues(strconv.FormatBool(result.AlreadyExisted)).Inc()

	status := http.StatusCreated
	msg := "Order placed"
	if result.AlreadyExisted {
		status = http.StatusOK
		msg = "Order already placed"
	}
	return respond(c, status, msg, result)
}

// List handles GET /v1/orders, the paged admin listing.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"
// @Param        email   query     string  false  "Filter by customer email"
// @Param        page    query     int     false  "1-based page"
// @Param        limit   query     int     false  "Rows per page (max 100)"
// @Success      200     {object}  Envelope
// @Router       /v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	orders, total, err := h.orders.ListOrders(c.Request().Context(), ports.ListOrdersFilter{
		Status: c.QueryParam("status"),
		Email:  c.QueryParam("email"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	if page < 1 {
		page = 1
	}
	return respond(c, http.StatusOK, "Orders fetched", orderListResponse{
		Orders: orders,
		Total:  total,
		Page:   page,
		Limit:  limit,
	})
}

// Get handles GET /v1/orders/:order_number.
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.orders.GetOrder(c.Request().Context(), c.Param("order_number"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Order fetched", order)
}

// UpdateStatus handles PATCH /v1/orders/:order_number/status and applies a
// state-machine-guarded transition.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	order, err := h.orders.UpdateOrderStatus(c.Request().Context(), c.Param("order_number"), domain.OrderStatus(req.Status), req.Notes)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Order status updated", order)
}
