package dto

import (
	"github.com/shopspring/decimal"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/view"
)

// LineItemRequest is one entry of a placed order.
type LineItemRequest struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// PlaceOrderRequest is the customer order payload.
type PlaceOrderRequest struct {
	TableID     *int64            `json:"tableId"`
	TableNumber string            `json:"tableNumber"`
	ServiceType string            `json:"serviceType"`
	Items       []LineItemRequest `json:"items"`
	TotalAmount decimal.Decimal   `json:"totalAmount"`
}

// UpdateStatusRequest changes order status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdatePaymentRequest records payment.
type UpdatePaymentRequest struct {
	PaymentMethod string `json:"paymentMethod"`
	PaymentStatus string `json:"paymentStatus"`
}

// CancelOrderRequest carries an optional cancellation reason.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// LineItemResponse is one entry of the order snapshot.
type LineItemResponse = view.LineItem

// OrderResponse is the wire view of an order.
type OrderResponse = view.Order

// NewOrderResponse converts a domain order.
func NewOrderResponse(o model.Order) OrderResponse {
	return view.NewOrder(o)
}

// NewOrderResponses converts a list of domain orders.
func NewOrderResponses(orders []model.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderResponse(o))
	}
	return out
}

// OrderItemResponse is the normalized order line used by reporting screens.
type OrderItemResponse struct {
	ID         int64  `json:"id"`
	OrderID    int64  `json:"orderId"`
	MenuItemID *int64 `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	Price      string `json:"price"`
	ItemName   string `json:"itemName"`
}

// NewOrderItemResponses converts normalized items.
func NewOrderItemResponses(items []model.OrderItem) []OrderItemResponse {
	out := make([]OrderItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, OrderItemResponse{
			ID:         it.ID,
			OrderID:    it.OrderID,
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			Price:      it.Price.StringFixed(2),
			ItemName:   it.ItemName,
		})
	}
	return out
}
