// Package view holds wire views shared by the HTTP API and live events.
package view

import (
	"time"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// LineItem is one entry of the order snapshot.
type LineItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

// Order is the wire view of an order.
type Order struct {
	ID            int64      `json:"id"`
	OrderNumber   string     `json:"orderNumber"`
	TableID       *int64     `json:"tableId"`
	TableNumber   string     `json:"tableNumber"`
	ServiceType   string     `json:"serviceType"`
	Status        string     `json:"status"`
	TotalAmount   string     `json:"totalAmount"`
	Items         []LineItem `json:"items"`
	PaymentMethod *string    `json:"paymentMethod"`
	PaymentStatus string     `json:"paymentStatus"`
	CreatedAt     time.Time  `json:"createdAt"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	CancelledAt   *time.Time `json:"cancelledAt,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	CancelReason  string     `json:"cancelReason,omitempty"`
}

// NewOrder converts a domain order.
func NewOrder(o model.Order) Order {
	items := make([]LineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, LineItem{
			ID:       it.MenuItemID,
			Name:     it.Name,
			Price:    it.Price.StringFixed(2),
			Quantity: it.Quantity,
		})
	}
	var method *string
	if o.PaymentMethod != "" {
		m := string(o.PaymentMethod)
		method = &m
	}
	return Order{
		ID:            o.ID,
		OrderNumber:   o.Number,
		TableID:       o.TableID,
		TableNumber:   o.TableNumber,
		ServiceType:   string(o.Channel),
		Status:        string(o.Status),
		TotalAmount:   o.TotalAmount.StringFixed(2),
		Items:         items,
		PaymentMethod: method,
		PaymentStatus: string(o.PaymentStatus),
		CreatedAt:     o.CreatedAt,
		CompletedAt:   o.CompletedAt,
		CancelledAt:   o.CancelledAt,
		PaidAt:        o.PaidAt,
		CancelReason:  o.CancelReason,
	}
}
