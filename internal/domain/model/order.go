package model

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
)

// OrderStatus describes fulfillment lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PaymentStatus describes settlement state of an order.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// PaymentMethod is the tender used to settle an order.
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodUPI  PaymentMethod = "upi"
	PaymentMethodCard PaymentMethod = "card"
)

// PaymentMethods lists accepted tenders in reporting order.
var PaymentMethods = []PaymentMethod{PaymentMethodCash, PaymentMethodUPI, PaymentMethodCard}

// LineItem is the point-in-time copy of a menu entry captured when the order is placed.
type LineItem struct {
	MenuItemID int64
	Name       string
	Price      decimal.Decimal
	Quantity   int
}

// Subtotal returns price multiplied by quantity.
func (l LineItem) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order is the central aggregate tracked from placement to settlement.
type Order struct {
	ID            int64
	Number        string
	TableID       *int64
	TableNumber   string
	Channel       Channel
	Status        OrderStatus
	TotalAmount   decimal.Decimal
	Items         []LineItem
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	CreatedAt     time.Time
	CompletedAt   *time.Time
	CancelledAt   *time.Time
	PaidAt        *time.Time
	CancelReason  string
}

// Clone returns a deep copy that shares no memory with o.
func (o Order) Clone() Order {
	c := o
	c.TableID = clonePtr(o.TableID)
	c.CompletedAt = clonePtr(o.CompletedAt)
	c.CancelledAt = clonePtr(o.CancelledAt)
	c.PaidAt = clonePtr(o.PaidAt)
	c.Items = slices.Clone(o.Items)
	return c
}

// OrderItem is the normalized, immutable line of an order used for reporting.
type OrderItem struct {
	ID         int64
	OrderID    int64
	MenuItemID *int64
	Quantity   int
	Price      decimal.Decimal
	ItemName   string
}

// Clone returns a copy with its own menu item reference.
func (i OrderItem) Clone() OrderItem {
	c := i
	c.MenuItemID = clonePtr(i.MenuItemID)
	return c
}

// OrderFilter narrows order listings. Empty fields match everything.
type OrderFilter struct {
	Status  OrderStatus
	Channel Channel
}

// Matches reports whether order satisfies the filter.
func (f OrderFilter) Matches(o Order) bool {
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.Channel != "" && o.Channel != f.Channel {
		return false
	}
	return true
}

// OrderWithItems couples an order with its normalized items.
type OrderWithItems struct {
	Order Order
	Items []OrderItem
}

var statusRank = map[OrderStatus]int{
	OrderStatusPending:   0,
	OrderStatusPreparing: 1,
	OrderStatusReady:     2,
	OrderStatusCompleted: 3,
}

// ParseOrderStatus validates a raw status value.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(raw)
	if _, ok := statusRank[s]; ok || s == OrderStatusCancelled {
		return s, nil
	}
	return "", domainErrors.Validation("status", "unknown order status "+raw)
}

// Cancellable reports whether the order may still be cancelled.
func (o Order) Cancellable() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusPreparing
}

// TransitionGuard is an optional policy evaluated before a status change is applied.
type TransitionGuard func(current Order, target OrderStatus) error

// RequirePaidForCompletion only lets an order become completed once it has been paid.
func RequirePaidForCompletion(current Order, target OrderStatus) error {
	if target != OrderStatusCompleted || current.Status == OrderStatusCompleted {
		return nil
	}
	if current.PaymentStatus != PaymentStatusPaid {
		return domainErrors.InvalidTransition(string(current.Status), string(target),
			"order cannot be completed until payment is recorded")
	}
	return nil
}

// ApplyStatus moves the order forward to target. Any forward (or same) step among
// pending, preparing, ready and completed is accepted; completedAt is stamped once.
func (o *Order) ApplyStatus(target OrderStatus, now time.Time) error {
	if target == OrderStatusCancelled {
		return domainErrors.InvalidTransition(string(o.Status), string(target), "use cancel to cancel an order")
	}
	if o.Status == OrderStatusCancelled {
		return domainErrors.InvalidTransition(string(o.Status), string(target), "order is cancelled")
	}
	to, ok := statusRank[target]
	if !ok {
		return domainErrors.Validation("status", "unknown order status "+string(target))
	}
	if to < statusRank[o.Status] {
		return domainErrors.InvalidTransition(string(o.Status), string(target),
			"order cannot move back from "+string(o.Status)+" to "+string(target))
	}
	o.Status = target
	if target == OrderStatusCompleted && o.CompletedAt == nil {
		stamp := now
		o.CompletedAt = &stamp
	}
	return nil
}

// Cancel marks the order cancelled when it is still pending or preparing.
func (o *Order) Cancel(reason string, now time.Time) error {
	if !o.Cancellable() {
		return domainErrors.InvalidTransition(string(o.Status), string(OrderStatusCancelled),
			"order in status "+string(o.Status)+" cannot be cancelled")
	}
	stamp := now
	o.Status = OrderStatusCancelled
	o.CancelledAt = &stamp
	o.CancelReason = reason
	return nil
}

// ApplyPayment records tender and settlement. A paid status requires a tender.
func (o *Order) ApplyPayment(method PaymentMethod, status PaymentStatus, now time.Time) error {
	if o.Status == OrderStatusCancelled {
		return domainErrors.InvalidTransition(string(o.Status), string(status), "cancelled orders cannot take payment")
	}
	if method != "" {
		o.PaymentMethod = method
	}
	if status == PaymentStatusPaid && o.PaymentMethod == "" {
		return domainErrors.Validation("paymentMethod", "payment method is required to mark an order paid")
	}
	o.PaymentStatus = status
	if status == PaymentStatusPaid && o.PaidAt == nil {
		stamp := now
		o.PaidAt = &stamp
	}
	return nil
}

// ParsePaymentMethod validates a raw tender value. Empty input yields an empty method.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	if raw == "" {
		return "", nil
	}
	m := PaymentMethod(raw)
	if slices.Contains(PaymentMethods, m) {
		return m, nil
	}
	return "", domainErrors.Validation("paymentMethod", "unknown payment method "+raw)
}

// ParsePaymentStatus validates a raw payment status; "completed" is accepted as paid.
func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	switch raw {
	case string(PaymentStatusPending):
		return PaymentStatusPending, nil
	case string(PaymentStatusPaid), "completed":
		return PaymentStatusPaid, nil
	}
	return "", domainErrors.Validation("paymentStatus", "unknown payment status "+raw)
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
