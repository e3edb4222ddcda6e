package broadcast

import (
	"encoding/json"
	"maps"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/view"
)

// EventType names a state change pushed to live clients.
type EventType string

const (
	EventNewOrder       EventType = "new_order"
	EventOrderUpdated   EventType = "order_updated"
	EventPaymentUpdated EventType = "payment_updated"
	EventOrderCancelled EventType = "order_cancelled"
	EventOrdersReset    EventType = "orders_reset"
	EventPauseUpdated   EventType = "orders_pause_updated"
)

// ResetMessage accompanies every orders_reset event.
const ResetMessage = "Completed orders have been reset"

// Event is one state change. Payload fields are flattened next to type and seq on the wire.
type Event struct {
	Type    EventType
	Payload map[string]any
}

// NewOrder announces an accepted order.
func NewOrder(o model.Order) Event {
	return Event{Type: EventNewOrder, Payload: map[string]any{
		"order":       view.NewOrder(o),
		"serviceType": string(o.Channel),
	}}
}

// OrderUpdated announces a status change.
func OrderUpdated(o model.Order) Event {
	return Event{Type: EventOrderUpdated, Payload: map[string]any{
		"orderId": o.ID,
		"status":  string(o.Status),
		"order":   view.NewOrder(o),
	}}
}

// PaymentUpdated announces a payment change.
func PaymentUpdated(o model.Order) Event {
	var method any
	if o.PaymentMethod != "" {
		method = string(o.PaymentMethod)
	}
	return Event{Type: EventPaymentUpdated, Payload: map[string]any{
		"orderId":       o.ID,
		"paymentMethod": method,
		"paymentStatus": string(o.PaymentStatus),
		"order":         view.NewOrder(o),
	}}
}

// OrderCancelled announces a cancellation.
func OrderCancelled(o model.Order) Event {
	return Event{Type: EventOrderCancelled, Payload: map[string]any{
		"orderId": o.ID,
		"order":   view.NewOrder(o),
	}}
}

// OrdersReset announces removal of completed orders.
func OrdersReset(count int) Event {
	return Event{Type: EventOrdersReset, Payload: map[string]any{
		"message": ResetMessage,
		"count":   count,
	}}
}

// PauseUpdated announces a change of admission state, including lazy expiry.
func PauseUpdated(s model.PauseStatus) Event {
	payload := map[string]any{
		"serviceType":          string(s.Channel),
		"isPaused":             s.Active,
		"pauseDurationMinutes": nil,
		"pauseReason":          nil,
	}
	if s.Active {
		payload["pauseDurationMinutes"] = s.DurationMinutes
		payload["pauseReason"] = s.Reason
		payload["remainingMinutes"] = s.RemainingMinutes
	}
	return Event{Type: EventPauseUpdated, Payload: payload}
}

func (e Event) encode(seq uint64) ([]byte, error) {
	body := make(map[string]any, len(e.Payload)+2)
	maps.Copy(body, e.Payload)
	body["type"] = string(e.Type)
	body["seq"] = seq
	return json.Marshal(body)
}
