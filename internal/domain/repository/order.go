package repository

import (
	"context"
	"time"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// OrderMutation edits an order in place. Returning an error aborts the update
// and leaves the stored order untouched.
type OrderMutation func(order *model.Order) error

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// NextID reserves an order identifier ahead of Create.
	NextID(ctx context.Context) (int64, error)
	// Create stores the order and its normalized items in one step and
	// returns the order with assigned identifiers. A zero order ID is
	// assigned by the store, otherwise the reserved one is used.
	Create(ctx context.Context, order model.Order, items []model.OrderItem) (*model.Order, error)
	Get(ctx context.Context, id int64) (*model.Order, error)
	// List returns matching orders, newest first.
	List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)
	Items(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	// Update applies fn to the current order atomically and returns the result.
	Update(ctx context.Context, id int64, fn OrderMutation) (*model.Order, error)
	DeleteCompleted(ctx context.Context) (int, error)
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int, error)
	// Window returns orders created in [start, end] with their items from one
	// consistent snapshot.
	Window(ctx context.Context, start, end time.Time) ([]model.OrderWithItems, error)
}
