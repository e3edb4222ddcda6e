package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/orderdesk/internal/broadcast"
	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
	"github.com/polkiloo/orderdesk/internal/pkg/clock"
)

// DefaultCancelReason is stored when a cancellation carries no reason.
const DefaultCancelReason = "Cancelled by customer request"

const numberAttempts = 3

// Admitter gates new orders per channel.
type Admitter interface {
	Admit(ctx context.Context, channel model.Channel) error
}

// PlaceOrderInput is a customer order before validation.
type PlaceOrderInput struct {
	TableID     *int64
	TableNumber string
	Channel     model.Channel
	Items       []model.LineItem
	TotalAmount decimal.Decimal
}

// OrderUseCase owns the order lifecycle.
type OrderUseCase struct {
	orders    repository.OrderRepository
	tables    repository.TableRepository
	menu      repository.MenuItemRepository
	admission Admitter
	publisher broadcast.Publisher
	clock     clock.Clock
	logger    *slog.Logger

	numbers *orderNumbers
	locks   stripedLock
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	tables repository.TableRepository,
	menu repository.MenuItemRepository,
	admission Admitter,
	publisher broadcast.Publisher,
	clk clock.Clock,
	logger *slog.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orders:    orders,
		tables:    tables,
		menu:      menu,
		admission: admission,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
		numbers:   newOrderNumbers(),
	}
}

// validatePlaceOrder compares totals at cent precision since clients sum
// prices in floating point.
func validatePlaceOrder(in PlaceOrderInput) error {
	if _, err := model.ParseChannel(string(in.Channel)); err != nil {
		return err
	}
	if strings.TrimSpace(in.TableNumber) == "" {
		return domainErrors.Validation("tableNumber", "table number is required")
	}
	if len(in.Items) == 0 {
		return domainErrors.Validation("items", "order must contain at least one item")
	}

	sum := decimal.Zero
	for _, it := range in.Items {
		if strings.TrimSpace(it.Name) == "" {
			return domainErrors.Validation("items", "item name is required")
		}
		if it.Quantity <= 0 {
			return domainErrors.Validation("items", "quantity of "+it.Name+" must be positive")
		}
		if it.Price.IsNegative() {
			return domainErrors.Validation("items", "price of "+it.Name+" must not be negative")
		}
		sum = sum.Add(it.Subtotal())
	}
	if !sum.Round(2).Equal(in.TotalAmount.Round(2)) {
		return domainErrors.Validation("totalAmount",
			"total "+in.TotalAmount.StringFixed(2)+" does not match items sum "+sum.StringFixed(2))
	}
	return nil
}

// Place validates and stores a customer order, then announces it. The order's
// stripe is held from before it becomes visible until new_order is out.
func (u *OrderUseCase) Place(ctx context.Context, in PlaceOrderInput) (*model.Order, error) {
	if err := validatePlaceOrder(in); err != nil {
		return nil, err
	}
	if err := u.admission.Admit(ctx, in.Channel); err != nil {
		return nil, err
	}

	tableID, err := u.resolveTable(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]model.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		ref, err := u.resolveMenuItem(ctx, it.MenuItemID)
		if err != nil {
			return nil, err
		}
		items = append(items, model.OrderItem{
			MenuItemID: ref,
			Quantity:   it.Quantity,
			Price:      it.Price,
			ItemName:   it.Name,
		})
	}

	now := u.clock.Now()
	order := model.Order{
		TableID:       tableID,
		TableNumber:   strings.TrimSpace(in.TableNumber),
		Channel:       in.Channel,
		Status:        model.OrderStatusPending,
		TotalAmount:   in.TotalAmount.Round(2),
		Items:         append([]model.LineItem(nil), in.Items...),
		PaymentStatus: model.PaymentStatusPending,
		CreatedAt:     now,
	}

	order.ID, err = u.orders.NextID(ctx)
	if err != nil {
		return nil, err
	}
	unlock := u.locks.lock(order.ID)
	defer unlock()

	var created *model.Order
	for attempt := 0; attempt < numberAttempts; attempt++ {
		order.Number = u.numbers.next(in.Channel, u.clock.Now())
		created, err = u.orders.Create(ctx, order, items)
		if !errors.Is(err, domainErrors.ErrAlreadyExists) {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	u.logger.Info("order placed",
		slog.Int64("order_id", created.ID),
		slog.String("number", created.Number),
		slog.String("channel", string(created.Channel)))
	u.publisher.Broadcast(ctx, broadcast.NewOrder(*created))
	return created, nil
}

func (u *OrderUseCase) resolveTable(ctx context.Context, in PlaceOrderInput) (*int64, error) {
	if in.TableID != nil {
		table, err := u.tables.Get(ctx, *in.TableID)
		if err != nil {
			return nil, err
		}
		return &table.ID, nil
	}

	table, err := u.tables.GetByNumber(ctx, strings.TrimSpace(in.TableNumber))
	switch {
	case err == nil:
		return &table.ID, nil
	case errors.Is(err, domainErrors.ErrNotFound):
		return nil, nil
	default:
		return nil, err
	}
}

func (u *OrderUseCase) resolveMenuItem(ctx context.Context, id int64) (*int64, error) {
	if id <= 0 {
		return nil, nil
	}
	item, err := u.menu.Get(ctx, id)
	switch {
	case err == nil:
		return &item.ID, nil
	case errors.Is(err, domainErrors.ErrNotFound):
		return nil, nil
	default:
		return nil, err
	}
}

// mutate runs one order transition and announces the result while holding
// the order's stripe, so events of one order leave in application order.
func (u *OrderUseCase) mutate(ctx context.Context, id int64, fn repository.OrderMutation, event func(model.Order) broadcast.Event) (*model.Order, error) {
	unlock := u.locks.lock(id)
	defer unlock()

	updated, err := u.orders.Update(ctx, id, fn)
	if err != nil {
		return nil, err
	}
	u.publisher.Broadcast(ctx, event(*updated))
	return updated, nil
}

// UpdateStatus moves an order forward. Guards run inside the atomic update.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus, guards ...model.TransitionGuard) (*model.Order, error) {
	now := u.clock.Now()
	return u.mutate(ctx, id, func(o *model.Order) error {
		for _, guard := range guards {
			if err := guard(*o, status); err != nil {
				return err
			}
		}
		return o.ApplyStatus(status, now)
	}, broadcast.OrderUpdated)
}

// UpdatePayment records tender and payment status.
func (u *OrderUseCase) UpdatePayment(ctx context.Context, id int64, method model.PaymentMethod, status model.PaymentStatus) (*model.Order, error) {
	now := u.clock.Now()
	return u.mutate(ctx, id, func(o *model.Order) error {
		return o.ApplyPayment(method, status, now)
	}, broadcast.PaymentUpdated)
}

// Cancel cancels a pending or preparing order.
func (u *OrderUseCase) Cancel(ctx context.Context, id int64, reason string) (*model.Order, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultCancelReason
	}
	now := u.clock.Now()
	return u.mutate(ctx, id, func(o *model.Order) error {
		return o.Cancel(reason, now)
	}, broadcast.OrderCancelled)
}

// ResetCompleted removes every completed order and returns how many were removed.
func (u *OrderUseCase) ResetCompleted(ctx context.Context) (int, error) {
	n, err := u.orders.DeleteCompleted(ctx)
	if err != nil {
		return 0, err
	}
	u.logger.Info("completed orders reset", slog.Int("count", n))
	u.publisher.Broadcast(ctx, broadcast.OrdersReset(n))
	return n, nil
}

// Get returns one order.
func (u *OrderUseCase) Get(ctx context.Context, id int64) (*model.Order, error) {
	return u.orders.Get(ctx, id)
}

// List returns matching orders, newest first.
func (u *OrderUseCase) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	return u.orders.List(ctx, filter)
}

// Items returns the normalized lines of an order.
func (u *OrderUseCase) Items(ctx context.Context, id int64) ([]model.OrderItem, error) {
	return u.orders.Items(ctx, id)
}
