package app

import (
	"context"
	"time"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	pkgAuth "github.com/polkiloo/orderdesk/internal/pkg/auth"
	"github.com/polkiloo/orderdesk/internal/usecase"
)

// OrderDeskFacade is the single entry point of the HTTP layer and the workers.
type OrderDeskFacade struct {
	auth      *usecase.AuthUseCase
	catalog   *usecase.CatalogUseCase
	orders    *usecase.OrderUseCase
	pauses    *usecase.PauseUseCase
	analytics *usecase.AnalyticsUseCase
	retention *usecase.RetentionUseCase
	seed      *usecase.SeedUseCase
}

func NewOrderDeskFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	orders *usecase.OrderUseCase,
	pauses *usecase.PauseUseCase,
	analytics *usecase.AnalyticsUseCase,
	retention *usecase.RetentionUseCase,
	seed *usecase.SeedUseCase,
) *OrderDeskFacade {
	return &OrderDeskFacade{
		auth:      auth,
		catalog:   catalog,
		orders:    orders,
		pauses:    pauses,
		analytics: analytics,
		retention: retention,
		seed:      seed,
	}
}

func (f *OrderDeskFacade) Login(ctx context.Context, username, password string) (*model.User, string, pkgAuth.Session, error) {
	return f.auth.Login(ctx, username, password)
}

func (f *OrderDeskFacade) ParseToken(token string) (pkgAuth.Session, error) {
	return f.auth.ParseToken(token)
}

func (f *OrderDeskFacade) CurrentUser(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *OrderDeskFacade) Categories(ctx context.Context, channel model.Channel) ([]model.Category, error) {
	return f.catalog.Categories(ctx, channel)
}

func (f *OrderDeskFacade) CreateCategory(ctx context.Context, c model.Category) (*model.Category, error) {
	return f.catalog.CreateCategory(ctx, c)
}

func (f *OrderDeskFacade) UpdateCategory(ctx context.Context, c model.Category) (*model.Category, error) {
	return f.catalog.UpdateCategory(ctx, c)
}

func (f *OrderDeskFacade) DeleteCategory(ctx context.Context, id int64) error {
	return f.catalog.DeleteCategory(ctx, id)
}

func (f *OrderDeskFacade) MenuItems(ctx context.Context, filter model.MenuItemFilter) ([]model.MenuItem, error) {
	return f.catalog.MenuItems(ctx, filter)
}

func (f *OrderDeskFacade) CreateMenuItem(ctx context.Context, m model.MenuItem) (*model.MenuItem, error) {
	return f.catalog.CreateMenuItem(ctx, m)
}

func (f *OrderDeskFacade) UpdateMenuItem(ctx context.Context, m model.MenuItem) (*model.MenuItem, error) {
	return f.catalog.UpdateMenuItem(ctx, m)
}

func (f *OrderDeskFacade) DeleteMenuItem(ctx context.Context, id int64) error {
	return f.catalog.DeleteMenuItem(ctx, id)
}

func (f *OrderDeskFacade) Tables(ctx context.Context, kind model.TableType) ([]model.Table, error) {
	return f.catalog.Tables(ctx, kind)
}

func (f *OrderDeskFacade) TableByNumber(ctx context.Context, number string) (*model.Table, error) {
	return f.catalog.TableByNumber(ctx, number)
}

func (f *OrderDeskFacade) CreateTable(ctx context.Context, t model.Table) (*model.Table, error) {
	return f.catalog.CreateTable(ctx, t)
}

func (f *OrderDeskFacade) UpdateTable(ctx context.Context, t model.Table) (*model.Table, error) {
	return f.catalog.UpdateTable(ctx, t)
}

func (f *OrderDeskFacade) DeleteTable(ctx context.Context, id int64) error {
	return f.catalog.DeleteTable(ctx, id)
}

func (f *OrderDeskFacade) PlaceOrder(ctx context.Context, in usecase.PlaceOrderInput) (*model.Order, error) {
	return f.orders.Place(ctx, in)
}

func (f *OrderDeskFacade) Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	return f.orders.List(ctx, filter)
}

func (f *OrderDeskFacade) OrderItems(ctx context.Context, id int64) ([]model.OrderItem, error) {
	return f.orders.Items(ctx, id)
}

// UpdateOrderStatus applies the staff payment policy: an order is completed only once paid.
func (f *OrderDeskFacade) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, id, status, model.RequirePaidForCompletion)
}

func (f *OrderDeskFacade) UpdatePayment(ctx context.Context, id int64, method model.PaymentMethod, status model.PaymentStatus) (*model.Order, error) {
	return f.orders.UpdatePayment(ctx, id, method, status)
}

func (f *OrderDeskFacade) CancelOrder(ctx context.Context, id int64, reason string) (*model.Order, error) {
	return f.orders.Cancel(ctx, id, reason)
}

func (f *OrderDeskFacade) ResetCompletedOrders(ctx context.Context) (int, error) {
	return f.orders.ResetCompleted(ctx)
}

func (f *OrderDeskFacade) PauseStatus(ctx context.Context, channel model.Channel) (model.PauseStatus, error) {
	return f.pauses.Check(ctx, channel)
}

func (f *OrderDeskFacade) SetPause(ctx context.Context, in usecase.PauseInput) (model.PauseStatus, error) {
	return f.pauses.Set(ctx, in)
}

// SalesAnalytics resolves the named period and reports completed sales in it.
func (f *OrderDeskFacade) SalesAnalytics(ctx context.Context, period string, channel model.Channel) (string, time.Time, time.Time, model.SalesReport, error) {
	name, start, end := f.analytics.Period(period)
	report, err := f.analytics.Sales(ctx, start, end, channel)
	return name, start, end, report, err
}

func (f *OrderDeskFacade) PaymentAnalytics(ctx context.Context, period string) (model.PaymentReport, error) {
	_, start, end := f.analytics.Period(period)
	return f.analytics.Payments(ctx, start, end)
}

func (f *OrderDeskFacade) DashboardStats(ctx context.Context) (model.DashboardStats, error) {
	return f.analytics.Dashboard(ctx)
}

func (f *OrderDeskFacade) SweepExpiredOrders(ctx context.Context) (int, error) {
	return f.retention.Sweep(ctx)
}

func (f *OrderDeskFacade) Seed(ctx context.Context, opts usecase.SeedOptions) error {
	return f.seed.Seed(ctx, opts)
}
