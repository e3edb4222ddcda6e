package handlers

import (
	"context"
	"time"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	pkgAuth "github.com/polkiloo/orderdesk/internal/pkg/auth"
	"github.com/polkiloo/orderdesk/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Login(ctx context.Context, username, password string) (*model.User, string, pkgAuth.Session, error)
	ParseToken(token string) (pkgAuth.Session, error)
	CurrentUser(ctx context.Context, id int64) (*model.User, error)
}

// CatalogFacade covers menu and table management.
type CatalogFacade interface {
	Categories(ctx context.Context, channel model.Channel) ([]model.Category, error)
	CreateCategory(ctx context.Context, c model.Category) (*model.Category, error)
	UpdateCategory(ctx context.Context, c model.Category) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	MenuItems(ctx context.Context, filter model.MenuItemFilter) ([]model.MenuItem, error)
	CreateMenuItem(ctx context.Context, m model.MenuItem) (*model.MenuItem, error)
	UpdateMenuItem(ctx context.Context, m model.MenuItem) (*model.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int64) error
	Tables(ctx context.Context, kind model.TableType) ([]model.Table, error)
	TableByNumber(ctx context.Context, number string) (*model.Table, error)
	CreateTable(ctx context.Context, t model.Table) (*model.Table, error)
	UpdateTable(ctx context.Context, t model.Table) (*model.Table, error)
	DeleteTable(ctx context.Context, id int64) error
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, in usecase.PlaceOrderInput) (*model.Order, error)
	Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)
	OrderItems(ctx context.Context, id int64) ([]model.OrderItem, error)
	UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
	UpdatePayment(ctx context.Context, id int64, method model.PaymentMethod, status model.PaymentStatus) (*model.Order, error)
	CancelOrder(ctx context.Context, id int64, reason string) (*model.Order, error)
	ResetCompletedOrders(ctx context.Context) (int, error)
}

// PauseFacade reads and changes channel admission.
type PauseFacade interface {
	PauseStatus(ctx context.Context, channel model.Channel) (model.PauseStatus, error)
	SetPause(ctx context.Context, in usecase.PauseInput) (model.PauseStatus, error)
}

// AnalyticsFacade provides reporting.
type AnalyticsFacade interface {
	SalesAnalytics(ctx context.Context, period string, channel model.Channel) (string, time.Time, time.Time, model.SalesReport, error)
	PaymentAnalytics(ctx context.Context, period string) (model.PaymentReport, error)
	DashboardStats(ctx context.Context) (model.DashboardStats, error)
}

// OrderDeskFacade aggregates the full set of operations used across handlers.
type OrderDeskFacade interface {
	AuthFacade
	CatalogFacade
	OrderFacade
	PauseFacade
	AnalyticsFacade
}
