package handlers

import (
	"context"
	"sync"
	"time"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	pkgAuth "github.com/polkiloo/orderdesk/internal/pkg/auth"
	"github.com/polkiloo/orderdesk/internal/usecase"
)

// facadeStub provides controllable behaviour for every HTTP endpoint.
// Unset functions return a minimal successful result.
type facadeStub struct {
	LoginFn       func(context.Context, string, string) (*model.User, string, pkgAuth.Session, error)
	ParseTokenFn  func(string) (pkgAuth.Session, error)
	CurrentUserFn func(context.Context, int64) (*model.User, error)

	CategoriesFn     func(context.Context, model.Channel) ([]model.Category, error)
	SaveCategoryFn   func(context.Context, model.Category) (*model.Category, error)
	MenuItemsFn      func(context.Context, model.MenuItemFilter) ([]model.MenuItem, error)
	SaveMenuItemFn   func(context.Context, model.MenuItem) (*model.MenuItem, error)
	TablesFn         func(context.Context, model.TableType) ([]model.Table, error)
	TableByNumberFn  func(context.Context, string) (*model.Table, error)
	SaveTableFn      func(context.Context, model.Table) (*model.Table, error)
	DeleteFn         func(context.Context, int64) error

	PlaceOrderFn   func(context.Context, usecase.PlaceOrderInput) (*model.Order, error)
	OrdersFn       func(context.Context, model.OrderFilter) ([]model.Order, error)
	OrderItemsFn   func(context.Context, int64) ([]model.OrderItem, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)
	PaymentFn      func(context.Context, int64, model.PaymentMethod, model.PaymentStatus) (*model.Order, error)
	CancelFn       func(context.Context, int64, string) (*model.Order, error)
	ResetFn        func(context.Context) (int, error)

	PauseStatusFn func(context.Context, model.Channel) (model.PauseStatus, error)
	SetPauseFn    func(context.Context, usecase.PauseInput) (model.PauseStatus, error)

	SalesFn     func(context.Context, string, model.Channel) (string, time.Time, time.Time, model.SalesReport, error)
	PaymentsFn  func(context.Context, string) (model.PaymentReport, error)
	DashboardFn func(context.Context) (model.DashboardStats, error)

	mu    sync.Mutex
	calls []string
}

func (s *facadeStub) record(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, name)
}

// Calls returns the names of invoked operations in order.
func (s *facadeStub) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *facadeStub) Login(ctx context.Context, username, password string) (*model.User, string, pkgAuth.Session, error) {
	s.record("Login")
	if s.LoginFn != nil {
		return s.LoginFn(ctx, username, password)
	}
	return &model.User{ID: 1, Username: username, Role: model.RoleAdmin}, "token",
		pkgAuth.Session{UserID: 1, Role: model.RoleAdmin, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (s *facadeStub) ParseToken(token string) (pkgAuth.Session, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return pkgAuth.Session{UserID: 1, Role: model.RoleAdmin}, nil
}

func (s *facadeStub) CurrentUser(ctx context.Context, id int64) (*model.User, error) {
	s.record("CurrentUser")
	if s.CurrentUserFn != nil {
		return s.CurrentUserFn(ctx, id)
	}
	return &model.User{ID: id, Username: "admin", Role: model.RoleAdmin}, nil
}

func (s *facadeStub) Categories(ctx context.Context, channel model.Channel) ([]model.Category, error) {
	s.record("Categories")
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx, channel)
	}
	return nil, nil
}

func (s *facadeStub) saveCategory(ctx context.Context, c model.Category) (*model.Category, error) {
	if s.SaveCategoryFn != nil {
		return s.SaveCategoryFn(ctx, c)
	}
	if c.ID == 0 {
		c.ID = 1
	}
	return &c, nil
}

func (s *facadeStub) CreateCategory(ctx context.Context, c model.Category) (*model.Category, error) {
	s.record("CreateCategory")
	return s.saveCategory(ctx, c)
}

func (s *facadeStub) UpdateCategory(ctx context.Context, c model.Category) (*model.Category, error) {
	s.record("UpdateCategory")
	return s.saveCategory(ctx, c)
}

func (s *facadeStub) delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s *facadeStub) DeleteCategory(ctx context.Context, id int64) error {
	s.record("DeleteCategory")
	return s.delete(ctx, id)
}

func (s *facadeStub) MenuItems(ctx context.Context, filter model.MenuItemFilter) ([]model.MenuItem, error) {
	s.record("MenuItems")
	if s.MenuItemsFn != nil {
		return s.MenuItemsFn(ctx, filter)
	}
	return nil, nil
}

func (s *facadeStub) saveMenuItem(ctx context.Context, m model.MenuItem) (*model.MenuItem, error) {
	if s.SaveMenuItemFn != nil {
		return s.SaveMenuItemFn(ctx, m)
	}
	if m.ID == 0 {
		m.ID = 1
	}
	return &m, nil
}

func (s *facadeStub) CreateMenuItem(ctx context.Context, m model.MenuItem) (*model.MenuItem, error) {
	s.record("CreateMenuItem")
	return s.saveMenuItem(ctx, m)
}

func (s *facadeStub) UpdateMenuItem(ctx context.Context, m model.MenuItem) (*model.MenuItem, error) {
	s.record("UpdateMenuItem")
	return s.saveMenuItem(ctx, m)
}

func (s *facadeStub) DeleteMenuItem(ctx context.Context, id int64) error {
	s.record("DeleteMenuItem")
	return s.delete(ctx, id)
}

func (s *facadeStub) Tables(ctx context.Context, kind model.TableType) ([]model.Table, error) {
	s.record("Tables")
	if s.TablesFn != nil {
		return s.TablesFn(ctx, kind)
	}
	return nil, nil
}

func (s *facadeStub) TableByNumber(ctx context.Context, number string) (*model.Table, error) {
	s.record("TableByNumber")
	if s.TableByNumberFn != nil {
		return s.TableByNumberFn(ctx, number)
	}
	return &model.Table{ID: 1, Number: number, Name: number, Type: model.TableTypeTable, Status: model.TableStatusAvailable}, nil
}

func (s *facadeStub) saveTable(ctx context.Context, t model.Table) (*model.Table, error) {
	if s.SaveTableFn != nil {
		return s.SaveTableFn(ctx, t)
	}
	if t.ID == 0 {
		t.ID = 1
	}
	return &t, nil
}

func (s *facadeStub) CreateTable(ctx context.Context, t model.Table) (*model.Table, error) {
	s.record("CreateTable")
	return s.saveTable(ctx, t)
}

func (s *facadeStub) UpdateTable(ctx context.Context, t model.Table) (*model.Table, error) {
	s.record("UpdateTable")
	return s.saveTable(ctx, t)
}

func (s *facadeStub) DeleteTable(ctx context.Context, id int64) error {
	s.record("DeleteTable")
	return s.delete(ctx, id)
}

func (s *facadeStub) PlaceOrder(ctx context.Context, in usecase.PlaceOrderInput) (*model.Order, error) {
	s.record("PlaceOrder")
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, in)
	}
	return &model.Order{
		ID:            1,
		Number:        "RESTAURANT1",
		TableID:       in.TableID,
		TableNumber:   in.TableNumber,
		Channel:       in.Channel,
		Status:        model.OrderStatusPending,
		TotalAmount:   in.TotalAmount,
		Items:         in.Items,
		PaymentStatus: model.PaymentStatusPending,
	}, nil
}

func (s *facadeStub) Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	s.record("Orders")
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, filter)
	}
	return nil, nil
}

func (s *facadeStub) OrderItems(ctx context.Context, id int64) ([]model.OrderItem, error) {
	s.record("OrderItems")
	if s.OrderItemsFn != nil {
		return s.OrderItemsFn(ctx, id)
	}
	return nil, nil
}

func (s *facadeStub) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	s.record("UpdateOrderStatus")
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	return &model.Order{ID: id, Status: status, PaymentStatus: model.PaymentStatusPending}, nil
}

func (s *facadeStub) UpdatePayment(ctx context.Context, id int64, method model.PaymentMethod, status model.PaymentStatus) (*model.Order, error) {
	s.record("UpdatePayment")
	if s.PaymentFn != nil {
		return s.PaymentFn(ctx, id, method, status)
	}
	return &model.Order{ID: id, Status: model.OrderStatusPending, PaymentMethod: method, PaymentStatus: status}, nil
}

func (s *facadeStub) CancelOrder(ctx context.Context, id int64, reason string) (*model.Order, error) {
	s.record("CancelOrder")
	if s.CancelFn != nil {
		return s.CancelFn(ctx, id, reason)
	}
	return &model.Order{ID: id, Status: model.OrderStatusCancelled, CancelReason: reason, PaymentStatus: model.PaymentStatusPending}, nil
}

func (s *facadeStub) ResetCompletedOrders(ctx context.Context) (int, error) {
	s.record("ResetCompletedOrders")
	if s.ResetFn != nil {
		return s.ResetFn(ctx)
	}
	return 0, nil
}

func (s *facadeStub) PauseStatus(ctx context.Context, channel model.Channel) (model.PauseStatus, error) {
	s.record("PauseStatus")
	if s.PauseStatusFn != nil {
		return s.PauseStatusFn(ctx, channel)
	}
	return model.PauseStatus{Channel: channel}, nil
}

func (s *facadeStub) SetPause(ctx context.Context, in usecase.PauseInput) (model.PauseStatus, error) {
	s.record("SetPause")
	if s.SetPauseFn != nil {
		return s.SetPauseFn(ctx, in)
	}
	return model.PauseStatus{Channel: in.Channel, Active: in.Paused, DurationMinutes: in.DurationMinutes, Reason: in.Reason}, nil
}

func (s *facadeStub) SalesAnalytics(ctx context.Context, period string, channel model.Channel) (string, time.Time, time.Time, model.SalesReport, error) {
	s.record("SalesAnalytics")
	if s.SalesFn != nil {
		return s.SalesFn(ctx, period, channel)
	}
	return usecase.PeriodToday, time.Time{}, time.Time{}, model.SalesReport{}, nil
}

func (s *facadeStub) PaymentAnalytics(ctx context.Context, period string) (model.PaymentReport, error) {
	s.record("PaymentAnalytics")
	if s.PaymentsFn != nil {
		return s.PaymentsFn(ctx, period)
	}
	return model.PaymentReport{}, nil
}

func (s *facadeStub) DashboardStats(ctx context.Context) (model.DashboardStats, error) {
	s.record("DashboardStats")
	if s.DashboardFn != nil {
		return s.DashboardFn(ctx)
	}
	return model.DashboardStats{}, nil
}
