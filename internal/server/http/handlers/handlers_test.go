package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	pkgAuth "github.com/polkiloo/orderdesk/internal/pkg/auth"
	"github.com/polkiloo/orderdesk/internal/server/http/dto"
	"github.com/polkiloo/orderdesk/internal/server/http/middleware"
	"github.com/polkiloo/orderdesk/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestEngine wires every handler the way the router does, with a staff
// session injected for all routes.
func newTestEngine(facade *facadeStub) *gin.Engine {
	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		c.Set(middleware.SessionContextKey, pkgAuth.Session{UserID: 7, Role: model.RoleAdmin})
	})

	auth := NewAuthHandler(facade)
	catalog := NewCatalogHandler(facade)
	orders := NewOrderHandler(facade)
	pauses := NewPauseHandler(facade)
	analytics := NewAnalyticsHandler(facade)

	engine.POST("/api/auth/login", auth.Login)
	engine.POST("/api/auth/logout", auth.Logout)
	engine.GET("/api/auth/me", auth.Me)

	engine.GET("/api/menu-categories", catalog.Categories)
	engine.POST("/api/menu-categories", catalog.CreateCategory)
	engine.PUT("/api/menu-categories/:id", catalog.UpdateCategory)
	engine.DELETE("/api/menu-categories/:id", catalog.DeleteCategory)
	engine.GET("/api/menu-items", catalog.MenuItems)
	engine.POST("/api/menu-items", catalog.CreateMenuItem)
	engine.PUT("/api/menu-items/:id", catalog.UpdateMenuItem)
	engine.DELETE("/api/menu-items/:id", catalog.DeleteMenuItem)
	engine.GET("/api/tables", catalog.Tables)
	engine.GET("/api/tables/:number", catalog.TableByNumber)
	engine.POST("/api/tables", catalog.CreateTable)
	engine.PUT("/api/tables/:id", catalog.UpdateTable)
	engine.DELETE("/api/tables/:id", catalog.DeleteTable)

	engine.POST("/api/orders", orders.Place)
	engine.GET("/api/orders", orders.List)
	engine.POST("/api/orders/reset", orders.Reset)
	engine.GET("/api/orders/:id/items", orders.Items)
	engine.PUT("/api/orders/:id", orders.UpdateStatus)
	engine.PUT("/api/orders/:id/payment", orders.UpdatePayment)
	engine.PUT("/api/orders/:id/cancel", orders.Cancel)

	engine.GET("/api/order-pause/:serviceType", pauses.Status)
	engine.POST("/api/order-pause", pauses.Set)

	engine.GET("/api/analytics", analytics.Sales)
	engine.GET("/api/analytics/payments", analytics.Payments)
	engine.GET("/api/dashboard/stats", analytics.Dashboard)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func decode[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(resp.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", resp.Body.String(), err)
	}
	return v
}

func TestLogin(t *testing.T) {
	facade := &facadeStub{}
	engine := newTestEngine(facade)

	resp := doJSON(t, engine, http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "pw"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	body := decode[dto.LoginResponse](t, resp)
	if body.User.Username != "admin" || body.Token != "token" {
		t.Fatalf("unexpected login body %+v", body)
	}
	if resp.Header().Get("Authorization") != "Bearer token" {
		t.Fatalf("expected bearer header, got %q", resp.Header().Get("Authorization"))
	}

	resp = doJSON(t, engine, http.MethodPost, "/api/auth/login", "{")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", resp.Code)
	}

	resp = doJSON(t, engine, http.MethodPost, "/api/auth/login", map[string]string{"username": "admin"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %d", resp.Code)
	}

	facade.LoginFn = func(context.Context, string, string) (*model.User, string, pkgAuth.Session, error) {
		return nil, "", pkgAuth.Session{}, domainErrors.ErrInvalidCredentials
	}
	resp = doJSON(t, engine, http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "bad"})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
	if msg := decode[dto.ErrorResponse](t, resp).Message; msg == "" {
		t.Fatal("expected error message")
	}
}

func TestLogoutAndMe(t *testing.T) {
	facade := &facadeStub{}
	engine := newTestEngine(facade)

	resp := doJSON(t, engine, http.MethodPost, "/api/auth/logout", nil)
	if resp.Code != http.StatusOK || len(resp.Result().Cookies()) == 0 {
		t.Fatalf("expected 200 with cleared cookie, got %d", resp.Code)
	}

	resp = doJSON(t, engine, http.MethodGet, "/api/auth/me", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if user := decode[dto.UserResponse](t, resp); user.ID != 7 {
		t.Fatalf("expected session user 7, got %+v", user)
	}

	facade.CurrentUserFn = func(context.Context, int64) (*model.User, error) { return nil, domainErrors.ErrNotFound }
	resp = doJSON(t, engine, http.MethodGet, "/api/auth/me", nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for deleted user, got %d", resp.Code)
	}
}

func TestMeWithoutSession(t *testing.T) {
	engine := gin.New()
	engine.GET("/me", NewAuthHandler(&facadeStub{}).Me)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/me", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestPlaceOrder(t *testing.T) {
	facade := &facadeStub{}
	engine := newTestEngine(facade)

	var got usecase.PlaceOrderInput
	facade.PlaceOrderFn = func(_ context.Context, in usecase.PlaceOrderInput) (*model.Order, error) {
		got = in
		return &model.Order{ID: 3, Number: "BAR1710072000000", Channel: in.Channel, Status: model.OrderStatusPending,
			TotalAmount: in.TotalAmount, Items: in.Items, PaymentStatus: model.PaymentStatusPending}, nil
	}

	body := `{"tableNumber":"4","serviceType":"bar","totalAmount":"250.50",
	          "items":[{"id":9,"name":"Mojito","price":"125.25","quantity":2}]}`
	resp := doJSON(t, engine, http.MethodPost, "/api/orders", body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	if got.Channel != model.ChannelBar || got.TableNumber != "4" || len(got.Items) != 1 {
		t.Fatalf("unexpected input %+v", got)
	}
	if !got.Items[0].Price.Equal(decimal.RequireFromString("125.25")) || got.Items[0].MenuItemID != 9 {
		t.Fatalf("unexpected line item %+v", got.Items[0])
	}

	order := decode[dto.OrderResponse](t, resp)
	if order.TotalAmount != "250.50" || order.PaymentMethod != nil || order.Status != "pending" {
		t.Fatalf("unexpected order body %+v", order)
	}

	resp = doJSON(t, engine, http.MethodPost, "/api/orders", `{"serviceType":"spa","items":[]}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown service type, got %d", resp.Code)
	}
}

func TestPlaceOrderWhilePaused(t *testing.T) {
	facade := &facadeStub{
		PlaceOrderFn: func(context.Context, usecase.PlaceOrderInput) (*model.Order, error) {
			return nil, &domainErrors.ServiceUnavailableError{Channel: "restaurant", Reason: "Rush hours", Remaining: 90 * time.Second}
		},
	}
	engine := newTestEngine(facade)

	resp := doJSON(t, engine, http.MethodPost, "/api/orders", `{"tableNumber":"1","serviceType":"restaurant","totalAmount":"10","items":[{"name":"Tea","price":"10","quantity":1}]}`)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
	body := decode[dto.PausedResponse](t, resp)
	if body.ServiceType != "restaurant" || body.PauseReason != "Rush hours" || body.RemainingMinutes != 2 {
		t.Fatalf("unexpected paused body %+v", body)
	}
}

func TestListOrdersFilters(t *testing.T) {
	facade := &facadeStub{}
	engine := newTestEngine(facade)

	var got model.OrderFilter
	facade.OrdersFn = func(_ context.Context, f model.OrderFilter) ([]model.Order, error) {
		got = f
		return []model.Order{{ID: 1, Status: model.OrderStatusPending}}, nil
	}

	resp := doJSON(t, engine, http.MethodGet, "/api/orders?status=pending&serviceType=restaurant", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got.Status != model.OrderStatusPending || got.Channel != model.ChannelRestaurant {
		t.Fatalf("unexpected filter %+v", got)
	}
	if list := decode[[]dto.OrderResponse](t, resp); len(list) != 1 {
		t.Fatalf("expected one order, got %d", len(list))
	}

	resp = doJSON(t, engine, http.MethodGet, "/api/orders?status=lost", nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", resp.Code)
	}

	facade.OrdersFn = func(context.Context, model.OrderFilter) ([]model.Order, error) { return nil, nil }
	resp = doJSON(t, engine, http.MethodGet, "/api/orders", nil)
	if resp.Code != http.StatusOK || resp.Body.String() != "[]" {
		t.Fatalf("expected empty array, got %d %q", resp.Code, resp.Body.String())
	}
}

func TestOrderTransitions(t *testing.T) {
	facade := &facadeStub{}
	engine := newTestEngine(facade)

	facade.UpdateStatusFn = func(_ context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
		if status == model.OrderStatusCompleted {
			return nil, domainErrors.InvalidTransition("ready", "completed", "order cannot be completed until payment is recorded")
		}
		return &model.Order{ID: id, Status: status}, nil
	}

	resp := doJSON(t, engine, http.MethodPut, "/api/orders/5", map[string]string{"status": "preparing"})
	if resp.Code != http.StatusOK || decode[dto.OrderResponse](t, resp).Status != "preparing" {
		t.Fatalf("expected preparing, got %d %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, engine, http.MethodPut, "/api/orders/5", map[string]string{"status": "completed"})
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 for unpaid completion, got %d", resp.Code)
	}

	resp = doJSON(t, engine, http.MethodPut, "/api/orders/abc", map[string]string{"status": "ready"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", resp.Code)
	}

	facade.UpdateStatusFn = func(context.Context, int64, model.OrderStatus) (*model.Order, error) {
		return nil, domainErrors.ErrNotFound
	}
	resp = doJSON(t, engine, http.MethodPut, "/api/orders/99", map[string]string{"status": "ready"})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestUpdatePayment(t *testing.T) {
	facade := &facadeStub{}
	engine := newTestEngine(facade)

	resp := doJSON(t, engine, http.MethodPut, "/api/orders/2/payment", map[string]string{"paymentMethod": "upi", "paymentStatus": "paid"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := decode[dto.OrderResponse](t, resp)
	if body.PaymentMethod == nil || *body.PaymentMethod != "upi" || body.PaymentStatus != "paid" {
		t.Fatalf("unexpected payment body %+v", body)
	}

	resp = doJSON(t, engine, http.MethodPut, "/api/orders/2/payment", map[string]string{"paymentMethod": "gold", "paymentStatus": "paid"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown method, got %d", resp.Code)
	}
}

func TestCancelOrder(t *testing.T) {
	facade := &facadeStub{}
	engine := newTestEngine(facade)

	var reasons []string
	facade.CancelFn = func(_ context.Context, id int64, reason string) (*model.Order, error) {
		reasons = append(reasons, reason)
		if id == 9 {
			return nil, domainErrors.InvalidTransition("ready", "cancelled", "order in status ready cannot be cancelled")
		}
		return &model.Order{ID: id, Status: model.OrderStatusCancelled, CancelReason: reason}, nil
	}

	resp := doJSON(t, engine, http.MethodPut, "/api/orders/1/cancel", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 without body, got %d: %s", resp.Code, resp.Body.String())
	}
	resp = doJSON(t, engine, http.MethodPut, "/api/orders/1/cancel", map[string]string{"reason": "Out of stock"})
	if resp.Code != http.StatusOK || decode[dto.OrderResponse](t, resp).CancelReason != "Out of stock" {
		t.Fatalf("expected reason to round-trip, got %d %s", resp.Code, resp.Body.String())
	}
	resp = doJSON(t, engine, http.MethodPut, "/api/orders/9/cancel", nil)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}
	if len(reasons) != 3 || reasons[0] != "" {
		t.Fatalf("unexpected reasons %v", reasons)
	}
}

func TestResetAndItems(t *testing.T) {
	facade := &facadeStub{
		ResetFn: func(context.Context) (int, error) { return 4, nil },
		OrderItemsFn: func(_ context.Context, id int64) ([]model.OrderItem, error) {
			if id != 1 {
				return nil, domainErrors.ErrNotFound
			}
			return []model.OrderItem{{ID: 1, OrderID: 1, Quantity: 2, Price: decimal.NewFromInt(50), ItemName: "Tea"}}, nil
		},
	}
	engine := newTestEngine(facade)

	resp := doJSON(t, engine, http.MethodPost, "/api/orders/reset", nil)
	if resp.Code != http.StatusOK || decode[dto.MessageResponse](t, resp).Count != 4 {
		t.Fatalf("unexpected reset response %d %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, engine, http.MethodGet, "/api/orders/1/items", nil)
	items := decode[[]dto.OrderItemResponse](t, resp)
	if len(items) != 1 || items[0].Price != "50.00" || items[0].MenuItemID != nil {
		t.Fatalf("unexpected items %+v", items)
	}

	resp = doJSON(t, engine, http.MethodGet, "/api/orders/2/items", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestPauseEndpoints(t *testing.T) {
	facade := &facadeStub{}
	engine := newTestEngine(facade)

	var got usecase.PauseInput
	facade.SetPauseFn = func(_ context.Context, in usecase.PauseInput) (model.PauseStatus, error) {
		got = in
		return model.PauseStatus{Channel: in.Channel, Active: true, DurationMinutes: 15, Reason: "Rush hours",
			RemainingMinutes: 15, Remaining: 15 * time.Minute}, nil
	}
	resp := doJSON(t, engine, http.MethodPost, "/api/order-pause", map[string]any{"serviceType": "bar", "isPaused": true, "pauseDurationMinutes": 15})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got.Channel != model.ChannelBar || !got.Paused || got.DurationMinutes != 15 {
		t.Fatalf("unexpected pause input %+v", got)
	}
	body := decode[dto.PauseResponse](t, resp)
	if !body.IsPaused || body.RemainingSeconds != 900 {
		t.Fatalf("unexpected pause body %+v", body)
	}

	facade.SetPauseFn = func(_ context.Context, in usecase.PauseInput) (model.PauseStatus, error) {
		got = in
		return model.PauseStatus{}, domainErrors.Validation("pauseDurationMinutes", "duration must not be negative")
	}
	resp = doJSON(t, engine, http.MethodPost, "/api/order-pause", map[string]any{"serviceType": "bar", "isPaused": true, "pauseDurationMinutes": -5})
	if resp.Code != http.StatusBadRequest || got.DurationMinutes != -5 {
		t.Fatalf("expected 400 for negative duration, got %d", resp.Code)
	}

	resp = doJSON(t, engine, http.MethodGet, "/api/order-pause/restaurant", nil)
	if resp.Code != http.StatusOK || decode[dto.PauseResponse](t, resp).IsPaused {
		t.Fatalf("expected inactive pause, got %d %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, engine, http.MethodGet, "/api/order-pause/spa", nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown channel, got %d", resp.Code)
	}
}

func TestAnalyticsEndpoints(t *testing.T) {
	start := time.Date(2024, 3, 9, 18, 30, 0, 0, time.UTC)
	facade := &facadeStub{
		SalesFn: func(_ context.Context, period string, channel model.Channel) (string, time.Time, time.Time, model.SalesReport, error) {
			if period != "week" || channel != model.ChannelBar {
				return "", time.Time{}, time.Time{}, model.SalesReport{}, errors.New("unexpected arguments")
			}
			return "week", start, start.Add(24 * time.Hour), model.SalesReport{
				TotalSales: decimal.NewFromInt(300), OrderCount: 2, AverageOrder: decimal.NewFromInt(150),
				TopItems: []model.ItemStat{{ItemName: "Mojito", Quantity: 3, Revenue: decimal.NewFromInt(300)}},
			}, nil
		},
		DashboardFn: func(context.Context) (model.DashboardStats, error) {
			return model.DashboardStats{TodaySales: decimal.NewFromInt(10), ActiveOrders: 2, OccupiedTables: 1, TotalTables: 6, MenuItems: 40}, nil
		},
	}
	engine := newTestEngine(facade)

	resp := doJSON(t, engine, http.MethodGet, "/api/analytics?period=week&serviceType=bar", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	sales := decode[dto.SalesResponse](t, resp)
	if sales.TotalSales != "300.00" || sales.AverageOrder != "150.00" || len(sales.TopItems) != 1 {
		t.Fatalf("unexpected sales %+v", sales)
	}

	resp = doJSON(t, engine, http.MethodGet, "/api/analytics/payments?period=month", nil)
	if resp.Code != http.StatusOK || decode[dto.PaymentsResponse](t, resp).Total != "0.00" {
		t.Fatalf("unexpected payments %d %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, engine, http.MethodGet, "/api/dashboard/stats", nil)
	dash := decode[dto.DashboardResponse](t, resp)
	if dash.ActiveTables != "1/6" || dash.TodaySales != "10.00" || dash.MenuItems != 40 {
		t.Fatalf("unexpected dashboard %+v", dash)
	}

	facade.DashboardFn = func(context.Context) (model.DashboardStats, error) { return model.DashboardStats{}, errors.New("db down") }
	resp = doJSON(t, engine, http.MethodGet, "/api/dashboard/stats", nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}

func TestCatalogEndpoints(t *testing.T) {
	facade := &facadeStub{}
	engine := newTestEngine(facade)

	resp := doJSON(t, engine, http.MethodPost, "/api/menu-categories", map[string]string{"name": "Mocktails", "serviceType": "bar"})
	if resp.Code != http.StatusCreated || decode[dto.CategoryResponse](t, resp).ServiceType != "bar" {
		t.Fatalf("unexpected category create %d %s", resp.Code, resp.Body.String())
	}
	resp = doJSON(t, engine, http.MethodPut, "/api/menu-categories/3", map[string]string{"name": "Shakes", "serviceType": "bar"})
	if resp.Code != http.StatusOK || decode[dto.CategoryResponse](t, resp).ID != 3 {
		t.Fatalf("unexpected category update %d %s", resp.Code, resp.Body.String())
	}

	var filter model.MenuItemFilter
	facade.MenuItemsFn = func(_ context.Context, f model.MenuItemFilter) ([]model.MenuItem, error) {
		filter = f
		return []model.MenuItem{{ID: 1, Name: "Tea", Price: decimal.NewFromInt(20), Channel: model.ChannelRestaurant, Available: true}}, nil
	}
	resp = doJSON(t, engine, http.MethodGet, "/api/menu-items?type=restaurant&categoryId=4", nil)
	if resp.Code != http.StatusOK || filter.CategoryID != 4 || filter.Channel != model.ChannelRestaurant {
		t.Fatalf("unexpected menu listing %d %+v", resp.Code, filter)
	}
	resp = doJSON(t, engine, http.MethodGet, "/api/menu-items?categoryId=x", nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad category id, got %d", resp.Code)
	}

	resp = doJSON(t, engine, http.MethodPost, "/api/menu-items", `{"name":"Coffee","price":"45","serviceType":"restaurant"}`)
	item := decode[dto.MenuItemResponse](t, resp)
	if resp.Code != http.StatusCreated || !item.IsAvailable || item.Price != "45.00" {
		t.Fatalf("unexpected item create %d %+v", resp.Code, item)
	}
	resp = doJSON(t, engine, http.MethodPut, "/api/menu-items/8", `{"name":"Coffee","price":"45","serviceType":"restaurant","isAvailable":false}`)
	if item := decode[dto.MenuItemResponse](t, resp); item.IsAvailable || item.ID != 8 {
		t.Fatalf("unexpected item update %+v", item)
	}

	resp = doJSON(t, engine, http.MethodPost, "/api/tables", map[string]string{"number": "LIKA", "type": "room"})
	if resp.Code != http.StatusCreated || decode[dto.TableResponse](t, resp).Type != "room" {
		t.Fatalf("unexpected table create %d %s", resp.Code, resp.Body.String())
	}
	resp = doJSON(t, engine, http.MethodPost, "/api/tables", map[string]string{"number": "7", "status": "broken"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown table status, got %d", resp.Code)
	}
	resp = doJSON(t, engine, http.MethodPut, "/api/tables/2", map[string]string{"number": "2", "status": "occupied"})
	if resp.Code != http.StatusOK || decode[dto.TableResponse](t, resp).Status != "occupied" {
		t.Fatalf("unexpected table update %d %s", resp.Code, resp.Body.String())
	}

	facade.TableByNumberFn = func(context.Context, string) (*model.Table, error) { return nil, domainErrors.ErrNotFound }
	resp = doJSON(t, engine, http.MethodGet, "/api/tables/99", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}

	for _, path := range []string{"/api/menu-categories/1", "/api/menu-items/1", "/api/tables/1"} {
		resp = doJSON(t, engine, http.MethodDelete, path, nil)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 deleting %s, got %d", path, resp.Code)
		}
	}
	facade.DeleteFn = func(context.Context, int64) error { return domainErrors.ErrNotFound }
	resp = doJSON(t, engine, http.MethodDelete, "/api/tables/1", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestRespondErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domainErrors.Validation("items", "required"), http.StatusBadRequest},
		{domainErrors.ErrNotFound, http.StatusNotFound},
		{domainErrors.InvalidTransition("a", "b", "no"), http.StatusConflict},
		{domainErrors.ErrAlreadyExists, http.StatusConflict},
		{domainErrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{&domainErrors.ServiceUnavailableError{Channel: "bar"}, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)
		respondError(c, tc.err)
		if recorder.Code != tc.want {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.want, recorder.Code)
		}
	}
}
