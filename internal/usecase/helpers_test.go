package usecase

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/storage/memory"
	testhelpers "github.com/polkiloo/orderdesk/internal/test"
)

var baseTime = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	store     *memory.Storage
	clock     *testhelpers.FakeClock
	publisher *testhelpers.PublisherStub
	pauses    *PauseUseCase
	orders    *OrderUseCase
	catalog   *CatalogUseCase
	retention *RetentionUseCase
	analytics *AnalyticsUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clk := testhelpers.NewFakeClock(baseTime)
	store := memory.New(clk)
	pub := &testhelpers.PublisherStub{}
	logger := discardLogger()

	f := &fixture{store: store, clock: clk, publisher: pub}
	f.pauses = NewPauseUseCase(store.Pauses(), pub, clk, logger)
	f.orders = NewOrderUseCase(store.Orders(), store.Tables(), store.MenuItems(), f.pauses, pub, clk, logger)
	f.catalog = NewCatalogUseCase(store.Categories(), store.MenuItems(), store.Tables())
	f.retention = NewRetentionUseCase(store.Orders(), clk, 30*24*time.Hour, logger)
	f.analytics = NewAnalyticsUseCase(store.Orders(), store.Tables(), store.MenuItems(), f.retention, clk, 5*time.Hour+30*time.Minute)
	return f
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func line(id int64, name, price string, qty int) model.LineItem {
	return model.LineItem{MenuItemID: id, Name: name, Price: money(price), Quantity: qty}
}

func orderInput(channel model.Channel, items ...model.LineItem) PlaceOrderInput {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return PlaceOrderInput{TableNumber: "1", Channel: channel, Items: items, TotalAmount: total}
}
