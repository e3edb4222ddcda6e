package usecase

import (
	"context"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
	"github.com/polkiloo/orderdesk/internal/pkg/clock"
)

const topItemsLimit = 10

// Sweeper removes expired orders.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

// AnalyticsUseCase computes reports over a consistent order snapshot.
type AnalyticsUseCase struct {
	orders    repository.OrderRepository
	tables    repository.TableRepository
	menu      repository.MenuItemRepository
	retention Sweeper
	clock     clock.Clock
	offset    time.Duration
}

// NewAnalyticsUseCase constructs AnalyticsUseCase.
func NewAnalyticsUseCase(
	orders repository.OrderRepository,
	tables repository.TableRepository,
	menu repository.MenuItemRepository,
	retention Sweeper,
	clk clock.Clock,
	offset time.Duration,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{orders: orders, tables: tables, menu: menu, retention: retention, clock: clk, offset: offset}
}

// Period resolves a named period against the current time.
func (u *AnalyticsUseCase) Period(period string) (string, time.Time, time.Time) {
	return PeriodWindow(period, u.clock.Now(), u.offset)
}

func (u *AnalyticsUseCase) window(ctx context.Context, start, end time.Time) ([]model.OrderWithItems, error) {
	if _, err := u.retention.Sweep(ctx); err != nil {
		return nil, err
	}
	return u.orders.Window(ctx, start, end)
}

// Sales aggregates completed orders created in [start, end]. An empty channel
// covers every channel.
func (u *AnalyticsUseCase) Sales(ctx context.Context, start, end time.Time, channel model.Channel) (model.SalesReport, error) {
	snapshot, err := u.window(ctx, start, end)
	if err != nil {
		return model.SalesReport{}, err
	}
	return summarizeSales(snapshot, channel), nil
}

func summarizeSales(snapshot []model.OrderWithItems, channel model.Channel) model.SalesReport {
	report := model.SalesReport{TotalSales: decimal.Zero, AverageOrder: decimal.Zero}

	var stats []model.ItemStat
	index := make(map[string]int)
	for _, entry := range snapshot {
		o := entry.Order
		if o.Status != model.OrderStatusCompleted || (channel != "" && o.Channel != channel) {
			continue
		}
		report.TotalSales = report.TotalSales.Add(o.TotalAmount)
		report.OrderCount++

		for _, item := range entry.Items {
			i, ok := index[item.ItemName]
			if !ok {
				i = len(stats)
				index[item.ItemName] = i
				stats = append(stats, model.ItemStat{ItemName: item.ItemName, Revenue: decimal.Zero})
			}
			stats[i].Quantity += item.Quantity
			stats[i].Revenue = stats[i].Revenue.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}

	if report.OrderCount > 0 {
		report.AverageOrder = report.TotalSales.Div(decimal.NewFromInt(int64(report.OrderCount))).Round(2)
	}

	slices.SortStableFunc(stats, func(a, b model.ItemStat) int {
		return b.Quantity - a.Quantity
	})
	if len(stats) > topItemsLimit {
		stats = stats[:topItemsLimit]
	}
	report.TopItems = stats
	return report
}

// Payments sums paid orders created in [start, end] per tender, whatever their status.
func (u *AnalyticsUseCase) Payments(ctx context.Context, start, end time.Time) (model.PaymentReport, error) {
	snapshot, err := u.window(ctx, start, end)
	if err != nil {
		return model.PaymentReport{}, err
	}
	return summarizePayments(snapshot), nil
}

func summarizePayments(snapshot []model.OrderWithItems) model.PaymentReport {
	report := model.PaymentReport{Cash: decimal.Zero, UPI: decimal.Zero, Card: decimal.Zero, Total: decimal.Zero}
	for _, entry := range snapshot {
		o := entry.Order
		if o.PaymentStatus != model.PaymentStatusPaid {
			continue
		}
		switch o.PaymentMethod {
		case model.PaymentMethodCash:
			report.Cash = report.Cash.Add(o.TotalAmount)
		case model.PaymentMethodUPI:
			report.UPI = report.UPI.Add(o.TotalAmount)
		case model.PaymentMethodCard:
			report.Card = report.Card.Add(o.TotalAmount)
		default:
			continue
		}
		report.Total = report.Total.Add(o.TotalAmount)
	}
	return report
}

// Dashboard summarizes today's business for the admin landing page.
func (u *AnalyticsUseCase) Dashboard(ctx context.Context) (model.DashboardStats, error) {
	_, start, end := u.Period(PeriodToday)
	snapshot, err := u.window(ctx, start, end)
	if err != nil {
		return model.DashboardStats{}, err
	}

	stats := model.DashboardStats{TodaySales: summarizeSales(snapshot, "").TotalSales}

	pending, err := u.orders.List(ctx, model.OrderFilter{Status: model.OrderStatusPending})
	if err != nil {
		return model.DashboardStats{}, err
	}
	stats.ActiveOrders = len(pending)

	tables, err := u.tables.List(ctx)
	if err != nil {
		return model.DashboardStats{}, err
	}
	for _, t := range tables {
		if t.Type != model.TableTypeTable {
			continue
		}
		stats.TotalTables++
		if t.Status == model.TableStatusOccupied {
			stats.OccupiedTables++
		}
	}

	if stats.MenuItems, err = u.menu.Count(ctx); err != nil {
		return model.DashboardStats{}, err
	}
	return stats, nil
}
