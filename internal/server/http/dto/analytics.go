package dto

import (
	"fmt"
	"time"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// ItemStatResponse is one entry of the top items list.
type ItemStatResponse struct {
	ItemName string `json:"itemName"`
	Quantity int    `json:"quantity"`
	Revenue  string `json:"revenue"`
}

// SalesResponse summarizes completed orders of a period.
type SalesResponse struct {
	Period       string             `json:"period"`
	Start        time.Time          `json:"start"`
	End          time.Time          `json:"end"`
	TotalSales   string             `json:"totalSales"`
	OrderCount   int                `json:"orderCount"`
	AverageOrder string             `json:"averageOrder"`
	TopItems     []ItemStatResponse `json:"topItems"`
}

// NewSalesResponse converts a sales report.
func NewSalesResponse(period string, start, end time.Time, r model.SalesReport) SalesResponse {
	items := make([]ItemStatResponse, 0, len(r.TopItems))
	for _, it := range r.TopItems {
		items = append(items, ItemStatResponse{ItemName: it.ItemName, Quantity: it.Quantity, Revenue: it.Revenue.StringFixed(2)})
	}
	return SalesResponse{
		Period:       period,
		Start:        start,
		End:          end,
		TotalSales:   r.TotalSales.StringFixed(2),
		OrderCount:   r.OrderCount,
		AverageOrder: r.AverageOrder.StringFixed(2),
		TopItems:     items,
	}
}

// PaymentsResponse sums paid orders per tender.
type PaymentsResponse struct {
	Cash  string `json:"cash"`
	UPI   string `json:"upi"`
	Card  string `json:"card"`
	Total string `json:"total"`
}

// NewPaymentsResponse converts a payment report.
func NewPaymentsResponse(r model.PaymentReport) PaymentsResponse {
	return PaymentsResponse{
		Cash:  r.Cash.StringFixed(2),
		UPI:   r.UPI.StringFixed(2),
		Card:  r.Card.StringFixed(2),
		Total: r.Total.StringFixed(2),
	}
}

// DashboardResponse is the admin landing page summary.
type DashboardResponse struct {
	TodaySales   string `json:"todaySales"`
	ActiveOrders int    `json:"activeOrders"`
	ActiveTables string `json:"activeTables"`
	MenuItems    int    `json:"menuItems"`
}

// NewDashboardResponse converts dashboard stats.
func NewDashboardResponse(s model.DashboardStats) DashboardResponse {
	return DashboardResponse{
		TodaySales:   s.TodaySales.StringFixed(2),
		ActiveOrders: s.ActiveOrders,
		ActiveTables: fmt.Sprintf("%d/%d", s.OccupiedTables, s.TotalTables),
		MenuItems:    s.MenuItems,
	}
}
