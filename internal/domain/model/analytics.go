package model

import "github.com/shopspring/decimal"

// ItemStat aggregates sold quantity and revenue of one item name.
type ItemStat struct {
	ItemName string
	Quantity int
	Revenue  decimal.Decimal
}

// SalesReport summarizes completed orders of a window.
type SalesReport struct {
	TotalSales   decimal.Decimal
	OrderCount   int
	AverageOrder decimal.Decimal
	TopItems     []ItemStat
}

// PaymentReport sums paid orders per tender.
type PaymentReport struct {
	Cash  decimal.Decimal
	UPI   decimal.Decimal
	Card  decimal.Decimal
	Total decimal.Decimal
}

// DashboardStats is the admin landing page summary.
type DashboardStats struct {
	TodaySales     decimal.Decimal
	ActiveOrders   int
	OccupiedTables int
	TotalTables    int
	MenuItems      int
}
