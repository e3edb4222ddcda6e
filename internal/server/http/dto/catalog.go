package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// CategoryRequest creates or updates a menu category.
type CategoryRequest struct {
	Name        string `json:"name"`
	ServiceType string `json:"serviceType"`
}

// CategoryResponse is the wire view of a category.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ServiceType string `json:"serviceType"`
}

// NewCategoryResponse converts a category.
func NewCategoryResponse(c model.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, ServiceType: string(c.Channel)}
}

// MenuItemRequest creates or updates a menu item.
type MenuItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	CategoryID  *int64          `json:"categoryId"`
	ServiceType string          `json:"serviceType"`
	IsAvailable *bool           `json:"isAvailable"`
}

// MenuItemResponse is the wire view of a menu item.
type MenuItemResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Image       string    `json:"image"`
	CategoryID  *int64    `json:"categoryId"`
	ServiceType string    `json:"serviceType"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewMenuItemResponse converts a menu item.
func NewMenuItemResponse(m model.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price.StringFixed(2),
		Image:       m.Image,
		CategoryID:  m.CategoryID,
		ServiceType: string(m.Channel),
		IsAvailable: m.Available,
		CreatedAt:   m.CreatedAt,
	}
}

// TableRequest creates or updates a table.
type TableRequest struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

// TableResponse is the wire view of a table.
type TableResponse struct {
	ID        int64     `json:"id"`
	Number    string    `json:"number"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewTableResponse converts a table.
func NewTableResponse(t model.Table) TableResponse {
	return TableResponse{
		ID:        t.ID,
		Number:    t.Number,
		Name:      t.Name,
		Type:      string(t.Type),
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
	}
}
