package model

import (
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
)

// Category groups menu items of one channel.
type Category struct {
	ID      int64
	Name    string
	Channel Channel
}

// MenuItem is a sellable entry of a channel's menu.
type MenuItem struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
	CategoryID  *int64
	Channel     Channel
	Available   bool
	CreatedAt   time.Time
}

// Clone returns a copy with its own category reference.
func (m MenuItem) Clone() MenuItem {
	c := m
	c.CategoryID = clonePtr(m.CategoryID)
	return c
}

// MenuItemFilter narrows menu listings. Zero values match everything.
type MenuItemFilter struct {
	Channel    Channel
	CategoryID int64
}

// Matches reports whether item satisfies the filter.
func (f MenuItemFilter) Matches(item MenuItem) bool {
	if f.Channel != "" && item.Channel != f.Channel {
		return false
	}
	if f.CategoryID != 0 && (item.CategoryID == nil || *item.CategoryID != f.CategoryID) {
		return false
	}
	return true
}

// TableType distinguishes dining tables from rooms.
type TableType string

const (
	TableTypeTable TableType = "table"
	TableTypeRoom  TableType = "room"
)

// ParseTableType validates a raw table type. Empty input yields an empty type.
func ParseTableType(raw string) (TableType, error) {
	switch TableType(raw) {
	case "", TableTypeTable, TableTypeRoom:
		return TableType(raw), nil
	}
	return "", domainErrors.Validation("type", "unknown table type "+raw)
}

// TableStatus is the occupancy state of a table.
type TableStatus string

const (
	TableStatusAvailable TableStatus = "available"
	TableStatusOccupied  TableStatus = "occupied"
	TableStatusReserved  TableStatus = "reserved"
)

// ParseTableStatus validates a raw occupancy value. Empty input yields an empty status.
func ParseTableStatus(raw string) (TableStatus, error) {
	switch TableStatus(raw) {
	case "", TableStatusAvailable, TableStatusOccupied, TableStatusReserved:
		return TableStatus(raw), nil
	}
	return "", domainErrors.Validation("status", "unknown table status "+raw)
}

// Table is a seat (table or room) customers order from.
type Table struct {
	ID        int64
	Number    string
	Name      string
	Type      TableType
	Status    TableStatus
	CreatedAt time.Time
}
