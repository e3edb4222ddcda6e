package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

// CatalogUseCase manages categories, menu items and tables.
type CatalogUseCase struct {
	categories repository.CategoryRepository
	items      repository.MenuItemRepository
	tables     repository.TableRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(categories repository.CategoryRepository, items repository.MenuItemRepository, tables repository.TableRepository) *CatalogUseCase {
	return &CatalogUseCase{categories: categories, items: items, tables: tables}
}

func normalizeCategory(c model.Category) (model.Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return c, domainErrors.Validation("name", "category name is required")
	}
	if _, err := model.ParseChannel(string(c.Channel)); err != nil {
		return c, err
	}
	return c, nil
}

// Categories lists categories of a channel, or all when channel is empty.
func (u *CatalogUseCase) Categories(ctx context.Context, channel model.Channel) ([]model.Category, error) {
	return u.categories.List(ctx, channel)
}

// CreateCategory adds a category.
func (u *CatalogUseCase) CreateCategory(ctx context.Context, c model.Category) (*model.Category, error) {
	c, err := normalizeCategory(c)
	if err != nil {
		return nil, err
	}
	return u.categories.Create(ctx, c)
}

// UpdateCategory replaces a category.
func (u *CatalogUseCase) UpdateCategory(ctx context.Context, c model.Category) (*model.Category, error) {
	c, err := normalizeCategory(c)
	if err != nil {
		return nil, err
	}
	return u.categories.Update(ctx, c)
}

// DeleteCategory removes a category. Its items stay uncategorized.
func (u *CatalogUseCase) DeleteCategory(ctx context.Context, id int64) error {
	return u.categories.Delete(ctx, id)
}

func normalizeMenuItem(m model.MenuItem) (model.MenuItem, error) {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return m, domainErrors.Validation("name", "item name is required")
	}
	if m.Price.IsNegative() {
		return m, domainErrors.Validation("price", "price must not be negative")
	}
	if _, err := model.ParseChannel(string(m.Channel)); err != nil {
		return m, err
	}
	return m, nil
}

// MenuItems lists items matching filter.
func (u *CatalogUseCase) MenuItems(ctx context.Context, filter model.MenuItemFilter) ([]model.MenuItem, error) {
	return u.items.List(ctx, filter)
}

// CreateMenuItem adds a menu item.
func (u *CatalogUseCase) CreateMenuItem(ctx context.Context, m model.MenuItem) (*model.MenuItem, error) {
	m, err := normalizeMenuItem(m)
	if err != nil {
		return nil, err
	}
	return u.items.Create(ctx, m)
}

// UpdateMenuItem replaces a menu item.
func (u *CatalogUseCase) UpdateMenuItem(ctx context.Context, m model.MenuItem) (*model.MenuItem, error) {
	m, err := normalizeMenuItem(m)
	if err != nil {
		return nil, err
	}
	return u.items.Update(ctx, m)
}

// DeleteMenuItem removes a menu item. Past order lines keep their name and price.
func (u *CatalogUseCase) DeleteMenuItem(ctx context.Context, id int64) error {
	return u.items.Delete(ctx, id)
}

func normalizeTable(t model.Table) (model.Table, error) {
	t.Number = strings.TrimSpace(t.Number)
	if t.Number == "" {
		return t, domainErrors.Validation("number", "table number is required")
	}
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		t.Name = t.Number
	}
	if t.Type == "" {
		t.Type = model.TableTypeTable
	}
	if t.Status == "" {
		t.Status = model.TableStatusAvailable
	}
	return t, nil
}

// Tables lists tables, optionally restricted to one type.
func (u *CatalogUseCase) Tables(ctx context.Context, kind model.TableType) ([]model.Table, error) {
	tables, err := u.tables.List(ctx)
	if err != nil || kind == "" {
		return tables, err
	}
	filtered := tables[:0]
	for _, t := range tables {
		if t.Type == kind {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// TableByNumber finds a table by its printed number.
func (u *CatalogUseCase) TableByNumber(ctx context.Context, number string) (*model.Table, error) {
	return u.tables.GetByNumber(ctx, strings.TrimSpace(number))
}

// CreateTable adds a table or room.
func (u *CatalogUseCase) CreateTable(ctx context.Context, t model.Table) (*model.Table, error) {
	t, err := normalizeTable(t)
	if err != nil {
		return nil, err
	}
	return u.tables.Create(ctx, t)
}

// UpdateTable replaces a table.
func (u *CatalogUseCase) UpdateTable(ctx context.Context, t model.Table) (*model.Table, error) {
	t, err := normalizeTable(t)
	if err != nil {
		return nil, err
	}
	return u.tables.Update(ctx, t)
}

// DeleteTable removes a table. Its orders keep the printed number.
func (u *CatalogUseCase) DeleteTable(ctx context.Context, id int64) error {
	return u.tables.Delete(ctx, id)
}
