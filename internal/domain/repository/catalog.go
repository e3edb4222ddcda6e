package repository

import (
	"context"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// CategoryRepository describes persistence of menu categories.
type CategoryRepository interface {
	List(ctx context.Context, channel model.Channel) ([]model.Category, error)
	Create(ctx context.Context, category model.Category) (*model.Category, error)
	Update(ctx context.Context, category model.Category) (*model.Category, error)
	Delete(ctx context.Context, id int64) error
}

// MenuItemRepository describes persistence of menu items. Deleting an item keeps
// historical order lines and clears their menu reference.
type MenuItemRepository interface {
	List(ctx context.Context, filter model.MenuItemFilter) ([]model.MenuItem, error)
	Get(ctx context.Context, id int64) (*model.MenuItem, error)
	Create(ctx context.Context, item model.MenuItem) (*model.MenuItem, error)
	Update(ctx context.Context, item model.MenuItem) (*model.MenuItem, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// TableRepository describes persistence of tables and rooms. Deleting a table
// keeps its orders and clears their table reference.
type TableRepository interface {
	List(ctx context.Context) ([]model.Table, error)
	Get(ctx context.Context, id int64) (*model.Table, error)
	GetByNumber(ctx context.Context, number string) (*model.Table, error)
	Create(ctx context.Context, table model.Table) (*model.Table, error)
	Update(ctx context.Context, table model.Table) (*model.Table, error)
	Delete(ctx context.Context, id int64) error
}
