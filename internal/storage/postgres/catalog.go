package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// --- CategoryRepository implementation ---

func (r *categoryRepository) List(ctx context.Context, channel model.Channel) ([]model.Category, error) {
	const query = `SELECT id, name, service_type FROM menu_categories
                   WHERE ($1 = '' OR service_type = $1) ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, string(channel))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Channel); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *categoryRepository) Create(ctx context.Context, category model.Category) (*model.Category, error) {
	const query = `INSERT INTO menu_categories (name, service_type) VALUES ($1, $2) RETURNING id`
	if err := r.storage.pool.QueryRow(ctx, query, category.Name, string(category.Channel)).Scan(&category.ID); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Update(ctx context.Context, category model.Category) (*model.Category, error) {
	const query = `UPDATE menu_categories SET name=$1, service_type=$2 WHERE id=$3`
	if err := requireAffected(r.storage.pool.Exec(ctx, query, category.Name, string(category.Channel), category.ID)); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	return requireAffected(r.storage.pool.Exec(ctx, `DELETE FROM menu_categories WHERE id=$1`, id))
}

// --- MenuItemRepository implementation ---

const menuItemColumns = `id, name, description, price::text, image, category_id, service_type, is_available, created_at`

func scanMenuItem(row pgx.Row) (model.MenuItem, error) {
	var (
		item  model.MenuItem
		price string
	)
	if err := row.Scan(&item.ID, &item.Name, &item.Description, &price, &item.Image,
		&item.CategoryID, &item.Channel, &item.Available, &item.CreatedAt); err != nil {
		return model.MenuItem{}, err
	}
	p, err := decimal.NewFromString(price)
	if err != nil {
		return model.MenuItem{}, fmt.Errorf("menu item %d price: %w", item.ID, err)
	}
	item.Price = p
	return item, nil
}

func (r *menuItemRepository) List(ctx context.Context, filter model.MenuItemFilter) ([]model.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items
              WHERE ($1 = '' OR service_type = $1) AND ($2 = 0 OR category_id = $2) ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, string(filter.Channel), filter.CategoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *menuItemRepository) Get(ctx context.Context, id int64) (*model.MenuItem, error) {
	item, err := scanMenuItem(r.storage.pool.QueryRow(ctx, `SELECT `+menuItemColumns+` FROM menu_items WHERE id=$1`, id))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &item, nil
}

func (r *menuItemRepository) Create(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	const query = `INSERT INTO menu_items (name, description, price, image, category_id, service_type, is_available)
                   VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	err := r.storage.pool.QueryRow(ctx, query, item.Name, item.Description, item.Price.StringFixed(2), item.Image,
		item.CategoryID, string(item.Channel), item.Available).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuItemRepository) Update(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	const query = `UPDATE menu_items SET name=$1, description=$2, price=$3, image=$4, category_id=$5,
                   service_type=$6, is_available=$7 WHERE id=$8 RETURNING created_at`
	err := r.storage.pool.QueryRow(ctx, query, item.Name, item.Description, item.Price.StringFixed(2), item.Image,
		item.CategoryID, string(item.Channel), item.Available, item.ID).Scan(&item.CreatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &item, nil
}

func (r *menuItemRepository) Delete(ctx context.Context, id int64) error {
	return requireAffected(r.storage.pool.Exec(ctx, `DELETE FROM menu_items WHERE id=$1`, id))
}

func (r *menuItemRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// --- TableRepository implementation ---

const tableColumns = `id, number, name, type, status, created_at`

func scanTable(row pgx.Row) (model.Table, error) {
	var t model.Table
	err := row.Scan(&t.ID, &t.Number, &t.Name, &t.Type, &t.Status, &t.CreatedAt)
	return t, err
}

func (r *tableRepository) List(ctx context.Context) ([]model.Table, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT `+tableColumns+` FROM tables ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Table
	for rows.Next() {
		t, err := scanTable(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *tableRepository) Get(ctx context.Context, id int64) (*model.Table, error) {
	t, err := scanTable(r.storage.pool.QueryRow(ctx, `SELECT `+tableColumns+` FROM tables WHERE id=$1`, id))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &t, nil
}

func (r *tableRepository) GetByNumber(ctx context.Context, number string) (*model.Table, error) {
	t, err := scanTable(r.storage.pool.QueryRow(ctx, `SELECT `+tableColumns+` FROM tables WHERE number=$1`, number))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &t, nil
}

func (r *tableRepository) Create(ctx context.Context, table model.Table) (*model.Table, error) {
	const query = `INSERT INTO tables (number, name, type, status) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	err := r.storage.pool.QueryRow(ctx, query, table.Number, table.Name, string(table.Type), string(table.Status)).
		Scan(&table.ID, &table.CreatedAt)
	if err != nil {
		return nil, mapUnique(err)
	}
	return &table, nil
}

func (r *tableRepository) Update(ctx context.Context, table model.Table) (*model.Table, error) {
	const query = `UPDATE tables SET number=$1, name=$2, type=$3, status=$4 WHERE id=$5 RETURNING created_at`
	err := r.storage.pool.QueryRow(ctx, query, table.Number, table.Name, string(table.Type), string(table.Status), table.ID).
		Scan(&table.CreatedAt)
	if err != nil {
		return nil, mapUnique(mapNoRows(err))
	}
	return &table, nil
}

func (r *tableRepository) Delete(ctx context.Context, id int64) error {
	return requireAffected(r.storage.pool.Exec(ctx, `DELETE FROM tables WHERE id=$1`, id))
}
