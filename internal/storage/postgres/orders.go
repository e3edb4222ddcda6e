package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

const orderColumns = `id, order_number, table_id, table_number, service_type, status, total_amount::text, items,
    payment_method, payment_status, created_at, completed_at, cancelled_at, paid_at, cancel_reason`

// lineItemRecord is the JSON shape of one entry of orders.items.
type lineItemRecord struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

func encodeLineItems(items []model.LineItem) ([]byte, error) {
	records := make([]lineItemRecord, len(items))
	for i, it := range items {
		records[i] = lineItemRecord{ID: it.MenuItemID, Name: it.Name, Price: it.Price, Quantity: it.Quantity}
	}
	return json.Marshal(records)
}

func decodeLineItems(raw []byte) ([]model.LineItem, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var records []lineItemRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	items := make([]model.LineItem, len(records))
	for i, r := range records {
		items[i] = model.LineItem{MenuItemID: r.ID, Name: r.Name, Price: r.Price, Quantity: r.Quantity}
	}
	return items, nil
}

func scanOrder(row pgx.Row) (model.Order, error) {
	var (
		o     model.Order
		total string
		items []byte
	)
	err := row.Scan(&o.ID, &o.Number, &o.TableID, &o.TableNumber, &o.Channel, &o.Status, &total, &items,
		&o.PaymentMethod, &o.PaymentStatus, &o.CreatedAt, &o.CompletedAt, &o.CancelledAt, &o.PaidAt, &o.CancelReason)
	if err != nil {
		return model.Order{}, err
	}
	if o.TotalAmount, err = decimal.NewFromString(total); err != nil {
		return model.Order{}, fmt.Errorf("order %d total: %w", o.ID, err)
	}
	if o.Items, err = decodeLineItems(items); err != nil {
		return model.Order{}, fmt.Errorf("order %d items: %w", o.ID, err)
	}
	return o, nil
}

func collectOrders(rows pgx.Rows) ([]model.Order, error) {
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanOrderItem(row pgx.Row) (model.OrderItem, error) {
	var (
		item  model.OrderItem
		price string
	)
	if err := row.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Quantity, &price, &item.ItemName); err != nil {
		return model.OrderItem{}, err
	}
	p, err := decimal.NewFromString(price)
	if err != nil {
		return model.OrderItem{}, fmt.Errorf("order item %d price: %w", item.ID, err)
	}
	item.Price = p
	return item, nil
}

func collectOrderItems(rows pgx.Rows) ([]model.OrderItem, error) {
	defer rows.Close()

	var result []model.OrderItem
	for rows.Next() {
		item, err := scanOrderItem(rows)
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

func (r *orderRepository) NextID(ctx context.Context) (int64, error) {
	var id int64
	err := r.storage.pool.QueryRow(ctx, `SELECT nextval(pg_get_serial_sequence('orders', 'id'))`).Scan(&id)
	return id, err
}

func (r *orderRepository) Create(ctx context.Context, order model.Order, items []model.OrderItem) (*model.Order, error) {
	blob, err := encodeLineItems(order.Items)
	if err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}

	const insertOrder = `INSERT INTO orders (id, order_number, table_id, table_number, service_type, status, total_amount,
                         items, payment_method, payment_status, created_at)
                         VALUES (COALESCE(NULLIF($1::bigint, 0), nextval(pg_get_serial_sequence('orders', 'id'))),
                                 $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	const insertItem = `INSERT INTO order_items (order_id, menu_item_id, quantity, price, item_name)
                        VALUES ($1, $2, $3, $4, $5)`

	err = r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertOrder, order.ID, order.Number, order.TableID, order.TableNumber, string(order.Channel),
			string(order.Status), order.TotalAmount.StringFixed(2), blob, string(order.PaymentMethod),
			string(order.PaymentStatus), order.CreatedAt).Scan(&order.ID)
		if err != nil {
			return mapUnique(err)
		}
		for _, item := range items {
			if _, err := tx.Exec(ctx, insertItem, order.ID, item.MenuItemID, item.Quantity,
				item.Price.StringFixed(2), item.ItemName); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) Get(ctx context.Context, id int64) (*model.Order, error) {
	o, err := scanOrder(r.storage.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &o, nil
}

func (r *orderRepository) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
              WHERE ($1 = '' OR status = $1) AND ($2 = '' OR service_type = $2)
              ORDER BY created_at DESC, id DESC`
	rows, err := r.storage.pool.Query(ctx, query, string(filter.Status), string(filter.Channel))
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *orderRepository) Items(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	if _, err := r.Get(ctx, orderID); err != nil {
		return nil, err
	}
	const query = `SELECT id, order_id, menu_item_id, quantity, price::text, item_name
                   FROM order_items WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	return collectOrderItems(rows)
}

func (r *orderRepository) Update(ctx context.Context, id int64, fn repository.OrderMutation) (*model.Order, error) {
	const update = `UPDATE orders SET status=$1, payment_method=$2, payment_status=$3, completed_at=$4,
                    cancelled_at=$5, paid_at=$6, cancel_reason=$7 WHERE id=$8`

	var result model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		current, err := scanOrder(tx.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1 FOR UPDATE`, id))
		if err != nil {
			return mapNoRows(err)
		}
		if err := fn(&current); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, update, string(current.Status), string(current.PaymentMethod),
			string(current.PaymentStatus), current.CompletedAt, current.CancelledAt, current.PaidAt,
			current.CancelReason, id); err != nil {
			return err
		}
		result = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *orderRepository) DeleteCompleted(ctx context.Context) (int, error) {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM orders WHERE status=$1`, string(model.OrderStatusCompleted))
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *orderRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM orders WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *orderRepository) Window(ctx context.Context, start, end time.Time) ([]model.OrderWithItems, error) {
	const ordersQuery = `SELECT ` + orderColumns + ` FROM orders
                         WHERE created_at >= $1 AND created_at <= $2 ORDER BY created_at, id`
	const itemsQuery = `SELECT i.id, i.order_id, i.menu_item_id, i.quantity, i.price::text, i.item_name
                        FROM order_items i JOIN orders o ON o.id = i.order_id
                        WHERE o.created_at >= $1 AND o.created_at <= $2 ORDER BY i.id`

	var result []model.OrderWithItems
	opts := pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
	err := r.storage.withinTx(ctx, opts, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, ordersQuery, start, end)
		if err != nil {
			return err
		}
		orders, err := collectOrders(rows)
		if err != nil {
			return err
		}

		rows, err = tx.Query(ctx, itemsQuery, start, end)
		if err != nil {
			return err
		}
		items, err := collectOrderItems(rows)
		if err != nil {
			return err
		}

		byOrder := make(map[int64][]model.OrderItem, len(orders))
		for _, item := range items {
			byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
		}
		result = make([]model.OrderWithItems, 0, len(orders))
		for _, o := range orders {
			result = append(result, model.OrderWithItems{Order: o, Items: byOrder[o.ID]})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
