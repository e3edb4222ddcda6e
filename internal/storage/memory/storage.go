package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
	"github.com/polkiloo/orderdesk/internal/pkg/clock"
)

// Storage keeps every record in process memory behind one lock. Values are
// cloned on the way in and out so callers never share state with the store.
type Storage struct {
	mu    sync.RWMutex
	clock clock.Clock

	users      map[int64]model.User
	categories map[int64]model.Category
	menuItems  map[int64]model.MenuItem
	tables     map[int64]model.Table
	orders     map[int64]model.Order
	orderItems map[int64][]model.OrderItem
	pauses     map[model.Channel]model.PauseSettings

	seq sequences
}

type sequences struct {
	user, category, menuItem, table, order, orderItem, pause int64
}

type userRepository struct{ s *Storage }
type categoryRepository struct{ s *Storage }
type menuItemRepository struct{ s *Storage }
type tableRepository struct{ s *Storage }
type orderRepository struct{ s *Storage }
type pauseRepository struct{ s *Storage }

// New creates an empty store stamping records with clk.
func New(clk clock.Clock) *Storage {
	if clk == nil {
		clk = clock.System{}
	}
	return &Storage{
		clock:      clk,
		users:      make(map[int64]model.User),
		categories: make(map[int64]model.Category),
		menuItems:  make(map[int64]model.MenuItem),
		tables:     make(map[int64]model.Table),
		orders:     make(map[int64]model.Order),
		orderItems: make(map[int64][]model.OrderItem),
		pauses:     make(map[model.Channel]model.PauseSettings),
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository { return &userRepository{s: s} }

func (s *Storage) Categories() repository.CategoryRepository { return &categoryRepository{s: s} }

func (s *Storage) MenuItems() repository.MenuItemRepository { return &menuItemRepository{s: s} }

func (s *Storage) Tables() repository.TableRepository { return &tableRepository{s: s} }

func (s *Storage) Orders() repository.OrderRepository { return &orderRepository{s: s} }

func (s *Storage) Pauses() repository.PauseRepository { return &pauseRepository{s: s} }

func sortedByID[T any](m map[int64]T, id func(T) int64) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b T) int { return cmp.Compare(id(a), id(b)) })
	return out
}

// --- UserRepository implementation ---

func (r *userRepository) Create(_ context.Context, username, passwordHash, role string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == username {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	r.s.seq.user++
	u := model.User{
		ID:           r.s.seq.user,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    r.s.clock.Now(),
	}
	r.s.users[u.ID] = u
	return &u, nil
}

func (r *userRepository) GetByUsername(_ context.Context, username string) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (r *userRepository) GetByID(_ context.Context, id int64) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &u, nil
}

// --- CategoryRepository implementation ---

func (r *categoryRepository) List(_ context.Context, channel model.Channel) ([]model.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := sortedByID(r.s.categories, func(c model.Category) int64 { return c.ID })
	if channel == "" {
		return all, nil
	}
	return slices.DeleteFunc(all, func(c model.Category) bool { return c.Channel != channel }), nil
}

func (r *categoryRepository) Create(_ context.Context, category model.Category) (*model.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.seq.category++
	category.ID = r.s.seq.category
	r.s.categories[category.ID] = category
	return &category, nil
}

func (r *categoryRepository) Update(_ context.Context, category model.Category) (*model.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.categories[category.ID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	r.s.categories[category.ID] = category
	return &category, nil
}

func (r *categoryRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.categories[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(r.s.categories, id)
	for itemID, item := range r.s.menuItems {
		if item.CategoryID != nil && *item.CategoryID == id {
			item.CategoryID = nil
			r.s.menuItems[itemID] = item
		}
	}
	return nil
}

// --- MenuItemRepository implementation ---

func (r *menuItemRepository) List(_ context.Context, filter model.MenuItemFilter) ([]model.MenuItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.MenuItem, 0, len(r.s.menuItems))
	for _, item := range sortedByID(r.s.menuItems, func(m model.MenuItem) int64 { return m.ID }) {
		if filter.Matches(item) {
			out = append(out, item.Clone())
		}
	}
	return out, nil
}

func (r *menuItemRepository) Get(_ context.Context, id int64) (*model.MenuItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	item, ok := r.s.menuItems[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	item = item.Clone()
	return &item, nil
}

func (r *menuItemRepository) Create(_ context.Context, item model.MenuItem) (*model.MenuItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.seq.menuItem++
	item = item.Clone()
	item.ID = r.s.seq.menuItem
	item.CreatedAt = r.s.clock.Now()
	r.s.menuItems[item.ID] = item
	out := item.Clone()
	return &out, nil
}

func (r *menuItemRepository) Update(_ context.Context, item model.MenuItem) (*model.MenuItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.menuItems[item.ID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	item = item.Clone()
	item.CreatedAt = existing.CreatedAt
	r.s.menuItems[item.ID] = item
	out := item.Clone()
	return &out, nil
}

func (r *menuItemRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.menuItems[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(r.s.menuItems, id)
	for orderID, items := range r.s.orderItems {
		for i := range items {
			if items[i].MenuItemID != nil && *items[i].MenuItemID == id {
				items[i].MenuItemID = nil
			}
		}
		r.s.orderItems[orderID] = items
	}
	return nil
}

func (r *menuItemRepository) Count(context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.menuItems), nil
}

// --- TableRepository implementation ---

func (r *tableRepository) List(context.Context) ([]model.Table, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return sortedByID(r.s.tables, func(t model.Table) int64 { return t.ID }), nil
}

func (r *tableRepository) Get(_ context.Context, id int64) (*model.Table, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.tables[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &t, nil
}

func (r *tableRepository) GetByNumber(_ context.Context, number string) (*model.Table, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, t := range r.s.tables {
		if t.Number == number {
			return &t, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (r *tableRepository) numberTaken(number string, except int64) bool {
	for _, t := range r.s.tables {
		if t.Number == number && t.ID != except {
			return true
		}
	}
	return false
}

func (r *tableRepository) Create(_ context.Context, table model.Table) (*model.Table, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.numberTaken(table.Number, 0) {
		return nil, domainErrors.ErrAlreadyExists
	}
	r.s.seq.table++
	table.ID = r.s.seq.table
	table.CreatedAt = r.s.clock.Now()
	r.s.tables[table.ID] = table
	return &table, nil
}

func (r *tableRepository) Update(_ context.Context, table model.Table) (*model.Table, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.tables[table.ID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if r.numberTaken(table.Number, table.ID) {
		return nil, domainErrors.ErrAlreadyExists
	}
	table.CreatedAt = existing.CreatedAt
	r.s.tables[table.ID] = table
	return &table, nil
}

func (r *tableRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.tables[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(r.s.tables, id)
	for orderID, o := range r.s.orders {
		if o.TableID != nil && *o.TableID == id {
			o.TableID = nil
			r.s.orders[orderID] = o
		}
	}
	return nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) NextID(context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.seq.order++
	return r.s.seq.order, nil
}

func (r *orderRepository) Create(_ context.Context, order model.Order, items []model.OrderItem) (*model.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.orders {
		if existing.Number == order.Number {
			return nil, domainErrors.ErrAlreadyExists
		}
	}

	order = order.Clone()
	if order.ID == 0 {
		r.s.seq.order++
		order.ID = r.s.seq.order
	} else if _, taken := r.s.orders[order.ID]; taken {
		return nil, domainErrors.ErrAlreadyExists
	}

	stored := make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		r.s.seq.orderItem++
		item = item.Clone()
		item.ID = r.s.seq.orderItem
		item.OrderID = order.ID
		stored = append(stored, item)
	}

	r.s.orders[order.ID] = order
	r.s.orderItems[order.ID] = stored
	out := order.Clone()
	return &out, nil
}

func (r *orderRepository) Get(_ context.Context, id int64) (*model.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	o = o.Clone()
	return &o, nil
}

func newestFirst(a, b model.Order) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(b.ID, a.ID)
}

func (r *orderRepository) List(_ context.Context, filter model.OrderFilter) ([]model.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.Order, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		if filter.Matches(o) {
			out = append(out, o.Clone())
		}
	}
	slices.SortFunc(out, newestFirst)
	return out, nil
}

func (r *orderRepository) Items(_ context.Context, orderID int64) ([]model.OrderItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if _, ok := r.s.orders[orderID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	return cloneItems(r.s.orderItems[orderID]), nil
}

func cloneItems(items []model.OrderItem) []model.OrderItem {
	out := make([]model.OrderItem, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

func (r *orderRepository) Update(_ context.Context, id int64, fn repository.OrderMutation) (*model.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	working := current.Clone()
	if err := fn(&working); err != nil {
		return nil, err
	}
	working.ID = current.ID
	r.s.orders[id] = working
	out := working.Clone()
	return &out, nil
}

func (r *orderRepository) deleteWhere(match func(model.Order) bool) int {
	deleted := 0
	for id, o := range r.s.orders {
		if match(o) {
			delete(r.s.orders, id)
			delete(r.s.orderItems, id)
			deleted++
		}
	}
	return deleted
}

func (r *orderRepository) DeleteCompleted(context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.deleteWhere(func(o model.Order) bool { return o.Status == model.OrderStatusCompleted }), nil
}

func (r *orderRepository) DeleteCreatedBefore(_ context.Context, cutoff time.Time) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.deleteWhere(func(o model.Order) bool { return o.CreatedAt.Before(cutoff) }), nil
}

func (r *orderRepository) Window(_ context.Context, start, end time.Time) ([]model.OrderWithItems, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []model.OrderWithItems
	for id, o := range r.s.orders {
		if o.CreatedAt.Before(start) || o.CreatedAt.After(end) {
			continue
		}
		out = append(out, model.OrderWithItems{Order: o.Clone(), Items: cloneItems(r.s.orderItems[id])})
	}
	slices.SortFunc(out, func(a, b model.OrderWithItems) int {
		if c := a.Order.CreatedAt.Compare(b.Order.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.Order.ID, b.Order.ID)
	})
	return out, nil
}

// --- PauseRepository implementation ---

func (r *pauseRepository) Get(_ context.Context, channel model.Channel) (*model.PauseSettings, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pauses[channel]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	p = p.Clone()
	return &p, nil
}

func (r *pauseRepository) Mutate(_ context.Context, channel model.Channel, fn repository.PauseMutation) (*model.PauseSettings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var current *model.PauseSettings
	if p, ok := r.s.pauses[channel]; ok {
		c := p.Clone()
		current = &c
	}

	next, err := fn(current)
	if err != nil {
		return nil, err
	}
	if next == nil {
		return current, nil
	}

	stored := next.Clone()
	stored.Channel = channel
	now := r.s.clock.Now()
	if current == nil {
		r.s.seq.pause++
		stored.ID = r.s.seq.pause
		stored.CreatedAt = now
	} else {
		stored.ID = current.ID
		stored.CreatedAt = current.CreatedAt
	}
	stored.UpdatedAt = now
	r.s.pauses[channel] = stored

	out := stored.Clone()
	return &out, nil
}
