// Package store holds the process-lifetime product and order collections.
package store

import (
	"context"
	"sync"

	"StoreAPI/internal/catalog"
	"StoreAPI/internal/order"
)

var (
	_ catalog.Store = (*Memory)(nil)
	_ order.Store   = (*Memory)(nil)
)

// Memory serializes all access behind one lock, so an order's product check
// and its insert see the same catalog.
type Memory struct {
	mu       sync.RWMutex
	products *table[catalog.Product]
	orders   *table[order.Order]
}

func NewMemory(seed ...catalog.Product) *Memory {
	s := &Memory{
		products: newTable[catalog.Product](),
		orders:   newTable[order.Order](),
	}
	for _, p := range seed {
		s.products.insert(p.ID, p)
	}
	return s
}

func DefaultProducts() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Name: "Laptop", Price: catalog.NewPrice(1000)},
		{ID: 2, Name: "Mouse", Price: catalog.NewPrice(25)},
		{ID: 3, Name: "Keyboard", Price: catalog.NewPrice(45)},
	}
}

func (s *Memory) Ping(ctx context.Context) error { return ctx.Err() }

func (s *Memory) Counts() (products, orders int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products.len(), s.orders.len()
}

func (s *Memory) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products.list(), nil
}

func (s *Memory) GetProduct(ctx context.Context, id int) (catalog.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products.get(id)
	if !ok {
		return catalog.Product{}, catalog.ErrNotFound
	}
	return p, nil
}

func (s *Memory) CreateProduct(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.products.insert(p.ID, p) {
		return catalog.Product{}, catalog.ErrExists
	}
	return p, nil
}

func (s *Memory) UpdateProduct(ctx context.Context, id int, u catalog.Update) (catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products.get(id)
	if !ok {
		return catalog.Product{}, catalog.ErrNotFound
	}

	p.Name = u.Name
	p.Price = u.Price
	s.products.replace(id, p)
	return p, nil
}

// DeleteProduct leaves orders that reference id as they are.
func (s *Memory) DeleteProduct(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.products.remove(id) {
		return catalog.ErrNotFound
	}
	return nil
}

func (s *Memory) ListOrders(ctx context.Context) ([]order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orders.list(), nil
}

func (s *Memory) GetOrder(ctx context.Context, id int) (order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders.get(id)
	if !ok {
		return order.Order{}, order.ErrNotFound
	}
	return o, nil
}

// CreateOrder checks the product reference before the id collision.
func (s *Memory) CreateOrder(ctx context.Context, o order.Order) (order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.products.has(o.ProductID) {
		return order.Order{}, order.ErrProductMissing
	}
	if !s.orders.insert(o.ID, o) {
		return order.Order{}, order.ErrExists
	}
	return o, nil
}
