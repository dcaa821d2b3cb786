package order

import (
	"context"
	"errors"
)

var (
	ErrNotFound       = errors.New("order not found")
	ErrExists         = errors.New("order already exists")
	ErrProductMissing = errors.New("referenced product does not exist")
)

// Order is immutable once created. ProductID is checked only at creation.
type Order struct {
	ID        int `json:"id"`
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type Store interface {
	Ping(ctx context.Context) error
	ListOrders(ctx context.Context) ([]Order, error)
	GetOrder(ctx context.Context, id int) (Order, error)
	CreateOrder(ctx context.Context, o Order) (Order, error)
}
