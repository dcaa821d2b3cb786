package catalog

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("product not found")
	ErrExists   = errors.New("product already exists")
)

type Product struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price Price  `json:"price"`
}

// Price is a fixed-point amount. It is written as a bare JSON number and
// accepts either a number or a quoted number on input.
type Price struct {
	decimal.Decimal
}

func NewPrice(units int64) Price { return Price{decimal.NewFromInt(units)} }

func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, err
	}
	return Price{d}, nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.Decimal.String()), nil
}

// Update carries the mutable product fields.
type Update struct {
	Name  string
	Price Price
}

type Store interface {
	Ping(ctx context.Context) error
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id int) (Product, error)
	CreateProduct(ctx context.Context, p Product) (Product, error)
	UpdateProduct(ctx context.Context, id int, u Update) (Product, error)
	DeleteProduct(ctx context.Context, id int) error
}
