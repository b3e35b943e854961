// Package repository defines the per-entity storage contracts. Services
// depend on these interfaces only; memory and mongodb provide the
// implementations.
package repository

import (
	"context"
	"errors"

	"github.com/pushkarbw/sample-e-com-sub003/models"
)

// ErrNotFound is returned by Get-style operations when no entity matches.
var ErrNotFound = errors.New("not found")

// ProductFilter narrows and pages a product listing. A nil Featured means
// no featured filtering. Page and Limit are 1-based and pre-validated by
// the service layer.
type ProductFilter struct {
	Search   string
	Category string
	Featured *bool
	Page     int
	Limit    int
}

// ProductRepository stores catalog products.
type ProductRepository interface {
	// List returns one page of products matching the filter plus the total
	// match count before paging.
	List(ctx context.Context, filter ProductFilter) ([]models.Product, int, error)
	Featured(ctx context.Context, limit int) ([]models.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	// AdjustStock adds delta (which may be negative) to the product's
	// stock count.
	AdjustStock(ctx context.Context, id string, delta int) error
	Delete(ctx context.Context, id string) error
}

// UserRepository stores registered accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
}

// CartRepository stores cart line items keyed by (user, product).
type CartRepository interface {
	ItemsByUser(ctx context.Context, userID string) ([]models.CartItem, error)
	Get(ctx context.Context, id string) (*models.CartItem, error)
	GetByUserAndProduct(ctx context.Context, userID, productID string) (*models.CartItem, error)
	Create(ctx context.Context, item *models.CartItem) error
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}

// OrderRepository stores placed orders.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	Get(ctx context.Context, id string) (*models.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
