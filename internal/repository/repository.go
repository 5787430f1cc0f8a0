package repository

import (
	"context"

	"harsha-hotel/internal/model"
)

// MenuRepository defines the interface for menu item data access operations.
type MenuRepository interface {
	// GetAll retrieves all menu items.
	GetAll(ctx context.Context) ([]model.MenuItem, error)

	// GetByID retrieves a single menu item by its ID.
	// Returns nil without error when no item exists.
	GetByID(ctx context.Context, id string) (*model.MenuItem, error)

	// Insert persists a new menu item.
	Insert(ctx context.Context, item *model.MenuItem) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// GetAll retrieves all orders, served and unserved.
	GetAll(ctx context.Context) ([]model.Order, error)

	// Insert persists a new order.
	Insert(ctx context.Context, order *model.Order) error

	// AggregateUnserved sums quantities of unserved orders grouped by
	// the denormalized item name.
	AggregateUnserved(ctx context.Context) ([]model.AggregatedOrder, error)
}
