package service

import (
	"context"

	"harsha-hotel/internal/model"
)

// MenuService defines operations for menu management.
type MenuService interface {
	// List retrieves all menu items.
	List(ctx context.Context) ([]model.MenuItem, error)

	// Add creates a new menu item and returns its generated id.
	Add(ctx context.Context, req *model.MenuItemRequest) (string, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// Place creates a new order for an existing menu item and returns
	// its generated id.
	Place(ctx context.Context, req *model.OrderRequest) (string, error)

	// List retrieves all orders, served and unserved.
	List(ctx context.Context) ([]model.Order, error)

	// AggregateUnserved returns the total unserved quantity per item name.
	AggregateUnserved(ctx context.Context) ([]model.AggregatedOrder, error)
}
