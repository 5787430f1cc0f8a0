package repository

import (
	"context"
	"fmt"

	"harsha-hotel/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// GetAll retrieves all orders, served and unserved.
func (r *orderRepository) GetAll(ctx context.Context) ([]model.Order, error) {
	query := `
		SELECT id, item_id, item_name, qty, table_no, served, created_at
		FROM orders
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		err := rows.Scan(&o.ID, &o.ItemID, &o.ItemName, &o.Qty, &o.TableNo, &o.Served, &o.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}

// Insert persists a new order.
func (r *orderRepository) Insert(ctx context.Context, order *model.Order) error {
	query := `
		INSERT INTO orders (id, item_id, item_name, qty, table_no, served, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		order.ID, order.ItemID, order.ItemName, order.Qty, order.TableNo, order.Served, order.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.ID).
			Str("item_id", order.ItemID).
			Msg("failed to insert order")
		return fmt.Errorf("failed to insert order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID).
		Str("item_name", order.ItemName).
		Msg("order inserted")

	return nil
}

// AggregateUnserved sums quantities of unserved orders grouped by item name.
// Grouping is on the denormalized name, so two distinct menu items sharing
// a name merge into one row.
func (r *orderRepository) AggregateUnserved(ctx context.Context) ([]model.AggregatedOrder, error) {
	query := `
		SELECT item_name, SUM(qty) AS plates
		FROM orders
		WHERE served = FALSE
		GROUP BY item_name
		ORDER BY item_name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query unserved aggregation")
		return nil, fmt.Errorf("failed to query unserved aggregation: %w", err)
	}
	defer rows.Close()

	var aggregates []model.AggregatedOrder
	for rows.Next() {
		var a model.AggregatedOrder
		err := rows.Scan(&a.ItemName, &a.Plates)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan aggregation row")
			return nil, fmt.Errorf("failed to scan aggregation: %w", err)
		}
		aggregates = append(aggregates, a)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating aggregation rows")
		return nil, fmt.Errorf("error iterating aggregation: %w", err)
	}

	return aggregates, nil
}
