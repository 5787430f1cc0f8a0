package repository

import (
	"context"
	"fmt"

	"harsha-hotel/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// menuRepository implements the MenuRepository interface using PostgreSQL.
type menuRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMenuRepository creates a new PostgreSQL-backed menu repository.
func NewMenuRepository(pool *pgxpool.Pool, logger zerolog.Logger) MenuRepository {
	return &menuRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "menu").Logger(),
	}
}

// GetAll retrieves all menu items.
func (r *menuRepository) GetAll(ctx context.Context) ([]model.MenuItem, error) {
	query := `
		SELECT id, name, description, price, rating, created_at
		FROM menu_items
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query menu items")
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	var items []model.MenuItem
	for rows.Next() {
		var item model.MenuItem
		err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Rating, &item.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu item row")
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu item rows")
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return items, nil
}

// GetByID retrieves a single menu item by its ID.
func (r *menuRepository) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	query := `
		SELECT id, name, description, price, rating, created_at
		FROM menu_items
		WHERE id = $1
	`

	var item model.MenuItem
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.Rating,
		&item.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("item_id", id).Msg("menu item not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("item_id", id).Msg("failed to query menu item")
		return nil, fmt.Errorf("failed to query menu item: %w", err)
	}

	return &item, nil
}

// Insert persists a new menu item.
func (r *menuRepository) Insert(ctx context.Context, item *model.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, name, description, price, rating, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		item.ID, item.Name, item.Description, item.Price, item.Rating, item.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("item_id", item.ID).
			Msg("failed to insert menu item")
		return fmt.Errorf("failed to insert menu item: %w", err)
	}

	r.logger.Debug().
		Str("item_id", item.ID).
		Str("name", item.Name).
		Msg("menu item inserted")

	return nil
}
