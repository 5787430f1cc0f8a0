package repository

import (
	"context"
	"testing"
	"time"

	"harsha-hotel/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// insertOrder is a low-level helper so tests can control the served flag.
func insertOrder(t *testing.T, pool *pgxpool.Pool, id, itemID, itemName string, qty int, tableNo string, served bool) {
	_, err := pool.Exec(context.Background(),
		`INSERT INTO orders (id, item_id, item_name, qty, table_no, served) VALUES ($1, $2, $3, $4, $5, $6)`,
		id, itemID, itemName, qty, tableNo, served)
	require.NoError(t, err)
}

func TestOrderRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewOrderRepository(pool, logger)
	ctx := context.Background()

	t.Run("Insert then GetAll", func(t *testing.T) {
		cleanupTables(t, pool)

		order := &model.Order{
			ID:        "io000001",
			ItemID:    "im000001",
			ItemName:  "Dosa",
			Qty:       2,
			TableNo:   "T3",
			Served:    false,
			CreatedAt: time.Now(),
		}
		require.NoError(t, repo.Insert(ctx, order))

		orders, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "io000001", orders[0].ID)
		assert.Equal(t, "im000001", orders[0].ItemID)
		assert.Equal(t, "Dosa", orders[0].ItemName)
		assert.Equal(t, 2, orders[0].Qty)
		assert.Equal(t, "T3", orders[0].TableNo)
		assert.False(t, orders[0].Served)
	})

	t.Run("GetAll includes served and unserved", func(t *testing.T) {
		cleanupTables(t, pool)

		insertOrder(t, pool, "io000001", "im000001", "Dosa", 1, "T1", false)
		insertOrder(t, pool, "io000002", "im000001", "Dosa", 1, "T2", true)

		orders, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})

	t.Run("GetAll on empty table", func(t *testing.T) {
		cleanupTables(t, pool)

		orders, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("AggregateUnserved sums quantities per name", func(t *testing.T) {
		cleanupTables(t, pool)

		insertOrder(t, pool, "io000001", "im000001", "Dosa", 2, "T1", false)
		insertOrder(t, pool, "io000002", "im000001", "Dosa", 3, "T2", false)
		insertOrder(t, pool, "io000003", "im000002", "Idli", 1, "Takeaway", false)

		aggregates, err := repo.AggregateUnserved(ctx)
		require.NoError(t, err)
		require.Len(t, aggregates, 2)
		assert.Equal(t, model.AggregatedOrder{ItemName: "Dosa", Plates: 5}, aggregates[0])
		assert.Equal(t, model.AggregatedOrder{ItemName: "Idli", Plates: 1}, aggregates[1])
	})

	t.Run("AggregateUnserved excludes served orders", func(t *testing.T) {
		cleanupTables(t, pool)

		insertOrder(t, pool, "io000001", "im000001", "Dosa", 2, "T1", false)
		insertOrder(t, pool, "io000002", "im000001", "Dosa", 4, "T2", true)

		aggregates, err := repo.AggregateUnserved(ctx)
		require.NoError(t, err)
		require.Len(t, aggregates, 1)
		assert.Equal(t, 2, aggregates[0].Plates)
	})

	t.Run("AggregateUnserved merges distinct items sharing a name", func(t *testing.T) {
		cleanupTables(t, pool)

		// Grouping is on the denormalized name, not the item id.
		insertOrder(t, pool, "io000001", "im000001", "Dosa", 2, "T1", false)
		insertOrder(t, pool, "io000002", "im000009", "Dosa", 3, "T2", false)

		aggregates, err := repo.AggregateUnserved(ctx)
		require.NoError(t, err)
		require.Len(t, aggregates, 1)
		assert.Equal(t, model.AggregatedOrder{ItemName: "Dosa", Plates: 5}, aggregates[0])
	})

	t.Run("AggregateUnserved on empty table", func(t *testing.T) {
		cleanupTables(t, pool)

		aggregates, err := repo.AggregateUnserved(ctx)
		require.NoError(t, err)
		assert.Empty(t, aggregates)
	})

	t.Run("Insert duplicate id fails", func(t *testing.T) {
		cleanupTables(t, pool)

		insertOrder(t, pool, "io000001", "im000001", "Dosa", 1, "T1", false)

		order := &model.Order{ID: "io000001", ItemID: "im000002", ItemName: "Idli", Qty: 1, TableNo: "T2", CreatedAt: time.Now()}
		err := repo.Insert(ctx, order)
		require.Error(t, err)
	})
}
