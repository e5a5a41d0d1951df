package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const listItemsSQL = `
SELECT id, cart_id, product_id, name, quantity, unit_price_cents, created_at
FROM cart_items
WHERE cart_id = $1
ORDER BY created_at, id`

// PostgresStore reads carts from the cart_items table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a store over pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// ListItems returns the cart's items oldest first.
func (s *PostgresStore) ListItems(ctx context.Context, cartID uuid.UUID) ([]LineItem, error) {
	rows, err := s.pool.Query(ctx, listItemsSQL, cartID)
	if err != nil {
		return nil, fmt.Errorf("query cart items: %w", err)
	}

	items, err := pgx.CollectRows(rows, scanLineItem)
	if err != nil {
		return nil, fmt.Errorf("scan cart items: %w", err)
	}
	return items, nil
}

func scanLineItem(row pgx.CollectableRow) (LineItem, error) {
	var (
		li  LineItem
		qty pgtype.Int4
	)
	err := row.Scan(&li.ID, &li.CartID, &li.ProductID, &li.Name, &qty, &li.UnitPriceCents, &li.CreatedAt)
	if err != nil {
		return LineItem{}, err
	}
	if qty.Valid {
		n := int(qty.Int32)
		li.Quantity = &n
	}
	return li, nil
}
