package cart_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartmart/storefront/internal/cart"
)

func qty(n int) *int { return &n }

func TestCount(t *testing.T) {
	tests := []struct {
		name  string
		items []cart.LineItem
		want  int
	}{
		{"nil cart", nil, 0},
		{"empty cart", []cart.LineItem{}, 0},
		{"quantities 2 3 1", []cart.LineItem{{Quantity: qty(2)}, {Quantity: qty(3)}, {Quantity: qty(1)}}, 6},
		{"missing quantity counts as zero", []cart.LineItem{{Quantity: qty(4)}, {}}, 4},
		{"large cart", []cart.LineItem{{Quantity: qty(100)}, {Quantity: qty(50)}}, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cart.Count(tt.items))
		})
	}
}

func TestLineItem_Subtotal(t *testing.T) {
	li := cart.LineItem{Quantity: qty(3), UnitPriceCents: 999}
	assert.Equal(t, int64(2997), li.SubtotalCents())

	assert.Equal(t, int64(0), cart.LineItem{UnitPriceCents: 999}.SubtotalCents())
}

func TestMemoryStore_ListItems(t *testing.T) {
	store := cart.NewMemoryStore()
	id := uuid.New()

	items, err := store.ListItems(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, items)

	added := store.Add(id, cart.LineItem{ProductID: "p1", Name: "Mouse", Quantity: qty(2)})
	assert.NotEqual(t, uuid.Nil, added.ID)
	assert.Equal(t, id, added.CartID)

	store.Add(uuid.New(), cart.LineItem{ProductID: "other", Quantity: qty(9)})

	items, err = store.ListItems(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Mouse", items[0].Name)
}

func TestMemoryStore_SeedOnce(t *testing.T) {
	store := cart.NewMemoryStore()
	id := uuid.New()

	store.Seed(id)
	store.Seed(id)

	items, err := store.ListItems(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, 6, cart.Count(items))
}

func TestFor(t *testing.T) {
	store := cart.NewMemoryStore()
	id := uuid.New()
	store.Add(id, cart.LineItem{Quantity: qty(5)})

	items, err := cart.For(store, id).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, cart.Count(items))
}

func TestMemoryStore_DemoReader(t *testing.T) {
	store := cart.NewMemoryStore()
	id := uuid.New()

	items, err := store.DemoReader().ListItems(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 6, cart.Count(items))

	store.Add(id, cart.LineItem{Quantity: qty(1)})
	items, err = store.DemoReader().ListItems(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 7, cart.Count(items))
}
