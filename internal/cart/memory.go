package cart

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps carts in process memory. It backs demo mode and tests.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[uuid.UUID][]LineItem
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[uuid.UUID][]LineItem)}
}

// ListItems returns a copy of the cart's items.
func (s *MemoryStore) ListItems(_ context.Context, cartID uuid.UUID) ([]LineItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.carts[cartID]
	out := make([]LineItem, len(items))
	copy(out, items)
	return out, nil
}

// Add appends an item to the cart, filling in ID, CartID and CreatedAt.
func (s *MemoryStore) Add(cartID uuid.UUID, item LineItem) LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.CartID = cartID
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	s.carts[cartID] = append(s.carts[cartID], item)
	return item
}

// Seed fills a new cart with sample items unless it already has some.
func (s *MemoryStore) Seed(cartID uuid.UUID) {
	s.mu.RLock()
	_, ok := s.carts[cartID]
	s.mu.RUnlock()
	if ok {
		return
	}

	for _, item := range demoItems() {
		s.Add(cartID, item)
	}
}

func demoItems() []LineItem {
	qty := func(n int) *int { return &n }
	return []LineItem{
		{ProductID: "sku-wm-100", Name: "Wireless Mouse", Quantity: qty(2), UnitPriceCents: 2499},
		{ProductID: "sku-kb-200", Name: "Mechanical Keyboard", Quantity: qty(1), UnitPriceCents: 8999},
		{ProductID: "sku-cb-300", Name: "USB-C Cable", Quantity: qty(3), UnitPriceCents: 999},
	}
}

// DemoReader returns a Reader that fills each cart with sample items the
// first time it is read.
func (s *MemoryStore) DemoReader() Reader {
	return demoReader{s}
}

type demoReader struct {
	store *MemoryStore
}

func (d demoReader) ListItems(ctx context.Context, cartID uuid.UUID) ([]LineItem, error) {
	d.store.Seed(cartID)
	return d.store.ListItems(ctx, cartID)
}
