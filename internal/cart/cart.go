// Package cart is the read side of the shopping cart the storefront shell
// summarises in its header badge.
package cart

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrUnavailable marks a cart summary that could not be loaded.
var ErrUnavailable = errors.New("cart summary unavailable")

// LineItem is one product row in a shopper's cart.
type LineItem struct {
	ID             uuid.UUID
	CartID         uuid.UUID
	ProductID      string
	Name           string
	Quantity       *int // nil counts as zero
	UnitPriceCents int64
	CreatedAt      time.Time
}

// Qty returns the item quantity, treating an absent value as zero.
func (li LineItem) Qty() int {
	if li.Quantity == nil || *li.Quantity < 0 {
		return 0
	}
	return *li.Quantity
}

// SubtotalCents returns quantity times unit price.
func (li LineItem) SubtotalCents() int64 {
	return int64(li.Qty()) * li.UnitPriceCents
}

// Lister lists the current cart's line items in insertion order.
type Lister interface {
	List(ctx context.Context) ([]LineItem, error)
}

// Reader lists line items for any cart. Stores implement it and
// For binds one to a single shopper's cart.
type Reader interface {
	ListItems(ctx context.Context, cartID uuid.UUID) ([]LineItem, error)
}

// ListerFunc adapts a function to Lister.
type ListerFunc func(ctx context.Context) ([]LineItem, error)

// List calls f.
func (f ListerFunc) List(ctx context.Context) ([]LineItem, error) {
	return f(ctx)
}

// For returns a Lister for cartID backed by r.
func For(r Reader, cartID uuid.UUID) Lister {
	return ListerFunc(func(ctx context.Context) ([]LineItem, error) {
		return r.ListItems(ctx, cartID)
	})
}

// Count sums the quantities of items.
func Count(items []LineItem) int {
	total := 0
	for _, item := range items {
		total += item.Qty()
	}
	return total
}
