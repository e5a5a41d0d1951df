package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"

	"github.com/smartmart/storefront/internal/routes"
	"github.com/smartmart/storefront/internal/views"
)

// CartSummaryResponse is the body of GET /api/cart/summary.
type CartSummaryResponse struct {
	ItemCount int    `json:"itemCount"`
	Badge     string `json:"badge"`
}

// Cart renders the shopper's cart.
func (h *Handlers) Cart(w http.ResponseWriter, r *http.Request) {
	items, err := h.carts.ListItems(r.Context(), h.cartID(r))
	if err != nil {
		h.logger.Error("failed to list cart items", "error", err)
		http.Error(w, "Failed to load cart", http.StatusServiceUnavailable)
		return
	}

	h.render(w, r, http.StatusOK, routes.Cart, views.CartPage(items))
}

// CartSummary returns the cart count the header badge shows. A failed load
// reports the zero summary, like the badge does.
func (h *Handlers) CartSummary(w http.ResponseWriter, r *http.Request) {
	sh := h.mountShell(r)
	defer sh.Unmount()

	count := sh.State().ItemCount
	badge, _ := views.BadgeLabel(count)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(CartSummaryResponse{ItemCount: count, Badge: badge}); err != nil {
		h.logger.Error("failed to encode cart summary", "error", err)
	}
}

// CartBadge renders just the badge slot, for swapping into a page after the
// cart changes.
func (h *Handlers) CartBadge(w http.ResponseWriter, r *http.Request) {
	sh := h.mountShell(r)
	defer sh.Unmount()

	w.Header().Set("Cache-Control", "no-store")
	templ.Handler(views.Component(views.CartBadge(sh.State().ItemCount)),
		templ.WithErrorHandler(h.renderError("cart badge")),
	).ServeHTTP(w, r)
}
