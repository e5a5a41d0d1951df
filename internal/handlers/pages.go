package handlers

import (
	"net/http"

	"github.com/smartmart/storefront/internal/routes"
	"github.com/smartmart/storefront/internal/views"
)

// Home renders the landing page.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, routes.Home, views.HomePage(h.config.BrandName))
}

// Search renders the results frame for the q parameter.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get(routes.SearchParam)
	h.render(w, r, http.StatusOK, routes.Search, views.SearchPage(query))
}

// Orders renders the order history page.
func (h *Handlers) Orders(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, routes.Orders, views.OrdersPage())
}

// Wishlist renders the saved products page.
func (h *Handlers) Wishlist(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, routes.Wishlist, views.WishlistPage())
}

// NotFound renders the 404 page inside the layout.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "Not Found", views.NotFoundPage())
}
