package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/smartmart/storefront/internal/cart"
	"github.com/smartmart/storefront/internal/config"
	"github.com/smartmart/storefront/internal/metrics"
	"github.com/smartmart/storefront/internal/middleware"
	"github.com/smartmart/storefront/internal/routes"
	"github.com/smartmart/storefront/internal/shell"
	"github.com/smartmart/storefront/internal/views"
)

// Pinger reports backing store health.
type Pinger interface {
	Health(ctx context.Context) error
}

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	config *config.Config
	carts  cart.Reader
	db     Pinger // nil in demo mode
	logger *slog.Logger
}

// New creates a new Handlers instance with all dependencies.
func New(cfg *config.Config, carts cart.Reader, db Pinger, logger *slog.Logger) *Handlers {
	return &Handlers{
		config: cfg,
		carts:  carts,
		db:     db,
		logger: logger,
	}
}

// Mount registers the storefront routes on r.
func (h *Handlers) Mount(r chi.Router) {
	r.Get("/", h.Home)
	r.Get(routes.PageURL(routes.Home), h.Home)
	r.Get(routes.PageURL(routes.Search), h.Search)
	r.Get(routes.SearchSubmitPath, h.SubmitSearch)
	r.Get(routes.PageURL(routes.Orders), h.Orders)
	r.Get(routes.PageURL(routes.Wishlist), h.Wishlist)
	r.Get(routes.PageURL(routes.Cart), h.Cart)

	r.Get("/api/cart/summary", h.CartSummary)
	r.Get("/partials/cart-badge", h.CartBadge)

	r.NotFound(h.NotFound)
}

// cartID returns the requesting shopper's cart.
func (h *Handlers) cartID(r *http.Request) uuid.UUID {
	if shopper := middleware.GetShopper(r.Context()); shopper != nil {
		return shopper.CartID
	}
	return uuid.Nil
}

// mountShell mounts a layout shell for the request's cart and waits for its
// cart load to settle. The caller must Unmount it.
func (h *Handlers) mountShell(r *http.Request) *shell.Shell {
	sh := shell.New(cart.For(h.carts, h.cartID(r)), h.logger)
	sh.Subscribe(func(st shell.State) {
		metrics.CartItemsShown.Observe(float64(st.ItemCount))
	})

	select {
	case <-sh.Mount(r.Context()):
	case <-r.Context().Done():
	}
	return sh
}

// render writes content inside the layout with the given status. The page
// is buffered, so a render error becomes a 500 rather than half a page.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, pageName string, content templ.Component) {
	sh := h.mountShell(r)
	defer sh.Unmount()

	props := views.LayoutProps{
		Brand:           h.config.BrandName,
		CurrentPath:     r.URL.Path,
		CurrentPageName: pageName,
		State:           sh.State(),
	}

	r = r.WithContext(templ.WithChildren(r.Context(), content))
	templ.Handler(views.Layout(props),
		templ.WithStatus(status),
		templ.WithErrorHandler(h.renderError(pageName)),
	).ServeHTTP(w, r)
}

func (h *Handlers) renderError(name string) func(*http.Request, error) http.Handler {
	return func(r *http.Request, err error) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h.logger.Error("failed to render page", "page", name, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		})
	}
}

// Health reports whether the cart store is reachable.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.Health(r.Context()); err != nil {
			h.logger.Error("health check failed", "error", err)
			http.Error(w, "unhealthy", http.StatusServiceUnavailable)
			return
		}
	}
	w.Write([]byte("ok"))
}
