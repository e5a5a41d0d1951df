package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/smartmart/storefront/internal/auth"
)

type contextKey string

// ShopperContextKey is the context key for the shopper session.
const ShopperContextKey contextKey = "shopper"

// Shopper loads the shopper session into the request context, issuing a
// new one (and with it a new cart) when the request carries none or an
// invalid one. Every request past this middleware has a shopper.
func Shopper(store *auth.SessionStore, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r)
			if err != nil || session == nil {
				session = auth.NewShopper()
				if err := store.Set(w, session); err != nil {
					logger.Error("failed to set shopper session", "error", err)
				}
			}

			ctx := context.WithValue(r.Context(), ShopperContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetShopper retrieves the shopper session from context.
func GetShopper(ctx context.Context) *auth.ShopperSession {
	session, ok := ctx.Value(ShopperContextKey).(*auth.ShopperSession)
	if !ok {
		return nil
	}
	return session
}
