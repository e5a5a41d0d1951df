package middleware_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartmart/storefront/internal/auth"
	"github.com/smartmart/storefront/internal/middleware"
)

const testSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestShopper_IssuesSession(t *testing.T) {
	store := auth.NewSessionStore(testSecret, time.Hour, false)

	var got *auth.ShopperSession
	handler := middleware.Shopper(store, quietLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = middleware.GetShopper(r.Context())
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	require.NotNil(t, got)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.CookieName, cookies[0].Name)
}

func TestShopper_ReusesSession(t *testing.T) {
	store := auth.NewSessionStore(testSecret, time.Hour, false)
	existing := auth.NewShopper()

	rec := httptest.NewRecorder()
	require.NoError(t, store.Set(rec, existing))

	var got *auth.ShopperSession
	handler := middleware.Shopper(store, quietLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = middleware.GetShopper(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(rec.Result().Cookies()[0])
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.NotNil(t, got)
	assert.Equal(t, existing.CartID, got.CartID)
	assert.Empty(t, w.Result().Cookies())
}

func TestGetShopper_Missing(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	assert.Nil(t, middleware.GetShopper(req.Context()))
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := middleware.Recovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/explode", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "/explode")
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := middleware.Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/pot", nil))

	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), `"size":15`)
	assert.Contains(t, buf.String(), `"path":"/pot"`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestLogger_RouteAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Get("/orders/{id}", func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest("GET", "/orders/42", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "req-abc")
	r.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-abc", line["request_id"])
	assert.Equal(t, "/orders/{id}", line["route"])
	assert.Equal(t, "/orders/42", line["path"])
	assert.Equal(t, "INFO", line["level"])
}

func TestLogger_UnmatchedRoute(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := chi.NewRouter()
	r.Use(middleware.Logger(logger))
	r.Get("/home", func(w http.ResponseWriter, r *http.Request) {})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/nowhere", nil))

	assert.Contains(t, buf.String(), `"route":"unmatched"`)
	assert.Contains(t, buf.String(), `"status":404`)
}

func TestMetrics_PassesThrough(t *testing.T) {
	r := chi.NewRouter()
	r.Use(middleware.Metrics)
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/items/42", nil))

	assert.Equal(t, http.StatusAccepted, w.Code)
}
