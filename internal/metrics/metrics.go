// Package metrics holds the storefront's prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cart summary load outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeError   = "error"
	OutcomeDropped = "dropped" // resolved after the shell unmounted
)

var (
	// CartSummaryLoads counts cart count loads by outcome.
	CartSummaryLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smartmart",
		Subsystem: "shell",
		Name:      "cart_summary_loads_total",
		Help:      "Cart summary loads issued by the layout shell, by outcome.",
	}, []string{"outcome"})

	// SearchSubmissions counts search form submissions.
	SearchSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smartmart",
		Subsystem: "shell",
		Name:      "search_submissions_total",
		Help:      "Search form submissions, by whether they navigated.",
	}, []string{"navigated"})

	// CartItemsShown observes the cart counts the layout shell hands to its
	// subscribers.
	CartItemsShown = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "smartmart",
		Subsystem: "shell",
		Name:      "cart_items_shown",
		Help:      "Cart item counts delivered to layout subscribers.",
		Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 99},
	})

	// RequestDuration observes HTTP handling time.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "smartmart",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route pattern and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
