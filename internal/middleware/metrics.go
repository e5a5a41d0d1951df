package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/smartmart/storefront/internal/metrics"
)

// Metrics records request latency labelled by chi route pattern.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		sr := newStatusRecorder(w)
		next.ServeHTTP(sr, r)

		metrics.RequestDuration.
			WithLabelValues(r.Method, routePattern(r), strconv.Itoa(sr.status)).
			Observe(time.Since(start).Seconds())
	})
}
