package middleware

import (
	"net/http"
	"time"
)

// httpObserver records finished requests.
type httpObserver interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// Metrics returns middleware that reports every request to obs, labelled by
// the matched route pattern to keep label cardinality bounded.
func Metrics(obs httpObserver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := wrapStatus(w)

			next.ServeHTTP(sw, r)

			obs.ObserveHTTP(r.Method, routeOf(r), sw.status, time.Since(start))
		})
	}
}
