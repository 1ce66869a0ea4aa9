package middleware

import (
	"net"
	"net/http"

	"github.com/rogerio-castellano/product-catalog/internal/http/ban"
	rl "github.com/rogerio-castellano/product-catalog/internal/http/rate_limiter"
)

// RateLimit rejects clients over their request budget with 429. When guard is set,
// every rejection is a strike and banned clients get 403 until the ban expires.
func RateLimit(limiter *rl.Limiter, guard *ban.Guard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			if guard != nil && guard.Banned(r.Context(), ip) {
				writeJSONError(w, http.StatusForbidden, "Client temporarily banned")
				return
			}

			if !limiter.Allow(ip) {
				if guard != nil {
					guard.Strike(r.Context(), ip, r.URL.Path)
				}
				writeJSONError(w, http.StatusTooManyRequests, "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + message + `"}`))
}
