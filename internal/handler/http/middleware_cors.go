package http

import (
	"net/http"
	"strings"
)

const (
	corsAllowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowedHeaders = "Content-Type, Authorization, X-Trace-ID"
	corsMaxAge         = "86400"
)

// withCORS handles Cross-Origin Resource Sharing for the browser clients
// listed in the server config. Requests without an Origin header are
// same-origin and pass through untouched. Preflight OPTIONS requests from
// an allowed origin are answered with 204 and never reach the handlers;
// preflights from a disallowed origin get 403. Actual requests from a
// disallowed origin proceed without CORS headers so the browser blocks
// the response.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	allowed := make(map[string]bool, len(h.corsOrigins))
	for _, origin := range h.corsOrigins {
		allowed[strings.ToLower(origin)] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		if !allowed[strings.ToLower(origin)] {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Vary", "Origin")

		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", corsAllowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", corsAllowedHeaders)
			w.Header().Set("Access-Control-Max-Age", corsMaxAge)
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
