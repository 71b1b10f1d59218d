package middleware

import "net/http"

// NoCache marks every response passing through as uncacheable,
// mirroring resp.Response.NoCache for handlers writing directly to w.
func NoCache() Adapter {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate, private")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")

			handler.ServeHTTP(w, r)
		})
	}
}
