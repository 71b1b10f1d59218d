package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/fastpress/response"
)

// RequestID adds a uuid to the request context under key
// and echoes it back to the client as X-Request-Id.
//
// If key is zero, then NoopAdapter returns and this middleware does nothing.
func RequestID(key response.Key) Adapter {
	if key == "" {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.NewString()
			w.Header().Set("X-Request-Id", id)

			ctx := context.WithValue(r.Context(), key, id)
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
