package middleware

import (
	"context"
	"net/http"

	"github.com/fastpress/response"
	"github.com/fastpress/response/http/resp"
)

// InjectResponder stores a *resp.Responder in the *http.Request.Context
// thereby making it available to handlers.
func InjectResponder(rp *resp.Responder, key response.Key) Adapter {
	if rp == nil || key == "" {
		return NoopAdapter
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), key, rp)))
		})
	}
}

// ResponderFrom pulls the *resp.Responder InjectResponder stashed in ctx.
func ResponderFrom(ctx context.Context, key response.Key) (*resp.Responder, bool) {
	rp, ok := ctx.Value(key).(*resp.Responder)
	return rp, ok
}
