package resp_test

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fastpress/response/http/resp"
)

func TestNewRequestContext(t *testing.T) {
	tcs := []struct {
		name     string
		mutate   func(*http.Request)
		expected resp.RequestContext
	}{
		{
			"Plain",
			func(_ *http.Request) {},
			resp.RequestContext{},
		},
		{
			"TLS",
			func(r *http.Request) { r.TLS = new(tls.ConnectionState) },
			resp.RequestContext{Secure: true},
		},
		{
			"Forwarded-Proto",
			func(r *http.Request) { r.Header.Set("X-Forwarded-Proto", "https") },
			resp.RequestContext{Secure: true},
		},
		{
			"Referer",
			func(r *http.Request) { r.Header.Set("Referer", "https://example.com/prev") },
			resp.RequestContext{Referer: "https://example.com/prev"},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
			tc.mutate(r)

			require.Equal(t, tc.expected, resp.NewRequestContext(r))
		})
	}
}
