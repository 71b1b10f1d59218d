package resp

import "net/http"

// A RequestContext carries the inbound request signals a *Response consumes:
// whether the exchange is secure and any referer the client sent.
//
// Passing these explicitly removes hidden coupling to the request
// and keeps redirect behavior deterministic under test.
type RequestContext struct {
	Secure  bool
	Referer string
}

// NewRequestContext reads the TLS indicator and referer off r.
//
// The "X-Forwarded-Proto" header is consulted as well since an application
// may run behind a proxy terminating TLS.
func NewRequestContext(r *http.Request) RequestContext {
	return RequestContext{
		Secure:  r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https",
		Referer: r.Header.Get("Referer"),
	}
}
