package resp

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fastpress/response/logger"
	"golang.org/x/time/rate"
)

// securityHeaders go out on every emission after any caller-set headers.
// A caller-set header of the same name wins.
var securityHeaders = []Header{
	{Name: "X-Content-Type-Options", Value: "nosniff"},
	{Name: "X-Frame-Options", Value: "SAMEORIGIN"},
	{Name: "X-XSS-Protection", Value: "1; mode=block"},
}

// charsetMediaTypes are the non-text/* media types a charset suffix applies to.
var charsetMediaTypes = map[string]bool{
	"application/javascript": true,
	"application/json":       true,
	"application/xml":        true,
}

// A StreamProducer yields the next chunk for Stream to write,
// at most size bytes. An empty chunk signals completion.
type StreamProducer func(size int) []byte

// A Response accumulates the status code, headers and body of a single
// outgoing HTTP response and emits them to its Transport at most once.
//
// A Response belongs to exactly one request-handling flow;
// it carries no locking.
type Response struct {
	t      Transport
	ctx    context.Context
	reqCtx RequestContext
	logger logger.Logger

	headers *headerStore

	code   int
	reason string

	// nil content means "no body"; hasBody distinguishes nil from empty
	content []byte
	hasBody bool

	contentType string
	charset     string

	chunkSize int
	throttle  *rate.Limiter

	sent   bool
	sentAt string
}

// SetStatusCode validates code against the status registry and stores it
// along with the registry's reason phrase.
//
// Codes outside the registry fail with ErrInvalidStatusCode, even ones
// inside the numeric [100, 599] range.
func (r *Response) SetStatusCode(code int) error {
	reason, ok := ReasonPhrase(code)
	if !ok {
		return fmt.Errorf("%w: %d", ErrInvalidStatusCode, code)
	}

	r.code = code
	r.reason = reason
	return nil
}

// StatusCode returns the current status code without triggering emission.
func (r *Response) StatusCode() int { return r.code }

// Reason returns the current reason phrase without triggering emission.
func (r *Response) Reason() string { return r.reason }

// SetReason overrides the reason phrase derived from the status registry.
func (r *Response) SetReason(reason string) { r.reason = reason }

// SetContent stores content as the response body and records a
// Content-Length header measured in bytes, not characters:
// multibyte strings count every encoded byte.
func (r *Response) SetContent(content string) {
	r.SetContentBytes([]byte(content))
}

// SetContentBytes stores pre-encoded bytes as the response body and
// records a matching Content-Length header.
func (r *Response) SetContentBytes(content []byte) {
	r.content = content
	r.hasBody = true
	r.headers.Set("Content-Length", strconv.Itoa(len(content)))
}

// Content returns the stored body and whether one has been set.
func (r *Response) Content() ([]byte, bool) { return r.content, r.hasBody }

// SetContentType stores the media type and charset combined into a
// Content-Type header at emission, unless the caller staged an explicit
// Content-Type through Header. An empty charset clears any suffix.
func (r *Response) SetContentType(contentType, charset string) {
	r.contentType = contentType
	r.charset = charset
}

// Header stages a raw header, overwriting any prior value for name.
//
// Values pass through unvalidated; callers embedding untrusted input
// are responsible for sanitizing it.
func (r *Response) Header(name, value string) {
	r.headers.Set(name, value)
}

// HeaderValue retrieves a staged header value, matching name case-insensitively.
func (r *Response) HeaderValue(name string) (string, bool) {
	return r.headers.Get(name)
}

// Headers returns all staged headers in emission order.
func (r *Response) Headers() []Header { return r.headers.All() }

// NoCache stages the full set of headers marking the response
// uncacheable by browsers, proxies and shared caches.
func (r *Response) NoCache() {
	r.headers.Set("Cache-Control", "no-cache, no-store, must-revalidate, private")
	r.headers.Set("Pragma", "no-cache")
	r.headers.Set("Expires", "0")
}

// Send emits the response: status line, staged headers in insertion order,
// a synthesized Content-Type when none was staged, the security headers,
// and the body when one was set.
//
// Send succeeds at most once per Response; a second call fails with
// ErrHeadersSent naming the first emission site.
func (r *Response) Send() error {
	if err := r.sendable(); err != nil {
		return err
	}

	if err := r.emit(r.t); err != nil {
		return err
	}

	r.sent = true
	r.sentAt = logger.CurrentCaller()
	return nil
}

// Stream emits headers, then writes chunks pulled from producer until it
// yields an empty one, flushing after every chunk.
//
// Content staged through SetContent is discarded, along with the
// Content-Length it recorded; streamed responses carry no buffered body
// and no predeclared length.
func (r *Response) Stream(producer StreamProducer) error {
	if err := r.sendable(); err != nil {
		return err
	}

	r.content = nil
	r.hasBody = false
	r.headers.Del("Content-Length")

	if err := r.emit(r.t); err != nil {
		return err
	}

	r.sent = true
	r.sentAt = logger.CurrentCaller()

	for {
		chunk := producer(r.chunkSize)
		if len(chunk) == 0 {
			return nil
		}

		if err := r.pace(len(chunk)); err != nil {
			return err
		}

		if _, err := r.t.WriteBody(chunk); err != nil {
			return err
		}
		r.t.Flush()
	}
}

// String renders the full response, status line through body, as an
// in-memory HTTP/1.1 message without touching the live Transport.
//
// Failures during capture degrade into a descriptive string;
// String is for debugging and logging, never for transport.
func (r *Response) String() string {
	ct := new(captureTransport)
	if err := r.emit(ct); err != nil {
		r.logger.Error("cannot render response", &logger.LogContext{Error: err})
		return fmt.Sprintf("cannot render response: %v", err)
	}

	return ct.render()
}

// sendable enforces the at-most-once emission contract.
func (r *Response) sendable() error {
	if r.sent || r.t.HeadersSent() {
		if r.sentAt != "" {
			return fmt.Errorf("%w: first emitted at %s", ErrHeadersSent, r.sentAt)
		}
		return ErrHeadersSent
	}

	return nil
}

// emit writes the response to t in strict order:
// status line, staged headers, synthesized Content-Type, security headers,
// then the body. Bodiless emissions flush so headers reach the client.
func (r *Response) emit(t Transport) error {
	t.SetStatus(r.code)

	for _, h := range r.headers.All() {
		t.WriteHeader(h.Name, h.Value)
	}

	if _, ok := r.headers.Get("Content-Type"); !ok {
		t.WriteHeader("Content-Type", r.contentTypeValue())
	}

	for _, h := range securityHeaders {
		if _, ok := r.headers.Get(h.Name); !ok {
			t.WriteHeader(h.Name, h.Value)
		}
	}

	if !r.hasBody {
		t.Flush()
		return nil
	}

	if _, err := t.WriteBody(r.content); err != nil {
		return err
	}

	return nil
}

// contentTypeValue combines the stored media type and charset,
// appending the charset only where one is meaningful.
func (r *Response) contentTypeValue() string {
	if r.charset == "" || !charsetApplies(r.contentType) {
		return r.contentType
	}

	return r.contentType + "; charset=" + r.charset
}

// pace blocks until the throttle permits n more bytes through.
// Chunks larger than the burst count as a full burst.
func (r *Response) pace(n int) error {
	if r.throttle == nil {
		return nil
	}

	if b := r.throttle.Burst(); n > b {
		n = b
	}

	return r.throttle.WaitN(r.ctx, n)
}

// charsetApplies reports whether mediaType is textual enough
// to carry a charset suffix. Binary types never get one.
func charsetApplies(mediaType string) bool {
	return strings.HasPrefix(mediaType, "text/") || charsetMediaTypes[mediaType]
}
