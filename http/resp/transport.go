package resp

import (
	"bytes"
	"fmt"
	"net/http"
)

// A Transport is the set of write primitives a *Response emits through.
//
// Abstracting the underlying connection behind an interface keeps the
// emission logic test-doubles-friendly and turns the "already sent" probe
// into an explicit call.
type Transport interface {
	// SetStatus records the status code for the exchange's status line.
	SetStatus(code int)

	// WriteHeader stages a single header line.
	WriteHeader(name, value string)

	// WriteBody writes body bytes, committing the status line and
	// staged headers first if they have not gone out yet.
	WriteBody(b []byte) (int, error)

	// HeadersSent reports whether the status line and headers
	// have gone out on the wire.
	HeadersSent() bool

	// Flush commits the status line and headers if still pending
	// and pushes any buffered output toward the client.
	Flush()
}

// An HTTPTransport adapts an http.ResponseWriter into a Transport.
type HTTPTransport struct {
	w     http.ResponseWriter
	code  int
	wrote bool
}

var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport wraps w for use by a *Response.
func NewHTTPTransport(w http.ResponseWriter) *HTTPTransport {
	return &HTTPTransport{w: w}
}

func (t *HTTPTransport) SetStatus(code int) { t.code = code }

func (t *HTTPTransport) WriteHeader(name, value string) {
	t.w.Header().Set(name, value)
}

func (t *HTTPTransport) WriteBody(b []byte) (int, error) {
	t.commit()
	return t.w.Write(b)
}

func (t *HTTPTransport) HeadersSent() bool { return t.wrote }

func (t *HTTPTransport) Flush() {
	t.commit()
	if f, ok := t.w.(http.Flusher); ok {
		f.Flush()
	}
}

// commit writes the status line, freezing the headers staged so far.
// net/http emits all staged headers alongside the status line.
func (t *HTTPTransport) commit() {
	if t.wrote {
		return
	}

	t.wrote = true
	if t.code == 0 {
		t.code = http.StatusOK
	}
	t.w.WriteHeader(t.code)
}

// A captureTransport renders an emission into memory instead of a live
// connection, backing Response.String.
type captureTransport struct {
	code    int
	headers []Header
	body    bytes.Buffer
}

var _ Transport = (*captureTransport)(nil)

func (t *captureTransport) SetStatus(code int) { t.code = code }

func (t *captureTransport) WriteHeader(name, value string) {
	t.headers = append(t.headers, Header{Name: name, Value: value})
}

func (t *captureTransport) WriteBody(b []byte) (int, error) {
	return t.body.Write(b)
}

func (t *captureTransport) HeadersSent() bool { return false }

func (t *captureTransport) Flush() {}

// render formats the captured emission as a full HTTP/1.1 message.
func (t *captureTransport) render() string {
	code := t.code
	if code == 0 {
		code = http.StatusOK
	}

	reason, ok := ReasonPhrase(code)
	if !ok {
		reason = http.StatusText(code)
	}

	b := new(bytes.Buffer)
	fmt.Fprintf(b, "HTTP/1.1 %d %s\r\n", code, reason)
	for _, h := range t.headers {
		fmt.Fprintf(b, "%s: %s\r\n", h.Name, h.Value)
	}
	b.WriteString("\r\n")
	b.Write(t.body.Bytes())

	return b.String()
}
