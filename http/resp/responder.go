package resp

import (
	"context"
	"net/http"

	"github.com/fastpress/response"
	"github.com/fastpress/response/logger"
	"golang.org/x/time/rate"
)

const (
	responderFrames = 0

	defaultCharset     = "utf-8"
	defaultChunkSize   = 8192
	defaultContentType = "text/html"
)

// A Responder maintains the reusable pieces for building HTTP responses.
//
// Most oftentimes, setting up a single instance of a Responder suffices for
// an application: one needs only application-wide configuration of charset,
// chunk sizing, throttling and logging. Each in-flight request then gets its
// own *Response from Responder.Response.
type Responder struct {
	logger logger.Logger

	// Charset appended to synthesized Content-Type headers
	charset string

	// Size of the chunks Download and Stream write between flushes
	chunkSize int

	// Optional pacing of Download and Stream writes
	throttle *rate.Limiter
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
//
// Defaults not overridden by an option resolve from the environment:
// RESPONSE_CHARSET and RESPONSE_CHUNK_SIZE.
func NewResponder(opts ...ResponderOptFn) *Responder {
	// ranging over opts may or may not overwrite defaults
	d := &Responder{
		charset:   response.EnvVarOrString("RESPONSE_CHARSET", defaultCharset),
		chunkSize: response.EnvVarOrInt("RESPONSE_CHUNK_SIZE", defaultChunkSize),
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.chunkSize <= 0 {
		d.chunkSize = defaultChunkSize
	}

	if d.logger == nil {
		level := response.EnvVarOrLogLevel("LOG_LEVEL", logger.LogLevelInfo)
		d.logger = logger.New(logger.WithLevel(level))
	}

	if l, ok := d.logger.(logger.SkipLogger); ok {
		d.logger = l.AddSkip(responderFrames)
	}

	return d
}

// Response mints the *Response for one request-handling flow,
// writing to w and consuming the inbound signals of r.
func (doer *Responder) Response(w http.ResponseWriter, r *http.Request) *Response {
	return doer.NewResponse(NewHTTPTransport(w), NewRequestContext(r), r.Context())
}

// NewResponse mints a *Response emitting through the provided Transport.
//
// Use Response unless a custom Transport is called for.
func (doer *Responder) NewResponse(t Transport, reqCtx RequestContext, ctx context.Context) *Response {
	if ctx == nil {
		ctx = context.Background()
	}

	return &Response{
		t:           t,
		ctx:         ctx,
		reqCtx:      reqCtx,
		logger:      doer.logger,
		headers:     newHeaderStore(),
		code:        http.StatusOK,
		reason:      statusRegistry[http.StatusOK],
		contentType: defaultContentType,
		charset:     doer.charset,
		chunkSize:   doer.chunkSize,
		throttle:    doer.throttle,
	}
}
