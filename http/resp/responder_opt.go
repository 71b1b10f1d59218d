package resp

import (
	"github.com/fastpress/response/logger"
	"golang.org/x/time/rate"
)

// A ResponderOptFn mutates the provided *Responder in some way.
// A ResponderOptFn is used when constructing a new Responder.
type ResponderOptFn func(*Responder)

// WithCharset sets the charset appended to synthesized Content-Type headers.
func WithCharset(charset string) func(*Responder) {
	return func(d *Responder) {
		d.charset = charset
	}
}

// WithChunkSize sets the size of the chunks Download and Stream write
// between flushes.
func WithChunkSize(size int) func(*Responder) {
	return func(d *Responder) {
		d.chunkSize = size
	}
}

// WithLogger sets the provided implementation of logger.Logger in order to
// log all statements through it.
//
// If no Logger is provided through this option, a default one is configured.
func WithLogger(log logger.Logger) func(*Responder) {
	return func(d *Responder) {
		d.logger = log
	}
}

// WithThrottle paces Download and Stream writes to limit bytes per second
// with bursts of up to burst bytes.
//
// burst must be at least the configured chunk size for the limit to hold;
// larger chunks count against the throttle as a full burst.
func WithThrottle(limit rate.Limit, burst int) func(*Responder) {
	return func(d *Responder) {
		d.throttle = rate.NewLimiter(limit, burst)
	}
}
