package resp

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Redirect points the client at target and emits immediately.
//
// target must be a well-formed absolute URL or a path beginning with "/";
// anything else fails with ErrInvalidRedirect. An explicit http:// target
// upgrades to https:// when the current exchange is secure. A zero code
// falls back to 302.
//
// Redirect is terminal: once it returns nil the instance is spent and
// further emission fails with ErrHeadersSent.
func (r *Response) Redirect(target string, code int) error {
	if !validRedirectTarget(target) {
		return fmt.Errorf("%w: %q", ErrInvalidRedirect, target)
	}

	if r.reqCtx.Secure && strings.HasPrefix(target, "http://") {
		target = "https://" + strings.TrimPrefix(target, "http://")
	}

	if code == 0 {
		code = http.StatusFound
	}
	if err := r.SetStatusCode(code); err != nil {
		return err
	}

	r.Header("Location", sanitizeHeaderValue(target))
	r.SetContentType("text/plain", r.charset)
	r.SetContent("Redirecting...")

	return r.Send()
}

// Back redirects to the inbound referer when the client sent one,
// else to fallback, else to "/".
func (r *Response) Back(fallback string) error {
	target := r.reqCtx.Referer
	if target == "" {
		target = fallback
	}
	if target == "" {
		target = "/"
	}

	return r.Redirect(target, 0)
}

// validRedirectTarget accepts absolute paths and absolute URLs
// carrying both a scheme and a host.
func validRedirectTarget(target string) bool {
	if strings.HasPrefix(target, "/") {
		return true
	}

	u, err := url.Parse(target)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// sanitizeHeaderValue strips characters illegal in a header value,
// notably CR and LF which would split the response.
func sanitizeHeaderValue(val string) string {
	return strings.Map(func(c rune) rune {
		if c < 0x20 || c == 0x7f {
			return -1
		}
		return c
	}, val)
}
