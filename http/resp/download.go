package resp

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const sniffLen = 512

// Download transfers the file at path to the client as an attachment,
// streaming it in chunks with a flush after each one.
//
// filename overrides the name offered to the client; when empty the
// base of path is used. The name is percent-encoded into an RFC 5987
// filename* parameter so non-ASCII names survive the header.
//
// Download is terminal: headers go out before the first chunk and the
// instance is spent once streaming starts. A mid-stream read failure
// closes the file before ErrResourceReadFailed propagates.
func (r *Response) Download(path, filename string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s", ErrResourceNotFound, path)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrResourceSizeUnknown, path)
	}

	if filename == "" {
		filename = filepath.Base(path)
	}

	r.Header("Content-Type", detectMediaType(path))
	r.Header("Content-Length", strconv.FormatInt(info.Size(), 10))
	r.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodeRFC5987(filename))
	r.Header("X-Content-Type-Options", "nosniff")
	r.Header("Content-Security-Policy", "default-src 'none'")

	// headers only; the body streams below
	r.content = nil
	r.hasBody = false
	if err := r.Send(); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrResourceOpenFailed, err)
	}
	defer f.Close()

	buf := make([]byte, r.chunkSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			if perr := r.pace(n); perr != nil {
				return perr
			}

			if _, werr := r.t.WriteBody(buf[:n]); werr != nil {
				return werr
			}
			r.t.Flush()
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %s", ErrResourceReadFailed, err)
		}
	}
}

// encodeRFC5987 percent-encodes s into the RFC 5987 value-chars form,
// leaving only attr-char bytes literal. Delimiters url.PathEscape keeps
// bare, such as ':' and '@', are not attr-chars and must be encoded.
func encodeRFC5987(s string) string {
	b := new(strings.Builder)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case strings.IndexByte("!#$&+-.^_`|~", c) >= 0:
			b.WriteByte(c)
		default:
			fmt.Fprintf(b, "%%%02X", c)
		}
	}

	return b.String()
}

// detectMediaType resolves a file's media type by extension first,
// then content sniffing, then the application/octet-stream fallback.
func detectMediaType(path string) string {
	if mt := mime.TypeByExtension(filepath.Ext(path)); mt != "" {
		return mt
	}

	f, err := os.Open(path)
	if err != nil {
		return "application/octet-stream"
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, err := f.Read(head)
	if err != nil && !errors.Is(err, io.EOF) {
		return "application/octet-stream"
	}

	// DetectContentType falls back to application/octet-stream itself
	return http.DetectContentType(head[:n])
}
