package resp_test

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fastpress/response/http/resp"
	"golang.org/x/time/rate"
)

func TestResponseDownload(t *testing.T) {
	t.Run("Nonexistent-Fails-Before-Emission", func(t *testing.T) {
		// Arrange
		rr, w := newResponse(t)

		// Act
		err := rr.Download(filepath.Join(t.TempDir(), "nope.txt"), "")

		// Assert
		require.ErrorIs(t, err, resp.ErrResourceNotFound)
		require.Zero(t, w.Body.Len())
		require.Empty(t, w.Header())
		require.False(t, w.Flushed)
	})

	t.Run("Directory-Fails", func(t *testing.T) {
		rr, _ := newResponse(t)

		err := rr.Download(t.TempDir(), "")
		require.ErrorIs(t, err, resp.ErrResourceNotFound)
	})

	t.Run("Streams-File", func(t *testing.T) {
		// Arrange
		content := strings.Repeat("chunky", 2048)
		fp := filepath.Join(t.TempDir(), "report.txt")
		require.NoError(t, os.WriteFile(fp, []byte(content), 0o644))

		rr, w := newResponse(t, resp.WithChunkSize(1024))

		// Act
		err := rr.Download(fp, "")

		// Assert
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, content, w.Body.String())
		require.Equal(t, "12288", w.Header().Get("Content-Length"))
		require.Equal(t, "attachment; filename*=UTF-8''report.txt", w.Header().Get("Content-Disposition"))
		require.Contains(t, w.Header().Get("Content-Type"), "text/plain")
		require.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		require.Equal(t, "default-src 'none'", w.Header().Get("Content-Security-Policy"))
		require.True(t, w.Flushed)
	})

	t.Run("Encodes-Filename", func(t *testing.T) {
		tcs := []struct {
			name     string
			filename string
			expected string
		}{
			{"Multibyte", "résumé final.txt", "r%C3%A9sum%C3%A9%20final.txt"},
			{"Sub-Delims", "a:b=c@d.txt", "a%3Ab%3Dc%40d.txt"},
			{"Attr-Chars-Literal", "ok_-.!#$&+^`|~.txt", "ok_-.!#$&+^`|~.txt"},
		}

		for _, tc := range tcs {
			t.Run(tc.name, func(t *testing.T) {
				// Arrange
				fp := filepath.Join(t.TempDir(), "plain.txt")
				require.NoError(t, os.WriteFile(fp, []byte("x"), 0o644))

				rr, w := newResponse(t)

				// Act + Assert
				require.NoError(t, rr.Download(fp, tc.filename))
				require.Equal(t,
					"attachment; filename*=UTF-8''"+tc.expected,
					w.Header().Get("Content-Disposition"),
				)
			})
		}
	})

	t.Run("Sniffs-Unknown-Extension", func(t *testing.T) {
		fp := filepath.Join(t.TempDir(), "blob.qqq")
		require.NoError(t, os.WriteFile(fp, []byte{0x00, 0x01, 0x02, 0x03}, 0o644))

		rr, w := newResponse(t)

		require.NoError(t, rr.Download(fp, ""))
		require.Equal(t, "application/octet-stream", w.Header().Get("Content-Type"))
	})

	t.Run("Terminal", func(t *testing.T) {
		fp := filepath.Join(t.TempDir(), "once.txt")
		require.NoError(t, os.WriteFile(fp, []byte("once"), 0o644))

		rr, _ := newResponse(t)

		require.NoError(t, rr.Download(fp, ""))
		require.ErrorIs(t, rr.Send(), resp.ErrHeadersSent)
	})

	t.Run("Throttled-Still-Completes", func(t *testing.T) {
		fp := filepath.Join(t.TempDir(), "paced.txt")
		require.NoError(t, os.WriteFile(fp, []byte(strings.Repeat("a", 256)), 0o644))

		rr, w := newResponse(t,
			resp.WithChunkSize(64),
			resp.WithThrottle(rate.Inf, 64),
		)

		require.NoError(t, rr.Download(fp, ""))
		require.Equal(t, strings.Repeat("a", 256), w.Body.String())
	})
}
