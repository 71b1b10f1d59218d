package resp_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fastpress/response/http/resp"
)

func TestNewResponder(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		// Arrange
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "http://example.com", nil)

		// Act
		rr := resp.NewResponder(resp.WithLogger(newLogger())).Response(w, r)

		// Assert
		require.Equal(t, http.StatusOK, rr.StatusCode())
		require.Equal(t, "OK", rr.Reason())

		require.NoError(t, rr.Send())
		require.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	})

	t.Run("Charset-From-Env", func(t *testing.T) {
		t.Setenv("RESPONSE_CHARSET", "iso-8859-1")

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
		rr := resp.NewResponder(resp.WithLogger(newLogger())).Response(w, r)

		require.NoError(t, rr.Send())
		require.Equal(t, "text/html; charset=iso-8859-1", w.Header().Get("Content-Type"))
	})

	t.Run("Bad-Chunk-Size-Reset", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
		rr := resp.NewResponder(
			resp.WithLogger(newLogger()),
			resp.WithChunkSize(-1),
		).Response(w, r)

		var sizes []int
		err := rr.Stream(func(size int) []byte {
			sizes = append(sizes, size)
			return nil
		})

		require.NoError(t, err)
		require.Equal(t, []int{8192}, sizes)
	})
}

func TestResponderNewResponse(t *testing.T) {
	// a nil context must not blow up custom-transport callers
	rr := resp.NewResponder(resp.WithLogger(newLogger())).
		NewResponse(resp.NewHTTPTransport(httptest.NewRecorder()), resp.RequestContext{}, nil)

	require.NoError(t, rr.Send())
}
