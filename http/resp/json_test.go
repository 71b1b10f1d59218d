package resp_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fastpress/response/http/resp"
)

const jsonMediaType = "application/json; charset=utf-8"

func TestResponseJson(t *testing.T) {
	t.Run("Encodes-Data", func(t *testing.T) {
		// Arrange
		rr, w := newResponse(t)

		// Act
		err := rr.Json(map[string]any{"a": 1})

		// Assert
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, jsonMediaType, w.Header().Get("Content-Type"))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
		require.Equal(t, map[string]any{"a": float64(1)}, decoded)
	})

	t.Run("Pretty-Prints-Unescaped", func(t *testing.T) {
		rr, w := newResponse(t)

		require.NoError(t, rr.Json(map[string]string{"link": "<a href='https://example.com?a=1&b=2'>"}))
		require.Contains(t, w.Body.String(), "    \"link\"")
		require.Contains(t, w.Body.String(), "&b=2")
		require.NotContains(t, w.Body.String(), `\u0026`)
	})

	t.Run("Encode-Failure-Degrades-To-500", func(t *testing.T) {
		// Arrange
		l := newLogger()
		rr, w := newResponse(t, resp.WithLogger(l))

		// Act: a channel cannot be encoded
		err := rr.Json(make(chan int))

		// Assert: the encode error is swallowed, a 500 envelope goes out
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, w.Code)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
		require.Equal(t, true, decoded["error"])
		require.Equal(t, "Failed to encode JSON response", decoded["message"])

		require.Contains(t, l.b.String(), "cannot encode JSON response")
	})
}

func TestResponseWithError(t *testing.T) {
	tcs := []struct {
		name         string
		code         int
		expectedCode int
	}{
		{"Registered", http.StatusBadRequest, http.StatusBadRequest},
		{"Unregistered-Falls-Back", 299, http.StatusInternalServerError},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			rr, w := newResponse(t)

			// Act
			err := rr.WithError("no good", tc.code)

			// Assert
			require.NoError(t, err)
			require.Equal(t, tc.expectedCode, w.Code)

			var decoded map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
			require.Equal(t, true, decoded["error"])
			require.Equal(t, "no good", decoded["message"])
		})
	}
}

func TestResponseWithSuccess(t *testing.T) {
	// Arrange
	rr, w := newResponse(t)

	// Act
	err := rr.WithSuccess(map[string]any{"id": 7}, "created")

	// Assert
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, w.Code)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	require.Equal(t, true, decoded["success"])
	require.Equal(t, "created", decoded["message"])
	require.Equal(t, map[string]any{"id": float64(7)}, decoded["data"])
}
