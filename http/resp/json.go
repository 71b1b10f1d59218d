package resp

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/fastpress/response/logger"
)

const encodeFailedMsg = "Failed to encode JSON response"

type errorEnvelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type successEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Json encodes data pretty-printed with HTML escaping off and emits it
// under the application/json media type.
//
// An encode failure never surfaces to the caller: it is logged and then
// degrades into a 500 WithError payload, so a serialization bug cannot
// abort response emission. This is one of the two deliberate
// failure-swallowing boundaries in the package; see also String.
func (r *Response) Json(data any) error {
	b, err := marshalIndent(data)
	if err != nil {
		r.logger.Error("cannot encode JSON response", &logger.LogContext{Error: err})
		return r.WithError(encodeFailedMsg, http.StatusInternalServerError)
	}

	r.SetContentType("application/json", r.charset)
	r.SetContentBytes(b)

	return r.Send()
}

// WithError emits the fixed {"error": true, "message": ...} envelope
// under the provided code, falling back to 500 when code is not in the
// status registry.
func (r *Response) WithError(message string, code int) error {
	if err := r.SetStatusCode(code); err != nil {
		r.SetStatusCode(http.StatusInternalServerError)
	}

	return r.Json(errorEnvelope{Error: true, Message: message})
}

// WithSuccess emits the fixed {"success": true, "message": ..., "data": ...}
// envelope under the current status code.
func (r *Response) WithSuccess(data any, message string) error {
	return r.Json(successEnvelope{Success: true, Message: message, Data: data})
}

// marshalIndent encodes v with four-space indentation, passing non-ASCII
// and HTML-significant characters through unescaped.
func marshalIndent(v any) ([]byte, error) {
	b := new(bytes.Buffer)
	enc := json.NewEncoder(b)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	// Encode appends a trailing newline the body does not need
	return bytes.TrimRight(b.Bytes(), "\n"), nil
}
