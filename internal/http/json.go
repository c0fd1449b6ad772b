package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// WriteJSON encodes v into a buffer first so an encoding failure can still
// produce a clean 500 instead of a half-written body.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	// A write error here means the client went away; nothing left to do.
	_, _ = buf.WriteTo(w)
}

// ErrorParams describes a JSON error response: the HTTP status, a stable
// machine-readable code, and the underlying error whose message is exposed.
type ErrorParams struct {
	Code    int
	ErrCode string
	Err     error
}

// WriteError writes a JSON error body of the form
// {"error": "<code>", "message": "<detail>"}.
func WriteError(w http.ResponseWriter, p ErrorParams) {
	WriteJSON(w, p.Code, map[string]string{"error": p.ErrCode, "message": p.Err.Error()})
}
