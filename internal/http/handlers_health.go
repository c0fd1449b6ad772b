package httpx

import (
	"io"
	"net/http"
)

// healthHandler answers readiness probes. It deliberately checks nothing:
// the process serving the request is the only dependency a probe needs.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = io.WriteString(w, `{"status":"ok"}`)
}
