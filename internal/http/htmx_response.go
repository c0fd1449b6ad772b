package httpx

import (
	"net/http"
)

// HTMXResponse chains htmx response headers onto a single writer so a
// handler can express "trigger this, push that, then swap" in one line.
type HTMXResponse struct {
	w http.ResponseWriter
}

// HTMX starts a fluent htmx response against w.
func HTMX(w http.ResponseWriter) *HTMXResponse {
	return &HTMXResponse{w: w}
}

// Trigger schedules a client-side event with an optional payload and
// returns the builder for chaining.
func (h *HTMXResponse) Trigger(event string, payload any) *HTMXResponse {
	SetHXTrigger(h.w, event, payload)
	return h
}

// PushURL records url in the browser history for the swapped content and
// returns the builder for chaining.
func (h *HTMXResponse) PushURL(url string) *HTMXResponse {
	SetHXPushURL(h.w, url)
	return h
}

// Redirect tells htmx to navigate the browser to url and ends the
// response with 204 No Content. Callers must not write after this.
func (h *HTMXResponse) Redirect(url string) {
	SetHXRedirect(h.w, url)
	h.w.WriteHeader(http.StatusNoContent)
}

// Refresh forces a full page reload and ends the response with
// 204 No Content. Callers must not write after this.
func (h *HTMXResponse) Refresh() {
	SetHXRefresh(h.w, true)
	h.w.WriteHeader(http.StatusNoContent)
}
