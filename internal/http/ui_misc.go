package httpx

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"
)

// SignedOut renders the interstitial shown after logout, with a sign-in
// link that preserves where the user was.
func (h *UIHandlers) SignedOut(w http.ResponseWriter, r *http.Request) {
	redirect := safeRedirectPath(r.URL.Query().Get("redirect_uri"))
	loginURL := "/auth/login?redirect_uri=" + url.QueryEscape(redirect)

	if h.T == nil {
		http.Redirect(w, r, loginURL, http.StatusSeeOther)
		return
	}

	// Buffer so a template error can still fall back to a clean redirect.
	var buf bytes.Buffer
	err := h.T.t.ExecuteTemplate(&buf, "signed-out-page", map[string]any{
		"Title":       "Signed out - AutoSuite",
		"RedirectURI": redirect,
	})
	if err != nil {
		http.Redirect(w, r, loginURL, http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger().Error("failed to write signed-out response", "error", err)
	}
}

// NotFound is the router's fallback handler: HTML for browsers, JSON for
// API clients.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	if !IsBrowserRequest(r) {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "not_found",
			Err:     errors.New("not found"),
		})
		return
	}
	h.renderBrowserNotFound(w, r)
}

func (h *UIHandlers) renderBrowserNotFound(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	isAuthenticated := session != nil

	data := map[string]any{
		"Title":           "Page Not Found - AutoSuite",
		"Code":            "404",
		"Message":         "The page you're looking for doesn't exist.",
		"IsAuthenticated": isAuthenticated,
		"ShowLogin":       !isAuthenticated,
		"RedirectURI":     r.URL.RequestURI(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if h.T == nil || h.T.RenderError(w, r, data) != nil {
		http.Error(w, "Page not found", http.StatusNotFound)
	}
}
