package httpx

import (
	"context"
	"net/http"
	"strconv"
	"strings"
)

// viewportKey is an unexported context key type for the detected viewport width.
type viewportKey struct{}

// ViewportDetection returns a middleware that detects the client viewport width.
// The width is read from the Sec-CH-Viewport-Width client hint when present,
// falling back to the viewport_width cookie maintained by the frontend script.
// The middleware also advertises the client hint via Accept-CH so supporting
// browsers send it on subsequent requests.
func ViewportDetection() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Accept-CH", "Sec-CH-Viewport-Width")

			width := viewportWidthFromRequest(r)
			if width > 0 {
				ctx := context.WithValue(r.Context(), viewportKey{}, width)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ViewportWidth returns the detected viewport width in pixels, or 0 when unknown.
func ViewportWidth(r *http.Request) int {
	if val := r.Context().Value(viewportKey{}); val != nil {
		if width, ok := val.(int); ok {
			return width
		}
	}
	// Fallback to direct detection if middleware wasn't used
	return viewportWidthFromRequest(r)
}

// IsMobile reports whether the request originates from a viewport narrower than
// MobileBreakpoint. Unknown widths are treated as desktop.
func IsMobile(r *http.Request) bool {
	width := ViewportWidth(r)
	return width > 0 && width < MobileBreakpoint
}

// viewportWidthFromRequest extracts the viewport width from request metadata.
func viewportWidthFromRequest(r *http.Request) int {
	if hint := strings.TrimSpace(r.Header.Get("Sec-CH-Viewport-Width")); hint != "" {
		if width, err := strconv.Atoi(hint); err == nil && width > 0 {
			return width
		}
	}

	if cookie, err := r.Cookie("viewport_width"); err == nil {
		if width, convErr := strconv.Atoi(strings.TrimSpace(cookie.Value)); convErr == nil && width > 0 {
			return width
		}
	}

	return 0
}
