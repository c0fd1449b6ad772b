package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewportWidth_FromClientHint(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/cars", nil)
	r.Header.Set("Sec-CH-Viewport-Width", "390")

	assert.Equal(t, 390, ViewportWidth(r))
	assert.True(t, IsMobile(r))
}

func TestViewportWidth_FromCookieFallback(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/cars", nil)
	r.AddCookie(&http.Cookie{Name: "viewport_width", Value: "1280"})

	assert.Equal(t, 1280, ViewportWidth(r))
	assert.False(t, IsMobile(r))
}

func TestViewportWidth_HintTakesPrecedenceOverCookie(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Sec-CH-Viewport-Width", "600")
	r.AddCookie(&http.Cookie{Name: "viewport_width", Value: "1920"})

	assert.Equal(t, 600, ViewportWidth(r))
	assert.True(t, IsMobile(r))
}

func TestIsMobile_UnknownWidthIsDesktop(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, 0, ViewportWidth(r))
	assert.False(t, IsMobile(r))
}

func TestIsMobile_BreakpointBoundary(t *testing.T) {
	t.Parallel()

	atBreakpoint := httptest.NewRequest(http.MethodGet, "/", nil)
	atBreakpoint.Header.Set("Sec-CH-Viewport-Width", "768")
	assert.False(t, IsMobile(atBreakpoint))

	below := httptest.NewRequest(http.MethodGet, "/", nil)
	below.Header.Set("Sec-CH-Viewport-Width", "767")
	assert.True(t, IsMobile(below))
}

func TestViewportDetection_StoresWidthInContext(t *testing.T) {
	t.Parallel()

	var seenWidth int
	var seenMobile bool
	handler := ViewportDetection()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenWidth = ViewportWidth(r)
		seenMobile = IsMobile(r)
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, "/cars", nil)
	r.Header.Set("Sec-CH-Viewport-Width", "414")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 414, seenWidth)
	assert.True(t, seenMobile)
	assert.Equal(t, "Sec-CH-Viewport-Width", w.Header().Get("Accept-CH"))
}

func TestViewportDetection_InvalidValuesIgnored(t *testing.T) {
	t.Parallel()

	var seenWidth int
	handler := ViewportDetection()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenWidth = ViewportWidth(r)
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Sec-CH-Viewport-Width", "not-a-number")
	r.AddCookie(&http.Cookie{Name: "viewport_width", Value: "-40"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, 0, seenWidth)
}
