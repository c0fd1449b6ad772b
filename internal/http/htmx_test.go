package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsHTMX(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/cars", nil)
	assert.False(t, IsHTMX(req))

	req.Header.Set("Hx-Request", "true")
	assert.True(t, IsHTMX(req))
}

func TestWantsPartial(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/cars", nil)
	assert.False(t, WantsPartial(req))

	req.Header.Set("Hx-Request", "true")
	assert.True(t, WantsPartial(req))

	// History restoration requests need a complete document.
	req.Header.Set("Hx-History-Restore-Request", "true")
	assert.False(t, WantsPartial(req))
}

func TestSetHXTrigger_MergesEvents(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	SetHXTrigger(rec, "showToast", map[string]any{"message": "saved", "type": "success"})
	SetHXTrigger(rec, "nav:activate", map[string]any{"page": "cars"})

	var events map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(rec.Header().Get("Hx-Trigger")), &events))
	assert.Contains(t, events, "showToast")
	assert.Contains(t, events, "nav:activate")
}

func TestHTMXResponseFluent(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	HTMX(rec).Trigger("showToast", map[string]any{"message": "hi"}).PushURL("/cars?brand=tesla")

	assert.NotEmpty(t, rec.Header().Get("Hx-Trigger"))
	assert.Equal(t, "/cars?brand=tesla", rec.Header().Get("Hx-Push-Url"))
}

func TestHTMXRedirect(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	HTMX(rec).Redirect("/auth/signed-out")
	assert.Equal(t, "/auth/signed-out", rec.Header().Get("Hx-Redirect"))
}
