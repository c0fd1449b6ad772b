package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	domainauth "github.com/hamzanaeem10/auto-suite-space/internal/domain/auth"
	"github.com/hamzanaeem10/auto-suite-space/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminRequest(session *domainauth.Session) *http.Request {
	return withSession(httptest.NewRequest(http.MethodGet, "/admin", nil), session)
}

func TestAdmin_RendersCounts(t *testing.T) {
	t.Parallel()

	dashboard := &fakeDashboard{stats: service.DashboardStats{
		Cars:             service.CountResult{Count: 42},
		Profiles:         service.CountResult{Count: 7},
		PendingTestDrive: service.CountResult{Count: 3},
	}}
	h := newTestUI(t, uiFakes{profiles: &fakeProfiles{admin: true}, dashboard: dashboard})

	rec := httptest.NewRecorder()
	h.Admin(rec, adminRequest(testSession(domainauth.RoleAdmin)))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Total Cars")
	assert.Contains(t, body, "42")
	assert.Contains(t, body, "Registered Users")
	assert.Contains(t, body, "Pending Test Drives")
	assert.NotContains(t, body, "temporarily unavailable")
}

func TestAdmin_NonAdminRedirectsBeforeStats(t *testing.T) {
	t.Parallel()

	dashboard := &fakeDashboard{}
	h := newTestUI(t, uiFakes{profiles: &fakeProfiles{admin: false}, dashboard: dashboard})

	rec := httptest.NewRecorder()
	h.Admin(rec, adminRequest(testSession(domainauth.RoleUser)))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.False(t, dashboard.called, "counts must not be fetched for non-admins")
}

func TestAdmin_RoleCheckFailureRedirects(t *testing.T) {
	t.Parallel()

	dashboard := &fakeDashboard{}
	h := newTestUI(t, uiFakes{
		profiles:  &fakeProfiles{adminErr: errors.New("backend down")},
		dashboard: dashboard,
	})

	rec := httptest.NewRecorder()
	h.Admin(rec, adminRequest(testSession(domainauth.RoleAdmin)))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.False(t, dashboard.called)
}

func TestAdmin_GuestRedirectsToLogin(t *testing.T) {
	t.Parallel()

	h := newTestUI(t, uiFakes{})
	rec := httptest.NewRecorder()
	h.Admin(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "/auth/login")
}

func TestAdmin_DegradedBranchShowsPlaceholder(t *testing.T) {
	t.Parallel()

	dashboard := &fakeDashboard{stats: service.DashboardStats{
		Cars:             service.CountResult{Count: 42},
		Profiles:         service.CountResult{Err: errors.New("backend down")},
		PendingTestDrive: service.CountResult{Count: 3},
	}}
	h := newTestUI(t, uiFakes{profiles: &fakeProfiles{admin: true}, dashboard: dashboard})

	rec := httptest.NewRecorder()
	h.Admin(rec, adminRequest(testSession(domainauth.RoleAdmin)))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "temporarily unavailable")
	assert.Contains(t, body, "&mdash;")
	assert.Contains(t, body, "42")
}
