package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/hamzanaeem10/auto-suite-space/internal/data"
	domainauth "github.com/hamzanaeem10/auto-suite-space/internal/domain/auth"
	"github.com/hamzanaeem10/auto-suite-space/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() *model.Profile {
	name := "Ada Lovelace"
	email := "ada@example.com"
	return &model.Profile{ID: "user-1", Name: &name, Email: &email, Role: model.ProfileRoleUser}
}

func profileUpdateRequest(session *domainauth.Session, name string) *http.Request {
	form := url.Values{"name": {name}}
	req := httptest.NewRequest(http.MethodPost, "/profile", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Hx-Request", "true")
	return withSession(req, session)
}

func TestProfile_RendersReadOnlyEmail(t *testing.T) {
	t.Parallel()

	h := newTestUI(t, uiFakes{profiles: &fakeProfiles{profile: testProfile()}})
	req := withSession(httptest.NewRequest(http.MethodGet, "/profile", nil), testSession(domainauth.RoleUser))
	rec := httptest.NewRecorder()
	h.Profile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "ada@example.com")
	assert.Contains(t, body, "readonly")
	assert.Contains(t, body, "Ada Lovelace")
}

func TestProfile_GuestRedirectsToLogin(t *testing.T) {
	t.Parallel()

	h := newTestUI(t, uiFakes{})
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	rec := httptest.NewRecorder()
	h.Profile(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "/auth/login")
}

func TestProfile_MissingRowFallsBackToSession(t *testing.T) {
	t.Parallel()

	h := newTestUI(t, uiFakes{profiles: &fakeProfiles{getErr: data.ErrProfileNotFound}})
	req := withSession(httptest.NewRequest(http.MethodGet, "/profile", nil), testSession(domainauth.RoleUser))
	rec := httptest.NewRecorder()
	h.Profile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Ada Lovelace")
	assert.Contains(t, body, "ada@example.com")
}

func TestUpdateProfile_Success(t *testing.T) {
	t.Parallel()

	h := newTestUI(t, uiFakes{profiles: &fakeProfiles{profile: testProfile()}})
	rec := httptest.NewRecorder()
	h.UpdateProfile(rec, profileUpdateRequest(testSession(domainauth.RoleUser), "Ada L."))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Hx-Trigger"), msgProfileUpdated)
	assert.Contains(t, rec.Body.String(), "profile-form")
}

func TestUpdateProfile_ValidationError(t *testing.T) {
	t.Parallel()

	h := newTestUI(t, uiFakes{profiles: &fakeProfiles{profile: testProfile()}})
	tooLong := strings.Repeat("x", 121)
	rec := httptest.NewRecorder()
	h.UpdateProfile(rec, profileUpdateRequest(testSession(domainauth.RoleUser), tooLong))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "field-error")
	assert.Contains(t, body, "name cannot exceed 120 characters")
	assert.Contains(t, rec.Header().Get("Hx-Trigger"), "name cannot exceed 120 characters")
}

func TestUpdateProfile_BackendError(t *testing.T) {
	t.Parallel()

	h := newTestUI(t, uiFakes{profiles: &fakeProfiles{profile: testProfile(), updateErr: errors.New("backend down")}})
	rec := httptest.NewRecorder()
	h.UpdateProfile(rec, profileUpdateRequest(testSession(domainauth.RoleUser), "Ada L."))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Hx-Trigger"), msgProfileSaveFailed)
}

func TestUpdateProfile_NonHTMXRedirects(t *testing.T) {
	t.Parallel()

	h := newTestUI(t, uiFakes{profiles: &fakeProfiles{profile: testProfile()}})
	form := url.Values{"name": {"Ada L."}}
	req := httptest.NewRequest(http.MethodPost, "/profile", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = withSession(req, testSession(domainauth.RoleUser))
	rec := httptest.NewRecorder()
	h.UpdateProfile(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/profile", rec.Header().Get("Location"))
}
