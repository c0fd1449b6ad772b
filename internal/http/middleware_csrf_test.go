package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func csrfTestHandler() http.Handler {
	return CSRFProtection(CSRFConfig{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(GetCSRFToken(r)))
	}))
}

func csrfCookieFromResponse(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == DefaultCSRFCookieName {
			return c
		}
	}
	return nil
}

func TestCSRFProtection_GETIssuesCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/cars", nil)
	rec := httptest.NewRecorder()
	csrfTestHandler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookie := csrfCookieFromResponse(t, rec)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.False(t, cookie.HttpOnly, "token must be readable by client script for header echo")
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)

	// The token in the response body matches the cookie, so templates can embed it.
	assert.Equal(t, cookie.Value, rec.Body.String())
}

func TestCSRFProtection_GETReusesExistingCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/cars", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "existing-token"})
	rec := httptest.NewRecorder()
	csrfTestHandler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, csrfCookieFromResponse(t, rec), "no new cookie should be set")
	assert.Equal(t, "existing-token", rec.Body.String())
}

func TestCSRFProtection_POSTWithoutTokenFails(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/profile", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "existing-token"})
	rec := httptest.NewRecorder()
	csrfTestHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "CSRF token validation failed")
}

func TestCSRFProtection_POSTWithHeaderToken(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/profile", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "existing-token"})
	req.Header.Set(DefaultCSRFHeaderName, "existing-token")
	rec := httptest.NewRecorder()
	csrfTestHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCSRFProtection_POSTWithFormToken(t *testing.T) {
	t.Parallel()

	form := url.Values{"csrf_token": {"existing-token"}, "name": {"Ada"}}
	req := httptest.NewRequest(http.MethodPost, "/profile", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "existing-token"})
	rec := httptest.NewRecorder()
	csrfTestHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCSRFProtection_POSTWithMismatchedTokenFails(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/profile", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "existing-token"})
	req.Header.Set(DefaultCSRFHeaderName, "wrong-token")
	rec := httptest.NewRecorder()
	csrfTestHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCSRFProtection_SecureCookieBehindTLSProxy(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/cars", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rec := httptest.NewRecorder()
	csrfTestHandler().ServeHTTP(rec, req)

	cookie := csrfCookieFromResponse(t, rec)
	require.NotNil(t, cookie)
	assert.True(t, cookie.Secure)
}
