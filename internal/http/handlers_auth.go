package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainauth "github.com/hamzanaeem10/auto-suite-space/internal/domain/auth"
	"github.com/hamzanaeem10/auto-suite-space/internal/service"
)

// AuthServiceInterface is the slice of the auth service the handlers need.
type AuthServiceInterface interface {
	BeginLogin(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error)
	CompleteLogin(ctx context.Context, input service.CompleteLoginInput) (*service.CompleteLoginResult, error)
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// Cookie names used across the login flow.
const (
	sessionCookieName   = "session_id"
	stateCookieName     = "oauth_state"
	nonceCookieName     = "oauth_nonce"
	postLoginCookieName = "post_login_redirect"
)

// oauthCookieTTL bounds how long a login attempt can sit between Begin and
// the provider callback.
const oauthCookieTTL = 600 // seconds

// AuthHandlers serves the /auth/* endpoints.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	CookieDomain string
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Login starts the login flow.
// GET /auth/login?redirect_uri=<optional_redirect>.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	redirectURI := safeRedirectPath(r.URL.Query().Get("redirect_uri"))

	result, err := h.Svc.BeginLogin(r.Context(), redirectURI)
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "login_failed",
			Err:     err,
		})
		return
	}

	// State, nonce and the eventual destination ride along in short-lived
	// cookies until the provider calls back.
	h.setCookie(w, r, stateCookieName, result.State, oauthCookieTTL)
	h.setCookie(w, r, nonceCookieName, result.Nonce, oauthCookieTTL)
	h.setCookie(w, r, postLoginCookieName, redirectURI, oauthCookieTTL)

	http.Redirect(w, r, result.AuthURL, http.StatusFound)
}

// Callback finishes the login flow.
// GET /auth/callback?code=<code>&state=<state>.
func (h *AuthHandlers) Callback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_code",
			Err:     errors.New("authorization code is required"),
		})
		return
	}

	state := r.URL.Query().Get("state")
	if state == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_state",
			Err:     errors.New("state parameter is required"),
		})
		return
	}

	// The state echoed by the provider must match the cookie minted at
	// Begin time, otherwise this callback was not initiated by us.
	stateCookie, err := r.Cookie(stateCookieName)
	if err != nil || stateCookie.Value != state {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_state",
			Err:     errors.New("invalid or missing state parameter"),
		})
		return
	}

	nonceCookie, err := r.Cookie(nonceCookieName)
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_nonce",
			Err:     errors.New("missing nonce parameter"),
		})
		return
	}

	result, err := h.Svc.CompleteLogin(r.Context(), service.CompleteLoginInput{
		Code:  code,
		State: state,
		Nonce: nonceCookie.Value,
	})
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "login_completion_failed",
			Err:     err,
		})
		return
	}

	h.setCookie(w, r, sessionCookieName, result.Session.ID,
		int(time.Until(result.Session.ExpiresAt).Seconds()))
	h.clearCookie(w, r, stateCookieName)
	h.clearCookie(w, r, nonceCookieName)

	http.Redirect(w, r, h.takePostLoginRedirect(w, r), http.StatusFound)
}

// Logout invalidates the server-side session and sends the browser to the
// signed-out page.
// POST /auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if sessionCookie, err := r.Cookie(sessionCookieName); err == nil {
		if err := h.Svc.Logout(r.Context(), sessionCookie.Value); err != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", err)
		}
	}
	h.clearCookie(w, r, sessionCookieName)

	// Where the user should land after signing back in.
	redirectURI := r.FormValue("redirect_uri")
	if redirectURI == "" {
		redirectURI = r.URL.Query().Get("redirect_uri")
	}
	redirectURI = safeRedirectPath(redirectURI)

	q := url.Values{}
	q.Set("redirect_uri", redirectURI)
	signedOutURL := (&url.URL{Path: "/auth/signed-out", RawQuery: q.Encode()}).String()

	if wantsJSONLogout(r) {
		WriteJSON(w, http.StatusOK, map[string]string{
			"status":      "success",
			"redirect_to": signedOutURL,
		})
		return
	}

	http.Redirect(w, r, signedOutURL, http.StatusFound)
}

// wantsJSONLogout reports whether the logout was requested by script
// (htmx or fetch) rather than a plain form post.
func wantsJSONLogout(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.EqualFold(r.Header.Get("Hx-Request"), "true") ||
		strings.EqualFold(r.Header.Get("X-Requested-With"), "XMLHttpRequest")
}

// Status reports the current authentication state as JSON.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	sessionCookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		WriteJSON(w, http.StatusOK, map[string]interface{}{"authenticated": false})
		return
	}

	session, err := h.Svc.GetSession(r.Context(), sessionCookie.Value)
	if err != nil {
		// Whatever the cookie pointed at is gone; stop sending it.
		h.clearCookie(w, r, sessionCookieName)
		WriteJSON(w, http.StatusOK, map[string]interface{}{"authenticated": false})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"user": map[string]interface{}{
			"id":    session.UserID,
			"name":  session.Name,
			"email": session.Email,
			"role":  session.Role,
		},
		"expires_at": session.ExpiresAt,
	})
}

// setCookie writes an HttpOnly Lax cookie scoped to the whole site, secure
// whenever the request arrived over TLS (directly or via proxy).
func (h *AuthHandlers) setCookie(w http.ResponseWriter, r *http.Request, name, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   requestIsSecure(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

// clearCookie expires a cookie immediately, mirroring the attributes used
// when it was set so browsers agree on which cookie to delete.
func (h *AuthHandlers) clearCookie(w http.ResponseWriter, r *http.Request, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   requestIsSecure(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

func requestIsSecure(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// takePostLoginRedirect consumes the post-login redirect cookie, returning
// "/" when it is absent or not a same-origin path.
func (h *AuthHandlers) takePostLoginRedirect(w http.ResponseWriter, r *http.Request) string {
	redirectCookie, err := r.Cookie(postLoginCookieName)
	if err != nil {
		return "/"
	}
	h.clearCookie(w, r, postLoginCookieName)
	return safeRedirectPath(redirectCookie.Value)
}

// safeRedirectPath keeps redirects on this origin: only relative paths
// starting with "/" pass through, anything else collapses to "/".
func safeRedirectPath(candidate string) string {
	if candidate == "" {
		return "/"
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	return candidate
}
