package httpx

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
)

const (
	// DefaultCSRFCookieName is the default name for the CSRF cookie.
	DefaultCSRFCookieName = "csrf_token"
	// DefaultCSRFHeaderName is the default name for the CSRF header (canonical form).
	DefaultCSRFHeaderName = "X-Csrf-Token"
	// DefaultCSRFTokenLength is the default length of the CSRF token in bytes.
	DefaultCSRFTokenLength = 32
)

// CSRFConfig holds configuration for CSRF protection middleware.
type CSRFConfig struct {
	// CookieName is the name of the CSRF cookie (default: "csrf_token")
	CookieName string
	// HeaderName is the name of the CSRF header to check (default: "X-Csrf-Token")
	HeaderName string
	// FormFieldName is the name of the form field to check (default: "csrf_token")
	FormFieldName string
	// CookieDomain is the domain for the CSRF cookie
	CookieDomain string
	// TokenLength is the length of the CSRF token in bytes (default: 32)
	TokenLength int
}

// CSRFProtection returns a middleware that protects against CSRF attacks using
// the double-submit cookie pattern. A random token is stored in a cookie and
// must be echoed back on state-changing requests (POST, PUT, DELETE, PATCH) via:
// - X-Csrf-Token header (for HTMX/AJAX requests)
// - csrf_token form field (for standard form submissions)
//
// GET, HEAD, OPTIONS, and TRACE requests are exempt from CSRF validation.
func CSRFProtection(cfg CSRFConfig) func(http.Handler) http.Handler {
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCSRFCookieName
	}
	if cfg.HeaderName == "" {
		cfg.HeaderName = DefaultCSRFHeaderName
	}
	if cfg.FormFieldName == "" {
		cfg.FormFieldName = DefaultCSRFCookieName
	}
	if cfg.TokenLength == 0 {
		cfg.TokenLength = DefaultCSRFTokenLength
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := csrfTokenFromCookie(r, cfg.CookieName)

			// Generate and set the cookie only when the token is missing
			if token == "" {
				var err error
				token, err = generateCSRFToken(cfg.TokenLength)
				if err != nil {
					http.Error(w, "unable to generate CSRF token", http.StatusInternalServerError)
					return
				}
				setCSRFCookie(w, r, csrfCookieParams{
					Name:   cfg.CookieName,
					Domain: cfg.CookieDomain,
					Token:  token,
				})
			}

			// Add token to request context for template access
			r = r.WithContext(context.WithValue(r.Context(), csrfTokenKey{}, token))

			// Validate CSRF token for state-changing methods
			if requiresCSRFValidation(r.Method) && !validateCSRFToken(r, token, cfg) {
				http.Error(w, "CSRF token validation failed", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// requiresCSRFValidation returns true if the HTTP method requires CSRF validation.
// Safe methods (GET, HEAD, OPTIONS, TRACE) are exempt.
func requiresCSRFValidation(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return false
	default:
		return true
	}
}

// csrfTokenFromCookie retrieves the CSRF token from the cookie.
func csrfTokenFromCookie(r *http.Request, cookieName string) string {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// generateCSRFToken generates a cryptographically secure random CSRF token.
// Returns an error if random generation fails - we fail closed rather than
// falling back to a predictable token.
func generateCSRFToken(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("csrf token generation failed: %w", err)
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// csrfCookieParams groups optional attributes needed to set the CSRF cookie.
type csrfCookieParams struct {
	Name   string
	Domain string
	Token  string
}

// setCSRFCookie sets the CSRF token cookie.
func setCSRFCookie(w http.ResponseWriter, r *http.Request, params csrfCookieParams) {
	// Check if request is over HTTPS, accounting for proxies
	isSecure := r.TLS != nil || isForwardedHTTPS(r)

	http.SetCookie(w, &http.Cookie{
		Name:     params.Name,
		Value:    params.Token,
		Path:     "/",
		Domain:   params.Domain,
		HttpOnly: false, // Must be readable by JavaScript for HTMX to include it
		Secure:   isSecure,
		SameSite: http.SameSiteStrictMode, // Strict for CSRF tokens
		MaxAge:   3600 * 12,               // 12 hours
	})
}

// isForwardedHTTPS checks if the request was forwarded over HTTPS.
// Handles comma-separated values in the X-Forwarded-Proto header.
func isForwardedHTTPS(r *http.Request) bool {
	xfProto := r.Header.Get("X-Forwarded-Proto")
	if xfProto == "" {
		return false
	}
	for _, proto := range strings.Split(xfProto, ",") {
		if strings.EqualFold(strings.TrimSpace(proto), "https") {
			return true
		}
	}
	return false
}

// validateCSRFToken validates the submitted CSRF token against the cookie token
// using a constant-time comparison.
func validateCSRFToken(r *http.Request, cookieToken string, cfg CSRFConfig) bool {
	if cookieToken == "" {
		return false
	}

	submitted := r.Header.Get(cfg.HeaderName)
	if submitted == "" {
		submitted = r.PostFormValue(cfg.FormFieldName)
	}
	if submitted == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(cookieToken), []byte(submitted)) == 1
}

// csrfTokenKey is an unexported context key type for the CSRF token.
type csrfTokenKey struct{}

// GetCSRFToken returns the CSRF token from the request context, or empty
// when CSRF protection is not active for the route.
func GetCSRFToken(r *http.Request) string {
	if val := r.Context().Value(csrfTokenKey{}); val != nil {
		if token, ok := val.(string); ok {
			return token
		}
	}
	return ""
}
