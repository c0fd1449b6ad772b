package httpx

import (
	"bytes"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	autosuite "github.com/hamzanaeem10/auto-suite-space"
	"github.com/hamzanaeem10/auto-suite-space/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Listings     *service.ListingService
	Profiles     *service.ProfileService
	Favorites    *service.FavoriteService
	Dashboard    *service.DashboardService
	Auth         *service.AuthService
	CookieDomain string
	IsDev        bool         // Development mode flag for hot reloading, etc.
	Logger       *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates and configures a new HTTP router with browser middleware.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	var authHandlers *AuthHandlers
	if services.Auth != nil {
		authHandlers = &AuthHandlers{Svc: services.Auth, CookieDomain: services.CookieDomain, Logger: services.Logger}
	}

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	if authHandlers != nil {
		registerAuthRoutes(mux, authHandlers)
	}

	// Static assets at /static
	// Dev mode: serve from disk for hot reloading
	// Prod mode: serve from embedded FS
	mux.Handle("GET /static/", staticWithFallback(services.IsDev))

	// UI routes with template renderer
	uiHandlers := setupUIHandlers(services)
	if uiHandlers != nil {
		cfg := uiRouteConfig{Auth: services.Auth, CookieDomain: services.CookieDomain}
		registerUIRoutes(mux, uiHandlers, cfg)
	}

	// Wrap with NotFound handler and detection middleware
	handler := &notFoundHandler{
		mux:        mux,
		uiHandlers: uiHandlers,
	}

	// Browser detection, then viewport detection for responsive rendering
	return BrowserDetection()(ViewportDetection()(handler))
}

// setupDevMode configures template FS, critical CSS FS, and asset resolver for dev mode.
func setupDevMode(diskManifestPath string) (fs.FS, fs.FS, *AssetResolver) {
	templateFS := os.DirFS(TemplatePathFromRoot)
	criticalCSSFS := os.DirFS("frontend/static")

	resolver, err := NewAssetResolverFromDisk(diskManifestPath)
	if err != nil {
		log.Printf(
			"failed to load asset manifest %s: %v; falling back to logical asset names",
			diskManifestPath,
			err,
		)
	}
	return templateFS, criticalCSSFS, resolver
}

// setupProdMode configures template FS, critical CSS FS, and asset resolver for production mode.
func setupProdMode(diskManifestPath string) (fs.FS, fs.FS, *AssetResolver) {
	templateFS, err := fs.Sub(autosuite.TemplateFS, "frontend/templates")
	if err != nil {
		log.Printf("failed to create sub-filesystem for templates: %v; falling back to disk", err)
		templateFS = os.DirFS(TemplatePathFromRoot)
	}

	criticalCSSFS, resolver := setupProdAssets(diskManifestPath)
	return templateFS, criticalCSSFS, resolver
}

// setupProdAssets configures critical CSS FS and asset resolver for production mode.
func setupProdAssets(diskManifestPath string) (fs.FS, *AssetResolver) {
	staticSub, err := fs.Sub(autosuite.StaticFS, "frontend/static")
	if err != nil {
		log.Printf("failed to create sub-filesystem for static assets: %v", err)
		return nil, tryDiskManifest(diskManifestPath)
	}

	resolver, err := NewAssetResolverFromFS(staticSub, "manifest.json")
	if err != nil {
		log.Printf("failed to load asset manifest from embedded FS: %v", err)
		return staticSub, tryDiskManifest(diskManifestPath)
	}

	return staticSub, resolver
}

// tryDiskManifest attempts to load the asset manifest from disk as a fallback.
func tryDiskManifest(diskManifestPath string) *AssetResolver {
	resolver, err := NewAssetResolverFromDisk(diskManifestPath)
	if err != nil {
		log.Printf(
			"failed to load asset manifest %s: %v; falling back to logical asset names",
			diskManifestPath,
			err,
		)
	}
	return resolver
}

// setupUIHandlers creates UI handlers with template renderer and asset resolver.
// In dev mode (services.IsDev=true), templates are loaded from disk for hot reloading.
// In production mode (services.IsDev=false), templates are loaded from embedded FS.
func setupUIHandlers(services RouterServices) *UIHandlers {
	// Choose template filesystem based on dev mode
	var templateFS fs.FS
	var criticalCSSFS fs.FS
	var resolver *AssetResolver

	diskManifestPath := filepath.Join("frontend", "static", "manifest.json")

	if services.IsDev {
		templateFS, criticalCSSFS, resolver = setupDevMode(diskManifestPath)
	} else {
		templateFS, criticalCSSFS, resolver = setupProdMode(diskManifestPath)
	}

	if resolver == nil {
		resolver = &AssetResolver{}
	}

	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS:    templateFS,
		Resolver:      resolver,
		CriticalCSSFS: criticalCSSFS,
		DevMode:       services.IsDev,
		Logger:        services.Logger,
	})
	if err != nil {
		if services.Logger != nil {
			services.Logger.Error("failed to create template renderer", slog.Any("error", err))
		} else {
			log.Printf("ERROR: failed to create template renderer: %v", err)
		}
		return nil
	}

	return &UIHandlers{
		T:            tr,
		Listings:     services.Listings,
		Profiles:     services.Profiles,
		Favorites:    services.Favorites,
		DashboardSvc: services.Dashboard,
		IsDev:        services.IsDev,
		Logger:       services.Logger,
	}
}

// staticWithFallback serves /static/* assets.
// In dev mode (isDev=true), serves from disk with fallback for hot reloading.
// In production mode (isDev=false), serves from embedded FS.
func staticWithFallback(isDev bool) http.Handler {
	if isDev {
		// Dev mode: serve from disk for hot reloading
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))))
	}

	// Production mode: serve from embedded FS
	staticSub, err := fs.Sub(autosuite.StaticFS, "frontend/static")
	if err != nil {
		log.Printf("failed to create sub-filesystem for static assets: %v", err)
		// Fallback to disk serving if embed fails
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))))
	}
	return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))
}

// staticWithCacheHeaders wraps a static file handler to add appropriate cache headers.
func staticWithCacheHeaders(handler http.Handler) http.Handler {
	// Regex to match content-hashed filenames including optional .map (e.g., app.abc123.js, styles.def456.css, app.abc123.js.map)
	hashedFilePattern := regexp.MustCompile(`\.[a-f0-9]{8}\.(?:js|css)(?:\.map)?$`)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Check if this is a content-hashed asset
		if hashedFilePattern.MatchString(r.URL.Path) {
			// Hashed assets can be cached for a long time (1 year)
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			// Non-hashed assets (dev mode) should not be cached
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
		}

		handler.ServeHTTP(w, r)
	})
}

// notFoundHandler wraps a ServeMux and provides custom 404 handling.
type notFoundHandler struct {
	mux        *http.ServeMux
	uiHandlers *UIHandlers
}

// ServeHTTP implements http.Handler and provides custom 404 handling.
func (h *notFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cw := newCaptureWriter(w)
	// Serve the request through the mux, capturing status, headers, and body
	h.mux.ServeHTTP(cw, r)

	// If the mux didn't handle the request (404), use our custom handler
	if cw.status == http.StatusNotFound {
		// For missing static assets, preserve the default file server response
		if strings.HasPrefix(r.URL.Path, "/static/") {
			cw.flushTo(w)
			return
		}
		if h.uiHandlers != nil {
			h.uiHandlers.NotFound(w, r)
			return
		}
		http.NotFound(w, r)
		return
	}

	// Not a 404: write the captured response
	cw.flushTo(w)
}

// captureWriter buffers headers, status and body so we can decide post-dispatch.
type captureWriter struct {
	rw     http.ResponseWriter
	header http.Header
	status int
	buf    bytes.Buffer
}

func newCaptureWriter(w http.ResponseWriter) *captureWriter {
	return &captureWriter{rw: w, header: make(http.Header), status: http.StatusOK}
}

func (c *captureWriter) Header() http.Header         { return c.header }
func (c *captureWriter) WriteHeader(code int)        { c.status = code }
func (c *captureWriter) Write(b []byte) (int, error) { return c.buf.Write(b) }

func (c *captureWriter) flushTo(w http.ResponseWriter) {
	for k, vs := range c.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(c.status)
	if _, err := w.Write(c.buf.Bytes()); err != nil {
		log.Printf("failed to write captured response: %v", err)
	}
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("GET /auth/login", h.Login)
	mux.HandleFunc("GET /auth/callback", h.Callback)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/status", h.Status)
}

// uiRouteConfig holds configuration for UI route registration.
type uiRouteConfig struct {
	Auth         *service.AuthService
	CookieDomain string
}

// optionalWrap attaches session context when the visitor is signed in but
// never blocks the request. Public pages use this so the nav reflects auth state.
func (cfg uiRouteConfig) optionalWrap() func(http.Handler) http.Handler {
	if cfg.Auth == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	return OptionalAuth(cfg.Auth)
}

// authWrap returns a no-op wrapper when auth is nil, otherwise applies RequireAuthBrowser.
func (cfg uiRouteConfig) authWrap() func(http.Handler) http.Handler {
	if cfg.Auth == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	return RequireAuthBrowser(cfg.Auth)
}

// csrfWrap layers CSRF protection over the given wrapper for state-changing routes.
func (cfg uiRouteConfig) csrfWrap(inner func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	csrf := CSRFProtection(CSRFConfig{CookieDomain: cfg.CookieDomain})
	return func(h http.Handler) http.Handler {
		return inner(csrf(h))
	}
}

// registerUIRoutes delegates to per-domain UI route registration functions (≤3 params each).
func registerUIRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	registerUIHomeRoutes(mux, h, cfg)
	registerUICarRoutes(mux, h, cfg)
	registerUIProfileRoutes(mux, h, cfg)
	registerUIAdminRoutes(mux, h, cfg)
	// Public auth-related UI routes (no auth wrapper)
	mux.Handle("GET /auth/signed-out", http.HandlerFunc(h.SignedOut))
}

// registerUIHomeRoutes wires the public landing page.
func registerUIHomeRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.optionalWrap()
	mux.Handle("GET /{$}", wrap(http.HandlerFunc(h.Index)))
}

// registerUICarRoutes wires the listings, detail, and favorite toggle routes.
// Browsing is public; saving favorites needs a session but the toggle handles
// guests itself so it can answer with a toast instead of a redirect.
func registerUICarRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.optionalWrap()
	mux.Handle("GET /cars", wrap(http.HandlerFunc(h.Cars)))
	mux.Handle("GET /cars/{id}", wrap(http.HandlerFunc(h.CarDetail)))
	mux.Handle("POST /cars/{id}/favorite", cfg.csrfWrap(wrap)(http.HandlerFunc(h.ToggleFavorite)))
}

// registerUIProfileRoutes wires the profile pages (authenticated users only).
func registerUIProfileRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	mux.Handle("GET /profile", wrap(http.HandlerFunc(h.Profile)))
	mux.Handle("POST /profile", cfg.csrfWrap(wrap)(http.HandlerFunc(h.UpdateProfile)))
}

// registerUIAdminRoutes wires the admin dashboard. Session auth gets the user
// in the door; the handler checks the profile role before fetching stats.
func registerUIAdminRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	mux.Handle("GET /admin", wrap(http.HandlerFunc(h.Admin)))
}
