package httpx

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"html"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hamzanaeem10/auto-suite-space/internal/domain/model"
	"github.com/hamzanaeem10/auto-suite-space/internal/http/ui/viewmodel"
	"github.com/hamzanaeem10/auto-suite-space/internal/service"
)

// ListingsService is a minimal interface for UI needs.
type ListingsService interface {
	Browse(ctx context.Context, sort model.CarSort, filter model.CarFilter) (*service.Listing, error)
	GetCar(ctx context.Context, id string) (*model.Car, error)
	Cached(sort model.CarSort, filter model.CarFilter) *service.Listing
}

// ProfilesService is a minimal interface for UI needs.
type ProfilesService interface {
	Get(ctx context.Context, userID string) (*model.Profile, error)
	UpdateName(ctx context.Context, userID string, req model.UpdateProfileRequest) (*model.Profile, error)
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// FavoritesService is a minimal interface for UI needs.
type FavoritesService interface {
	IsFavorite(ctx context.Context, userID, carID string) (bool, error)
	Toggle(ctx context.Context, userID, carID string) (bool, error)
}

// DashboardStatsService is a minimal interface for the admin dashboard.
type DashboardStatsService interface {
	Stats(ctx context.Context) service.DashboardStats
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ ListingsService       = (*service.ListingService)(nil)
	_ ProfilesService       = (*service.ProfileService)(nil)
	_ FavoritesService      = (*service.FavoriteService)(nil)
	_ DashboardStatsService = (*service.DashboardService)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T            *TemplateRenderer
	Listings     ListingsService
	Profiles     ProfilesService
	Favorites    FavoritesService
	DashboardSvc DashboardStatsService
	IsDev        bool // Development mode flag for enhanced error reporting
	Logger       *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// triggerToast sends a standardized HX-Trigger payload for toast notifications.
// Centralizing this avoids repeating the boilerplate map construction across handlers.
func triggerToast(w http.ResponseWriter, message, toastType string) {
	if w == nil || strings.TrimSpace(message) == "" {
		return
	}
	HTMX(w).Trigger("showToast", map[string]any{
		"message": message,
		"type":    strings.TrimSpace(toastType),
	})
}

// flashMessage is a toast carried across a redirect in a short-lived cookie.
type flashMessage struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// setFlash stores a toast for the next full page load.
func setFlash(w http.ResponseWriter, message, toastType string) {
	raw, err := json.Marshal(flashMessage{Message: message, Type: toastType})
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "flash",
		Value:    base64.URLEncoding.EncodeToString(raw),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   60,
	})
}

// popFlash reads and clears the flash cookie, returning nil when absent or malformed.
func popFlash(w http.ResponseWriter, r *http.Request) *flashMessage {
	cookie, err := r.Cookie("flash")
	if err != nil || cookie.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "flash",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	raw, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var flash flashMessage
	if err := json.Unmarshal(raw, &flash); err != nil || flash.Message == "" {
		return nil
	}
	return &flash
}

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

// buildLayout constructs shared layout metadata from the request/session context.
func buildLayout(r *http.Request, meta PageMeta) viewmodel.Layout {
	layout := viewmodel.Layout{
		Title:       meta.Title,
		PageTitle:   meta.PageTitle,
		CurrentPage: meta.CurrentPage,
		IsMobile:    IsMobile(r),
	}

	if csrfToken := GetCSRFToken(r); csrfToken != "" {
		layout.CSRFToken = csrfToken
	}

	if session := GetSessionFromContext(r.Context()); session != nil {
		role := string(session.Role)
		layout.User = &viewmodel.User{
			Name:  session.Name,
			Email: session.Email,
			Role:  role,
		}
		layout.IsAuthenticated = true
		if role == "admin" {
			layout.IsAdmin = true
		}
	}

	return layout
}

// basePageData constructs the common page data map with user context.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	layout := buildLayout(r, meta)
	data := map[string]any{
		"Title":           layout.Title,
		"PageTitle":       layout.PageTitle,
		"CurrentPage":     layout.CurrentPage,
		"IsAuthenticated": layout.IsAuthenticated,
		"IsAdmin":         layout.IsAdmin,
		"IsMobile":        layout.IsMobile,
	}

	if layout.CSRFToken != "" {
		data["CSRFToken"] = layout.CSRFToken
	}
	if layout.User != nil {
		data["User"] = layout.User
	}

	return data
}

// PageSpec defines metadata and an optional fetch for page-specific data.
type PageSpec struct {
	Meta  PageMeta
	Fetch func(ctx context.Context, data map[string]any) error
}

// Page builds base data, optionally fetches content data, and renders.
func (h *UIHandlers) Page(w http.ResponseWriter, r *http.Request, spec PageSpec) {
	data := basePageData(r, spec.Meta)
	if flash := popFlash(w, r); flash != nil {
		data["Flash"] = flash
	}
	if err := h.invokePageFetch(r, spec.Fetch, data); err != nil {
		markPageError(data)
	}
	h.renderAppPage(w, r, data)
}

// renderAppPage renders a page with proper HTMX partial support.
func (h *UIHandlers) renderAppPage(w http.ResponseWriter, r *http.Request, data any) {
	// Handle full page requests first (early return) to reduce nesting
	if !WantsPartial(r) {
		if err := h.T.RenderFull(w, r, data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "full page render")
		}
		return
	}

	// For HTMX requests, render the content plus out-of-band header updates
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	// Hint client JS to update nav active state based on current path
	SetHXTrigger(w, "nav:activate", map[string]string{"path": r.URL.Path})

	layout := extractLayoutInfo(data)

	// Include a <title> element so htmx updates document.title on partial swaps
	safeDocTitle := html.EscapeString(layout.Title)
	if _, err := w.Write([]byte(`<title>` + safeDocTitle + `</title>`)); err != nil {
		h.logger().Error("failed to write partial document title", "error", err)
		return
	}

	// Out-of-band update for the header title
	safeTitle := html.EscapeString(layout.PageTitle)
	if _, err := w.Write([]byte(`<h1 id="header-title" class="header-title" hx-swap-oob="outerHTML">` + safeTitle + `</h1>`)); err != nil {
		h.logger().Error("failed to write partial header title", "error", err)
		return
	}

	if err := h.T.t.ExecuteTemplate(w, ContentTemplateFor(layout.CurrentPage), data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "partial content render")
		return
	}
}

func (h *UIHandlers) invokePageFetch(
	r *http.Request,
	fetchFn func(ctx context.Context, data map[string]any) error,
	data map[string]any,
) error {
	if fetchFn == nil {
		return nil
	}
	return fetchFn(r.Context(), data)
}

func markPageError(data map[string]any) {
	data["Error"] = true
	if _, ok := data["ErrorMessage"]; ok {
		return
	}
	data["ErrorMessage"] = "An unexpected error occurred. Please try again."
}

func layoutFromProvider(data any) *viewmodel.Layout {
	provider, ok := data.(viewmodel.LayoutProvider)
	if !ok {
		return nil
	}
	return provider.LayoutData()
}

func layoutFromPointer(data any) *viewmodel.Layout {
	layout, ok := data.(*viewmodel.Layout)
	if !ok || layout == nil {
		return nil
	}
	return layout
}

func layoutFromMap(data any) viewmodel.Layout {
	m, mapOK := data.(map[string]any)
	if !mapOK {
		return viewmodel.Layout{}
	}

	layout := viewmodel.Layout{}
	if v, titleOK := m["Title"].(string); titleOK {
		layout.Title = v
	}
	if v, pageTitleOK := m["PageTitle"].(string); pageTitleOK {
		layout.PageTitle = v
	}
	if v, currentPageOK := m["CurrentPage"].(string); currentPageOK {
		layout.CurrentPage = v
	}
	return layout
}

func extractLayoutInfo(data any) viewmodel.Layout {
	if layout := layoutFromProvider(data); layout != nil {
		return *layout
	}

	if layout, ok := data.(viewmodel.Layout); ok {
		return layout
	}

	if layout := layoutFromPointer(data); layout != nil {
		return *layout
	}

	return layoutFromMap(data)
}

// logAndRenderTemplateError logs template errors and renders them in dev mode.
func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error, context string) {
	h.logger().Error("template rendering failed",
		"error", err,
		"context", context,
		"path", r.URL.Path,
		"method", r.Method,
	)

	// In dev mode, show detailed error in the response
	if h.IsDev {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		errHTML := html.EscapeString(err.Error())
		pathHTML := html.EscapeString(r.URL.Path)
		contextHTML := html.EscapeString(context)
		if _, writeErr := w.Write([]byte(`
			<div style="padding: 20px; background: #fee; border: 2px solid #c33; border-radius: 4px; margin: 20px; font-family: monospace;">
				<h2 style="color: #c33; margin-top: 0;">Template Rendering Error</h2>
				<p><strong>Context:</strong> ` + contextHTML + `</p>
				<p><strong>Path:</strong> ` + pathHTML + `</p>
				<p><strong>Error:</strong></p>
				<pre style="background: #fff; padding: 10px; border: 1px solid #ccc; overflow-x: auto;">` + errHTML + `</pre>
			</div>
		`)); writeErr != nil {
			h.logger().Error("failed to write template error response", "error", writeErr)
		}
		return
	}

	// In production, show generic error
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
