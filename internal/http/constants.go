package httpx

// CurrentPage constants define the page identifiers used in templates and navigation.
// These constants ensure consistency across UI handlers and template mapping.
const (
	// Main navigation pages.
	PageHome = "home"
	PageCars = "cars"

	// Detail and account pages.
	PageCar     = "car"
	PageProfile = "profile"
	PageAdmin   = "admin"
)

// MobileBreakpoint is the viewport width in pixels below which the UI
// renders its mobile layout. Widths at or above it are treated as desktop.
const MobileBreakpoint = 768

// Template paths used for loading templates in tests and production.
const (
	// Template directory paths.
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
)

// Content templates are defined once and reused to avoid per-call allocations.
//
//nolint:gochecknoglobals // static read-only lookup for templates; avoids per-call allocations
var contentTemplates = map[string]string{
	PageHome:    "home-content",
	PageCars:    "cars-content",
	PageCar:     "car-content",
	PageProfile: "profile-content",
	PageAdmin:   "admin-content",
}

// ContentTemplateMap returns the mapping from CurrentPage to template name.
// This is the single source of truth for page-to-template mapping.
func ContentTemplateMap() map[string]string { return contentTemplates }

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to home-content for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := ContentTemplateMap()[currentPage]; ok {
		return name
	}
	return "home-content"
}
