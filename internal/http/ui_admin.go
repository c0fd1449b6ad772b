package httpx

import (
	"context"
	"net/http"

	"github.com/hamzanaeem10/auto-suite-space/internal/service"
)

const msgAdminOnly = "Access denied. Admin only."

// adminCount is the template-facing projection of one dashboard count branch.
type adminCount struct {
	Label  string
	Count  int
	Failed bool
}

// Admin serves the admin dashboard.
// The profile role is checked before any counts are fetched so non-admins
// never trigger the backend fan-out.
func (h *UIHandlers) Admin(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		redirectToLogin(w, r)
		return
	}

	isAdmin, err := h.Profiles.IsAdmin(r.Context(), session.UserID)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "failed to check admin role",
			"user_id", session.UserID, "error", err)
		h.redirectWithToast(w, r, "/", msgAdminOnly, "error")
		return
	}
	if !isAdmin {
		h.redirectWithToast(w, r, "/", msgAdminOnly, "error")
		return
	}

	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Admin Dashboard - AutoSuite", PageTitle: "Admin Dashboard", CurrentPage: PageAdmin},
		Fetch: func(ctx context.Context, pageData map[string]any) error {
			stats := h.DashboardSvc.Stats(ctx)
			populateAdminStats(pageData, stats)
			return nil
		},
	})
}

// populateAdminStats maps the count branches onto cards. A failed branch
// renders a placeholder instead of hiding the whole dashboard.
func populateAdminStats(pageData map[string]any, stats service.DashboardStats) {
	pageData["Counts"] = []adminCount{
		{Label: "Total Cars", Count: stats.Cars.Count, Failed: stats.Cars.Failed()},
		{Label: "Registered Users", Count: stats.Profiles.Count, Failed: stats.Profiles.Failed()},
		{Label: "Pending Test Drives", Count: stats.PendingTestDrive.Count, Failed: stats.PendingTestDrive.Failed()},
	}
	pageData["StatsDegraded"] = stats.Degraded()
}
