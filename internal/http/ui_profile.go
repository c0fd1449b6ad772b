package httpx

import (
	"context"
	"errors"
	"net/http"

	"github.com/hamzanaeem10/auto-suite-space/internal/data"
	"github.com/hamzanaeem10/auto-suite-space/internal/domain/model"
	apperrors "github.com/hamzanaeem10/auto-suite-space/internal/errors"
)

const (
	msgProfileUpdated    = "Profile updated successfully"
	msgProfileSaveFailed = "Failed to update profile"
)

// Profile serves the profile page for the signed-in user.
// The email is rendered read-only; only the display name is editable.
func (h *UIHandlers) Profile(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		redirectToLogin(w, r)
		return
	}

	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Your Profile - AutoSuite", PageTitle: "Your Profile", CurrentPage: PageProfile},
		Fetch: func(ctx context.Context, pageData map[string]any) error {
			profile, err := h.Profiles.Get(ctx, session.UserID)
			if err != nil {
				if errors.Is(err, data.ErrProfileNotFound) {
					// First sign-in before the backend row exists; fall back to session identity.
					pageData["ProfileName"] = session.Name
					pageData["ProfileEmail"] = session.Email
					return nil
				}
				h.logger().ErrorContext(ctx, "failed to fetch profile", "user_id", session.UserID, "error", err)
				pageData["ErrorMessage"] = "Unable to load your profile. Please try again."
				return err
			}
			fillProfileData(pageData, profile, session.Email)
			return nil
		},
	})
}

// UpdateProfile handles the profile form submission.
// POST /profile.
func (h *UIHandlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		redirectToLogin(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		triggerToast(w, msgProfileSaveFailed, "error")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	req := model.UpdateProfileRequest{Name: r.PostFormValue("name")}
	profile, err := h.Profiles.UpdateName(r.Context(), session.UserID, req)
	if err != nil {
		if apperrors.IsValidation(err) {
			triggerToast(w, err.Error(), "error")
			h.renderProfileForm(w, r, map[string]any{
				"ProfileName":  r.PostFormValue("name"),
				"ProfileEmail": session.Email,
				"Errors":       map[string]string{"name": err.Error()},
			})
			return
		}
		h.logger().ErrorContext(r.Context(), "failed to update profile",
			"user_id", session.UserID, "error", err)
		triggerToast(w, msgProfileSaveFailed, "error")
		h.renderProfileForm(w, r, map[string]any{
			"ProfileName":  r.PostFormValue("name"),
			"ProfileEmail": session.Email,
		})
		return
	}

	triggerToast(w, msgProfileUpdated, "success")
	formData := map[string]any{}
	fillProfileData(formData, profile, session.Email)
	h.renderProfileForm(w, r, formData)
}

// renderProfileForm writes the profile form fragment for htmx swaps, falling
// back to a full page redirect for non-htmx submissions.
func (h *UIHandlers) renderProfileForm(w http.ResponseWriter, r *http.Request, formData map[string]any) {
	if !IsHTMX(r) {
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}
	if token := GetCSRFToken(r); token != "" {
		formData["CSRFToken"] = token
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.T.t.ExecuteTemplate(w, "profile-form", formData); err != nil {
		h.logAndRenderTemplateError(w, r, err, "profile form render")
	}
}

// fillProfileData maps the profile onto template fields. The session email is
// the fallback identity when the backend row has no email stored.
func fillProfileData(pageData map[string]any, profile *model.Profile, sessionEmail string) {
	pageData["ProfileName"] = profile.DisplayName()
	email := profile.EmailOrEmpty()
	if email == "" {
		email = sessionEmail
	}
	pageData["ProfileEmail"] = email
	pageData["ProfileRole"] = string(profile.Role)
}
