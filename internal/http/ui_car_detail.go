package httpx

import (
	"context"
	"errors"
	"net/http"

	"github.com/hamzanaeem10/auto-suite-space/internal/data"
	carsvm "github.com/hamzanaeem10/auto-suite-space/internal/http/ui/cars"
)

// Toast copy for favorite toggling. Kept as constants so handlers and tests agree.
const (
	msgCarNotFound     = "Car not found"
	msgFavoriteAdded   = "Added to favorites"
	msgFavoriteRemoved = "Removed from favorites"
	msgFavoriteFailed  = "Failed to update favorites"
	msgLoginToSave     = "Please login to save favorites"
)

// CarDetail serves the car detail page.
// Unknown car IDs redirect to the listings page with a toast instead of a 404,
// since stale links from shared URLs are the common case.
func (h *UIHandlers) CarDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	car, err := h.Listings.GetCar(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrCarNotFound) {
			h.redirectWithToast(w, r, "/cars", msgCarNotFound, "error")
			return
		}
		h.logger().ErrorContext(r.Context(), "failed to fetch car", "car_id", id, "error", err)
		h.redirectWithToast(w, r, "/cars", errMsgUnableLoadCars, "error")
		return
	}

	card := carsvm.NewCard(*car)
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: card.Title + " - AutoSuite", PageTitle: card.Title, CurrentPage: PageCar},
		Fetch: func(ctx context.Context, data map[string]any) error {
			card.IsFavorite = h.favoriteState(ctx, id)
			data["Car"] = card
			button := map[string]any{"CarID": card.ID, "IsFavorite": card.IsFavorite}
			if token := GetCSRFToken(r); token != "" {
				button["CSRFToken"] = token
			}
			data["FavoriteButton"] = button
			return nil
		},
	})
}

// favoriteState resolves the favorite flag for the current user, treating
// guests and lookup failures as not-saved.
func (h *UIHandlers) favoriteState(ctx context.Context, carID string) bool {
	session := GetSessionFromContext(ctx)
	if session == nil {
		return false
	}
	saved, err := h.Favorites.IsFavorite(ctx, session.UserID, carID)
	if err != nil {
		h.logger().WarnContext(ctx, "failed to check favorite state", "car_id", carID, "error", err)
		return false
	}
	return saved
}

// ToggleFavorite flips the favorite state for the current user and re-renders
// the favorite button fragment with a toast. Guests are sent to the login page.
// POST /cars/{id}/favorite.
func (h *UIHandlers) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	session := GetSessionFromContext(r.Context())

	if session == nil {
		h.redirectWithToast(w, r, "/auth/login", msgLoginToSave, "error")
		return
	}

	saved, err := h.Favorites.Toggle(r.Context(), session.UserID, id)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "failed to toggle favorite",
			"car_id", id, "user_id", session.UserID, "error", err)
		triggerToast(w, msgFavoriteFailed, "error")
		h.renderFavoriteButton(w, r, id, saved)
		return
	}

	if saved {
		triggerToast(w, msgFavoriteAdded, "success")
	} else {
		triggerToast(w, msgFavoriteRemoved, "success")
	}
	h.renderFavoriteButton(w, r, id, saved)
}

// renderFavoriteButton writes the favorite button fragment for htmx swaps.
func (h *UIHandlers) renderFavoriteButton(w http.ResponseWriter, r *http.Request, carID string, saved bool) {
	data := map[string]any{
		"CarID":      carID,
		"IsFavorite": saved,
	}
	if token := GetCSRFToken(r); token != "" {
		data["CSRFToken"] = token
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.T.t.ExecuteTemplate(w, "favorite-button", data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "favorite button render")
	}
}

// redirectWithToast sends the browser to path and queues a toast for the next page.
// htmx requests get Hx-Redirect plus an immediate trigger; normal requests get
// a flash cookie and a 303.
func (h *UIHandlers) redirectWithToast(w http.ResponseWriter, r *http.Request, path, message, toastType string) {
	setFlash(w, message, toastType)
	if IsHTMX(r) {
		triggerToast(w, message, toastType)
		HTMX(w).Redirect(path)
		return
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}
