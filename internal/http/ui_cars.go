package httpx

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/hamzanaeem10/auto-suite-space/internal/domain/model"
	carsvm "github.com/hamzanaeem10/auto-suite-space/internal/http/ui/cars"
	"github.com/hamzanaeem10/auto-suite-space/internal/service"
)

const errMsgUnableLoadCars = "Unable to load car listings. Please try again."

// carQuery holds the parsed listing controls from the URL.
type carQuery struct {
	Sort   model.CarSort
	Filter model.CarFilter
}

// parseCarQuery extracts search, brand, and sort parameters with defaults.
func parseCarQuery(q url.Values) carQuery {
	return carQuery{
		Sort: model.ParseCarSort(q.Get("sort")),
		Filter: model.CarFilter{
			Search: strings.TrimSpace(q.Get("q")),
			Brand:  strings.TrimSpace(q.Get("brand")),
		},
	}
}

// Cars serves the listings page with search, brand filter, and sort controls.
// Filter changes from the search form arrive as htmx requests targeting the
// grid element and receive just the grid fragment; everything else gets the
// page (full or content partial).
func (h *UIHandlers) Cars(w http.ResponseWriter, r *http.Request) {
	query := parseCarQuery(r.URL.Query())

	if IsHTMX(r) && HXTarget(r) == "car-grid" {
		h.carsGridFragment(w, r, query)
		return
	}

	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Browse Cars - AutoSuite", PageTitle: "Browse Cars", CurrentPage: PageCars},
		Fetch: func(ctx context.Context, data map[string]any) error {
			listing, err := h.Listings.Browse(ctx, query.Sort, query.Filter)
			if err != nil {
				h.logger().ErrorContext(ctx, "failed to fetch car listings", "error", err)
				data["ErrorMessage"] = errMsgUnableLoadCars
				return err
			}
			populateCarListing(data, query, listing)
			return nil
		},
	})
}

// carsGridFragment renders only the grid for htmx filter/search swaps.
// Refiltering reuses the cached snapshot when the sort is unchanged so typing
// in the search box does not refetch the catalog.
func (h *UIHandlers) carsGridFragment(w http.ResponseWriter, r *http.Request, query carQuery) {
	listing := h.Listings.Cached(query.Sort, query.Filter)
	if listing == nil {
		var err error
		listing, err = h.Listings.Browse(r.Context(), query.Sort, query.Filter)
		if err != nil {
			h.logger().ErrorContext(r.Context(), "failed to fetch car listings for grid", "error", err)
			triggerToast(w, errMsgUnableLoadCars, "error")
			w.WriteHeader(http.StatusOK)
			return
		}
	}

	data := map[string]any{}
	populateCarListing(data, query, listing)
	SetHXPushURL(w, carListingURL(query))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.T.t.ExecuteTemplate(w, "cars-grid", data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "car grid fragment render")
	}
}

// populateCarListing fills grid data shared by the page and the fragment.
func populateCarListing(data map[string]any, query carQuery, listing *service.Listing) {
	data["Cars"] = carsvm.Cards(listing.Cars)
	data["Brands"] = listing.Brands
	data["TotalCars"] = listing.Total
	data["MatchCount"] = len(listing.Cars)
	data["Search"] = query.Filter.Search
	data["Brand"] = selectedBrand(query.Filter.Brand)
	data["Sort"] = string(query.Sort)
}

// selectedBrand normalizes the brand control value, mapping empty to "all".
func selectedBrand(brand string) string {
	if brand == "" {
		return model.BrandAll
	}
	return brand
}

// carListingURL rebuilds the canonical listing URL for history push on
// fragment swaps, omitting parameters that hold their default value.
func carListingURL(query carQuery) string {
	params := url.Values{}
	if query.Filter.Search != "" {
		params.Set("q", query.Filter.Search)
	}
	if b := query.Filter.Brand; b != "" && !strings.EqualFold(b, model.BrandAll) {
		params.Set("brand", b)
	}
	if query.Sort != model.CarSortNewest {
		params.Set("sort", string(query.Sort))
	}
	if enc := params.Encode(); enc != "" {
		return "/cars?" + enc
	}
	return "/cars"
}
