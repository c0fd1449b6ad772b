package httpx

import "net/http"

// Index serves the static landing page. The hero and promo cards are
// baked into the template, so no data is fetched here.
func (h *UIHandlers) Index(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "AutoSuite - Find Your Next Car", PageTitle: "Welcome", CurrentPage: PageHome},
	})
}
