package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"

	"github.com/hamzanaeem10/auto-suite-space/internal/domain/model"
)

// FakeBackend is an in-memory stand-in for the hosted data service. It speaks
// the subset of the REST dialect the backend client uses: eq filters, order,
// single-object responses, and exact counts over HEAD.
type FakeBackend struct {
	mu sync.Mutex

	Cars              []model.Car
	Profiles          []model.Profile
	Favorites         []model.Favorite
	PendingTestDrives int

	// FailTables forces a 500 for any request against the named table.
	FailTables map[string]bool

	srv *httptest.Server
}

// StartFakeBackend starts a FakeBackend and registers cleanup on t.
func StartFakeBackend(t interface {
	Helper()
	Cleanup(func())
}) *FakeBackend {
	t.Helper()
	f := &FakeBackend{FailTables: make(map[string]bool)}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)
	return f
}

// URL returns the base URL for a backend client config.
func (f *FakeBackend) URL() string { return f.srv.URL }

// FavoriteCount returns the current number of stored favorites.
func (f *FakeBackend) FavoriteCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Favorites)
}

func (f *FakeBackend) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := strings.Trim(r.URL.Path, "/")
	if f.FailTables[table] {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"internal error"}`))
		return
	}

	switch table {
	case "cars":
		f.handleCars(w, r)
	case "profiles":
		f.handleProfiles(w, r)
	case "favorites":
		f.handleFavorites(w, r)
	case "test_drive_requests":
		f.handleTestDrives(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func eqParam(r *http.Request, column string) (string, bool) {
	v := r.URL.Query().Get(column)
	if after, ok := strings.CutPrefix(v, "eq."); ok {
		return after, true
	}
	return "", false
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeCount(w http.ResponseWriter, n int) {
	if n == 0 {
		w.Header().Set("Content-Range", "*/0")
	} else {
		w.Header().Set("Content-Range", fmt.Sprintf("0-%d/%d", n-1, n))
	}
	w.WriteHeader(http.StatusOK)
}

func writeSingleMiss(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotAcceptable)
	_, _ = w.Write([]byte(`{"code":"PGRST116","message":"JSON object requested, multiple (or no) rows returned"}`))
}

func (f *FakeBackend) handleCars(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodHead {
		writeCount(w, len(f.Cars))
		return
	}

	if id, ok := eqParam(r, "id"); ok {
		for _, c := range f.Cars {
			if c.ID == id {
				writeJSON(w, c)
				return
			}
		}
		writeSingleMiss(w)
		return
	}

	cars := make([]model.Car, len(f.Cars))
	copy(cars, f.Cars)
	applyCarOrder(cars, r.URL.Query().Get("order"))
	writeJSON(w, cars)
}

func applyCarOrder(cars []model.Car, order string) {
	switch order {
	case "year.desc":
		sort.SliceStable(cars, func(i, j int) bool { return cars[i].Year > cars[j].Year })
	case "price.asc":
		sort.SliceStable(cars, func(i, j int) bool { return cars[i].Price < cars[j].Price })
	case "price.desc":
		sort.SliceStable(cars, func(i, j int) bool { return cars[i].Price > cars[j].Price })
	}
}

func (f *FakeBackend) handleProfiles(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodHead:
		writeCount(w, len(f.Profiles))
	case http.MethodGet:
		id, _ := eqParam(r, "id")
		for _, p := range f.Profiles {
			if p.ID == id {
				writeJSON(w, p)
				return
			}
		}
		writeSingleMiss(w)
	case http.MethodPatch:
		id, _ := eqParam(r, "id")
		var patch struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		for i := range f.Profiles {
			if f.Profiles[i].ID == id {
				name := patch.Name
				f.Profiles[i].Name = &name
			}
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *FakeBackend) handleFavorites(w http.ResponseWriter, r *http.Request) {
	userID, _ := eqParam(r, "user_id")
	carID, _ := eqParam(r, "car_id")

	switch r.Method {
	case http.MethodHead:
		n := 0
		for _, fav := range f.Favorites {
			if fav.UserID == userID && fav.CarID == carID {
				n++
			}
		}
		writeCount(w, n)
	case http.MethodPost:
		var fav model.Favorite
		if err := json.NewDecoder(r.Body).Decode(&fav); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.Favorites = append(f.Favorites, fav)
		w.WriteHeader(http.StatusCreated)
	case http.MethodDelete:
		kept := f.Favorites[:0]
		for _, fav := range f.Favorites {
			if !(fav.UserID == userID && fav.CarID == carID) {
				kept = append(kept, fav)
			}
		}
		f.Favorites = kept
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *FakeBackend) handleTestDrives(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if status, ok := eqParam(r, "status"); ok && status != string(model.TestDriveStatusPending) {
		writeCount(w, 0)
		return
	}
	writeCount(w, f.PendingTestDrives)
}
