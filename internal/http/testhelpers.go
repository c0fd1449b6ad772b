package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"testing"

	domainauth "github.com/hamzanaeem10/auto-suite-space/internal/domain/auth"
	"github.com/hamzanaeem10/auto-suite-space/internal/domain/model"
	"github.com/hamzanaeem10/auto-suite-space/internal/service"
	"github.com/stretchr/testify/require"
)

// newTestRenderer loads the real template tree so handler tests exercise the
// same templates production serves.
func newTestRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: os.DirFS(TemplatePathFromTest),
		Logger:     slog.Default(),
	})
	require.NoError(t, err)
	return tr
}

// uiFakes bundles the service fakes wired into a test UIHandlers.
type uiFakes struct {
	listings  *fakeListings
	profiles  *fakeProfiles
	favorites *fakeFavorites
	dashboard *fakeDashboard
}

func newTestUI(t *testing.T, fakes uiFakes) *UIHandlers {
	t.Helper()
	if fakes.listings == nil {
		fakes.listings = &fakeListings{listing: &service.Listing{}}
	}
	if fakes.profiles == nil {
		fakes.profiles = &fakeProfiles{}
	}
	if fakes.favorites == nil {
		fakes.favorites = &fakeFavorites{}
	}
	if fakes.dashboard == nil {
		fakes.dashboard = &fakeDashboard{}
	}
	return &UIHandlers{
		T:            newTestRenderer(t),
		Listings:     fakes.listings,
		Profiles:     fakes.profiles,
		Favorites:    fakes.favorites,
		DashboardSvc: fakes.dashboard,
		Logger:       slog.Default(),
	}
}

// withSession attaches a session to the request context the way OptionalAuth does.
func withSession(r *http.Request, session *domainauth.Session) *http.Request {
	if session == nil {
		return r
	}
	return r.WithContext(SetSessionInContext(r.Context(), session))
}

// fakeListings is a hand-rolled ListingsService for handler tests.
type fakeListings struct {
	listing     *service.Listing
	cached      *service.Listing
	car         *model.Car
	err         error
	getErr      error
	browseCalls int
}

func (f *fakeListings) Browse(_ context.Context, _ model.CarSort, filter model.CarFilter) (*service.Listing, error) {
	f.browseCalls++
	if f.err != nil {
		return nil, f.err
	}
	filtered := *f.listing
	filtered.Cars = model.FilterCars(f.listing.Cars, filter)
	return &filtered, nil
}

func (f *fakeListings) GetCar(_ context.Context, _ string) (*model.Car, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.car, nil
}

func (f *fakeListings) Cached(_ model.CarSort, filter model.CarFilter) *service.Listing {
	if f.cached == nil {
		return nil
	}
	filtered := *f.cached
	filtered.Cars = model.FilterCars(f.cached.Cars, filter)
	return &filtered
}

// fakeProfiles is a hand-rolled ProfilesService for handler tests.
type fakeProfiles struct {
	profile   *model.Profile
	admin     bool
	getErr    error
	updateErr error
	adminErr  error
}

func (f *fakeProfiles) Get(_ context.Context, _ string) (*model.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.profile, nil
}

func (f *fakeProfiles) UpdateName(_ context.Context, _ string, req model.UpdateProfileRequest) (*model.Profile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.profile, nil
}

func (f *fakeProfiles) IsAdmin(_ context.Context, _ string) (bool, error) {
	if f.adminErr != nil {
		return false, f.adminErr
	}
	return f.admin, nil
}

// fakeFavorites is a hand-rolled FavoritesService for handler tests.
type fakeFavorites struct {
	saved     bool
	toggleErr error
	checkErr  error
}

func (f *fakeFavorites) IsFavorite(_ context.Context, _, _ string) (bool, error) {
	if f.checkErr != nil {
		return false, f.checkErr
	}
	return f.saved, nil
}

func (f *fakeFavorites) Toggle(_ context.Context, _, _ string) (bool, error) {
	if f.toggleErr != nil {
		return f.saved, f.toggleErr
	}
	f.saved = !f.saved
	return f.saved, nil
}

// fakeDashboard is a hand-rolled DashboardStatsService for handler tests.
type fakeDashboard struct {
	stats  service.DashboardStats
	called bool
}

func (f *fakeDashboard) Stats(_ context.Context) service.DashboardStats {
	f.called = true
	return f.stats
}

// fakeAuthService satisfies AuthServiceInterface with a single static session.
type fakeAuthService struct {
	session *domainauth.Session
}

func (f *fakeAuthService) BeginLogin(_ context.Context, _ string) (*service.BeginLoginResult, error) {
	return &service.BeginLoginResult{AuthURL: "https://idp.example.com/auth", State: "state-1", Nonce: "nonce-1"}, nil
}

func (f *fakeAuthService) CompleteLogin(_ context.Context, _ service.CompleteLoginInput) (*service.CompleteLoginResult, error) {
	if f.session == nil {
		return nil, errSessionUnavailable
	}
	return &service.CompleteLoginResult{Session: *f.session}, nil
}

func (f *fakeAuthService) GetSession(_ context.Context, sessionID string) (*domainauth.Session, error) {
	if f.session == nil || f.session.ID != sessionID {
		return nil, errSessionUnavailable
	}
	return f.session, nil
}

func (f *fakeAuthService) Logout(_ context.Context, _ string) error { return nil }

var errSessionUnavailable = &sessionUnavailableError{}

type sessionUnavailableError struct{}

func (*sessionUnavailableError) Error() string { return "session unavailable" }
