package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamzanaeem10/auto-suite-space/internal/domain/model"
	"github.com/hamzanaeem10/auto-suite-space/internal/testutil"
)

// fakeCarRepo is an in-memory CarRepository for unit tests.
type fakeCarRepo struct {
	mu    sync.Mutex
	cars  []model.Car
	err   error
	calls int

	// listHook runs inside List before returning, letting tests interleave
	// concurrent fetches deterministically.
	listHook func(call int)
}

func (f *fakeCarRepo) List(_ context.Context, _ model.CarSort) ([]model.Car, error) {
	f.mu.Lock()
	f.calls++
	call := f.calls
	hook := f.listHook
	cars, err := f.cars, f.err
	f.mu.Unlock()

	if hook != nil {
		hook(call)
	}
	if err != nil {
		return nil, err
	}
	out := make([]model.Car, len(cars))
	copy(out, cars)
	return out, nil
}

func (f *fakeCarRepo) GetByID(_ context.Context, id string) (*model.Car, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.cars {
		if c.ID == id {
			car := c
			return &car, nil
		}
	}
	return nil, errors.New("car not found")
}

func (f *fakeCarRepo) Count(_ context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return len(f.cars), nil
}

func fixtureCars() []model.Car {
	return []model.Car{
		testutil.NewCar().WithID("c1").WithTitle("Tesla Model 3").WithBrand("Tesla", "Model 3").WithPrice(42000).WithYear(2023).Build(),
		testutil.NewCar().WithID("c2").WithTitle("Ford Mustang GT").WithBrand("Ford", "Mustang").WithPrice(55000).WithYear(2021).Build(),
		testutil.NewCar().WithID("c3").WithTitle("Honda Civic").WithBrand("Honda", "Civic").WithPrice(28000).WithYear(2022).Build(),
	}
}

func TestListingService_Browse(t *testing.T) {
	t.Parallel()

	svc := NewListingService(ListingServiceOptions{Cars: &fakeCarRepo{cars: fixtureCars()}})

	listing, err := svc.Browse(context.Background(), model.CarSortNewest, model.CarFilter{})
	require.NoError(t, err)
	assert.Len(t, listing.Cars, 3)
	assert.Equal(t, 3, listing.Total)
	assert.Equal(t, []string{"Ford", "Honda", "Tesla"}, listing.Brands)
}

func TestListingService_Browse_FilterPreservesBrands(t *testing.T) {
	t.Parallel()

	svc := NewListingService(ListingServiceOptions{Cars: &fakeCarRepo{cars: fixtureCars()}})

	listing, err := svc.Browse(context.Background(), model.CarSortNewest, model.CarFilter{Brand: "Tesla"})
	require.NoError(t, err)
	require.Len(t, listing.Cars, 1)
	assert.Equal(t, "c1", listing.Cars[0].ID)

	// Brand options come from the unfiltered fetch, not the filtered view.
	assert.Equal(t, []string{"Ford", "Honda", "Tesla"}, listing.Brands)
	assert.Equal(t, 3, listing.Total)
}

func TestListingService_Browse_FetchError(t *testing.T) {
	t.Parallel()

	svc := NewListingService(ListingServiceOptions{Cars: &fakeCarRepo{err: errors.New("backend down")}})

	_, err := svc.Browse(context.Background(), model.CarSortNewest, model.CarFilter{})
	assert.ErrorContains(t, err, "fetch cars")
}

func TestListingService_Cached(t *testing.T) {
	t.Parallel()

	repo := &fakeCarRepo{cars: fixtureCars()}
	svc := NewListingService(ListingServiceOptions{Cars: repo})

	// Nothing cached before the first fetch.
	assert.Nil(t, svc.Cached(model.CarSortNewest, model.CarFilter{}))

	_, err := svc.Browse(context.Background(), model.CarSortNewest, model.CarFilter{})
	require.NoError(t, err)

	cached := svc.Cached(model.CarSortNewest, model.CarFilter{Search: "mustang"})
	require.NotNil(t, cached)
	require.Len(t, cached.Cars, 1)
	assert.Equal(t, "c2", cached.Cars[0].ID)

	// A different sort misses the cache.
	assert.Nil(t, svc.Cached(model.CarSortPriceLow, model.CarFilter{}))
}

func TestListingService_StaleFetchNeverOverwritesNewer(t *testing.T) {
	t.Parallel()

	newer := fixtureCars()[:1]
	older := fixtureCars()

	repo := &fakeCarRepo{cars: older}
	svc := NewListingService(ListingServiceOptions{Cars: repo})

	firstFetched := make(chan struct{})
	release := make(chan struct{})
	repo.listHook = func(call int) {
		if call == 1 {
			close(firstFetched)
			<-release // hold the first fetch until the second finishes
		}
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := svc.Browse(context.Background(), model.CarSortNewest, model.CarFilter{})
		assert.NoError(t, err)
	}()

	<-firstFetched
	repo.mu.Lock()
	repo.cars = newer
	repo.listHook = nil
	repo.mu.Unlock()

	_, err := svc.Browse(context.Background(), model.CarSortNewest, model.CarFilter{})
	require.NoError(t, err)

	close(release)
	wg.Wait()

	// The slow first fetch must not clobber the second fetch's snapshot.
	cached := svc.Cached(model.CarSortNewest, model.CarFilter{})
	require.NotNil(t, cached)
	assert.Equal(t, 1, cached.Total)
}

func TestListingService_GetCar(t *testing.T) {
	t.Parallel()

	svc := NewListingService(ListingServiceOptions{Cars: &fakeCarRepo{cars: fixtureCars()}})

	car, err := svc.GetCar(context.Background(), "c2")
	require.NoError(t, err)
	assert.Equal(t, "Ford Mustang GT", car.Title)

	_, err = svc.GetCar(context.Background(), "missing")
	assert.Error(t, err)
}
