package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/hamzanaeem10/auto-suite-space/internal/core"
	"github.com/hamzanaeem10/auto-suite-space/internal/domain/model"
)

// ListingServiceOptions groups dependencies for ListingService.
type ListingServiceOptions struct {
	Cars   core.CarRepository
	Logger *slog.Logger
}

// ListingService serves the browsable vehicle catalog. Each page view
// fetches the full collection for the requested sort; search and brand
// filters are applied in memory and never hit the backend.
//
// Fetches are stamped with a sequence counter so that a slow, stale
// response can never overwrite the shared snapshot of a newer request.
type ListingService struct {
	cars   core.CarRepository
	logger *slog.Logger

	fetchSeq atomic.Uint64

	mu       sync.RWMutex
	snapshot *listingSnapshot
}

// listingSnapshot holds the result of the most recent completed fetch.
// Brands are derived once per fetch and shared with every reader.
type listingSnapshot struct {
	seq    uint64
	sort   model.CarSort
	cars   []model.Car
	brands []string
}

// NewListingService constructs a new ListingService.
func NewListingService(opts ListingServiceOptions) *ListingService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ListingService{cars: opts.Cars, logger: logger}
}

// Listing is the result served to the cars page.
type Listing struct {
	// Cars is the filtered collection in backend sort order.
	Cars []model.Car
	// Brands is the distinct brand list derived from the unfiltered fetch.
	Brands []string
	// Total is the unfiltered collection size.
	Total int
}

// Browse fetches the catalog for the requested sort and applies the filter.
// Filtering preserves the backend sort order.
func (s *ListingService) Browse(ctx context.Context, sort model.CarSort, filter model.CarFilter) (*Listing, error) {
	seq := s.fetchSeq.Add(1)

	cars, err := s.cars.List(ctx, sort)
	if err != nil {
		return nil, fmt.Errorf("fetch cars: %w", err)
	}
	brands := model.DistinctBrands(cars)

	s.storeSnapshot(&listingSnapshot{seq: seq, sort: sort, cars: cars, brands: brands})

	return &Listing{
		Cars:   model.FilterCars(cars, filter),
		Brands: brands,
		Total:  len(cars),
	}, nil
}

// GetCar returns a single car from the catalog.
func (s *ListingService) GetCar(ctx context.Context, id string) (*model.Car, error) {
	return s.cars.GetByID(ctx, id)
}

// Cached returns the most recent completed fetch, or nil when no fetch has
// finished yet. Filter fragments use it to re-filter without a refetch when
// the sort is unchanged.
func (s *ListingService) Cached(sort model.CarSort, filter model.CarFilter) *Listing {
	s.mu.RLock()
	snap := s.snapshot
	s.mu.RUnlock()

	if snap == nil || snap.sort != sort {
		return nil
	}
	return &Listing{
		Cars:   model.FilterCars(snap.cars, filter),
		Brands: snap.brands,
		Total:  len(snap.cars),
	}
}

// storeSnapshot installs the snapshot unless a newer fetch already did.
func (s *ListingService) storeSnapshot(snap *listingSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot != nil && s.snapshot.seq > snap.seq {
		s.logger.Debug("discarding stale listing fetch", "seq", snap.seq, "latest", s.snapshot.seq)
		return
	}
	s.snapshot = snap
}
