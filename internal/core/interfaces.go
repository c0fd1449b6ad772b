// Package core defines the repository interfaces consumed by the service
// layer. The core defines interfaces and the data layer provides
// implementations backed by the hosted data service.
package core

import (
	"context"

	"github.com/hamzanaeem10/auto-suite-space/internal/domain/model"
)

// CarRepository provides read access to the vehicle catalog.
type CarRepository interface {
	// List returns every car ordered according to sort.
	List(ctx context.Context, sort model.CarSort) ([]model.Car, error)

	// GetByID returns a single car, or data.ErrCarNotFound on a miss.
	GetByID(ctx context.Context, id string) (*model.Car, error)

	// Count returns the total number of cars.
	Count(ctx context.Context) (int, error)
}

// ProfileRepository provides access to user profile records.
type ProfileRepository interface {
	// GetByID returns a profile, or data.ErrProfileNotFound on a miss.
	GetByID(ctx context.Context, userID string) (*model.Profile, error)

	// UpdateName sets the display name on a profile.
	UpdateName(ctx context.Context, userID, name string) error

	// Count returns the total number of profiles.
	Count(ctx context.Context) (int, error)
}

// FavoriteRepository manages per-user saved cars.
type FavoriteRepository interface {
	Exists(ctx context.Context, userID, carID string) (bool, error)
	Insert(ctx context.Context, userID, carID string) error
	Delete(ctx context.Context, userID, carID string) error
}

// TestDriveRepository provides read access to test-drive requests.
type TestDriveRepository interface {
	// CountPending returns the number of requests awaiting review.
	CountPending(ctx context.Context) (int, error)
}
