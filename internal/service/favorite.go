package service

import (
	"context"
	"fmt"

	"github.com/hamzanaeem10/auto-suite-space/internal/core"
)

// FavoriteServiceOptions groups dependencies for FavoriteService.
type FavoriteServiceOptions struct {
	Favorites core.FavoriteRepository
}

// FavoriteService manages the signed-in user's saved cars.
type FavoriteService struct {
	favorites core.FavoriteRepository
}

// NewFavoriteService constructs a new FavoriteService.
func NewFavoriteService(opts FavoriteServiceOptions) *FavoriteService {
	return &FavoriteService{favorites: opts.Favorites}
}

// IsFavorite reports whether the user has saved the car.
func (s *FavoriteService) IsFavorite(ctx context.Context, userID, carID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	return s.favorites.Exists(ctx, userID, carID)
}

// Toggle flips the saved state of a car for the user and returns the new
// state. The read-then-write pair is not atomic; the backend's uniqueness
// constraint resolves racing double-submissions.
func (s *FavoriteService) Toggle(ctx context.Context, userID, carID string) (saved bool, err error) {
	if userID == "" {
		return false, fmt.Errorf("user ID is required")
	}
	if carID == "" {
		return false, fmt.Errorf("car ID is required")
	}

	exists, err := s.favorites.Exists(ctx, userID, carID)
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}

	if exists {
		if err := s.favorites.Delete(ctx, userID, carID); err != nil {
			return true, fmt.Errorf("remove favorite: %w", err)
		}
		return false, nil
	}

	if err := s.favorites.Insert(ctx, userID, carID); err != nil {
		return false, fmt.Errorf("add favorite: %w", err)
	}
	return true, nil
}
