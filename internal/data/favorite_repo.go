package data

import (
	"context"
	"fmt"

	"github.com/hamzanaeem10/auto-suite-space/internal/backend"
	"github.com/hamzanaeem10/auto-suite-space/internal/domain/model"
)

const favoritesTable = "favorites"

// FavoriteRepo manages per-user saved cars. Uniqueness of the
// (user_id, car_id) pair is enforced by the data service.
type FavoriteRepo struct {
	client *backend.Client
}

// NewFavoriteRepo creates a new FavoriteRepo.
func NewFavoriteRepo(client *backend.Client) *FavoriteRepo {
	return &FavoriteRepo{client: client}
}

// Exists reports whether the user has saved the car.
func (r *FavoriteRepo) Exists(ctx context.Context, userID, carID string) (bool, error) {
	n, err := r.client.From(favoritesTable).
		Eq("user_id", userID).
		Eq("car_id", carID).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return n > 0, nil
}

// Insert saves a car for the user.
func (r *FavoriteRepo) Insert(ctx context.Context, userID, carID string) error {
	record := model.Favorite{UserID: userID, CarID: carID}
	if err := r.client.From(favoritesTable).Insert(ctx, record); err != nil {
		return fmt.Errorf("insert favorite: %w", err)
	}
	return nil
}

// Delete removes a saved car for the user. Deleting a row that does not
// exist is not an error.
func (r *FavoriteRepo) Delete(ctx context.Context, userID, carID string) error {
	err := r.client.From(favoritesTable).
		Eq("user_id", userID).
		Eq("car_id", carID).
		Delete(ctx)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}
