package data

import (
	"context"
	"errors"
	"fmt"

	"github.com/hamzanaeem10/auto-suite-space/internal/backend"
	"github.com/hamzanaeem10/auto-suite-space/internal/domain/model"
)

// ErrCarNotFound is returned when a car lookup matches nothing.
var ErrCarNotFound = errors.New("car not found")

const carsTable = "cars"

// CarRepo reads vehicle rows from the data service.
type CarRepo struct {
	client *backend.Client
}

// NewCarRepo creates a new CarRepo.
func NewCarRepo(client *backend.Client) *CarRepo {
	return &CarRepo{client: client}
}

// List fetches every car ordered according to sort.
func (r *CarRepo) List(ctx context.Context, sort model.CarSort) ([]model.Car, error) {
	column, desc := sort.OrderColumn()

	var cars []model.Car
	err := r.client.From(carsTable).
		Order(column, desc).
		Get(ctx, &cars)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	return cars, nil
}

// GetByID fetches a single car. Returns ErrCarNotFound on a miss.
func (r *CarRepo) GetByID(ctx context.Context, id string) (*model.Car, error) {
	var car model.Car
	err := r.client.From(carsTable).
		Eq("id", id).
		Single().
		Get(ctx, &car)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, fmt.Errorf("get car %s: %w", id, err)
	}
	return &car, nil
}

// Count returns the total number of cars.
func (r *CarRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.From(carsTable).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count cars: %w", err)
	}
	return n, nil
}
