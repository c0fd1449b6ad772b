// Package devseed populates the data service with demo inventory for local
// development. It never runs in production; the entrypoint gates it on dev
// mode and seeding is skipped whenever the catalog already has rows.
package devseed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hamzanaeem10/auto-suite-space/internal/backend"
	"github.com/hamzanaeem10/auto-suite-space/internal/data"
	"github.com/hamzanaeem10/auto-suite-space/internal/domain/model"
)

// ErrSeedSkipped reports that seeding was not needed or another instance holds the lock.
var ErrSeedSkipped = errors.New("devseed: skipped")

// seedLockKey guards against two instances seeding at once.
const seedLockKey = "devseed:cars:lock"

// Options groups the dependencies for a seeding run.
type Options struct {
	Backend *backend.Client
	// Cache provides the cross-instance seed lock. Optional; without it the
	// run proceeds unlocked, which is fine for a single local instance.
	Cache  *data.RedisCacheRepo
	Logger *slog.Logger
}

// Run inserts the demo catalog when the cars table is empty.
func Run(ctx context.Context, opts Options) error {
	if opts.Backend == nil {
		return errors.New("devseed: backend client is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	count, err := opts.Backend.From("cars").Count(ctx)
	if err != nil {
		return fmt.Errorf("devseed: count cars: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: catalog already has %d cars", ErrSeedSkipped, count)
	}

	if opts.Cache != nil {
		acquired, lockErr := opts.Cache.SetIfNotExists(ctx, seedLockKey, []byte("1"), time.Minute)
		if lockErr != nil {
			return fmt.Errorf("devseed: acquire lock: %w", lockErr)
		}
		if !acquired {
			return fmt.Errorf("%w: another instance is seeding", ErrSeedSkipped)
		}
	}

	for _, car := range demoCars() {
		if insertErr := opts.Backend.From("cars").Insert(ctx, car); insertErr != nil {
			return fmt.Errorf("devseed: insert car %s: %w", car.ID, insertErr)
		}
	}

	logger.InfoContext(ctx, "seeded demo catalog", "cars", len(demoCars()))
	return nil
}

func strPtr(s string) *string { return &s }

// demoCars returns a small varied inventory covering multiple brands,
// fuel types, and price points so every listing control has something to do.
func demoCars() []model.Car {
	return []model.Car{
		{
			ID: "seed-tesla-model3", Title: "Tesla Model 3 Long Range", Brand: "Tesla",
			Model: "Model 3", Price: 45999, Year: 2024, Mileage: 1200,
			FuelType: "Electric", Transmission: "Automatic",
			Description: strPtr("Single owner, long range battery, autopilot included."),
		},
		{
			ID: "seed-ford-mustang", Title: "Ford Mustang GT", Brand: "Ford",
			Model: "Mustang", Price: 38500, Year: 2022, Mileage: 18000,
			FuelType: "Petrol", Transmission: "Manual",
			Description: strPtr("5.0L V8, performance package, well maintained."),
		},
		{
			ID: "seed-bmw-3series", Title: "BMW 3 Series 330i", Brand: "BMW",
			Model: "3 Series", Price: 41250, Year: 2023, Mileage: 9000,
			FuelType: "Petrol", Transmission: "Automatic",
			Description: strPtr("M Sport trim, heated seats, full service history."),
		},
		{
			ID: "seed-toyota-corolla", Title: "Toyota Corolla Hybrid", Brand: "Toyota",
			Model: "Corolla", Price: 24990, Year: 2023, Mileage: 14000,
			FuelType: "Hybrid", Transmission: "Automatic",
			Description: strPtr("Economical commuter with excellent fuel economy."),
		},
		{
			ID: "seed-honda-civic", Title: "Honda Civic Touring", Brand: "Honda",
			Model: "Civic", Price: 27800, Year: 2022, Mileage: 22000,
			FuelType: "Petrol", Transmission: "Automatic",
			Description: strPtr("Touring trim with leather interior and sunroof."),
		},
		{
			ID: "seed-vw-id4", Title: "Volkswagen ID.4 Pro", Brand: "Volkswagen",
			Model: "ID.4", Price: 36400, Year: 2024, Mileage: 3100,
			FuelType: "Electric", Transmission: "Automatic",
			Description: strPtr("All-electric SUV with fast charging support."),
		},
	}
}
