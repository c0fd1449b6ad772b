// Package mocks provides mock implementations for testing the catalog services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockCarRepository(ctrl)
//	mockRepo.EXPECT().GetByID(gomock.Any(), "car-1").Return(car, nil)
package mocks

// Generate mock for CarRepository interface from internal/core package.
// This creates MockCarRepository with methods for all CarRepository interface methods:
// List, GetByID, Count
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=car_repository_mock.go github.com/hamzanaeem10/auto-suite-space/internal/core CarRepository

// Generate mock for ProfileRepository interface from internal/core package.
// This creates MockProfileRepository with methods for all ProfileRepository interface methods:
// GetByID, UpdateName, Count
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=profile_repository_mock.go github.com/hamzanaeem10/auto-suite-space/internal/core ProfileRepository

// Generate mock for FavoriteRepository interface from internal/core package.
// This creates MockFavoriteRepository with methods for all FavoriteRepository interface methods:
// Exists, Insert, Delete
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=favorite_repository_mock.go github.com/hamzanaeem10/auto-suite-space/internal/core FavoriteRepository

// Generate mock for TestDriveRepository interface from internal/core package.
// This creates MockTestDriveRepository with methods for all TestDriveRepository interface methods:
// CountPending
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=test_drive_repository_mock.go github.com/hamzanaeem10/auto-suite-space/internal/core TestDriveRepository
