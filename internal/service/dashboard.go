package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/hamzanaeem10/auto-suite-space/internal/core"
)

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	Cars       core.CarRepository
	Profiles   core.ProfileRepository
	TestDrives core.TestDriveRepository
}

// DashboardService aggregates the admin dashboard statistics.
type DashboardService struct {
	cars       core.CarRepository
	profiles   core.ProfileRepository
	testDrives core.TestDriveRepository
	logger     *slog.Logger
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	return &DashboardService{
		cars:       opts.Cars,
		profiles:   opts.Profiles,
		testDrives: opts.TestDrives,
		logger:     slog.Default(),
	}
}

// CountResult carries one dashboard count and, when the branch failed, the
// error that produced it. A failed branch renders as zero with a warning
// rather than failing the whole dashboard.
type CountResult struct {
	Count int
	Err   error
}

// Failed reports whether this count could not be computed.
func (r CountResult) Failed() bool { return r.Err != nil }

// DashboardStats holds the three dashboard counts.
type DashboardStats struct {
	Cars             CountResult
	Profiles         CountResult
	PendingTestDrive CountResult
}

// Degraded reports whether any branch failed.
func (s DashboardStats) Degraded() bool {
	return s.Cars.Failed() || s.Profiles.Failed() || s.PendingTestDrive.Failed()
}

// Stats runs the three count queries concurrently. Branch failures are
// isolated per count; the join always waits for all branches.
func (s *DashboardService) Stats(ctx context.Context) DashboardStats {
	var stats DashboardStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats.Cars.Count, stats.Cars.Err = s.cars.Count(gctx)
		return nil
	})
	g.Go(func() error {
		stats.Profiles.Count, stats.Profiles.Err = s.profiles.Count(gctx)
		return nil
	})
	g.Go(func() error {
		stats.PendingTestDrive.Count, stats.PendingTestDrive.Err = s.testDrives.CountPending(gctx)
		return nil
	})
	// Branches never return an error, so Wait only synchronizes.
	_ = g.Wait()

	for name, r := range map[string]CountResult{
		"cars":                stats.Cars,
		"profiles":            stats.Profiles,
		"pending_test_drives": stats.PendingTestDrive,
	} {
		if r.Err != nil {
			s.logger.Warn("dashboard count failed", "stat", name, "error", r.Err)
		}
	}

	return stats
}
