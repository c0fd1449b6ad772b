package data

import (
	"context"
	"fmt"

	"github.com/hamzanaeem10/auto-suite-space/internal/backend"
	"github.com/hamzanaeem10/auto-suite-space/internal/domain/model"
)

const testDriveTable = "test_drive_requests"

// TestDriveRepo reads test drive request rows.
type TestDriveRepo struct {
	client *backend.Client
}

// NewTestDriveRepo creates a new TestDriveRepo.
func NewTestDriveRepo(client *backend.Client) *TestDriveRepo {
	return &TestDriveRepo{client: client}
}

// CountPending returns the number of requests awaiting review.
func (r *TestDriveRepo) CountPending(ctx context.Context) (int, error) {
	n, err := r.client.From(testDriveTable).
		Eq("status", string(model.TestDriveStatusPending)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count pending test drives: %w", err)
	}
	return n, nil
}
