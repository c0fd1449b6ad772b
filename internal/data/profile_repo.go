package data

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hamzanaeem10/auto-suite-space/internal/backend"
	"github.com/hamzanaeem10/auto-suite-space/internal/domain/model"
)

// ErrProfileNotFound is returned when a profile lookup matches nothing.
var ErrProfileNotFound = errors.New("profile not found")

const profilesTable = "profiles"

// ProfileRepo reads and updates user profile rows.
type ProfileRepo struct {
	client *backend.Client
}

// NewProfileRepo creates a new ProfileRepo.
func NewProfileRepo(client *backend.Client) *ProfileRepo {
	return &ProfileRepo{client: client}
}

// GetByID fetches the profile for a user. Returns ErrProfileNotFound on a miss.
func (r *ProfileRepo) GetByID(ctx context.Context, userID string) (*model.Profile, error) {
	var profile model.Profile
	err := r.client.From(profilesTable).
		Eq("id", userID).
		Single().
		Get(ctx, &profile)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile %s: %w", userID, err)
	}
	return &profile, nil
}

// UpdateName sets the display name for a user's profile.
func (r *ProfileRepo) UpdateName(ctx context.Context, userID, name string) error {
	patch := map[string]any{"name": strings.TrimSpace(name)}
	err := r.client.From(profilesTable).
		Eq("id", userID).
		Update(ctx, patch)
	if err != nil {
		return fmt.Errorf("update profile %s: %w", userID, err)
	}
	return nil
}

// Count returns the total number of profiles.
func (r *ProfileRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.From(profilesTable).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count profiles: %w", err)
	}
	return n, nil
}
