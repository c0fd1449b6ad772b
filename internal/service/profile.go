package service

import (
	"context"
	"fmt"

	"github.com/hamzanaeem10/auto-suite-space/internal/core"
	"github.com/hamzanaeem10/auto-suite-space/internal/domain/model"
)

// ProfileServiceOptions groups dependencies for ProfileService.
type ProfileServiceOptions struct {
	Profiles core.ProfileRepository
}

// ProfileService orchestrates reads and updates of the signed-in user's
// profile. The display name is the only writable field; email and role are
// owned by the backend.
type ProfileService struct {
	profiles core.ProfileRepository
}

// NewProfileService constructs a new ProfileService.
func NewProfileService(opts ProfileServiceOptions) *ProfileService {
	return &ProfileService{profiles: opts.Profiles}
}

// Get returns the profile for a user.
func (s *ProfileService) Get(ctx context.Context, userID string) (*model.Profile, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	return s.profiles.GetByID(ctx, userID)
}

// UpdateName validates and persists a new display name, returning the
// refreshed profile.
func (s *ProfileService) UpdateName(ctx context.Context, userID string, req model.UpdateProfileRequest) (*model.Profile, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.profiles.UpdateName(ctx, userID, req.Name); err != nil {
		return nil, fmt.Errorf("update name: %w", err)
	}

	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reload profile: %w", err)
	}
	return profile, nil
}

// IsAdmin reports whether the user's profile record carries the admin role.
func (s *ProfileService) IsAdmin(ctx context.Context, userID string) (bool, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return false, err
	}
	return profile.Role.IsAdmin(), nil
}
