package data

import "github.com/hamzanaeem10/auto-suite-space/internal/core"

// Compile-time checks that repositories satisfy the core interfaces.
var (
	_ core.CarRepository       = (*CarRepo)(nil)
	_ core.ProfileRepository   = (*ProfileRepo)(nil)
	_ core.FavoriteRepository  = (*FavoriteRepo)(nil)
	_ core.TestDriveRepository = (*TestDriveRepo)(nil)
)
