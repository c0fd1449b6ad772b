//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// Favorite is the saved-association relation between a user and a car.
// Existence implies "favorited"; the (user, car) pair is unique on the
// backend and the relation carries no attributes of its own.
type Favorite struct {
	UserID string `json:"user_id"`
	CarID  string `json:"car_id"`
}
