package testutil

import (
	"github.com/hamzanaeem10/auto-suite-space/internal/domain/model"
)

// CarBuilder provides a fluent interface for building Car fixtures.
type CarBuilder struct {
	car model.Car
}

// NewCar creates a CarBuilder with sensible defaults.
func NewCar() *CarBuilder {
	return &CarBuilder{
		car: model.Car{
			ID:           "car-1",
			Title:        "Tesla Model 3 Long Range",
			Brand:        "Tesla",
			Model:        "Model 3",
			Price:        42000,
			Year:         2023,
			Mileage:      12000,
			FuelType:     "electric",
			Transmission: "automatic",
		},
	}
}

// WithID sets the car ID.
func (b *CarBuilder) WithID(id string) *CarBuilder {
	b.car.ID = id
	return b
}

// WithTitle sets the listing title.
func (b *CarBuilder) WithTitle(title string) *CarBuilder {
	b.car.Title = title
	return b
}

// WithBrand sets the brand and model.
func (b *CarBuilder) WithBrand(brand, carModel string) *CarBuilder {
	b.car.Brand = brand
	b.car.Model = carModel
	return b
}

// WithPrice sets the price.
func (b *CarBuilder) WithPrice(price int64) *CarBuilder {
	b.car.Price = price
	return b
}

// WithYear sets the model year.
func (b *CarBuilder) WithYear(year int) *CarBuilder {
	b.car.Year = year
	return b
}

// Build returns the constructed car.
func (b *CarBuilder) Build() model.Car {
	return b.car
}

// ProfileBuilder provides a fluent interface for building Profile fixtures.
type ProfileBuilder struct {
	profile model.Profile
}

// NewProfile creates a ProfileBuilder with sensible defaults.
func NewProfile() *ProfileBuilder {
	name := "Test User"
	email := "test.user@example.com"
	return &ProfileBuilder{
		profile: model.Profile{
			ID:    "user-1",
			Name:  &name,
			Email: &email,
			Role:  model.ProfileRoleUser,
		},
	}
}

// WithID sets the profile ID.
func (b *ProfileBuilder) WithID(id string) *ProfileBuilder {
	b.profile.ID = id
	return b
}

// WithName sets the display name.
func (b *ProfileBuilder) WithName(name string) *ProfileBuilder {
	b.profile.Name = &name
	return b
}

// WithRole sets the role.
func (b *ProfileBuilder) WithRole(role model.ProfileRole) *ProfileBuilder {
	b.profile.Role = role
	return b
}

// AsAdmin marks the profile as an admin.
func (b *ProfileBuilder) AsAdmin() *ProfileBuilder {
	b.profile.Role = model.ProfileRoleAdmin
	return b
}

// Build returns the constructed profile.
func (b *ProfileBuilder) Build() model.Profile {
	return b.profile
}
