// Package cars holds view models for the car listing and detail pages.
package cars

import (
	"github.com/hamzanaeem10/auto-suite-space/internal/domain/model"
	"github.com/hamzanaeem10/auto-suite-space/internal/http/uiutil"
)

// Card is the template-facing projection of a car for grid and detail views.
type Card struct {
	ID           string
	Title        string
	Brand        string
	Model        string
	Year         int
	FuelType     string
	Transmission string
	Price        string
	Mileage      string
	Description  string
	ImageURL     string
	IsFavorite   bool
}

// NewCard builds a Card from the domain model with display formatting applied.
func NewCard(c model.Car) Card {
	card := Card{
		ID:           c.ID,
		Title:        c.Title,
		Brand:        c.Brand,
		Model:        c.Model,
		Year:         c.Year,
		FuelType:     c.FuelType,
		Transmission: c.Transmission,
		Price:        uiutil.FormatPrice(c.Price),
		Mileage:      uiutil.FormatMileage(c.Mileage),
	}
	if c.Description != nil {
		card.Description = *c.Description
	}
	if c.ImageURL != nil {
		card.ImageURL = *c.ImageURL
	}
	return card
}

// Cards converts a slice of domain cars preserving order.
func Cards(cars []model.Car) []Card {
	out := make([]Card, 0, len(cars))
	for _, c := range cars {
		out = append(out, NewCard(c))
	}
	return out
}

// Summary truncates the description for grid cards.
func (c Card) Summary() string {
	return uiutil.TruncateWithEllipsis(c.Description, 110)
}
