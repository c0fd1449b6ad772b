//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"sort"
	"strings"
)

// CarSort identifies the ordering applied when fetching the car collection.
type CarSort string

const (
	CarSortNewest    CarSort = "newest"
	CarSortPriceLow  CarSort = "price-low"
	CarSortPriceHigh CarSort = "price-high"
)

// Valid reports whether the sort option is supported.
func (s CarSort) Valid() bool {
	switch s {
	case CarSortNewest, CarSortPriceLow, CarSortPriceHigh:
		return true
	default:
		return false
	}
}

// ParseCarSort normalizes a sort string, defaulting to newest when empty or unknown.
func ParseCarSort(value string) CarSort {
	s := CarSort(strings.ToLower(strings.TrimSpace(value)))
	if s.Valid() {
		return s
	}
	return CarSortNewest
}

// OrderColumn returns the backend column and direction for this sort option.
func (s CarSort) OrderColumn() (string, bool) {
	switch s {
	case CarSortPriceLow:
		return "price", false
	case CarSortPriceHigh:
		return "price", true
	default:
		return "year", true
	}
}

// Car represents a vehicle listing as served by the backend. Listings are
// read-only from this application's perspective.
type Car struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Price        int64   `json:"price"`
	Year         int     `json:"year"`
	Mileage      int     `json:"mileage"`
	FuelType     string  `json:"fuel_type"`
	Transmission string  `json:"transmission"`
	Description  *string `json:"description,omitempty"`
	ImageURL     *string `json:"image_url,omitempty"`
}

// CarFilter holds the purely client-side listing filters. Filtering is a
// synchronous predicate over an already-fetched collection and never changes
// the backend query.
type CarFilter struct {
	// Search matches the title, brand, or model case-insensitively.
	Search string
	// Brand matches the brand exactly (case-insensitive); BrandAll disables it.
	Brand string
}

// BrandAll is the brand filter value that matches every brand.
const BrandAll = "all"

// Matches reports whether the car satisfies the filter.
func (f CarFilter) Matches(c Car) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !strings.Contains(strings.ToLower(c.Title), q) &&
			!strings.Contains(strings.ToLower(c.Brand), q) &&
			!strings.Contains(strings.ToLower(c.Model), q) {
			return false
		}
	}
	if f.Brand != "" && !strings.EqualFold(f.Brand, BrandAll) {
		if !strings.EqualFold(f.Brand, c.Brand) {
			return false
		}
	}
	return true
}

// FilterCars returns the subset of cars matching the filter, preserving order.
func FilterCars(cars []Car, f CarFilter) []Car {
	out := make([]Car, 0, len(cars))
	for _, c := range cars {
		if f.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}

// DistinctBrands returns the distinct brands present in the collection,
// sorted alphabetically, preserving the first-seen spelling of each brand.
func DistinctBrands(cars []Car) []string {
	seen := make(map[string]string, len(cars))
	for _, c := range cars {
		key := strings.ToLower(c.Brand)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; !ok {
			seen[key] = c.Brand
		}
	}
	brands := make([]string, 0, len(seen))
	for _, b := range seen {
		brands = append(brands, b)
	}
	sort.Slice(brands, func(i, j int) bool {
		return strings.ToLower(brands[i]) < strings.ToLower(brands[j])
	})
	return brands
}
