package kernel

import (
	"avpayments/internal/pkg/errs"
	"avpayments/internal/pkg/guard"
)

// GeoPointMaxLength is the maximum length of a coordinate string carried by
// vehicles and deliveries, e.g. "40.7128,-74.0060".
const GeoPointMaxLength = 64

// ErrGeoPointIsNotConstructed is returned when attempting to use an
// improperly initialized GeoPoint. GeoPoints must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a position as an opaque coordinate string. The engine
// never interprets coordinates; it only stores and returns them, so the
// value object validates presence and length, nothing more.
//
// The zero value of GeoPoint is invalid and will fail validation - use the
// constructor to create instances.
type GeoPoint struct {
	value string
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from a coordinate string.
// The string must be non-empty and at most GeoPointMaxLength characters.
func NewGeoPoint(value string) (GeoPoint, error) {
	if value == "" {
		return GeoPoint{}, errs.NewValueIsRequiredError("geo point")
	}
	if len(value) > GeoPointMaxLength {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("geo point length", len(value), 1, GeoPointMaxLength)
	}

	return GeoPoint{value: value, guard: guard.NewConstructorGuard()}, nil
}

// String returns the coordinate string.
func (g GeoPoint) String() string {
	return g.value
}

// IsEqual compares two geo points for equality.
func (g GeoPoint) IsEqual(other GeoPoint) bool {
	return g.value == other.value
}

// Validate checks if the GeoPoint is properly constructed.
// Returns ErrGeoPointIsNotConstructed for the zero value.
func (g GeoPoint) Validate() error {
	return g.guard.Validate(ErrGeoPointIsNotConstructed)
}
