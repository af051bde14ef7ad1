package convert

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
)

const metersPerKilometer = 1000

// DegreesToRadians returns the given angle in degrees as radians
func DegreesToRadians(degrees float64) float64 {
	return (s1.Angle(degrees) * s1.Degree).Radians()
}

// RadiansToDegrees returns the given angle in radians as degrees
func RadiansToDegrees(radians float64) float64 {
	return s1.Angle(radians).Degrees()
}

// ToKilometers returns the given distance in meters to kilometers
func ToKilometers(meters float64) float64 {
	return meters / metersPerKilometer
}

// Ftoan formats a float as its nearest integer
func Ftoan(f float64) string {
	return fmt.Sprintf("%d", int64(math.Round(f)))
}
