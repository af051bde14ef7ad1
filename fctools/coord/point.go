package coord

import "fmt"

// LatLng is anything exposing a latitude and a longitude in degrees
type LatLng interface {
	Lat() float64
	Lng() float64
}

// Point is a position on the Earth in degrees.
//
// Latitude is expected within [-90, 90] and longitude within [-180, 180]. The calculators of
// this package do not check it: callers are responsible, Valid can be used for that.
type Point struct {
	Latitude, Longitude float64
}

// NewPoint returns a point from the given latitude and longitude in degrees
func NewPoint(lat, lng float64) Point {
	return Point{Latitude: lat, Longitude: lng}
}

// FromLatLng projects any LatLng into a point
func FromLatLng(ll LatLng) Point {
	return Point{Latitude: ll.Lat(), Longitude: ll.Lng()}
}

// Lat returns the latitude in degrees
func (p Point) Lat() float64 {
	return p.Latitude
}

// Lng returns the longitude in degrees
func (p Point) Lng() float64 {
	return p.Longitude
}

// Valid reports whether the point lies within latitude and longitude ranges
func (p Point) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

func (p Point) String() string {
	return fmt.Sprintf("(%.7f, %.7f)", p.Latitude, p.Longitude)
}
