package track

import (
	"time"

	"fietscomputer-tools/fctools/coord"

	"github.com/tkrajina/gpxgo/gpx"
)

// Point point recorded along a track
type Point struct {
	Latitude, Longitude float64
	Elevation           float64
	Time                time.Time
}

// PointFromGPX converts a gpx track point
func PointFromGPX(p gpx.GPXPoint) Point {
	return Point{
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Elevation: p.Elevation.Value(),
		Time:      p.Timestamp,
	}
}

// Lat returns the latitude in degrees
func (p Point) Lat() float64 {
	return p.Latitude
}

// Lng returns the longitude in degrees
func (p Point) Lng() float64 {
	return p.Longitude
}

// Coordinate returns the position of the track point
func (p Point) Coordinate() coord.Point {
	return coord.FromLatLng(p)
}
