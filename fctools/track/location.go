package track

import (
	"time"

	"fietscomputer-tools/fctools/coord"

	"github.com/tkrajina/gpxgo/gpx"
)

var now = time.Now

// Location is a position fix: where, how high, how fast and when
type Location struct {
	Coordinate coord.Point
	Altitude   float64 // meters
	Speed      float64 // meters per second
	Timestamp  time.Time
}

// NewLocation converts a gpx waypoint into a location. A waypoint without elevation is at
// altitude 0, one without timestamp is stamped with the current time. Standalone waypoints
// carry no speed.
func NewLocation(p gpx.GPXPoint) Location {
	return newLocation(p, 0)
}

func newLocation(p gpx.GPXPoint, speed float64) Location {
	l := Location{
		Coordinate: coord.NewPoint(p.Latitude, p.Longitude),
		Speed:      speed,
		Timestamp:  p.Timestamp,
	}
	if p.Elevation.NotNull() {
		l.Altitude = p.Elevation.Value()
	}
	if l.Timestamp.IsZero() {
		l.Timestamp = now()
	}
	return l
}
