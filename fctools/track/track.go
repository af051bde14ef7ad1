package track

import (
	"math"
	"time"

	"fietscomputer-tools/fctools/coord"

	"github.com/tkrajina/gpxgo/gpx"
)

// Track represents a gps track made of a serie of recorded points
type Track struct {
	Points []Point

	segment gpx.GPXTrackSegment
}

// Stats track statistics
type Stats struct {
	Duration       time.Duration
	ElevationGain  float64
	ElevationLoss  float64
	StartElevation float64
	EndElevation   float64
	Distance       float64
	MaxSpeed       float64 // meters per second
}

// elevation changes below this many meters are treated as gps noise
const elevationChangeThreshold = 18

// New Create a track from the given gpx points
func New(pts *[]gpx.GPXPoint) *Track {
	gPts := make([]Point, len(*pts))
	for i, p := range *pts {
		gPts[i] = PointFromGPX(p)
	}

	return &Track{
		Points:  gPts,
		segment: gpx.GPXTrackSegment{Points: *pts},
	}
}

// Coordinates returns the position of every point of the track
func (t *Track) Coordinates() []coord.Point {
	c := make([]coord.Point, len(t.Points))
	for i, p := range t.Points {
		c[i] = p.Coordinate()
	}
	return c
}

// Center returns the geographic midpoint of the track, false if the track is empty
func (t *Track) Center() (coord.Point, bool) {
	return coord.Centroid(t.Coordinates())
}

// Region returns the padded region enclosing the track, false if it has less than 2 points
func (t *Track) Region() (coord.Region, bool) {
	return coord.BoundingRegion(t.Coordinates())
}

// Locations returns every point of the track as a location, speed included.
// Points without a time difference to their neighbours have a speed of 0.
func (t *Track) Locations() []Location {
	l := make([]Location, len(t.segment.Points))
	for i, p := range t.segment.Points {
		l[i] = newLocation(p, t.speed(i))
	}
	return l
}

// speed averages the speeds from the previous and to the next point
func (t *Track) speed(i int) float64 {
	pts := t.segment.Points
	var sum float64
	n := 0
	for _, j := range []int{i - 1, i + 1} {
		if j < 0 || j >= len(pts) {
			continue
		}
		if pts[j].Timestamp.Sub(pts[i].Timestamp) == 0 {
			continue
		}
		sum += math.Abs(pts[j].SpeedBetween(&pts[i], true))
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Stats retrieves statistics from the track
func (t *Track) Stats() Stats {
	if len(t.Points) == 0 {
		return Stats{}
	}

	tb := t.segment.TimeBounds()
	gain, loss := t.elevationGainLoss(elevationChangeThreshold)

	return Stats{
		Duration:       tb.EndTime.Sub(tb.StartTime),
		ElevationGain:  gain,
		ElevationLoss:  loss,
		StartElevation: t.Points[0].Elevation,
		EndElevation:   t.Points[len(t.Points)-1].Elevation,
		Distance:       t.segment.Length3D(),
		MaxSpeed:       t.segment.MovingData().MaxSpeed,
	}
}

func (t *Track) elevationGainLoss(threshold float64) (float64, float64) {
	elevations := t.segment.Elevations()
	selectedElevations := []float64{}
	i := 0
	for _, e := range elevations {
		if e.NotNull() {
			if i == 0 || math.Abs(e.Value()-selectedElevations[i-1]) > threshold {
				selectedElevations = append(selectedElevations, e.Value())
				i++
			}
		}
	}

	var gain float64
	var loss float64

	for i := 1; i < len(selectedElevations); i++ {
		d := selectedElevations[i] - selectedElevations[i-1]
		if d > 0.0 {
			gain += d
		} else {
			loss -= d
		}
	}

	return gain, loss
}
