package gpxutils

import (
	"errors"
	"fmt"

	"github.com/tkrajina/gpxgo/gpx"
)

// Source selects which points of a gpx are collected
type Source string

// Supported sources
const (
	Tracks    Source = "tracks"
	Waypoints Source = "waypoints"
	All       Source = "all"
)

var (
	// ErrNoPoints is returned when a gpx holds no point for the requested source
	ErrNoPoints = errors.New("no points found")
	// ErrUnknownSource is returned for a source other than tracks, waypoints or all
	ErrUnknownSource = errors.New("unknown point source")
)

// ParseSource validates a source name
func ParseSource(s string) (Source, error) {
	switch src := Source(s); src {
	case Tracks, Waypoints, All:
		return src, nil
	}
	return "", fmt.Errorf("%w '%s'", ErrUnknownSource, s)
}

// Load parses the gpx file at the given path
func Load(path string) (*gpx.GPX, error) {
	g, err := gpx.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return g, nil
}

// Collect flattens the points of a gpx in document order: track segments first, then
// routes, then waypoints.
func Collect(g *gpx.GPX, src Source) ([]gpx.GPXPoint, error) {
	if _, err := ParseSource(string(src)); err != nil {
		return nil, err
	}

	pts := []gpx.GPXPoint{}
	if src == Tracks || src == All {
		for _, t := range g.Tracks {
			for _, s := range t.Segments {
				pts = append(pts, s.Points...)
			}
		}
		for _, r := range g.Routes {
			pts = append(pts, r.Points...)
		}
	}
	if src == Waypoints || src == All {
		pts = append(pts, g.Waypoints...)
	}

	if len(pts) == 0 {
		return nil, fmt.Errorf("%w for source '%s'", ErrNoPoints, src)
	}
	return pts, nil
}

// LoadAll loads every given file and collects their points
func LoadAll(paths []string, src Source) ([]gpx.GPXPoint, error) {
	all := []gpx.GPXPoint{}
	for _, p := range paths {
		g, err := Load(p)
		if err != nil {
			return nil, err
		}
		pts, err := Collect(g, src)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		all = append(all, pts...)
	}
	return all, nil
}
