package coord

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// EarthRadius is the radius in meters of the sphere distances are measured on
const EarthRadius = 6378100

// DistanceFunc returns the distance in meters between two points
type DistanceFunc func(a, b Point) float64

// GreatCircleDistance returns the shortest distance in meters between two points
// over the surface of the Earth.
func GreatCircleDistance(a, b Point) float64 {
	d := toS2LatLng(a).Distance(toS2LatLng(b))
	return d.Radians() * EarthRadius
}

func toS2LatLng(p LatLng) s2.LatLng {
	return s2.LatLng{
		Lat: s1.Angle(p.Lat()) * s1.Degree,
		Lng: s1.Angle(p.Lng()) * s1.Degree,
	}
}
