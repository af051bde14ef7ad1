package coord

import (
	"math"

	"fietscomputer-tools/fctools/convert"
)

// Centroid returns the geographic midpoint of the given points, false if there are none.
//
// Points are projected on the unit sphere, their cartesian coordinates averaged and the
// mean vector converted back to latitude and longitude. Unlike averaging degrees, this
// holds across the antimeridian and near the poles. The mean vector is not normalized.
// See http://www.geomidpoint.com/calculation.html
func Centroid(points []Point) (Point, bool) {
	switch len(points) {
	case 0:
		return Point{}, false
	case 1:
		return points[0], true
	}

	var x, y, z float64
	for _, p := range points {
		lat := convert.DegreesToRadians(p.Latitude)
		lng := convert.DegreesToRadians(p.Longitude)
		x += math.Cos(lat) * math.Cos(lng)
		y += math.Cos(lat) * math.Sin(lng)
		z += math.Sin(lat)
	}

	n := float64(len(points))
	x /= n
	y /= n
	z /= n

	lng := math.Atan2(y, x)
	hyp := math.Sqrt(x*x + y*y)
	lat := math.Atan2(z, hyp)

	return Point{
		Latitude:  convert.RadiansToDegrees(lat),
		Longitude: convert.RadiansToDegrees(lng),
	}, true
}
