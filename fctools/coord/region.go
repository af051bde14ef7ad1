package coord

// RegionPadding is the factor applied to region spans to leave a margin around the points
const RegionPadding = 1.2

// Region is an area centered on a point and spanning a distance in meters on each axis
type Region struct {
	Center             Point
	LatitudinalMeters  float64
	LongitudinalMeters float64
}

// BoundingRegion returns the padded region enclosing the given points, measuring spans
// with GreatCircleDistance. See BoundingRegionWith.
func BoundingRegion(points []Point) (Region, bool) {
	return BoundingRegionWith(points, GreatCircleDistance)
}

// BoundingRegionWith returns the padded region enclosing the given points, false when
// there are less than two of them.
//
// The latitudinal span is the distance between the south west and south east corners,
// the longitudinal span the one between the north east and north west corners. The center
// is the middle of the boundaries in degrees. Both spans are scaled by RegionPadding.
func BoundingRegionWith(points []Point, distance DistanceFunc) (Region, bool) {
	if len(points) < 2 {
		return Region{}, false
	}

	b, _ := BoundsOf(points)
	latitudinal := distance(b.SouthWest(), b.SouthEast())
	longitudinal := distance(b.NorthEast(), b.NorthWest())

	return Region{
		Center:             b.Center(),
		LatitudinalMeters:  latitudinal * RegionPadding,
		LongitudinalMeters: longitudinal * RegionPadding,
	}, true
}
