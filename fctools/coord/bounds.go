package coord

// Bounds represents the coordinate boundaries of a set of points
type Bounds struct {
	MinLat, MinLng float64
	MaxLat, MaxLng float64
}

// BoundsOf returns the boundaries of the given points, false if there are none.
// Minimums and maximums are taken independently on each axis, so a set of points
// crossing the antimeridian gets a box spanning the other way around the globe.
func BoundsOf(points []Point) (Bounds, bool) {
	if len(points) == 0 {
		return Bounds{}, false
	}

	b := Bounds{
		MinLat: points[0].Latitude,
		MinLng: points[0].Longitude,
		MaxLat: points[0].Latitude,
		MaxLng: points[0].Longitude,
	}
	for _, p := range points[1:] {
		if p.Latitude < b.MinLat {
			b.MinLat = p.Latitude
		}
		if p.Latitude > b.MaxLat {
			b.MaxLat = p.Latitude
		}
		if p.Longitude < b.MinLng {
			b.MinLng = p.Longitude
		}
		if p.Longitude > b.MaxLng {
			b.MaxLng = p.Longitude
		}
	}

	return b, true
}

// SouthWest returns the south west corner
func (b Bounds) SouthWest() Point {
	return Point{Latitude: b.MinLat, Longitude: b.MinLng}
}

// SouthEast returns the south east corner
func (b Bounds) SouthEast() Point {
	return Point{Latitude: b.MinLat, Longitude: b.MaxLng}
}

// NorthEast returns the north east corner
func (b Bounds) NorthEast() Point {
	return Point{Latitude: b.MaxLat, Longitude: b.MaxLng}
}

// NorthWest returns the north west corner
func (b Bounds) NorthWest() Point {
	return Point{Latitude: b.MaxLat, Longitude: b.MinLng}
}

// Center returns the middle of the boundaries, averaging degrees on each axis
func (b Bounds) Center() Point {
	return Point{
		Latitude:  (b.MinLat + b.MaxLat) / 2,
		Longitude: (b.MinLng + b.MaxLng) / 2,
	}
}
