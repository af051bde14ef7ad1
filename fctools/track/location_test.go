package track

import (
	"testing"
	"time"

	"fietscomputer-tools/fctools/coord"

	"github.com/stretchr/testify/require"
	"github.com/tkrajina/gpxgo/gpx"
)

func TestNewLocation(t *testing.T) {
	require := require.New(t)

	fixed := time.Date(2020, time.June, 23, 12, 0, 0, 0, time.UTC)
	now = func() time.Time { return fixed }
	defer func() { now = time.Now }()

	stamped := time.Date(2020, time.June, 20, 8, 30, 0, 0, time.UTC)

	tests := map[string]struct {
		input gpx.GPXPoint
		want  Location
	}{
		"full": {
			input: gpx.GPXPoint{
				Point:     gpx.Point{Latitude: 52.09, Longitude: 5.12, Elevation: *gpx.NewNullableFloat64(4.5)},
				Timestamp: stamped,
			},
			want: Location{Coordinate: coord.NewPoint(52.09, 5.12), Altitude: 4.5, Timestamp: stamped},
		},
		"no_elevation_no_time": {
			input: gpx.GPXPoint{
				Point: gpx.Point{Latitude: -33.86, Longitude: 151.21},
			},
			want: Location{Coordinate: coord.NewPoint(-33.86, 151.21), Timestamp: fixed},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(tc.want, NewLocation(tc.input))
		})
	}
}
