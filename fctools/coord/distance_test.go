package coord_test

import (
	"fietscomputer-tools/fctools/coord"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGreatCircleDistance(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		a, b coord.Point
		want float64
	}{
		"same_point":      {a: coord.NewPoint(52.37, 4.89), b: coord.NewPoint(52.37, 4.89), want: 0},
		"equator_degree":  {a: coord.NewPoint(0, 0), b: coord.NewPoint(0, 1), want: coord.EarthRadius * math.Pi / 180},
		"meridian_degree": {a: coord.NewPoint(45, 7), b: coord.NewPoint(46, 7), want: coord.EarthRadius * math.Pi / 180},
		"antipodes":       {a: coord.NewPoint(0, 0), b: coord.NewPoint(0, 180), want: coord.EarthRadius * math.Pi},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			require.InDelta(tc.want, coord.GreatCircleDistance(tc.a, tc.b), 1e-3)
			require.InDelta(tc.want, coord.GreatCircleDistance(tc.b, tc.a), 1e-3)
		})
	}
}

func TestPointValid(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		input coord.Point
		want  bool
	}{
		"origin":       {input: coord.NewPoint(0, 0), want: true},
		"corners":      {input: coord.NewPoint(-90, 180), want: true},
		"lat_too_high": {input: coord.NewPoint(90.1, 0), want: false},
		"lng_too_low":  {input: coord.NewPoint(0, -180.5), want: false},
		"lat_too_low":  {input: coord.NewPoint(-91, 10), want: false},
		"lng_too_high": {input: coord.NewPoint(10, 200), want: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(tc.want, tc.input.Valid())
		})
	}
}
