package gpxutils_test

import (
	"errors"
	"fietscomputer-tools/fctools/gpxutils"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tkrajina/gpxgo/gpx"
)

const ride = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="fctools" xmlns="http://www.topografix.com/GPX/1/1">
  <wpt lat="52.0907" lon="5.1214"><name>Utrecht</name></wpt>
  <trk>
    <name>Morning ride</name>
    <trkseg>
      <trkpt lat="52.3676" lon="4.9041"><ele>1.0</ele></trkpt>
      <trkpt lat="52.3700" lon="4.9100"><ele>2.0</ele></trkpt>
    </trkseg>
    <trkseg>
      <trkpt lat="52.3800" lon="4.9200"><ele>3.0</ele></trkpt>
    </trkseg>
  </trk>
  <rte>
    <rtept lat="51.9244" lon="4.4777"></rtept>
  </rte>
</gpx>`

const waypointsOnly = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="fctools" xmlns="http://www.topografix.com/GPX/1/1">
  <wpt lat="51.4416" lon="5.4697"></wpt>
</gpx>`

func TestCollect(t *testing.T) {
	require := require.New(t)

	g, err := gpx.ParseBytes([]byte(ride))
	require.NoError(err)

	tests := map[string]struct {
		src  gpxutils.Source
		want []float64
	}{
		"tracks":    {src: gpxutils.Tracks, want: []float64{52.3676, 52.3700, 52.3800, 51.9244}},
		"waypoints": {src: gpxutils.Waypoints, want: []float64{52.0907}},
		"all":       {src: gpxutils.All, want: []float64{52.3676, 52.3700, 52.3800, 51.9244, 52.0907}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			pts, err := gpxutils.Collect(g, tc.src)
			require.NoError(err)
			lats := make([]float64, len(pts))
			for i, p := range pts {
				lats[i] = p.Latitude
			}
			require.Equal(tc.want, lats)
		})
	}
}

func TestCollectErrors(t *testing.T) {
	require := require.New(t)

	g, err := gpx.ParseBytes([]byte(waypointsOnly))
	require.NoError(err)

	_, err = gpxutils.Collect(g, gpxutils.Tracks)
	require.True(errors.Is(err, gpxutils.ErrNoPoints))

	_, err = gpxutils.Collect(g, gpxutils.Source("routes"))
	require.True(errors.Is(err, gpxutils.ErrUnknownSource))
}

func TestParseSource(t *testing.T) {
	require := require.New(t)

	for _, s := range []string{"tracks", "waypoints", "all"} {
		src, err := gpxutils.ParseSource(s)
		require.NoError(err)
		require.Equal(gpxutils.Source(s), src)
	}

	_, err := gpxutils.ParseSource("")
	require.True(errors.Is(err, gpxutils.ErrUnknownSource))
}

func TestLoadAll(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	p1 := filepath.Join(dir, "ride.gpx")
	p2 := filepath.Join(dir, "waypoints.gpx")
	require.NoError(os.WriteFile(p1, []byte(ride), 0644))
	require.NoError(os.WriteFile(p2, []byte(waypointsOnly), 0644))

	pts, err := gpxutils.LoadAll([]string{p1, p2}, gpxutils.Waypoints)
	require.NoError(err)
	require.Len(pts, 2)
	require.Equal(51.4416, pts[1].Latitude)

	_, err = gpxutils.LoadAll([]string{p1, p2}, gpxutils.Tracks)
	require.True(errors.Is(err, gpxutils.ErrNoPoints))

	_, err = gpxutils.LoadAll([]string{filepath.Join(dir, "missing.gpx")}, gpxutils.All)
	require.Error(err)
}
