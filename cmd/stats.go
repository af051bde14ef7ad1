package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"fietscomputer-tools/fctools/convert"
	"fietscomputer-tools/fctools/gpxutils"
	"fietscomputer-tools/fctools/terminal"
	"fietscomputer-tools/fctools/track"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"github.com/tkrajina/gpxgo/gpx"
)

// meters per second to kilometers per hour
const msToKmh = 3.6

type statsCmd struct {
	out io.Writer
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "Print statistics of GPX tracks." }
func (*statsCmd) Usage() string {
	return `stats <file.gpx>...
	Print duration, distance, elevation and top speed of every track.
  `
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if _, ok := args[0].(setupFunc)(); !ok {
		return 1
	}

	if f.NArg() == 0 {
		terminal.Error(nil, "No GPX file given")
		return 1
	}

	w := c.out
	if w == nil {
		w = os.Stdout
	}

	for _, path := range f.Args() {
		g, err := gpxutils.Load(path)
		if err != nil {
			terminal.Error(err, "Could not load '%s'", path)
			return 1
		}
		if len(g.Tracks) == 0 {
			terminal.Info("%s: no track", path)
			continue
		}

		for i, trk := range g.Tracks {
			pts := []gpx.GPXPoint{}
			for _, s := range trk.Segments {
				pts = append(pts, s.Points...)
			}
			s := track.New(&pts).Stats()

			name := trk.Name
			if name == "" {
				name = fmt.Sprintf("track %d", i+1)
			}
			log.Debug().Str("file", path).Str("track", name).Int("points", len(pts)).Msg("track stats")

			fmt.Fprintf(w, "%s - %s: %.2f km in %s, +%sm/-%sm, top speed %.1f km/h\n",
				path, name,
				convert.ToKilometers(s.Distance),
				s.Duration.Round(time.Second),
				convert.Ftoan(s.ElevationGain),
				convert.Ftoan(s.ElevationLoss),
				s.MaxSpeed*msToKmh)
		}
	}

	return 0
}
