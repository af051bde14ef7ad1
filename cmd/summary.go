package main

import (
	"context"
	"flag"
	"io"
	"os"

	"fietscomputer-tools/fctools/coord"
	"fietscomputer-tools/fctools/gpxutils"
	"fietscomputer-tools/fctools/report"
	"fietscomputer-tools/fctools/terminal"
	"fietscomputer-tools/fctools/track"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type summaryCmd struct {
	format     string
	source     string
	outputFile string

	out io.Writer
}

func (*summaryCmd) Name() string { return "summary" }
func (*summaryCmd) Synopsis() string {
	return "Compute the center and the map region of GPX points."
}
func (*summaryCmd) Usage() string {
	return `summary [-format text|json|yaml] [-source tracks|waypoints|all] [-output <file>] <file.gpx>...
	Print the geographic midpoint of the points and the padded region enclosing them.
  `
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "", "output format (text, json, yaml)")
	f.StringVar(&c.source, "source", "", "points to use (tracks, waypoints, all)")
	f.StringVar(&c.outputFile, "output", "", "output file")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg, ok := args[0].(setupFunc)()
	if !ok {
		return 1
	}

	// validate parameters
	format, err := report.ParseFormat(firstNonEmpty(c.format, cfg.Format))
	if err != nil {
		terminal.Error(err, "Invalid format")
		return 1
	}
	src, err := gpxutils.ParseSource(firstNonEmpty(c.source, cfg.Source))
	if err != nil {
		terminal.Error(err, "Invalid source")
		return 1
	}
	if f.NArg() == 0 {
		terminal.Error(nil, "No GPX file given")
		return 1
	}

	// load points
	o := terminal.NewOperation("Loading %d GPX file(s)", f.NArg())
	pts, err := gpxutils.LoadAll(f.Args(), src)
	if err != nil {
		o.Error(err, "Failed to load GPX")
		return 1
	}
	o.Success("Loaded %d %s points", len(pts), src)

	coords := make([]coord.Point, len(pts))
	invalid := 0
	for i, p := range pts {
		coords[i] = track.PointFromGPX(p).Coordinate()
		if !coords[i].Valid() {
			invalid++
		}
	}
	if invalid > 0 {
		log.Warn().Int("invalid", invalid).Msg("points out of latitude/longitude range")
	}

	s := report.Summary{Points: len(coords)}
	if center, ok := coord.Centroid(coords); ok {
		s.Center = &center
		log.Debug().Stringer("center", center).Msg("computed centroid")
	}
	if region, ok := coord.BoundingRegion(coords); ok {
		s.Region = &region
		log.Debug().
			Stringer("center", region.Center).
			Float64("latitudinal_meters", region.LatitudinalMeters).
			Float64("longitudinal_meters", region.LongitudinalMeters).
			Msg("computed region")
	} else {
		log.Debug().Int("points", len(coords)).Msg("not enough points for a region")
	}

	if c.outputFile == "" {
		if err := report.Write(c.stdout(), format, s); err != nil {
			terminal.Error(err, "Failed to write summary")
			return 1
		}
		return 0
	}

	if err := exportSummary(c.outputFile, format, s); err != nil {
		terminal.Error(err, "Failed to export summary to '%s'", c.outputFile)
		return 1
	}
	terminal.Info("Summary exported to %s", c.outputFile)

	return 0
}

func (c *summaryCmd) stdout() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}

// exportSummary writes the summary to a file, failing when the file could not be
// flushed on close
func exportSummary(path string, format report.Format, s report.Summary) error {
	file, err := createFile(path)
	if err != nil {
		return err
	}

	if err := report.Write(file, format, s); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
