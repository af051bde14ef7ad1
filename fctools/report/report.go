package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"fietscomputer-tools/fctools/convert"
	"fietscomputer-tools/fctools/coord"

	"gopkg.in/yaml.v3"
)

// Format output format of a report
type Format string

// Supported formats
const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ErrUnknownFormat is returned for a format other than text, json or yaml
var ErrUnknownFormat = errors.New("unknown format")

// Summary holds what was computed from a set of points. A nil Center or Region means it
// could not be computed from that many points.
type Summary struct {
	Points int
	Center *coord.Point
	Region *coord.Region
}

type pointDoc struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

type regionDoc struct {
	Center             pointDoc `json:"center" yaml:"center"`
	LatitudinalMeters  float64  `json:"latitudinal_meters" yaml:"latitudinal_meters"`
	LongitudinalMeters float64  `json:"longitudinal_meters" yaml:"longitudinal_meters"`
}

type summaryDoc struct {
	Points int        `json:"points" yaml:"points"`
	Center *pointDoc  `json:"center" yaml:"center"`
	Region *regionDoc `json:"region" yaml:"region"`
}

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case Text, JSON, YAML:
		return f, nil
	}
	return "", fmt.Errorf("%w '%s'", ErrUnknownFormat, s)
}

// Write renders the summary to w in the given format
func Write(w io.Writer, f Format, s Summary) error {
	switch f {
	case Text:
		return writeText(w, s)
	case JSON:
		b, err := json.MarshalIndent(toDoc(s), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toDoc(s)); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w '%s'", ErrUnknownFormat, f)
}

func writeText(w io.Writer, s Summary) error {
	if _, err := fmt.Fprintf(w, "points: %d\n", s.Points); err != nil {
		return err
	}

	center := "none"
	if s.Center != nil {
		center = s.Center.String()
	}
	if _, err := fmt.Fprintf(w, "center: %s\n", center); err != nil {
		return err
	}

	region := "none"
	if s.Region != nil {
		region = fmt.Sprintf("%s, %s m x %s m (%.2f km x %.2f km)",
			s.Region.Center,
			convert.Ftoan(s.Region.LatitudinalMeters),
			convert.Ftoan(s.Region.LongitudinalMeters),
			convert.ToKilometers(s.Region.LatitudinalMeters),
			convert.ToKilometers(s.Region.LongitudinalMeters))
	}
	_, err := fmt.Fprintf(w, "region: %s\n", region)
	return err
}

func toDoc(s Summary) summaryDoc {
	d := summaryDoc{Points: s.Points}
	if s.Center != nil {
		c := toPointDoc(*s.Center)
		d.Center = &c
	}
	if s.Region != nil {
		d.Region = &regionDoc{
			Center:             toPointDoc(s.Region.Center),
			LatitudinalMeters:  s.Region.LatitudinalMeters,
			LongitudinalMeters: s.Region.LongitudinalMeters,
		}
	}
	return d
}

func toPointDoc(p coord.Point) pointDoc {
	return pointDoc{Latitude: p.Latitude, Longitude: p.Longitude}
}
