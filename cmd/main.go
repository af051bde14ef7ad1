package main

import (
	"context"
	"flag"
	"io"
	"os"

	"fietscomputer-tools/fctools/config"
	"fietscomputer-tools/fctools/logging"
	t "fietscomputer-tools/fctools/terminal"

	"github.com/google/subcommands"
)

// setupFunc loads the configuration and sets up logging for a command,
// false when it failed and the failure was reported.
type setupFunc func() (*config.Config, bool)

var createFile = func(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

func main() {

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&summaryCmd{}, "")
	subcommands.Register(&statsCmd{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx, setupFunc(setup))))
}

// config is only loaded by the commands needing it, so that help keeps working
// with a broken configuration
func setup() (*config.Config, bool) {
	cfg, err := config.Load()
	if err != nil {
		t.Error(err, "Failed to load config")
		return nil, false
	}

	if err := logging.Init(cfg.Log.Level, cfg.Log.Console); err != nil {
		t.Error(err, "Failed to set up logging")
		return nil, false
	}

	return cfg, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
