package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init sets up the global logger on stderr. Console output is human readable,
// otherwise one json object is written per event.
func Init(level string, console bool) error {
	return initTo(os.Stderr, level, console)
}

func initTo(w io.Writer, level string, console bool) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)

	if console {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
			With().
			Timestamp().
			Logger()
		return nil
	}

	log.Logger = zerolog.New(w).
		With().
		Timestamp().
		Str("app", "fctools").
		Logger()
	return nil
}
