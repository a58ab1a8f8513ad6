// Package logging configures the zerolog logger shared by the binaries.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing JSON to stderr. In development the output
// is switched to the human-readable console writer.
func New(dev bool) zerolog.Logger {
	var w io.Writer = os.Stderr
	if dev {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).With().Timestamp().Logger()
}
