// Package logx configures parola's structured logging: a zerolog
// console writer on stderr with the level taken from config, bumped to
// debug by the --verbose flag.
package logx

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a logger writing human-readable output to w. Unknown level
// strings fall back to info.
func New(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Default returns a stderr logger at the given level.
func Default(level string) zerolog.Logger {
	return New(level, os.Stderr)
}
