// Package logging builds the zerolog logger shared by both CLI drivers,
// wired the way itohio-EasyRobot's pkg/logger does it: a console writer
// with caller info, Unix time format, level set once at startup.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a console-writer zerolog.Logger at level, with caller info
// attached to every entry.
func New(level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Caller().Logger().
		Level(level)
}
