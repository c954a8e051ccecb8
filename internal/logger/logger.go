// Package logger builds the zerolog loggers used by picturectl and tests.
package logger

import (
	"io"
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	zpkgerrors "github.com/rs/zerolog/pkgerrors"
)

type stackTracer interface{ StackTrace() pkgerrors.StackTrace }

// New returns a JSON logger on stderr tagged with service. Stdout stays free
// for command output.
func New(service string, debug bool) zerolog.Logger {
	return NewWithWriter(os.Stderr, service, debug)
}

// NewWithWriter is New writing to w. Error events render a stack when logged
// with .Stack(); plain errors get one attached at the logging site.
func NewWithWriter(w io.Writer, service string, debug bool) zerolog.Logger {
	zerolog.ErrorStackMarshaler = func(err error) interface{} {
		if _, ok := err.(stackTracer); !ok {
			err = pkgerrors.WithStack(err)
		}
		return zpkgerrors.MarshalStack(err)
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().
		Str("service", service).
		Timestamp().
		Logger()
}
