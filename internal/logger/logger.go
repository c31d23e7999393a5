// Package logger configures zerolog for the elevateai command line tools.
package logger

import (
	"io"
	"os"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	zpkgerrors "github.com/rs/zerolog/pkgerrors"
)

type stackTracer interface{ StackTrace() pkgerrors.StackTrace }

// installStackMarshalers makes .Stack() work for plain errors too by
// attaching a pkg/errors stack when the error carries none.
func installStackMarshalers() {
	zerolog.ErrorStackMarshaler = func(err error) interface{} {
		if _, ok := err.(stackTracer); !ok {
			err = pkgerrors.WithStack(err)
		}
		return zpkgerrors.MarshalStack(err)
	}
}

// New returns a JSON logger writing to w, tagged with service.
// Call sites should use .Stack() on error events to include stacks.
func New(w io.Writer, service string) zerolog.Logger {
	installStackMarshalers()
	return zerolog.New(w).With().
		Str("service", service).
		Timestamp().
		Logger()
}

// InitConsole points the global logger at stderr with human-readable,
// uncolored output and sets the global level. With jsonOutput the global
// logger emits JSON lines instead.
func InitConsole(level zerolog.Level, jsonOutput bool) {
	installStackMarshalers()
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if jsonOutput {
		log.Logger = New(os.Stderr, "elevateai")
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "2006-01-02 15:04:05",
			NoColor:    true,
		})
	}
	zerolog.SetGlobalLevel(level)
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
