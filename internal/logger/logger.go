package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

func New(pretty bool) zerolog.Logger {
	return NewWithOutput(os.Stdout, pretty)
}

// NewWithOutput lets the CLI keep stdout for command output.
func NewWithOutput(w io.Writer, pretty bool) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if pretty {
		output := zerolog.ConsoleWriter{Out: w, TimeFormat: "2006-01-02 15:04:05"}
		return zerolog.New(output).With().Timestamp().Caller().Logger()
	}

	return zerolog.New(w).With().Timestamp().Logger()
}

// WithLevel parses level and falls back to info on garbage.
func WithLevel(l zerolog.Logger, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return l.Level(lvl)
}
