package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// log backs the package level events; it discards everything until Init.
var log = zerolog.Nop()

type LogLevel int8

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// ParseLevel maps a level name onto a LogLevel, falling back to InfoLevel.
func ParseLevel(name string) LogLevel {
	level, err := zerolog.ParseLevel(name)
	if err != nil || level < zerolog.DebugLevel || level > zerolog.ErrorLevel {
		return InfoLevel
	}
	return LogLevel(level)
}

// New returns a JSON logger writing to w at the given level.
func New(w io.Writer, level LogLevel) zerolog.Logger {
	return zerolog.New(w).Level(zerolog.Level(level)).With().Timestamp().Logger()
}

// Init installs a console logger writing to w. Debug wins over verbose;
// without either only warnings and errors are written.
func Init(w io.Writer, debug, verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}

	level := WarnLevel
	if debug {
		level = DebugLevel
	} else if verbose {
		level = InfoLevel
	}

	log = zerolog.New(output).Level(zerolog.Level(level)).With().Timestamp().Logger()
	return log
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}
