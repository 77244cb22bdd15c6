// Package golog provides process-wide structured logging using zerolog.
//
// Call Init once at startup. It reads GOLOG_LOG_LEVEL for the level filter
// and GOLOG_LOG_FMT for the output format, then installs a global sink on
// standard error. With GOLOG_LOG_FMT=json every record is one JSON object
// per line; otherwise records are rendered as human-readable text:
//
//	2019-11-11T21:04:25.685 DEBUG simple > debug information
//	2019-11-11T21:04:25.685 INFO  simple > normal information
//
// GOLOG_LOG_LEVEL accepts a bare level ("info") or a comma-separated list of
// name=level pairs with an optional bare default ("error,db=debug"). When it
// is unset or empty, nothing is logged.
package golog

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// LevelEnv is the environment variable holding the level filter.
	LevelEnv = "GOLOG_LOG_LEVEL"

	// FormatEnv is the environment variable selecting the output format.
	// The value "json" selects structured output; anything else selects text.
	FormatEnv = "GOLOG_LOG_FMT"

	// LoggerFieldName is the JSON key carrying the logger name.
	LoggerFieldName = "logger"
)

const timeFieldFormat = "2006-01-02T15:04:05.000-0700"

// sink is the installed destination/formatter pair. It is written exactly
// once, inside the init barrier, and read-only afterwards.
type sink struct {
	base   zerolog.Logger
	filter levelFilter
}

var (
	initOnce   = new(sync.Once)
	globalSink *sink
)

// Init installs the process-wide logger on standard error. It is safe to
// call multiple times and from multiple goroutines; only the first call has
// any effect. Text output is colorized when stderr is a terminal.
func Init() {
	initOnce.Do(func() {
		install(os.Stderr, isTerminal(os.Stderr))
	})
}

// InitWithFile installs the process-wide logger writing to an already open
// file. Concurrent log lines are serialized so they never interleave. Like
// Init, only the first init call in the process has any effect.
func InitWithFile(f *os.File) {
	initOnce.Do(func() {
		install(zerolog.SyncWriter(f), false)
	})
}

// InitWithWriter installs the process-wide logger writing to w. It is meant
// for embedders and tests that capture log output. Like Init, only the first
// init call in the process has any effect.
func InitWithWriter(w io.Writer) {
	initOnce.Do(func() {
		install(zerolog.SyncWriter(w), false)
	})
}

// configureZerolog pins the field names and timestamp layout shared by both
// formats.
func configureZerolog() {
	zerolog.TimestampFieldName = "ts"
	zerolog.MessageFieldName = "msg"
	zerolog.TimeFieldFormat = timeFieldFormat
}

// install builds the sink from the environment and publishes it. Runs inside
// the init barrier only.
func install(w io.Writer, color bool) {
	configureZerolog()

	filter := parseLevelFilter(os.Getenv(LevelEnv))
	structured := os.Getenv(FormatEnv) == "json"

	if !structured {
		w = consoleWriter(w, !color)
	}

	ctx := zerolog.New(w).With().Timestamp()
	if structured {
		ctx = ctx.Caller()
	}

	globalSink = &sink{base: ctx.Logger(), filter: filter}
	log.Logger = globalSink.base.Level(filter.def)
}

// Default returns the root logger at the global filter level.
func Default() zerolog.Logger {
	s := current()
	return s.base.Level(s.filter.def)
}

// Logger returns a logger tagged with the given name, leveled according to
// the active filter: an exact name=level match wins, otherwise the global
// default applies.
func Logger(name string) zerolog.Logger {
	s := current()
	return s.base.With().Str(LoggerFieldName, name).Logger().Level(s.filter.levelFor(name))
}

// current returns the installed sink, initializing from the environment if
// no init call has run yet.
func current() *sink {
	Init()
	return globalSink
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
