// Package main demonstrates golog output at every level.
//
// By default nothing is logged. Set GOLOG_LOG_LEVEL to enable output:
//
//	GOLOG_LOG_LEVEL=info go run ./cmd/simple
//
// Set GOLOG_LOG_FMT=json for structured output:
//
//	GOLOG_LOG_FMT=json GOLOG_LOG_LEVEL=info go run ./cmd/simple
package main

import (
	"github.com/guttosm/golog"
)

func main() {
	golog.Init()

	log := golog.Logger("simple")
	log.Trace().Msg("logging on trace level")
	log.Debug().Msg("logging on debug level")
	log.Info().Msg("logging on info level")
	log.Warn().Msg("logging on warn level")
	log.Error().Msg("logging on error level")
}
