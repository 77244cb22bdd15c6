package golog

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

const consoleTimeFormat = "2006-01-02T15:04:05.000"

// ANSI foreground colors for level tags.
const (
	colorRed     = 31
	colorGreen   = 32
	colorYellow  = 33
	colorBlue    = 34
	colorMagenta = 35
)

// consoleWriter renders records as single text lines of the form
// "<timestamp> <LEVEL> <logger> > <message>", the level uppercased and
// padded to a fixed width. The logger part is omitted for the root logger.
func consoleWriter(out io.Writer, noColor bool) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    noColor,
		TimeFormat: consoleTimeFormat,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			LoggerFieldName,
			zerolog.MessageFieldName,
		},
		FieldsExclude: []string{LoggerFieldName},
		FormatLevel:   formatLevel(noColor),
		FormatMessage: formatMessage,
		FormatPartValueByName: func(i interface{}, name string) string {
			// The logger name part; absent on the root logger.
			if i == nil {
				return ""
			}
			return fmt.Sprint(i)
		},
	}
}

func formatLevel(noColor bool) zerolog.Formatter {
	return func(i interface{}) string {
		level, ok := i.(string)
		if !ok || level == "" {
			return "???"
		}
		part := fmt.Sprintf("%-5s", strings.ToUpper(level))
		if !noColor {
			part = colorize(part, levelColor(level))
		}
		return part
	}
}

func formatMessage(i interface{}) string {
	if i == nil {
		return ">"
	}
	return fmt.Sprintf("> %s", i)
}

func levelColor(level string) int {
	switch level {
	case zerolog.LevelTraceValue:
		return colorMagenta
	case zerolog.LevelDebugValue:
		return colorBlue
	case zerolog.LevelInfoValue:
		return colorGreen
	case zerolog.LevelWarnValue:
		return colorYellow
	default:
		return colorRed
	}
}

func colorize(s string, color int) string {
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", color, s)
}
