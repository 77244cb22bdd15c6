package golog

import (
	"strings"

	"github.com/rs/zerolog"
)

// levelFilter maps logger names to the minimum severity required for a
// record to be emitted, with a global default for unnamed targets.
type levelFilter struct {
	def     zerolog.Level
	targets map[string]zerolog.Level
}

// parseLevelFilter parses a filter specification of the form
// "level" or "level,name=level,name=level". Malformed tokens are skipped
// rather than reported; an empty or fully unparseable specification
// disables logging. Parsing never fails.
func parseLevelFilter(spec string) levelFilter {
	f := levelFilter{def: zerolog.Disabled}

	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		if name, level, ok := strings.Cut(tok, "="); ok {
			name = strings.TrimSpace(name)
			level = strings.TrimSpace(level)
			if name == "" || level == "" {
				continue
			}
			l, err := zerolog.ParseLevel(strings.ToLower(level))
			if err != nil {
				continue
			}
			if f.targets == nil {
				f.targets = make(map[string]zerolog.Level)
			}
			f.targets[name] = l
			continue
		}

		if l, err := zerolog.ParseLevel(strings.ToLower(tok)); err == nil {
			f.def = l
		}
	}

	return f
}

// levelFor returns the minimum level for the given logger name.
func (f levelFilter) levelFor(name string) zerolog.Level {
	if l, ok := f.targets[name]; ok {
		return l
	}
	return f.def
}
