package golog

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevelFilter(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		def     zerolog.Level
		targets map[string]zerolog.Level
	}{
		{
			name: "empty spec disables logging",
			spec: "",
			def:  zerolog.Disabled,
		},
		{
			name: "bare global level",
			spec: "info",
			def:  zerolog.InfoLevel,
		},
		{
			name: "bare level is case-insensitive",
			spec: "WARN",
			def:  zerolog.WarnLevel,
		},
		{
			name: "single pair",
			spec: "db=debug",
			def:  zerolog.Disabled,
			targets: map[string]zerolog.Level{
				"db": zerolog.DebugLevel,
			},
		},
		{
			name: "global level with pairs",
			spec: "error,db=debug,api=warn",
			def:  zerolog.ErrorLevel,
			targets: map[string]zerolog.Level{
				"db":  zerolog.DebugLevel,
				"api": zerolog.WarnLevel,
			},
		},
		{
			name: "whitespace is tolerated",
			spec: " error , db = trace ",
			def:  zerolog.ErrorLevel,
			targets: map[string]zerolog.Level{
				"db": zerolog.TraceLevel,
			},
		},
		{
			name: "malformed pair is skipped",
			spec: "info,db=loud",
			def:  zerolog.InfoLevel,
		},
		{
			name: "pair without level is skipped",
			spec: "info,db=",
			def:  zerolog.InfoLevel,
		},
		{
			name: "pair without name is skipped",
			spec: "info,=debug",
			def:  zerolog.InfoLevel,
		},
		{
			name: "unparseable spec stays disabled",
			spec: "garbage",
			def:  zerolog.Disabled,
		},
		{
			name: "last bare level wins",
			spec: "debug,error",
			def:  zerolog.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := parseLevelFilter(tt.spec)
			assert.Equal(t, tt.def, f.def)
			if tt.targets == nil {
				assert.Empty(t, f.targets)
			} else {
				assert.Equal(t, tt.targets, f.targets)
			}
		})
	}
}

func TestLevelFor(t *testing.T) {
	f := parseLevelFilter("error,db=debug")

	assert.Equal(t, zerolog.DebugLevel, f.levelFor("db"))
	assert.Equal(t, zerolog.ErrorLevel, f.levelFor("api"))
	assert.Equal(t, zerolog.ErrorLevel, f.levelFor(""))
}
