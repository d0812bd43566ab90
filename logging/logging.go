// Package logging is the diagnostic logging contract used across sioclient,
// with a zerolog implementation and a bridge into watermill.
package logging

import (
	"github.com/rs/zerolog"
)

// Fields represents structured logging key/value pairs.
type Fields map[string]any

// Level gates what a Logger writes.
type Level int8

const (
	TraceLevel Level = iota - 1
	DebugLevel
	InfoLevel
	WarnLevel
	ErrorLevel
	Disabled Level = 7
)

// Logger is the level-gated logger the packet core writes diagnostics to.
// Implementations must not panic and must be safe for concurrent use.
type Logger interface {
	With(fields Fields) Logger
	Enabled(level Level) bool

	Debug(msg string, fields Fields)
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, err error, fields Fields)
}

// NewZerolog wraps a zerolog.Logger so it satisfies Logger.
func NewZerolog(log zerolog.Logger) Logger { return &zerologLogger{log: log} }

type zerologLogger struct{ log zerolog.Logger }

func (z *zerologLogger) With(fields Fields) Logger {
	if len(fields) == 0 {
		return z
	}
	return &zerologLogger{log: z.log.With().Fields(map[string]any(fields)).Logger()}
}

func (z *zerologLogger) Enabled(level Level) bool {
	if level == Disabled {
		return false
	}
	return zerolog.Level(level) >= z.log.GetLevel() && zerolog.Level(level) >= zerolog.GlobalLevel()
}

func (z *zerologLogger) Debug(msg string, fields Fields) {
	z.log.Debug().Fields(map[string]any(fields)).Msg(msg)
}

func (z *zerologLogger) Info(msg string, fields Fields) {
	z.log.Info().Fields(map[string]any(fields)).Msg(msg)
}

func (z *zerologLogger) Warn(msg string, fields Fields) {
	z.log.Warn().Fields(map[string]any(fields)).Msg(msg)
}

func (z *zerologLogger) Error(msg string, err error, fields Fields) {
	z.log.Error().Err(err).Fields(map[string]any(fields)).Msg(msg)
}

// Nop returns a Logger that drops everything.
func Nop() Logger { return NewZerolog(zerolog.Nop()) }
