package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	EnvLogLevel     = "SIOCLIENT_LOG_LEVEL"
	EnvLogPretty    = "SIOCLIENT_LOG_PRETTY"
	EnvLogTimestamp = "SIOCLIENT_LOG_TIMESTAMP"
)

type Config struct {
	Level     Level
	Pretty    bool
	Timestamp bool
}

func DefaultConfig() Config {
	return Config{Level: InfoLevel, Pretty: true, Timestamp: true}
}

// FromEnv applies the SIOCLIENT_LOG_* environment overrides to cfg.
func FromEnv(cfg Config) Config { return fromLookup(cfg, os.LookupEnv) }

func fromLookup(cfg Config, lookup func(string) (string, bool)) Config {
	if raw, ok := lookup(EnvLogLevel); ok {
		if lvl, ok := ParseLevel(raw); ok {
			cfg.Level = lvl
		}
	}
	if raw, ok := lookup(EnvLogPretty); ok {
		if v, ok := parseBool(raw); ok {
			cfg.Pretty = v
		}
	}
	if raw, ok := lookup(EnvLogTimestamp); ok {
		if v, ok := parseBool(raw); ok {
			cfg.Timestamp = v
		}
	}
	return cfg
}

// New builds a zerolog backed Logger writing to w.
func New(cfg Config, w io.Writer) Logger {
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: !isTerminal(w)}
	}

	ctx := zerolog.New(w).Level(zerolog.Level(cfg.Level)).With().Str("app", "sioclient")
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	return NewZerolog(ctx.Logger())
}

// ParseLevel understands the usual level names; the bool is false for
// anything it doesn't.
func ParseLevel(raw string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return TraceLevel, true
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return Disabled, true
	}
	return InfoLevel, false
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
