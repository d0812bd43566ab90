// Package config loads the sioclient TOML configuration.
package config

import (
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/njones/sioclient/internal/errors"
	"github.com/njones/sioclient/logging"
	"github.com/njones/sioclient/payload"
)

const (
	ErrLoad        errs.String = "load config %s: %w"
	ErrInvalid     errs.String = "invalid config: %s"
	ErrUnknownSink errs.String = "unknown sink kind %q"
)

// Sink kinds.
const (
	SinkChannel   = "channel"
	SinkWatermill = "watermill"
)

type Config struct {
	Log     logging.Config
	Codec   string
	Sink    SinkConfig
	Metrics MetricsConfig
}

type SinkConfig struct {
	Kind   string
	Buffer int
}

type MetricsConfig struct {
	Enabled   bool
	Namespace string
}

func Default() Config {
	return Config{
		Log:     logging.DefaultConfig(),
		Codec:   payload.CodecJSON,
		Sink:    SinkConfig{Kind: SinkChannel, Buffer: 64},
		Metrics: MetricsConfig{Namespace: "sioclient"},
	}
}

type fileConfig struct {
	Log struct {
		Level     string `toml:"level"`
		Pretty    bool   `toml:"pretty"`
		Timestamp bool   `toml:"timestamp"`
	} `toml:"log"`
	Payload struct {
		Codec string `toml:"codec"`
	} `toml:"payload"`
	Sink struct {
		Kind   string `toml:"kind"`
		Buffer int    `toml:"buffer"`
	} `toml:"sink"`
	Metrics struct {
		Enabled   bool   `toml:"enabled"`
		Namespace string `toml:"namespace"`
	} `toml:"metrics"`
}

// Load reads the TOML file at path over Default. Keys that aren't in the
// file keep their default.
func Load(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, ErrLoad.F(path, err)
	}
	return apply(Default(), raw, meta)
}

// Parse is Load for TOML already in memory.
func Parse(data string) (Config, error) {
	var raw fileConfig
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return Config{}, ErrLoad.F("<string>", err)
	}
	return apply(Default(), raw, meta)
}

func apply(cfg Config, raw fileConfig, meta toml.MetaData) (Config, error) {
	if meta.IsDefined("log", "level") {
		lvl, ok := logging.ParseLevel(raw.Log.Level)
		if !ok {
			return Config{}, ErrInvalid.F("log.level " + raw.Log.Level)
		}
		cfg.Log.Level = lvl
	}
	if meta.IsDefined("log", "pretty") {
		cfg.Log.Pretty = raw.Log.Pretty
	}
	if meta.IsDefined("log", "timestamp") {
		cfg.Log.Timestamp = raw.Log.Timestamp
	}

	if meta.IsDefined("payload", "codec") {
		cfg.Codec = strings.ToLower(strings.TrimSpace(raw.Payload.Codec))
	}

	if meta.IsDefined("sink", "kind") {
		cfg.Sink.Kind = strings.ToLower(strings.TrimSpace(raw.Sink.Kind))
	}
	if meta.IsDefined("sink", "buffer") {
		cfg.Sink.Buffer = raw.Sink.Buffer
	}

	if meta.IsDefined("metrics", "enabled") {
		cfg.Metrics.Enabled = raw.Metrics.Enabled
	}
	if meta.IsDefined("metrics", "namespace") {
		cfg.Metrics.Namespace = strings.TrimSpace(raw.Metrics.Namespace)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	if _, err := payload.ByName(cfg.Codec); err != nil {
		return ErrInvalid.F(err)
	}
	switch cfg.Sink.Kind {
	case SinkChannel, SinkWatermill:
	default:
		return ErrInvalid.F(ErrUnknownSink.F(cfg.Sink.Kind))
	}
	if cfg.Sink.Buffer < 0 {
		return ErrInvalid.F("sink.buffer must not be negative")
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Namespace == "" {
		return ErrInvalid.F("metrics.namespace is required when metrics are enabled")
	}
	return nil
}

// Decoder returns the payload decoder named by the config.
func (cfg Config) Decoder() payload.Decoder {
	dec, err := payload.ByName(cfg.Codec)
	if err != nil {
		return payload.JSON
	}
	return dec
}
