// Package config reads the environment of the demonstration programs.
package config

import (
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/oklog/ulid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	EnvLogLevel = "POVLIST_LOG_LEVEL"
	EnvMaxNodes = "POVLIST_MAX_NODES"
)

// Config describes a single run.
type Config struct {
	LogLevel zerolog.Level
	// MaxNodes bounds the live nodes of the list, sentinel included. 0 means
	// no bound.
	MaxNodes int64
}

func Default() Config {
	return Config{LogLevel: zerolog.InfoLevel}
}

// Load reads the configuration through lookup, usually os.LookupEnv. Unset
// variables keep their default.
func Load(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		lvl, err := zerolog.ParseLevel(v)
		if err != nil {
			return cfg, errors.Wrapf(err, "%s", EnvLogLevel)
		}
		cfg.LogLevel = lvl
	}

	if v, ok := lookup(EnvMaxNodes); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, errors.Wrapf(err, "%s", EnvMaxNodes)
		}
		if n < 0 {
			return cfg, errors.Errorf("%s must not be negative, got %d", EnvMaxNodes, n)
		}
		cfg.MaxNodes = n
	}

	return cfg, nil
}

// Logger returns a console logger on w tagged with the program name and a
// fresh run id.
func (c Config) Logger(w io.Writer, program string) zerolog.Logger {
	now := time.Now()
	entropy := ulid.Monotonic(rand.New(rand.NewSource(now.UnixNano())), 0)
	run := ulid.MustNew(ulid.Timestamp(now), entropy)

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		With().
		Timestamp().
		Str("program", program).
		Str("run", run.String()).
		Logger().
		Level(c.LogLevel)
}

// FromEnv loads the configuration from the process environment. A malformed
// variable is reported on the returned logger and the defaults are used.
func FromEnv(program string) (Config, zerolog.Logger) {
	cfg, err := Load(os.LookupEnv)
	log := cfg.Logger(os.Stderr, program)
	if err != nil {
		cfg = Default()
		log = cfg.Logger(os.Stderr, program)
		log.Warn().Err(err).Msg("ignoring environment configuration")
	}

	return cfg, log
}
