// Package config loads the settings of the uuidlit checker.
//
// Settings come from a YAML file, by default .uuidlit.yaml in the working
// directory, and are then overridden by environment variables:
//
//	funcs:            # UUIDLIT_FUNCS, comma separated
//	  - uuidlit.MustParse
//	  - ids.Const
//	exclude:          # UUIDLIT_EXCLUDE, comma separated path prefixes
//	  - vendor
//	tests: true       # UUIDLIT_TESTS
//	log_level: debug  # UUIDLIT_LOG_LEVEL
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read when no config path is given. It may be absent.
const DefaultFile = ".uuidlit.yaml"

// Config lists the call sites whose first argument is a UUID literal.
type Config struct {
	// Funcs are callees written as "pkg.Func" (selector calls) or "Func".
	Funcs []string `yaml:"funcs" env:"UUIDLIT_FUNCS" envSeparator:","`
	// Exclude holds slash separated path prefixes, relative to the checked root.
	Exclude  []string `yaml:"exclude" env:"UUIDLIT_EXCLUDE" envSeparator:","`
	Tests    bool     `yaml:"tests" env:"UUIDLIT_TESTS"`
	LogLevel string   `yaml:"log_level" env:"UUIDLIT_LOG_LEVEL"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Funcs: []string{
			"uuidlit.MustParse",
			"uuid.MustParse",
		},
		Exclude:  []string{"vendor", "testdata"},
		LogLevel: "info",
	}
}

// Load reads the YAML file at path on top of Default and applies
// environment overrides. An empty path reads DefaultFile if it exists.
func Load(path string) (Config, error) {
	cfg := Default()

	optional := path == ""
	if optional {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Join(ErrParsingConfig, fmt.Errorf("%s: %w", path, err))
		}
	case optional && errors.Is(err, fs.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingEnv, err)
	}
	if len(cfg.Funcs) == 0 {
		return Config{}, ErrNoFuncs
	}
	return cfg, nil
}

// Level returns the configured log level
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: log level: %w", err)
	}
	return l, nil
}
