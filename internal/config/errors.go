package config

import "errors"

var (
	// ErrParsingConfig is returned when the config file is not valid YAML
	ErrParsingConfig = errors.New("config: failed to parse config file")

	// ErrParsingEnv is returned when environment overrides cannot be applied
	ErrParsingEnv = errors.New("config: failed to parse environment variables")

	// ErrNoFuncs is returned when no function is configured to hold UUID literals
	ErrNoFuncs = errors.New("config: no functions to check")
)
