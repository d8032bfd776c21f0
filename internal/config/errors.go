package config

import "errors"

var (
	// ErrInvalidConfig indicates the configuration failed validation.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrInvalidYAML indicates the configuration file contains invalid YAML.
	ErrInvalidYAML = errors.New("invalid yaml")

	// ErrInvalidAlphabet indicates token_alphabet names an unknown policy.
	ErrInvalidAlphabet = errors.New("invalid token alphabet")

	// ErrInvalidWarnLevel indicates warn_level names an unknown severity.
	ErrInvalidWarnLevel = errors.New("invalid warn level")
)
