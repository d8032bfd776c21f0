package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	configDir  = ".pyobfuscate"
	configFile = "config.yaml"
)

// Load loads configuration from the project root's .pyobfuscate/config.yaml
// file. If the config file doesn't exist, returns DefaultConfig. If the
// file exists but is invalid, returns an error.
func Load(projectRoot string) (*Config, error) {
	cfgPath := filepath.Join(projectRoot, configDir, configFile)

	data, err := os.ReadFile(cfgPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded, _, err := ApplySubstitution(string(data))
	if err != nil {
		return nil, fmt.Errorf("expand config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration with environment variable overrides.
// Environment variables take precedence over config file values.
// Supported env vars:
//   - PYOBF_TOKEN_ALPHABET: override token_alphabet
//   - PYOBF_FAIL_FAST: override fail_fast ("true"/"false")
//   - PYOBF_WARN_LEVEL: override warn_level
func LoadWithEnv(projectRoot string, getenv func(string) string) (*Config, error) {
	cfg, err := Load(projectRoot)
	if err != nil {
		return nil, err
	}

	if v := getenv("PYOBF_TOKEN_ALPHABET"); v != "" {
		cfg.TokenAlphabet = v
	}

	if v := getenv("PYOBF_FAIL_FAST"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PYOBF_FAIL_FAST: %w", err)
		}
		cfg.FailFast = b
	}

	if v := getenv("PYOBF_WARN_LEVEL"); v != "" {
		cfg.WarnLevel = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config after env overrides: %w", err)
	}

	return cfg, nil
}
