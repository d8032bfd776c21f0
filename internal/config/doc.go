// Package config provides the obfuscation engine's ambient configuration.
//
// # Overview
//
// The config package implements a small YAML-based configuration system
// with environment variable overrides, loaded from .pyobfuscate/config.yaml
// in the project root. Everything that actually varies per run (the project
// root and the file set) is a collaborator-supplied argument to the
// orchestrator, never a config field; this package only holds the policy
// knobs that are genuinely policy, not per-run input: the rename-token
// allocation alphabet, the fail-fast toggle, and warning-log verbosity.
//
// # Loading Configuration
//
// Basic usage:
//
//	cfg, err := config.Load("/path/to/project")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// With environment variable overrides:
//
//	cfg, err := config.LoadWithEnv("/path/to/project", os.Getenv)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Environment Variables
//
//   - PYOBF_TOKEN_ALPHABET: override token_alphabet
//   - PYOBF_FAIL_FAST: override fail_fast ("true"/"false")
//   - PYOBF_WARN_LEVEL: override warn_level (info|warn|error)
//
// # Example Configuration
//
// A typical .pyobfuscate/config.yaml file:
//
//	version: "1.0"
//	token_alphabet: two_letter
//	fail_fast: true
//	warn_level: warn
//
// Values may reference environment variables with ${VAR} or ${VAR:-default}
// syntax; Load expands these before parsing the YAML.
//
// # Default Configuration
//
// When no config file exists, DefaultConfig() returns token_alphabet:
// two_letter, fail_fast: true, warn_level: warn.
//
// # Validation
//
// Validate rejects an empty version, an unknown token_alphabet, or an
// unknown warn_level.
package config
