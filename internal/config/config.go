package config

// Config is the obfuscation engine's ambient configuration: policy knobs,
// never per-run input (project_root and file_set always come from the
// CLI/MCP caller, never from here).
type Config struct {
	// Version is the config file format version (e.g., "1.0").
	Version string `yaml:"version"`

	// TokenAlphabet selects the rename-token generator's allocation
	// policy. Currently only "two_letter" (aa..zz, extending to three
	// letters automatically once exhausted) is implemented.
	TokenAlphabet string `yaml:"token_alphabet"`

	// FailFast is the fail_fast setting (default true; PYOBF_FAIL_FAST
	// can set it false). The orchestrator does not read it: a fatal error
	// always aborts the remaining files and partial output is never
	// rolled back, whatever this holds.
	FailFast bool `yaml:"fail_fast"`

	// WarnLevel controls whether the obfuscate command prints the non-fatal
	// warnings (likely-local renames, uncertain dynamic-name resolutions)
	// with its summary: "error" suppresses them. They are counted in the
	// TransformSummary and logged through slog whatever this holds. One of
	// "info", "warn", "error".
	WarnLevel string `yaml:"warn_level"`
}

// Validate validates the entire configuration.
func (c *Config) Validate() error {
	if c.Version == "" {
		return ErrInvalidConfig
	}
	switch c.TokenAlphabet {
	case "two_letter":
	default:
		return ErrInvalidAlphabet
	}
	switch c.WarnLevel {
	case "info", "warn", "error":
	default:
		return ErrInvalidWarnLevel
	}
	return nil
}
