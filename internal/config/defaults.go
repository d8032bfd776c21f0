package config

// DefaultConfig returns the configuration used when no config file exists.
//
// Default values:
//
//   - version: "1.0"
//   - token_alphabet: two_letter (aa..zz, extended to three letters once
//     exhausted)
//   - fail_fast: true (a fatal error always aborts the run)
//   - warn_level: warn (the obfuscate command prints likely-local renames
//     and uncertain dynamic-name sites with its summary)
func DefaultConfig() *Config {
	return &Config{
		Version:       "1.0",
		TokenAlphabet: "two_letter",
		FailFast:      true,
		WarnLevel:     "warn",
	}
}
