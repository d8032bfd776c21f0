package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoFileReturnsDefault(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_ValidFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "version: \"1.0\"\ntoken_alphabet: two_letter\nfail_fast: true\nwarn_level: error\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.WarnLevel)
	assert.True(t, cfg.FailFast)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "token_alphabet: [unterminated\n")

	_, err := Load(dir)
	require.ErrorIs(t, err, ErrInvalidYAML)
}

func TestLoad_InvalidAlphabetFailsValidation(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "version: \"1.0\"\ntoken_alphabet: three_letter\nwarn_level: warn\n")

	_, err := Load(dir)
	require.Error(t, err)
}

func TestLoad_EnvSubstitutionInConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PYOBF_TEST_WARN", "error")
	writeConfig(t, dir, "version: \"1.0\"\ntoken_alphabet: two_letter\nfail_fast: true\nwarn_level: ${PYOBF_TEST_WARN}\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.WarnLevel)
}

func TestLoadWithEnv_Overrides(t *testing.T) {
	dir := t.TempDir()

	env := map[string]string{
		"PYOBF_TOKEN_ALPHABET": "two_letter",
		"PYOBF_FAIL_FAST":      "false",
		"PYOBF_WARN_LEVEL":     "error",
	}
	cfg, err := LoadWithEnv(dir, func(k string) string { return env[k] })
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.WarnLevel)
	assert.False(t, cfg.FailFast)
}

func TestLoadWithEnv_InvalidFailFast(t *testing.T) {
	dir := t.TempDir()
	env := map[string]string{"PYOBF_FAIL_FAST": "not-a-bool"}
	_, err := LoadWithEnv(dir, func(k string) string { return env[k] })
	require.Error(t, err)
}

func writeConfig(t *testing.T, dir, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, configDir), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, configDir, configFile), []byte(contents), 0o644))
}
