package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir(), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"EtcdService", "ConfigService"}, cfg.Services)
	assert.Equal(t, []string{"get", "getOrThrow"}, cfg.Accessors)
	assert.Equal(t, []string{"app.get"}, cfg.Exclusions)
	assert.Equal(t, "process.env", cfg.EnvRoot)
	assert.False(t, cfg.SkipUnparsable)
}

func TestLoad_FileInRoot(t *testing.T) {
	dir := t.TempDir()
	content := `
services:
  - VaultService
exclusions:
  - app.get
  - router.get
ignores:
  folders:
    - fixtures
    - src/legacy
skip_unparsable: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))

	cfg, err := Load(dir, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"VaultService"}, cfg.Services)
	assert.Equal(t, []string{"app.get", "router.get"}, cfg.Exclusions)
	assert.Equal(t, []string{"fixtures", "src/legacy"}, cfg.Ignores.Folders)
	assert.True(t, cfg.SkipUnparsable)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, []string{"get", "getOrThrow"}, cfg.Accessors)
}

func TestLoad_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("env_root: import.meta.env\n"), 0644))

	cfg, err := Load(t.TempDir(), path)
	require.NoError(t, err)
	assert.Equal(t, "import.meta.env", cfg.EnvRoot)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	_, err := Load(t.TempDir(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CFGSCAN_SKIP_UNPARSABLE", "true")

	cfg, err := Load(t.TempDir(), "")
	require.NoError(t, err)
	assert.True(t, cfg.SkipUnparsable)
}

func TestLoad_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("env_root: \"  \"\n"), 0644))

	_, err := Load(dir, "")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"no services", func(c *Config) { c.Services = nil }, true},
		{"no accessors", func(c *Config) { c.Accessors = []string{} }, true},
		{"no env root", func(c *Config) { c.EnvRoot = "" }, true},
		{"no exclusions", func(c *Config) { c.Exclusions = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultYAML_RoundTrips(t *testing.T) {
	data, err := DefaultYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "# "+FileName)

	var cfg Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, *Default(), cfg)
}
