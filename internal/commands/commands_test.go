package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jenian/cfgscan/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand("1.2.3")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)
}

func TestInitConfigCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "init-config", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Created")

	data, err := os.ReadFile(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "EtcdService")

	cfg, err := config.Load(dir, "")
	require.NoError(t, err)
	defaults := config.Default()
	assert.Equal(t, defaults.Services, cfg.Services)
	assert.Equal(t, defaults.Accessors, cfg.Accessors)
	assert.Equal(t, defaults.Exclusions, cfg.Exclusions)
	assert.Equal(t, defaults.EnvRoot, cfg.EnvRoot)
}

func TestInitConfigCommand_AlreadyExists(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("services: [X]\n"), 0644))

	_, err := execute(t, "init-config", "--dir", dir)
	assert.ErrorContains(t, err, "already exists")
}

func TestRootCommand_TooManyArgs(t *testing.T) {
	_, err := execute(t, "a", "b")
	assert.Error(t, err)
}

func TestRootCommand_Header(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "--no-color", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Version: 1.2.3")
	assert.Contains(t, out, "Configuration keys used in "+dir+":")
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("services: []\n"), 0644))

	_, err := execute(t, dir)
	assert.ErrorIs(t, err, config.ErrInvalid)
}
