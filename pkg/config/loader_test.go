package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/sandfix/pkg/errors"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvConfigFile, filepath.Join(t.TempDir(), "does-not-exist.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.TempRoot)
	assert.Empty(t, cfg.Ignore)
}

func TestLoadUserFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sandfix.toml")
	content := `[sandbox]
temp_root = "/var/sandboxes"
ignore = ["\\.svn", "\\.git"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv(EnvConfigFile, path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/var/sandboxes", cfg.TempRoot)
	assert.Equal(t, []string{`\.svn`, `\.git`}, cfg.Ignore)
}

func TestLoadPatternWithComma(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sandfix.toml")
	content := `[sandbox]
ignore = ["tmp\\d{1,3}", "\\.bak$"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv(EnvConfigFile, path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{`tmp\d{1,3}`, `\.bak$`}, cfg.Ignore)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sandfix.toml")
	content := `[sandbox]
temp_root = "/from/file"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv(EnvConfigFile, path)
	t.Setenv("SANDFIX_TEMP_ROOT", "/from/env")
	t.Setenv("SANDFIX_IGNORE", `\.svn,__pycache__`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.TempRoot)
	assert.Equal(t, []string{`\.svn`, `__pycache__`}, cfg.Ignore)
}

func TestLoadBadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sandfix.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0644))
	t.Setenv(EnvConfigFile, path)

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}
