package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 128, cfg.Codegen.FrameSize)
	assert.False(t, cfg.Codegen.Debug)
	assert.False(t, cfg.Diagnostics.WarningsFatal)
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()

	require.NotEmpty(t, path)
	assert.Equal(t, "config.toml", filepath.Base(path))
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "does-not-exist.toml")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Codegen.FrameSize, cfg.Codegen.FrameSize)
}

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "test_config.toml")

	cfg := DefaultConfig()
	cfg.Codegen.FrameSize = 256
	cfg.Codegen.Debug = true
	cfg.Diagnostics.WarningsFatal = true

	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 256, loaded.Codegen.FrameSize)
	assert.True(t, loaded.Codegen.Debug)
	assert.True(t, loaded.Diagnostics.WarningsFatal)
}

func TestLoadFromInvalidTOMLReturnsError(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "broken.toml")

	require.NoError(t, os.WriteFile(path, []byte("codegen = not valid toml {{{"), 0600))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}
