package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "umbra.toml")
	content := `
[window]
title = "Shadow Demo"

[render]
vsync = true
shadow_map_size = 2048

[logging]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Shadow Demo", cfg.Window.Title)
	assert.Equal(t, uint32(2048), cfg.Render.ShadowMapSize)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Fields absent from the file keep their defaults.
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, float32(90), cfg.Render.SpotlightConeAngle)
	assert.Equal(t, float32(0.1), cfg.Render.NearClip)
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "umbra.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window\ntitle ="), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
