package core

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/umbra3d/umbra/common"
)

// Config holds the runtime settings for an engine instance. All fields have
// sensible defaults so a missing or partial config file still produces a
// runnable engine.
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Render  RenderConfig  `toml:"render"`
	Assets  AssetsConfig  `toml:"assets"`
	Logging LoggingConfig `toml:"logging"`
}

// WindowConfig controls the OS window the engine presents into.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// RenderConfig controls renderer behaviour.
type RenderConfig struct {
	// VSync selects the initial present mode. It can be toggled at runtime.
	VSync bool `toml:"vsync"`
	// ShadowMapSize is the width and height in texels of each spotlight's
	// depth map. Must be a power of two.
	ShadowMapSize uint32 `toml:"shadow_map_size"`
	// SpotlightConeAngle is the full cone angle in degrees used for both
	// spotlight illumination and shadow projection.
	SpotlightConeAngle float32 `toml:"spotlight_cone_angle"`
	// NearClip and FarClip bound the camera and light frusta.
	NearClip float32 `toml:"near_clip"`
	FarClip  float32 `toml:"far_clip"`
}

// AssetsConfig points the engine at its media directories.
type AssetsConfig struct {
	// Dir is the root directory containing shaders/, meshes/ and textures/.
	Dir string `toml:"dir"`
	// WatchForChanges enables hot reload of assets edited on disk.
	WatchForChanges bool `toml:"watch_for_changes"`
}

// LoggingConfig controls the engine logger.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Umbra",
			Width:  1280,
			Height: 960,
		},
		Render: RenderConfig{
			VSync:              true,
			ShadowMapSize:      1024,
			SpotlightConeAngle: 90,
			NearClip:           0.1,
			FarClip:            10000,
		},
		Assets: AssetsConfig{
			Dir:             "assets",
			WatchForChanges: false,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads a TOML config file and merges it over the defaults.
// A missing file is not an error; the defaults are returned unchanged.
//
// Parameters:
//   - path: filesystem path to the TOML file
//
// Returns:
//   - Config: the merged configuration
//   - error: error if the file exists but cannot be read or parsed
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fileCfg Config
	if err := toml.Unmarshal(data, &fileCfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.Window.Title = common.Coalesce(fileCfg.Window.Title, cfg.Window.Title)
	cfg.Window.Width = common.Coalesce(fileCfg.Window.Width, cfg.Window.Width)
	cfg.Window.Height = common.Coalesce(fileCfg.Window.Height, cfg.Window.Height)
	cfg.Render.VSync = fileCfg.Render.VSync
	cfg.Render.ShadowMapSize = common.Coalesce(fileCfg.Render.ShadowMapSize, cfg.Render.ShadowMapSize)
	cfg.Render.SpotlightConeAngle = common.Coalesce(fileCfg.Render.SpotlightConeAngle, cfg.Render.SpotlightConeAngle)
	cfg.Render.NearClip = common.Coalesce(fileCfg.Render.NearClip, cfg.Render.NearClip)
	cfg.Render.FarClip = common.Coalesce(fileCfg.Render.FarClip, cfg.Render.FarClip)
	cfg.Assets.Dir = common.Coalesce(fileCfg.Assets.Dir, cfg.Assets.Dir)
	cfg.Assets.WatchForChanges = fileCfg.Assets.WatchForChanges
	cfg.Logging.Level = common.Coalesce(fileCfg.Logging.Level, cfg.Logging.Level)

	return cfg, nil
}
