// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/daub/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger  logger.Config `toml:"logger"`  // [logger] table
	Canvas  CanvasConfig  `toml:"canvas"`  // Canvas size and palette
	History HistoryConfig `toml:"history"` // Undo/redo behaviour
	Editor  EditorConfig  `toml:"editor"`  // Editor-specific settings
}

// CanvasConfig describes the drawing surface.
type CanvasConfig struct {
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	Layers      int    `toml:"layers"`
	PaletteFile string `toml:"palette_file"`
}

// HistoryConfig controls how edits are grouped into undo steps.
type HistoryConfig struct {
	Grouping bool `toml:"grouping"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	SystemClipboard bool `toml:"system_clipboard"`
	StatusBarHeight int  `toml:"status_bar_height"`
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Canvas: CanvasConfig{
			Width:  DefaultCanvasWidth,
			Height: DefaultCanvasHeight,
			Layers: DefaultLayers,
		},
		History: HistoryConfig{
			Grouping: DefaultGrouping,
		},
		Editor: EditorConfig{
			SystemClipboard: SystemClipboard,
			StatusBarHeight: StatusBarHeight,
		},
	}
}

// DefaultPath returns the default config file location, or "" if the user
// config directory is unknown.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// DefaultLogPath returns where the log goes when none is configured. The
// terminal belongs to the canvas, so logs never default to stderr.
func DefaultLogPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return DefaultLogFileName
	}
	return filepath.Join(configDir, AppName, DefaultLogFileName)
}

// loadFromFile decodes filePath over cfg. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config, verbose bool) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		if verbose {
			logger.Debugf("Config file not found: %s", filePath)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 && verbose {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, metadata.Undecoded())
	}
	if verbose {
		logger.Infof("Successfully loaded configuration from: %s", filePath)
	}
	return nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Canvas.Width <= 0 || c.Canvas.Width > MaxCanvasSize {
		c.Canvas.Width = defaults.Canvas.Width
	}
	if c.Canvas.Height <= 0 || c.Canvas.Height > MaxCanvasSize {
		c.Canvas.Height = defaults.Canvas.Height
	}
	if c.Canvas.Layers <= 0 || c.Canvas.Layers > MaxLayers {
		c.Canvas.Layers = defaults.Canvas.Layers
	}

	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok || c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}

	if c.Editor.StatusBarHeight <= 0 {
		c.Editor.StatusBarHeight = defaults.Editor.StatusBarHeight
	}
}

// Load builds a configuration from defaults, the file at configFilePath
// (the default location when empty) and flag overrides, then validates it.
// Values missing from the file keep their defaults.
func Load(configFilePath string, flags *Flags, verbose bool) (*Config, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultPath()
	}

	var err error
	if effectivePath != "" {
		err = loadFromFile(effectivePath, cfg, verbose)
	}

	if flags != nil {
		flags.ApplyOverrides(cfg, verbose)
	}

	cfg.validate()
	return cfg, err
}

// LoadConfig loads the configuration once and keeps it for Get.
// It is called from main before the logger is initialized, so it does not log.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		loadedConfig, loadErr = Load(configFilePath, flags, false)
	})
	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}
