package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/modal/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // [logger] table
	Editor EditorConfig  `toml:"editor"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth        int    `toml:"tab_width"`
	ScrollOff       int    `toml:"scroll_off"`
	SystemClipboard bool   `toml:"system_clipboard"`
	BackupOnSave    bool   `toml:"backup_on_save"`
	Theme           string `toml:"theme"` // path to a theme TOML, empty for the built-in theme
	ShowLineNumbers bool   `toml:"show_line_numbers"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: SystemClipboard,
			BackupOnSave:    BackupOnSave,
			ShowLineNumbers: ShowLineNumbers,
		},
	}
}

// DefaultPath returns ~/.config/modal/config.toml, or "" when the user
// config dir is unknown.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// loadFromFile decodes filePath over cfg. A missing file leaves cfg alone.
// Keys the decoder did not recognise are returned for the caller to report.
func loadFromFile(filePath string, cfg *Config) ([]string, error) {
	_, err := os.Stat(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	var undecoded []string
	for _, key := range metadata.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return undecoded, nil
}

// validate resets invalid values to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 { // 0 is allowed
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// Result is a loaded configuration plus the problems worth reporting once
// the logger is up.
type Result struct {
	Config *Config
	// Path is the config file that was consulted, possibly nonexistent.
	Path string
	// Unrecognized lists keys in the file that matched no setting.
	Unrecognized []string
}

// LoadConfig layers defaults, the config file and flag overrides, then
// validates. configFilePath overrides DefaultPath. A file that fails to
// parse is reported as an error alongside a usable default-based Config.
func LoadConfig(configFilePath string, flags *Flags) (Result, error) {
	cfg := NewDefaultConfig()
	res := Result{Config: cfg, Path: configFilePath}
	if res.Path == "" {
		res.Path = DefaultPath()
	}

	var loadErr error
	if res.Path != "" {
		fileCfg := NewDefaultConfig()
		undecoded, err := loadFromFile(res.Path, fileCfg)
		if err != nil {
			loadErr = err
		} else {
			*cfg = *fileCfg
			res.Unrecognized = undecoded
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return res, loadErr
}
