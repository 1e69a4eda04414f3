// Package config persists wachat's display preferences.
//
// Only the appearance settings survive a restart; conversations always start
// from the seed data.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/zhubert/wachat/internal/errors"
	"github.com/zhubert/wachat/internal/logger"
)

// Theme modes stored under the "theme" key.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Accent colors stored under the "colorTheme" key.
const (
	ColorDefault = "default"
	ColorPurple  = "purple"
	ColorBlue    = "blue"
)

// DirEnv overrides the directory holding config.json.
const DirEnv = "WACHAT_CONFIG_DIR"

var (
	themes      = []string{ThemeLight, ThemeDark}
	colorThemes = []string{ColorDefault, ColorPurple, ColorBlue}
)

// Themes returns the valid theme modes.
func Themes() []string { return slices.Clone(themes) }

// ColorThemes returns the valid accent colors.
func ColorThemes() []string { return slices.Clone(colorThemes) }

// Config holds the persisted preferences
type Config struct {
	Theme                string `json:"theme,omitempty"`                 // "light" or "dark"; empty follows the terminal
	ColorTheme           string `json:"colorTheme,omitempty"`            // accent color
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // desktop notification on replies

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".wachat"), nil
}

// DefaultPath returns the path Load reads from.
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from the default location.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, errors.ConfigLoadFailed("~/.wachat", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file yields defaults.
// Unknown preference values are dropped with a warning rather than failing startup.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.ensureInitialized()
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := cfg.Validate(); err != nil {
		logger.WithComponent("config").Warn("ignoring invalid preferences", "path", path, "error", err)
		cfg.dropInvalid()
	}
	cfg.ensureInitialized()

	return cfg, nil
}

// ensureInitialized fills defaults. Only called before the Config is shared.
func (c *Config) ensureInitialized() {
	if c.ColorTheme == "" {
		c.ColorTheme = ColorDefault
	}
}

func (c *Config) dropInvalid() {
	if c.Theme != "" && !slices.Contains(themes, c.Theme) {
		c.Theme = ""
	}
	if c.ColorTheme != "" && !slices.Contains(colorThemes, c.ColorTheme) {
		c.ColorTheme = ""
	}
}

// Validate checks that stored values are known.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.Theme != "" && !slices.Contains(themes, c.Theme) {
		return errors.ConfigInvalid("unknown theme " + c.Theme)
	}
	if c.ColorTheme != "" && !slices.Contains(colorThemes, c.ColorTheme) {
		return errors.ConfigInvalid("unknown colorTheme " + c.ColorTheme)
	}
	return nil
}

// Path returns the backing file, or "" for an in-memory config.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// SetFilePath points the config at a backing file.
func (c *Config) SetFilePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filePath = path
}

// Save writes the config to disk. Configs not backed by a file are not written.
// Saves are serialized so concurrent callers never interleave partial files.
func (c *Config) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.filePath == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// HasTheme reports whether a theme mode was chosen explicitly.
func (c *Config) HasTheme() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme != ""
}

// GetTheme returns the theme mode, "" when unset
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the theme mode
func (c *Config) SetTheme(theme string) error {
	if !slices.Contains(themes, theme) {
		return errors.ConfigInvalid("unknown theme " + theme)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
	return nil
}

// GetColorTheme returns the accent color
func (c *Config) GetColorTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.ColorTheme == "" {
		return ColorDefault
	}
	return c.ColorTheme
}

// SetColorTheme sets the accent color
func (c *Config) SetColorTheme(color string) error {
	if !slices.Contains(colorThemes, color) {
		return errors.ConfigInvalid("unknown colorTheme " + color)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ColorTheme = color
	return nil
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}
