package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/zhubert/wachat/internal/errors"
	"github.com/zhubert/wachat/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoad_NewConfig(t *testing.T) {
	t.Setenv(DirEnv, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.HasTheme() {
		t.Error("a fresh config should not have an explicit theme")
	}
	if got := cfg.GetColorTheme(); got != ColorDefault {
		t.Errorf("GetColorTheme() = %q, want %q", got, ColorDefault)
	}
	if cfg.GetNotificationsEnabled() {
		t.Error("notifications should default to off")
	}
}

func TestLoad_HomeDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(DirEnv, "")

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() failed: %v", err)
	}
	if want := filepath.Join(home, ".wachat", "config.json"); path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}
}

func TestLoadFrom_ExistingConfig(t *testing.T) {
	path := writeConfig(t, `{"theme": "dark", "colorTheme": "purple", "notifications_enabled": true}`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}

	if got := cfg.GetTheme(); got != ThemeDark {
		t.Errorf("GetTheme() = %q, want %q", got, ThemeDark)
	}
	if got := cfg.GetColorTheme(); got != ColorPurple {
		t.Errorf("GetColorTheme() = %q, want %q", got, ColorPurple)
	}
	if !cfg.GetNotificationsEnabled() {
		t.Error("notifications should be enabled")
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	path := writeConfig(t, "invalid json")

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("LoadFrom() should fail with invalid JSON")
	}
	if !errors.Is(err, errors.KindConfig) {
		t.Errorf("expected KindConfig, got %v", errors.GetKind(err))
	}
}

func TestLoadFrom_UnknownValuesFallBack(t *testing.T) {
	path := writeConfig(t, `{"theme": "sepia", "colorTheme": "orange"}`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() should tolerate unknown values, got %v", err)
	}
	if cfg.HasTheme() {
		t.Errorf("unknown theme should be dropped, got %q", cfg.GetTheme())
	}
	if got := cfg.GetColorTheme(); got != ColorDefault {
		t.Errorf("unknown colorTheme should fall back to default, got %q", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{"empty", &Config{}, false},
		{"valid", &Config{Theme: ThemeLight, ColorTheme: ColorBlue}, false},
		{"bad theme", &Config{Theme: "neon"}, true},
		{"bad color", &Config{ColorTheme: "red"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.KindInvalid) {
				t.Errorf("expected KindInvalid, got %v", errors.GetKind(err))
			}
		})
	}
}

func TestConfig_Setters(t *testing.T) {
	cfg := &Config{}

	for _, theme := range Themes() {
		if err := cfg.SetTheme(theme); err != nil {
			t.Errorf("SetTheme(%q) failed: %v", theme, err)
		}
		if cfg.GetTheme() != theme {
			t.Errorf("GetTheme() = %q, want %q", cfg.GetTheme(), theme)
		}
	}
	if err := cfg.SetTheme("sepia"); err == nil {
		t.Error("SetTheme should reject unknown themes")
	}
	if cfg.GetTheme() != ThemeDark {
		t.Errorf("rejected SetTheme changed the value to %q", cfg.GetTheme())
	}

	for _, color := range ColorThemes() {
		if err := cfg.SetColorTheme(color); err != nil {
			t.Errorf("SetColorTheme(%q) failed: %v", color, err)
		}
	}
	if err := cfg.SetColorTheme("orange"); err == nil {
		t.Error("SetColorTheme should reject unknown colors")
	}

	cfg.SetNotificationsEnabled(true)
	if !cfg.GetNotificationsEnabled() {
		t.Error("SetNotificationsEnabled(true) not applied")
	}
}

func TestConfig_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}

	cfg.SetTheme(ThemeLight)
	cfg.SetColorTheme(ColorBlue)
	cfg.SetNotificationsEnabled(true)
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved config: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("saved config is not valid JSON: %v", err)
	}
	if raw["theme"] != "light" || raw["colorTheme"] != "blue" {
		t.Errorf("unexpected stored keys: %v", raw)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() after save failed: %v", err)
	}
	if loaded.GetTheme() != ThemeLight || loaded.GetColorTheme() != ColorBlue || !loaded.GetNotificationsEnabled() {
		t.Errorf("round trip lost values: theme=%q color=%q notify=%v",
			loaded.GetTheme(), loaded.GetColorTheme(), loaded.GetNotificationsEnabled())
	}
}

func TestConfig_SaveInMemory(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Save(); err != nil {
		t.Errorf("Save() on an in-memory config should be a no-op, got %v", err)
	}
}

func TestConfig_SaveRaceWithMutations(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "config.json")
	cfg := &Config{filePath: configPath}

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			for j := range 5 {
				cfg.SetTheme(Themes()[(n+j)%2])
				cfg.SetColorTheme(ColorThemes()[(n+j)%3])
			}
		}(i)
		go func() {
			defer wg.Done()
			for range 5 {
				_ = cfg.Save()
			}
		}()
	}
	wg.Wait()

	if err := cfg.Save(); err != nil {
		t.Fatalf("Final save failed: %v", err)
	}
	if _, err := LoadFrom(configPath); err != nil {
		t.Fatalf("config file is corrupted: %v", err)
	}
}
