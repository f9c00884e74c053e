package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"taskmgr/internal/filter"
)

const (
	DefaultConfigFileName = "config.toml"
	AppDirName            = "taskmgr"
	EnvConfigPath         = "TASKMGR_CONFIG"
)

type Keymap struct {
	Quit          string `toml:"quit"`
	Add           string `toml:"add"`
	Up            string `toml:"up"`
	Down          string `toml:"down"`
	Toggle        string `toml:"toggle"`
	Confirm       string `toml:"confirm"`
	Cancel        string `toml:"cancel"`
	NextField     string `toml:"next_field"`
	ViewAll       string `toml:"view_all"`
	ViewActive    string `toml:"view_active"`
	ViewCompleted string `toml:"view_completed"`
	CycleView     string `toml:"cycle_view"`
}

type Config struct {
	DefaultView string `toml:"default_view"`
	LogPath     string `toml:"log_path"`
	Keys        Keymap `toml:"keys"`
}

// View parses DefaultView.
func (c Config) View() (filter.Mode, error) {
	return filter.ParseMode(c.DefaultView)
}

// ResolveConfigPath prefers $TASKMGR_CONFIG, then the user config dir,
// then a file in the working directory.
func ResolveConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, AppDirName, DefaultConfigFileName)
}

func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.fillDefaults()
	if _, err := cfg.View(); err != nil {
		return cfg, fmt.Errorf("default_view: %w", err)
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) fillDefaults() {
	d := Default()
	if c.DefaultView == "" {
		c.DefaultView = d.DefaultView
	}
	keys := []struct {
		dst *string
		def string
	}{
		{&c.Keys.Quit, d.Keys.Quit},
		{&c.Keys.Add, d.Keys.Add},
		{&c.Keys.Up, d.Keys.Up},
		{&c.Keys.Down, d.Keys.Down},
		{&c.Keys.Toggle, d.Keys.Toggle},
		{&c.Keys.Confirm, d.Keys.Confirm},
		{&c.Keys.Cancel, d.Keys.Cancel},
		{&c.Keys.NextField, d.Keys.NextField},
		{&c.Keys.ViewAll, d.Keys.ViewAll},
		{&c.Keys.ViewActive, d.Keys.ViewActive},
		{&c.Keys.ViewCompleted, d.Keys.ViewCompleted},
		{&c.Keys.CycleView, d.Keys.CycleView},
	}
	for _, k := range keys {
		if *k.dst == "" {
			*k.dst = k.def
		}
	}
}

func Default() Config {
	return Config{
		DefaultView: filter.Default.Key(),
		Keys: Keymap{
			Quit:          "q",
			Add:           "a",
			Up:            "k",
			Down:          "j",
			Toggle:        " ",
			Confirm:       "enter",
			Cancel:        "esc",
			NextField:     "tab",
			ViewAll:       "1",
			ViewActive:    "2",
			ViewCompleted: "3",
			CycleView:     "v",
		},
	}
}
