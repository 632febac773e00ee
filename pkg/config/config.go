package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the lock screen settings persisted in config.json.
type Config struct {
	Passcode      string `json:"passcode"`
	WallpaperPath string `json:"wallpaper_path"`
	KeypadLength  int    `json:"keypad_length"`
}

// Default returns a config with built-in defaults. The default wallpaper
// is an optional neighbouring file next to the executable.
func Default() Config {
	return Config{
		Passcode:      DefaultPasscode,
		WallpaperPath: filepath.Join(execDir(), DefaultWallpaperName),
		KeypadLength:  DefaultKeypadLength,
	}
}

// execDir returns the directory of the running executable. Config and
// resources are resolved relative to it.
func execDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// Path returns the location of the config file next to the executable.
func Path() string {
	return filepath.Join(execDir(), FileName)
}

// Load reads the config from its default location. The returned Config is
// always usable: on any failure it carries the defaults and the error says
// why the file was ignored.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads and validates the config file at path. A missing file is
// not an error; a malformed one is reported but still yields defaults.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), err
	}

	if err := validateShape(data); err != nil {
		return Default(), fmt.Errorf("config shape: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}

	// Hand-edited files keep whatever relationship passcode and
	// keypad_length happen to have; only a useless length is corrected.
	if cfg.KeypadLength < 1 {
		cfg.KeypadLength = DefaultKeypadLength
	}

	return cfg, nil
}

// Save writes the config to its default location.
func Save(cfg Config) error {
	return SaveTo(Path(), cfg)
}

// SaveTo writes the config to path, creating the file if needed.
func SaveTo(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
