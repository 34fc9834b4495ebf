// Package config loads the launcher settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// Frontend names.
const (
	FrontendDesktop  = "desktop"
	FrontendTerminal = "terminal"
)

// SeedEnv overrides the seed from the settings file.
const SeedEnv = "SPACEACTION_SEED"

var ErrInvalidSettings = errors.New("invalid settings")

type Window struct {
	Scale float64 `toml:"scale"`
	VSync bool    `toml:"vsync"`
	Title string  `toml:"title"`
}

type Terminal struct {
	FPS       int `toml:"fps"`
	KeyHoldMS int `toml:"key_hold_ms"` // terminals report no key release
}

type Settings struct {
	Frontend string   `toml:"frontend"`
	Seed     uint64   `toml:"seed"` // 0 = clock
	LogLevel string   `toml:"log_level"`
	LogFile  string   `toml:"log_file"`
	Window   Window   `toml:"window"`
	Terminal Terminal `toml:"terminal"`
}

func Default() Settings {
	return Settings{
		Frontend: FrontendDesktop,
		LogLevel: "info",
		Window: Window{
			Scale: 1,
			VSync: true,
			Title: "Space Action",
		},
		Terminal: Terminal{
			FPS:       60,
			KeyHoldMS: 120,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/spaceaction/config.toml, falling back
// to the platform config dir.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		d, err := os.UserConfigDir()
		if err != nil {
			return "config.toml"
		}
		dir = d
	}
	return filepath.Join(dir, "spaceaction", "config.toml")
}

// Load reads path over the defaults and applies the seed env override. A
// missing file is not an error. The result is not validated; callers apply
// their own overrides first and then call Validate.
func Load(path string) (Settings, error) {
	s := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &s); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return s, fmt.Errorf("load %s: %w", path, err)
		}
	}
	if v := os.Getenv(SeedEnv); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return s, fmt.Errorf("%s: %w", SeedEnv, err)
		}
		s.Seed = seed
	}
	return s, nil
}

// Save writes s as TOML, creating the parent directory.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := toml.NewEncoder(f).Encode(s); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func (s Settings) Validate() error {
	switch s.Frontend {
	case FrontendDesktop, FrontendTerminal:
	default:
		return fmt.Errorf("%w: frontend %q", ErrInvalidSettings, s.Frontend)
	}
	if _, err := zerolog.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalidSettings, s.LogLevel)
	}
	if s.Window.Scale <= 0 || s.Window.Scale > 8 {
		return fmt.Errorf("%w: window.scale %v", ErrInvalidSettings, s.Window.Scale)
	}
	if s.Terminal.FPS <= 0 || s.Terminal.FPS > 240 {
		return fmt.Errorf("%w: terminal.fps %d", ErrInvalidSettings, s.Terminal.FPS)
	}
	if s.Terminal.KeyHoldMS <= 0 {
		return fmt.Errorf("%w: terminal.key_hold_ms %d", ErrInvalidSettings, s.Terminal.KeyHoldMS)
	}
	return nil
}
