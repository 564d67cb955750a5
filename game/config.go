package game

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds game configuration constants
type Config struct {
	// ScreenWidth is the play field width in pixels
	ScreenWidth int `yaml:"screen_width"`

	// ScreenHeight is the play field height in pixels (HUD strip excluded)
	ScreenHeight int `yaml:"screen_height"`

	// HUDHeight is the status strip drawn below the play field
	HUDHeight int `yaml:"hud_height"`

	// Fullscreen starts the window in fullscreen mode
	Fullscreen bool `yaml:"fullscreen"`

	// BaseFPS is the frame rate all movement constants are tuned for
	BaseFPS int `yaml:"base_fps"`

	// FPS is the target frame rate (60 or 120)
	FPS int `yaml:"fps"`

	// Volume is the master volume in percent, stepped by 10
	Volume int `yaml:"volume"`

	// ShipSpeed is the player speed per axis in pixels per base frame
	ShipSpeed float64 `yaml:"ship_speed"`

	// ShotCooldown is the number of base frames between player shots
	ShotCooldown int `yaml:"shot_cooldown"`

	// DodgeCooldown is the number of base frames between dodges
	DodgeCooldown float64 `yaml:"dodge_cooldown"`

	// PlayerMaxHP is the player's starting maximum health
	PlayerMaxHP float64 `yaml:"player_max_hp"`

	// BossBaseHealth is the level 1 boss health
	BossBaseHealth float64 `yaml:"boss_base_health"`

	// BossHealthGrowth multiplies boss max health on each defeat
	BossHealthGrowth float64 `yaml:"boss_health_growth"`

	// HealChance is the percent chance that an enemy shot heals instead of hurting
	HealChance int `yaml:"heal_chance"`

	// StarfieldSize is the number of background stars
	StarfieldSize int `yaml:"starfield_size"`

	// GridCellSize is the broad-phase collision cell size in pixels
	GridCellSize float64 `yaml:"grid_cell_size"`

	// AssetDir optionally points at a directory of sprite overrides
	AssetDir string `yaml:"asset_dir"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:      1280,
		ScreenHeight:     660,
		HUDHeight:        60,
		BaseFPS:          60,
		FPS:              60,
		Volume:           10,
		ShipSpeed:        9,
		ShotCooldown:     5,
		DodgeCooldown:    60 * 2.5,
		PlayerMaxHP:      15,
		BossBaseHealth:   100,
		BossHealthGrowth: 1.5,
		HealChance:       4,
		StarfieldSize:    300,
		GridCellSize:     128,
	}
}

// LoadConfig reads a YAML file over the defaults and then applies
// SPACEHUNT_* environment overrides. An empty path skips the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv("SPACEHUNT_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Volume = n
		}
	}
	if v := os.Getenv("SPACEHUNT_FPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.FPS = n
		}
	}
	if v := os.Getenv("SPACEHUNT_FULLSCREEN"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Fullscreen = b
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.BaseFPS <= 0 {
		return fmt.Errorf("base_fps must be positive, got %d", c.BaseFPS)
	}
	if c.FPS != c.BaseFPS && c.FPS != 2*c.BaseFPS {
		return fmt.Errorf("fps must be %d or %d, got %d", c.BaseFPS, 2*c.BaseFPS, c.FPS)
	}
	if c.Volume < 0 || c.Volume > 100 {
		return fmt.Errorf("volume must be within 0..100, got %d", c.Volume)
	}
	if c.PlayerMaxHP <= 0 || c.BossBaseHealth <= 0 {
		return fmt.Errorf("health values must be positive")
	}
	if c.HealChance < 0 || c.HealChance > 100 {
		return fmt.Errorf("heal_chance must be within 0..100, got %d", c.HealChance)
	}
	if c.GridCellSize <= 0 {
		return fmt.Errorf("grid_cell_size must be positive")
	}
	return nil
}

// WindowHeight is the full window height including the HUD strip
func (c Config) WindowHeight() int {
	return c.ScreenHeight + c.HUDHeight
}

// Width returns the play field width as a float
func (c Config) Width() float64 {
	return float64(c.ScreenWidth)
}

// Height returns the play field height as a float
func (c Config) Height() float64 {
	return float64(c.ScreenHeight)
}
