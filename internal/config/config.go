// Package config provides YAML-based configuration loading for the
// threefourthree command-line tool.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/blubits/threefourthree/internal/games/t343"
)

// Config contains all settings read from the config file.
type Config struct {
	Database       string          `yaml:"database"`        // Path to the SQLite database
	LogLevel       string          `yaml:"log_level"`       // debug, info, warn, error
	DefaultVariant string          `yaml:"default_variant"` // Variant used by "new" without --variant
	DefaultSlot    string          `yaml:"default_slot"`    // Save slot used without --slot
	Variants       []VariantConfig `yaml:"variants"`        // Extra variants on top of the built-in presets
}

// VariantConfig defines a custom game variant.
type VariantConfig struct {
	ID           string `yaml:"id"`
	Title        string `yaml:"title"`
	Size         int    `yaml:"size"`
	InitialValue int    `yaml:"initial_value"`
	InitialTiles int    `yaml:"initial_tiles"`
	WinCondition int    `yaml:"win_condition"`
}

// Settings converts the variant into game settings.
func (v VariantConfig) Settings() t343.Settings {
	return t343.Settings{
		Size:         v.Size,
		InitialValue: v.InitialValue,
		InitialTiles: v.InitialTiles,
		WinCondition: v.WinCondition,
	}
}

// Validate checks the config for values the tool cannot use.
func (c Config) Validate() error {
	if c.Database == "" {
		return fmt.Errorf("config: database path is empty")
	}
	if c.DefaultVariant == "" {
		return fmt.Errorf("config: default_variant is empty")
	}
	if c.DefaultSlot == "" {
		return fmt.Errorf("config: default_slot is empty")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}

	seen := make(map[string]bool, len(c.Variants))
	for i, v := range c.Variants {
		if v.ID == "" {
			return fmt.Errorf("config: variant %d has no id", i)
		}
		if seen[v.ID] || t343.GetPreset(v.ID) != nil {
			return fmt.Errorf("config: variant %q defined twice", v.ID)
		}
		seen[v.ID] = true
		if err := v.Settings().Validate(); err != nil {
			return fmt.Errorf("config: variant %q: %w", v.ID, err)
		}
	}
	return nil
}
