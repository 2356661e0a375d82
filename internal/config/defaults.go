package config

import (
	_ "embed"

	"github.com/blubits/threefourthree/internal/games/t343"
)

//go:embed defaults/threefourthree.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Database:       "~/.threefourthree/games.db",
		LogLevel:       "info",
		DefaultVariant: t343.DefaultPreset().ID,
		DefaultSlot:    "default",
	}
}
