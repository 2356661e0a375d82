// Package core provides the small shared types used by the game engine and
// its callers. It has no external dependencies to keep game logic pure and
// testable.
package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	Seed int64 // RNG seed for deterministic gameplay, 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed: 0,
	}
}

// ResolvedSeed returns the configured seed, or a time-based one when unset.
func (c RuntimeConfig) ResolvedSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
