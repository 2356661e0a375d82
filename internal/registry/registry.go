// Package registry provides a catalogue of playable game variants.
// Built-in presets and variants from the config file are registered at
// startup, allowing the CLI to create games by variant ID without hardcoded
// settings.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/blubits/threefourthree/internal/core"
	"github.com/blubits/threefourthree/internal/games/t343"
)

// Variant is a named set of game settings.
type Variant struct {
	ID       string
	Title    string
	Settings t343.Settings
}

// Registry holds variants keyed by ID.
type Registry struct {
	mu       sync.RWMutex
	variants map[string]Variant
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{variants: make(map[string]Variant)}
}

// Register adds a variant. It fails if the ID is taken or the settings are
// unplayable.
func (r *Registry) Register(v Variant) error {
	if v.ID == "" {
		return fmt.Errorf("registry: variant has empty ID")
	}
	if err := v.Settings.Validate(); err != nil {
		return fmt.Errorf("registry: variant %q: %w", v.ID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.variants[v.ID]; exists {
		return fmt.Errorf("registry: variant %q already registered", v.ID)
	}
	if v.Title == "" {
		v.Title = v.ID
	}
	r.variants[v.ID] = v
	return nil
}

// RegisterPresets adds every built-in preset.
func (r *Registry) RegisterPresets() error {
	for _, p := range t343.Presets {
		if err := r.Register(Variant{ID: p.ID, Title: p.Name, Settings: p.Settings}); err != nil {
			return err
		}
	}
	return nil
}

// List returns all registered variants, sorted by ID.
func (r *Registry) List() []Variant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Variant, 0, len(r.variants))
	for _, v := range r.variants {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the variant with the given ID.
func (r *Registry) Lookup(id string) (Variant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}
	return v, nil
}

// Exists checks if a variant with the given ID is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.variants[id]
	return ok
}

// Create starts a new game of the given variant.
func (r *Registry) Create(id string, cfg core.RuntimeConfig) (*t343.Game, error) {
	v, err := r.Lookup(id)
	if err != nil {
		return nil, err
	}
	return t343.New(v.Settings, cfg)
}
