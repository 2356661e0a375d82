package t343

// Preset is a built-in named set of game settings.
type Preset struct {
	ID       string
	Name     string
	Settings Settings
}

// Presets lists the built-in variants. The first entry is the default.
var Presets = []Preset{
	{ID: "classic", Name: "Classic", Settings: Settings{Size: 4, InitialValue: 3, InitialTiles: 2, WinCondition: 7}},
	{ID: "mini", Name: "Mini", Settings: Settings{Size: 3, InitialValue: 3, InitialTiles: 2, WinCondition: 5}},
	{ID: "grand", Name: "Grand", Settings: Settings{Size: 5, InitialValue: 3, InitialTiles: 3, WinCondition: 9}},
	// Crowded start used by the first terminal version of the game.
	{ID: "crowded", Name: "Crowded", Settings: Settings{Size: 4, InitialValue: 2, InitialTiles: 15, WinCondition: 11}},
}

// DefaultPreset returns the preset new games use when no variant is named.
func DefaultPreset() Preset {
	return Presets[0]
}

// GetPreset returns the preset with the given ID, or nil if there is none.
func GetPreset(id string) *Preset {
	for i := range Presets {
		if Presets[i].ID == id {
			return &Presets[i]
		}
	}
	return nil
}
