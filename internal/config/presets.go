package config

import "sort"

var Presets = map[string]*Config{
	"classic": {
		WindowSize: 800, CellSize: 20, FPS: 10, AdvanceKey: "space", Theme: "minimal",
	},
	"small": {
		WindowSize: 400, CellSize: 20, FPS: 10, AdvanceKey: "space", Theme: "retro",
		Pattern: "blinker",
	},
	"large": {
		WindowSize: 900, CellSize: 10, FPS: 10, AdvanceKey: "space", Theme: "ocean",
		Pattern: "pulsar",
	},
	"methuselah": {
		WindowSize: 800, CellSize: 20, FPS: 10, AdvanceKey: "space", Theme: "sunset",
		Pattern: "r-pentomino",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
