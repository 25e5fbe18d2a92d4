package config

import (
	"fmt"
	"sort"

	"landscape/internal/terrain"
)

// Presets are the shipped multi-biome line-ups, ordered low to high
// elevation.
var Presets = map[string][]string{
	"coastal":         {"ocean", "beach", "plains", "forest"},
	"mountain_valley": {"plains", "forest", "mountains"},
	"alpine_lake":     {"ocean", "alpine", "mountains"},
	"tropical":        {"ocean", "beach", "jungle"},
	"arctic":          {"ocean", "ice"},
	"desert_oasis":    {"plains", "desert", "mountains"},
	"fjord":           {"ocean", "mountains"},
	"highlands":       {"plains", "alpine"},
}

// PresetNames returns the preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BandsFor builds classifier bands from an ordered list of built-in
// biome names, splitting the height range evenly between them. The last
// biome is the catch-all.
func BandsFor(names []string) ([]terrain.Band, error) {
	if len(names) == 0 {
		return nil, Errorf("biomes", "no biome names given")
	}
	bands := make([]terrain.Band, 0, len(names))
	for i, name := range names {
		biome, ok := terrain.Builtin[name]
		if !ok {
			return nil, fmt.Errorf("unknown biome %q", name)
		}
		upTo := float64(i+1) / float64(len(names))
		if i == len(names)-1 {
			upTo = 0 // catch-all
		}
		bands = append(bands, terrain.Band{UpTo: upTo, Biome: biome})
	}
	return bands, nil
}
