package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"landscape/internal/terrain"
)

// BiomeSpec is the YAML form of one classifier band. Thresholds are
// ascending; the last entry's threshold may be omitted (catch-all).
type BiomeSpec struct {
	Name        string  `yaml:"name"`
	UpTo        float64 `yaml:"up_to"`
	ColorLo     string  `yaml:"color_lo"`
	ColorHi     string  `yaml:"color_hi"`
	Glyphs      string  `yaml:"glyphs"`
	Roughness   float64 `yaml:"roughness"`
	TreeDensity float64 `yaml:"tree_density"`
}

// CameraSpec positions the viewer. Angles are degrees; zero resolution
// fields fall back to the caller's defaults.
type CameraSpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Z     float64 `yaml:"z"`
	Yaw   float64 `yaml:"yaw"`
	Pitch float64 `yaml:"pitch"`
	FOV   float64 `yaml:"fov"`
}

// Scene is a whole render description loadable from a YAML file. The
// core never reads files itself; the CLI loads a Scene and passes the
// resolved structs down.
type Scene struct {
	Seed  int64 `yaml:"seed"`
	World struct {
		Width  int `yaml:"width"`
		Depth  int `yaml:"depth"`
		Height int `yaml:"height"`
	} `yaml:"world"`
	Camera CameraSpec  `yaml:"camera"`
	Biomes []BiomeSpec `yaml:"biomes"`
	Haze   struct {
		Power     float64 `yaml:"power"`
		Intensity float64 `yaml:"intensity"`
	} `yaml:"haze"`
	MaxDistance float64 `yaml:"max_distance"`
}

// LoadScene reads and parses a YAML scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scene: %w", err)
	}
	return ParseScene(data)
}

// ParseScene parses YAML scene bytes.
func ParseScene(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return &s, nil
}

// Bands resolves the scene's biome specs into classifier bands. A spec
// naming a built-in biome inherits its palette; explicit colors
// override it. Unknown names without colors are an error.
func (s *Scene) Bands() ([]terrain.Band, error) {
	if len(s.Biomes) == 0 {
		return nil, Errorf("biomes", "scene defines no biomes")
	}
	bands := make([]terrain.Band, 0, len(s.Biomes))
	for i, spec := range s.Biomes {
		biome, ok := terrain.Builtin[spec.Name]
		if !ok {
			if spec.ColorLo == "" || spec.ColorHi == "" {
				return nil, Errorf("biomes", "unknown biome %q and no colors given", spec.Name)
			}
			biome = terrain.Biome{Name: spec.Name}
		}
		if spec.ColorLo != "" {
			c, err := terrain.Hex(spec.ColorLo)
			if err != nil {
				return nil, fmt.Errorf("biome %q: %w", spec.Name, err)
			}
			biome.ColorLo = c
		}
		if spec.ColorHi != "" {
			c, err := terrain.Hex(spec.ColorHi)
			if err != nil {
				return nil, fmt.Errorf("biome %q: %w", spec.Name, err)
			}
			biome.ColorHi = c
		}
		if spec.Glyphs != "" {
			biome.Glyphs = []rune(spec.Glyphs)
		}
		if spec.Roughness != 0 {
			biome.Roughness = spec.Roughness
		}
		if spec.TreeDensity != 0 {
			biome.TreeDensity = spec.TreeDensity
		}
		upTo := spec.UpTo
		if i == len(s.Biomes)-1 {
			upTo = 0 // catch-all; threshold ignored
		}
		bands = append(bands, terrain.Band{UpTo: upTo, Biome: biome})
	}
	return bands, nil
}
