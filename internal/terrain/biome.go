package terrain

import "sort"

// Biome defines a terrain category: its color gradient, surface glyphs,
// and generation parameters. ColorLo/ColorHi span the biome's height
// band, low elevation to high.
type Biome struct {
	Name string

	ColorLo RGB
	ColorHi RGB

	// Surface glyphs drawn on top faces. Empty means a solid block.
	Glyphs []rune

	// Roughness biases fractal layering toward finer octaves.
	Roughness float64

	// TreeDensity is the fraction of eligible columns that sprout a
	// detail object, 0 to 1.
	TreeDensity float64
}

// Builtin is the named biome registry. Ordered lists of these names form
// a landscape, near to far, classified by height thresholds.
var Builtin = map[string]Biome{
	"ocean": {
		Name:        "Ocean",
		ColorLo:     MustHex("#002f4f"),
		ColorHi:     MustHex("#005c7e"),
		Glyphs:      []rune("∼∽"),
		Roughness:   0.2,
		TreeDensity: 0,
	},
	"beach": {
		Name:        "Beach",
		ColorLo:     MustHex("#b89a6a"),
		ColorHi:     MustHex("#e8d5a3"),
		Glyphs:      []rune("⋅∙"),
		Roughness:   0.2,
		TreeDensity: 0.01,
	},
	"forest": {
		Name:        "Forest",
		ColorLo:     MustHex("#002800"),
		ColorHi:     MustHex("#086200"),
		Roughness:   0.1,
		TreeDensity: 0.7,
	},
	"mountains": {
		Name:        "Mountains",
		ColorLo:     MustHex("#202020"),
		ColorHi:     MustHex("#eeeeee"),
		Roughness:   0.8,
		TreeDensity: 0.05,
	},
	"jungle": {
		Name:        "Jungle",
		ColorLo:     MustHex("#56971d"),
		ColorHi:     MustHex("#21410d"),
		Roughness:   0.6,
		TreeDensity: 0.85,
	},
	"ice": {
		Name:        "Ice",
		ColorLo:     MustHex("#8aa3f1"),
		ColorHi:     MustHex("#f0faff"),
		Roughness:   0.4,
		TreeDensity: 0,
	},
	"plains": {
		Name:        "Plains",
		ColorLo:     MustHex("#489c33"),
		ColorHi:     MustHex("#73a400"),
		Glyphs:      []rune(","),
		Roughness:   0.2,
		TreeDensity: 0.15,
	},
	"desert": {
		Name:        "Desert",
		ColorLo:     MustHex("#aa8266"),
		ColorHi:     MustHex("#ffedd3"),
		Roughness:   0.3,
		TreeDensity: 0.02,
	},
	"alpine": {
		Name:        "Alpine Forest",
		ColorLo:     MustHex("#24442d"),
		ColorHi:     MustHex("#426b57"),
		Roughness:   0.7,
		TreeDensity: 0.5,
	},
}

// BuiltinNames returns the registry keys, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(Builtin))
	for name := range Builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TreeGlyphs are the canopy glyph choices, jittered per column.
var TreeGlyphs = []rune("△▲▴◭◮")

// TrunkGlyph is drawn for trunk voxels.
const TrunkGlyph = '┃'
