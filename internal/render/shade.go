package render

import (
	"math"

	"landscape/internal/noise"
	"landscape/internal/terrain"
	"landscape/internal/voxel"
)

// HazeConfig is the shared depth-haze gradient: blend factor is
// (distance/max)^Power * Intensity for every biome, so distant terrain
// fades uniformly instead of per-biome ad hoc constants.
type HazeConfig struct {
	Power     float64
	Intensity float64
}

// DetailPalette colors detail voxels independently of the terrain
// palette underneath.
type DetailPalette struct {
	TrunkLo, TrunkHi   terrain.RGB
	CanopyLo, CanopyHi terrain.RGB
}

// ShadeConfig is the style half of a render call: sky gradient, haze,
// detail palette, and the maximum march distance.
type ShadeConfig struct {
	MaxDistance float64
	Haze        HazeConfig

	// Sky gradient, zenith to horizon. Haze blends toward the same
	// gradient so terrain dissolves into the sky.
	SkyTop     terrain.RGB
	SkyHorizon terrain.RGB
	SkyGlyph   rune

	Detail DetailPalette

	// Seed jitters glyph choices; it does not affect geometry.
	Seed int64
}

// DefaultShadeConfig returns the stock daylight look.
func DefaultShadeConfig(seed int64) ShadeConfig {
	return ShadeConfig{
		MaxDistance: 512,
		Haze:        HazeConfig{Power: 2, Intensity: 0.55},
		SkyTop:      terrain.MustHex("#64a5ff"),
		SkyHorizon:  terrain.MustHex("#aabbff"),
		SkyGlyph:    '.',
		Detail: DetailPalette{
			TrunkLo:  terrain.MustHex("#4a3218"),
			TrunkHi:  terrain.MustHex("#6b4a26"),
			CanopyLo: terrain.MustHex("#0c3a06"),
			CanopyHi: terrain.MustHex("#35861f"),
		},
		Seed: seed,
	}
}

// faceShade dims faces turned away from the sky to fake directional
// light without tracing shadows.
func faceShade(f Face) float64 {
	switch f {
	case FaceTop, FaceNone:
		return 1.0
	case FaceEast, FaceWest:
		return 0.85
	case FaceNorth, FaceSouth:
		return 0.72
	case FaceBottom:
		return 0.5
	}
	return 1.0
}

// shader turns hits into cells. One shader serves all render workers;
// it is read-only after construction.
type shader struct {
	cfg         ShadeConfig
	classifier  *terrain.Classifier
	worldHeight int
	rows        int
}

// skyAt returns the sky gradient color for a canvas row. Row 0 is the
// zenith end. The same gradient doubles as the haze target.
func (s *shader) skyAt(row int) terrain.RGB {
	t := 0.0
	if s.rows > 1 {
		t = float64(row) / float64(s.rows-1)
	}
	return s.cfg.SkyTop.Lerp(s.cfg.SkyHorizon, t)
}

// haze blends a color toward the row's sky color by distance. The blend
// factor grows monotonically with distance, so farther hits are always
// at least as hazy as nearer ones.
func (s *shader) haze(c terrain.RGB, row int, dist float64) terrain.RGB {
	if s.cfg.Haze.Intensity <= 0 {
		return c
	}
	frac := dist / s.cfg.MaxDistance
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	hf := math.Pow(frac, s.cfg.Haze.Power) * s.cfg.Haze.Intensity
	return c.Lerp(s.skyAt(row), hf)
}

// shade produces the final cell for one ray result.
func (s *shader) shade(h Hit, row int) Cell {
	if !h.Hit {
		bg := s.skyAt(row)
		return Cell{Glyph: s.cfg.SkyGlyph, Fg: bg.Lighten(24), Bg: bg}
	}

	var cell Cell
	switch h.Voxel.Detail {
	case voxel.DetailTrunk:
		cell = s.trunkCell(h)
	case voxel.DetailCanopy:
		cell = s.canopyCell(h)
	default:
		cell = s.terrainCell(h)
	}

	cell.Fg = s.haze(cell.Fg, row, h.Distance)
	cell.Bg = s.haze(cell.Bg, row, h.Distance)
	return cell
}

// elevation normalizes a voxel y into [0, 1] of the world height.
func (s *shader) elevation(y int) float64 {
	if s.worldHeight <= 1 {
		return 0
	}
	return float64(y) / float64(s.worldHeight-1)
}

func (s *shader) terrainCell(h Hit) Cell {
	band := s.classifier.Band(int(h.Voxel.Biome))
	lo, hi := s.classifier.Bounds(int(h.Voxel.Biome))

	// Position within the biome's height band drives the gradient.
	t := 0.0
	if hi > lo {
		t = (s.elevation(h.Y) - lo) / (hi - lo)
	}
	color := band.Biome.ColorLo.Lerp(band.Biome.ColorHi, t).Scale(faceShade(h.Face))

	if len(band.Biome.Glyphs) > 0 && (h.Face == FaceTop || h.Face == FaceNone) {
		g := band.Biome.Glyphs[noise.Choice(len(band.Biome.Glyphs), int64(h.X), int64(h.Z), s.cfg.Seed)]
		return Cell{Glyph: g, Fg: color.Lighten(40), Bg: color}
	}

	switch h.Face {
	case FaceEast, FaceWest:
		return Cell{Glyph: '▓', Fg: color, Bg: color.Scale(0.8)}
	case FaceBottom:
		return Cell{Glyph: '░', Fg: color, Bg: color.Scale(0.8)}
	default:
		return Cell{Glyph: '█', Fg: color, Bg: color}
	}
}

func (s *shader) trunkCell(h Hit) Cell {
	t := s.elevation(h.Y)
	color := s.cfg.Detail.TrunkLo.Lerp(s.cfg.Detail.TrunkHi, t).Scale(faceShade(h.Face))
	return Cell{Glyph: terrain.TrunkGlyph, Fg: color.Lighten(30), Bg: color.Scale(0.7)}
}

func (s *shader) canopyCell(h Hit) Cell {
	// Jitter hue and glyph per column so a stand of trees does not
	// tile. Both are stable for a fixed seed.
	v := noise.Value2D(float64(h.X)*0.35, float64(h.Z)*0.35, s.cfg.Seed+1234)
	color := s.cfg.Detail.CanopyLo.Lerp(s.cfg.Detail.CanopyHi, v).Scale(faceShade(h.Face))
	g := terrain.TreeGlyphs[noise.Choice(len(terrain.TreeGlyphs), int64(h.X), int64(h.Z), s.cfg.Seed)]
	return Cell{Glyph: g, Fg: color.Lighten(20), Bg: color.Scale(0.6)}
}
