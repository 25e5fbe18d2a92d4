package terrain

import "landscape/internal/noise"

// Field is a deterministic scalar field over 2D coordinates, the shape
// terrain columns are sampled from. Implementations must return values
// in [0, 1] and be safe for concurrent reads.
type Field interface {
	At(x, z float64) float64
}

// HeightField layers fractal simplex octaves into natural-looking
// terrain heights. It is stateless after construction.
type HeightField struct {
	fractal *noise.Fractal
}

// NewHeightField builds a seeded height field. Nil octaves select the
// default terrain layering.
func NewHeightField(seed int64, octaves []noise.Octave) *HeightField {
	return &HeightField{fractal: noise.NewFractal(seed, octaves)}
}

// At samples the terrain height at (x, z), in [0, 1].
func (f *HeightField) At(x, z float64) float64 {
	return f.fractal.At(x, z)
}
