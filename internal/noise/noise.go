// Package noise provides the deterministic pseudo-random primitives the
// generator is built on: an integer hash for per-coordinate decisions,
// smooth 2D value noise, and multi-octave fractal noise over simplex.
// Every function is a pure function of its inputs; identical seeds and
// coordinates always produce identical values.
package noise

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Hash2 mixes a 2D integer coordinate and a seed into a uint64.
// SplitMix64-style finalizer, stable across runs and platforms.
func Hash2(x, z, seed int64) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(z)*0x517CC1B727220A95 + uint64(seed)
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

// Rand2 maps a coordinate and seed to a uniform value in [0, 1].
func Rand2(x, z, seed int64) float64 {
	return float64(Hash2(x, z, seed)&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

// Choice picks an index in [0, n) from a coordinate and seed.
// n must be positive.
func Choice(n int, x, z, seed int64) int {
	i := int(Hash2(x, z, seed) % uint64(n))
	return i
}

// fade is the smoothstep-like spline 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func latticeValue(x, z, seed int64) float64 {
	h := Hash2(x, z, seed)
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

// Value2D is smooth lattice value noise in [0, 1]. It is cheaper than
// simplex and good enough for glyph jitter and placement fields where
// gradient quality does not matter.
func Value2D(x, z float64, seed int64) float64 {
	x0 := math.Floor(x)
	z0 := math.Floor(z)

	fx := fade(x - x0)
	fz := fade(z - z0)

	v00 := latticeValue(int64(x0), int64(z0), seed)
	v10 := latticeValue(int64(x0)+1, int64(z0), seed)
	v01 := latticeValue(int64(x0), int64(z0)+1, seed)
	v11 := latticeValue(int64(x0)+1, int64(z0)+1, seed)

	i0 := lerp(v00, v10, fx)
	i1 := lerp(v01, v11, fx)
	return lerp(i0, i1, fz)
}

// Octave is one frequency/amplitude layer of a fractal sum.
type Octave struct {
	Frequency float64
	Amplitude float64
}

// TerrainOctaves returns the default layering for terrain height:
// broad rolling hills, medium detail, and fine roughness.
func TerrainOctaves() []Octave {
	return []Octave{
		{Frequency: 0.02, Amplitude: 0.6},
		{Frequency: 0.06, Amplitude: 0.3},
		{Frequency: 0.2, Amplitude: 0.1},
	}
}

// Fractal sums simplex noise octaves into a field over 2D coordinates.
// The zero value is not usable; construct with NewFractal.
type Fractal struct {
	src     opensimplex.Noise
	octaves []Octave
	norm    float64
}

// NewFractal builds a seeded fractal field from the given octave layers.
// Passing no octaves yields TerrainOctaves.
func NewFractal(seed int64, octaves []Octave) *Fractal {
	if len(octaves) == 0 {
		octaves = TerrainOctaves()
	}
	norm := 0.0
	for _, o := range octaves {
		norm += o.Amplitude
	}
	return &Fractal{
		src:     opensimplex.NewNormalized(seed),
		octaves: octaves,
		norm:    norm,
	}
}

// At evaluates the field at (x, z), returning a value in [0, 1].
func (f *Fractal) At(x, z float64) float64 {
	sum := 0.0
	for _, o := range f.octaves {
		sum += f.src.Eval2(x*o.Frequency, z*o.Frequency) * o.Amplitude
	}
	if f.norm == 0 {
		return 0
	}
	return sum / f.norm
}
