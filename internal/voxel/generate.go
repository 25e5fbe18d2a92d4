package voxel

import (
	"math"
	"runtime"
	"sync"

	"landscape/internal/config"
	"landscape/internal/noise"
	"landscape/internal/terrain"
)

// GenConfig parameterizes terrain generation. Bands drive both the
// biome classification and the per-biome palettes carried into
// rendering.
type GenConfig struct {
	Width  int
	Depth  int
	Height int
	Seed   int64

	Bands []terrain.Band

	// Octaves overrides the height field layering; nil selects the
	// default terrain octaves.
	Octaves []noise.Octave

	// Field overrides the height field entirely. When nil, a seeded
	// fractal field is built from Seed and Octaves.
	Field terrain.Field
}

// Generate builds a fully populated world from the configuration. For
// each column it samples the height field, classifies the biome, and
// marks voxels below the scaled height as solid. Columns are
// independent; generation runs on parallel workers and the result is
// identical regardless of worker count.
func Generate(cfg GenConfig) (*World, error) {
	if cfg.Width <= 0 {
		return nil, config.Errorf("width", "must be positive, got %d", cfg.Width)
	}
	if cfg.Depth <= 0 {
		return nil, config.Errorf("depth", "must be positive, got %d", cfg.Depth)
	}
	if cfg.Height <= 0 {
		return nil, config.Errorf("height", "must be positive, got %d", cfg.Height)
	}
	classifier, err := terrain.NewClassifier(cfg.Bands)
	if err != nil {
		return nil, config.Errorf("bands", "%v", err)
	}
	if classifier.Len() > 255 {
		return nil, config.Errorf("bands", "at most 255 bands supported, got %d", classifier.Len())
	}

	field := cfg.Field
	if field == nil {
		field = terrain.NewHeightField(cfg.Seed, cfg.Octaves)
	}

	w := newWorld(cfg.Width, cfg.Depth, cfg.Height, classifier)

	workers := runtime.GOMAXPROCS(0)
	if workers > cfg.Width {
		workers = cfg.Width
	}
	var wg sync.WaitGroup
	for g := 0; g < workers; g++ {
		x0 := g * cfg.Width / workers
		x1 := (g + 1) * cfg.Width / workers
		wg.Add(1)
		go func(x0, x1 int) {
			defer wg.Done()
			for x := x0; x < x1; x++ {
				for z := 0; z < cfg.Depth; z++ {
					generateColumn(w, field, cfg.Seed, x, z)
				}
			}
		}(x0, x1)
	}
	wg.Wait()

	return w, nil
}

// roughSeedOffset decorrelates surface jitter from the height field and
// detail placement built on the same seed.
const roughSeedOffset = 9000

// roughScale converts a biome's roughness into normalized-height jitter.
const roughScale = 0.08

// generateColumn fills a single (x, z) column: solid from the floor up
// to the scaled height, empty above. The biome's roughness adds fine
// per-column jitter to the surface without changing the classification.
// Every column keeps at least one solid voxel so there is always a
// floor.
func generateColumn(w *World, field terrain.Field, seed int64, x, z int) {
	h := field.At(float64(x), float64(z))
	band := uint8(w.classifier.Classify(h))

	if r := w.classifier.Band(int(band)).Biome.Roughness; r > 0 {
		h += (noise.Value2D(float64(x)*0.35, float64(z)*0.35, seed+roughSeedOffset) - 0.5) * r * roughScale
	}

	top := int(math.Round(h * float64(w.height)))
	if top < 1 {
		top = 1
	}
	if top > w.height {
		top = w.height
	}

	for y := 0; y < top; y++ {
		w.set(x, y, z, Voxel{Biome: band, Solid: true})
	}
	w.surface[x*w.depth+z] = top - 1
}
