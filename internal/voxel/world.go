// Package voxel holds the block world: its storage, the terrain
// generator that fills it from a height field, and the detail placer
// that scatters objects on the surface. A world is built once, frozen,
// and then only read by the renderer.
package voxel

import "landscape/internal/terrain"

// DetailKind tags voxels added by the detail placer. Terrain voxels are
// DetailNone.
type DetailKind uint8

const (
	DetailNone DetailKind = iota
	DetailTrunk
	DetailCanopy
)

// Voxel is one cell of the world. Biome indexes the world's classifier
// bands and is meaningful only when Solid.
type Voxel struct {
	Biome  uint8
	Detail DetailKind
	Solid  bool
}

// World is a fixed-bounds 3D volume addressed by integer (x, y, z).
// After Freeze it is immutable and safe to share across render workers.
type World struct {
	width, depth, height int
	voxels               []Voxel
	surface              []int // topmost terrain y per column
	classifier           *terrain.Classifier
	frozen               bool
}

func newWorld(width, depth, height int, c *terrain.Classifier) *World {
	return &World{
		width:      width,
		depth:      depth,
		height:     height,
		voxels:     make([]Voxel, width*depth*height),
		surface:    make([]int, width*depth),
		classifier: c,
	}
}

func (w *World) index(x, y, z int) int {
	return (x*w.depth+z)*w.height + y
}

// Dims returns width, depth, height.
func (w *World) Dims() (width, depth, height int) {
	return w.width, w.depth, w.height
}

// InBounds reports whether (x, y, z) addresses a voxel.
func (w *World) InBounds(x, y, z int) bool {
	return x >= 0 && x < w.width && y >= 0 && y < w.height && z >= 0 && z < w.depth
}

// At returns the voxel at (x, y, z). Out-of-bounds coordinates read as
// empty, so rays may wander outside freely.
func (w *World) At(x, y, z int) Voxel {
	if !w.InBounds(x, y, z) {
		return Voxel{}
	}
	return w.voxels[w.index(x, y, z)]
}

// SurfaceY returns the topmost terrain voxel y of a column. Detail
// voxels above the surface do not count.
func (w *World) SurfaceY(x, z int) int {
	return w.surface[x*w.depth+z]
}

// Classifier returns the biome classifier the world was generated with.
func (w *World) Classifier() *terrain.Classifier {
	return w.classifier
}

// Frozen reports whether the world has been sealed against mutation.
func (w *World) Frozen() bool {
	return w.frozen
}

// Freeze seals the world. Rendering freezes the world implicitly;
// detail placement must happen first.
func (w *World) Freeze() {
	w.frozen = true
}

func (w *World) set(x, y, z int, v Voxel) {
	w.voxels[w.index(x, y, z)] = v
}
