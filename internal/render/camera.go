// Package render projects a frozen voxel world onto a 2D glyph canvas:
// camera rays, first-hit marching through the grid, and the shading
// pass that turns hits into colored glyphs.
package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"landscape/internal/config"
)

// CameraConfig positions and orients the viewer. Yaw 0 looks along +Z;
// pitch is degrees above the horizon, negative looking down. FOV is the
// vertical field of view in degrees.
type CameraConfig struct {
	Position mgl64.Vec3
	Yaw      float64
	Pitch    float64
	FOV      float64
	Cols     int
	Rows     int

	// CellAspect is the width/height ratio of one output cell. Terminal
	// glyphs are roughly half as wide as tall; zero selects 0.5.
	CellAspect float64
}

// Ray is one camera ray in world space. Dir is unit length.
type Ray struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3
}

// Camera converts output cells to rays. Rays for different cells share
// no state, so a camera may be used from any number of goroutines.
type Camera struct {
	pos     mgl64.Vec3
	forward mgl64.Vec3
	right   mgl64.Vec3
	up      mgl64.Vec3

	cols, rows int
	tanHalf    float64
	aspect     float64
}

// NewCamera validates the configuration and derives the camera basis.
func NewCamera(cfg CameraConfig) (*Camera, error) {
	if cfg.Cols <= 0 || cfg.Rows <= 0 {
		return nil, config.Errorf("resolution", "must be positive, got %dx%d", cfg.Cols, cfg.Rows)
	}
	if cfg.FOV <= 0 || cfg.FOV >= 180 {
		return nil, config.Errorf("fov", "must be in (0, 180) degrees, got %v", cfg.FOV)
	}
	if cfg.Pitch < -90 || cfg.Pitch > 90 {
		return nil, config.Errorf("pitch", "must be in [-90, 90] degrees, got %v", cfg.Pitch)
	}
	if cfg.CellAspect < 0 {
		return nil, config.Errorf("cell_aspect", "must be non-negative, got %v", cfg.CellAspect)
	}
	cellAspect := cfg.CellAspect
	if cellAspect == 0 {
		cellAspect = 0.5
	}

	yaw := mgl64.DegToRad(cfg.Yaw)
	pitch := mgl64.DegToRad(cfg.Pitch)

	forward := mgl64.Vec3{
		math.Cos(pitch) * math.Sin(yaw),
		math.Sin(pitch),
		math.Cos(pitch) * math.Cos(yaw),
	}.Normalize()

	// Right depends on yaw alone so straight-down and straight-up
	// pitches keep a well-defined basis.
	right := mgl64.Vec3{math.Cos(yaw), 0, -math.Sin(yaw)}
	up := forward.Cross(right).Normalize()

	return &Camera{
		pos:     cfg.Position,
		forward: forward,
		right:   right,
		up:      up,
		cols:    cfg.Cols,
		rows:    cfg.Rows,
		tanHalf: math.Tan(mgl64.DegToRad(cfg.FOV) / 2),
		aspect:  float64(cfg.Cols) * cellAspect / float64(cfg.Rows),
	}, nil
}

// Ray returns the ray through the center of output cell (col, row).
// Row 0 is the top of the canvas.
func (c *Camera) Ray(col, row int) Ray {
	ndcX := 2*(float64(col)+0.5)/float64(c.cols) - 1
	ndcY := 1 - 2*(float64(row)+0.5)/float64(c.rows)

	dir := c.forward.
		Add(c.right.Mul(ndcX * c.tanHalf * c.aspect)).
		Add(c.up.Mul(ndcY * c.tanHalf)).
		Normalize()

	return Ray{Origin: c.pos, Dir: dir}
}

// Cols returns the horizontal resolution.
func (c *Camera) Cols() int { return c.cols }

// Rows returns the vertical resolution.
func (c *Camera) Rows() int { return c.rows }
