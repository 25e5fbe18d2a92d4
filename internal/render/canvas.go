package render

import (
	"runtime"
	"sync"

	"landscape/internal/config"
	"landscape/internal/terrain"
	"landscape/internal/voxel"
)

// Cell is one canvas position: a glyph with foreground and background
// colors.
type Cell struct {
	Glyph rune
	Fg    terrain.RGB
	Bg    terrain.RGB
}

// Canvas is the rendered output: a row-major grid of cells, immutable
// once Render returns it.
type Canvas struct {
	cols, rows int
	cells      []Cell
}

func newCanvas(cols, rows int) *Canvas {
	return &Canvas{cols: cols, rows: rows, cells: make([]Cell, cols*rows)}
}

// Cols returns the canvas width in cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the canvas height in cells.
func (c *Canvas) Rows() int { return c.rows }

// At returns the cell at (col, row). Row 0 is the top row.
func (c *Canvas) At(col, row int) Cell {
	return c.cells[row*c.cols+col]
}

// Row returns one row of cells, top row first. The slice aliases the
// canvas; treat it as read-only.
func (c *Canvas) Row(row int) []Cell {
	return c.cells[row*c.cols : (row+1)*c.cols]
}

// Render projects the world through the camera and shades every cell.
// It freezes the world, so detail placement must already be done. The
// canvas depends only on the world, camera, and shading configuration,
// never on worker scheduling: each cell is computed independently and
// written to its own slot.
func Render(w *voxel.World, camCfg CameraConfig, shCfg ShadeConfig) (*Canvas, error) {
	cam, err := NewCamera(camCfg)
	if err != nil {
		return nil, err
	}
	if shCfg.MaxDistance <= 0 {
		return nil, config.Errorf("max_distance", "must be positive, got %v", shCfg.MaxDistance)
	}
	if shCfg.Haze.Intensity < 0 || shCfg.Haze.Intensity > 1 {
		return nil, config.Errorf("haze.intensity", "must be in [0,1], got %v", shCfg.Haze.Intensity)
	}
	if shCfg.Haze.Intensity > 0 && shCfg.Haze.Power <= 0 {
		return nil, config.Errorf("haze.power", "must be positive, got %v", shCfg.Haze.Power)
	}

	w.Freeze()

	_, _, height := w.Dims()
	sh := &shader{
		cfg:         shCfg,
		classifier:  w.Classifier(),
		worldHeight: height,
		rows:        cam.Rows(),
	}

	canvas := newCanvas(cam.Cols(), cam.Rows())

	workers := runtime.GOMAXPROCS(0)
	if workers > cam.Rows() {
		workers = cam.Rows()
	}
	var wg sync.WaitGroup
	for g := 0; g < workers; g++ {
		r0 := g * cam.Rows() / workers
		r1 := (g + 1) * cam.Rows() / workers
		wg.Add(1)
		go func(r0, r1 int) {
			defer wg.Done()
			for row := r0; row < r1; row++ {
				for col := 0; col < cam.Cols(); col++ {
					hit := March(w, cam.Ray(col, row), shCfg.MaxDistance)
					canvas.cells[row*canvas.cols+col] = sh.shade(hit, row)
				}
			}
		}(r0, r1)
	}
	wg.Wait()

	return canvas, nil
}
