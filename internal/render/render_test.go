package render

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"landscape/internal/config"
)

func downCamera(cols, rows int) CameraConfig {
	return CameraConfig{
		Position: mgl64.Vec3{5, 10, 5},
		Pitch:    -90,
		FOV:      70,
		Cols:     cols,
		Rows:     rows,
	}
}

func TestRenderCoversCanvas(t *testing.T) {
	w := flatWorld(t)
	cam := CameraConfig{
		Position: mgl64.Vec3{5, 4, -6},
		Pitch:    -20,
		FOV:      70,
		Cols:     40,
		Rows:     20,
	}

	canvas, err := Render(w, cam, DefaultShadeConfig(1))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if canvas.Cols() != 40 || canvas.Rows() != 20 {
		t.Fatalf("canvas is %dx%d, want 40x20", canvas.Cols(), canvas.Rows())
	}
	for row := 0; row < canvas.Rows(); row++ {
		for col := 0; col < canvas.Cols(); col++ {
			if canvas.At(col, row).Glyph == 0 {
				t.Fatalf("cell (%d,%d) was never shaded", col, row)
			}
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	cam := CameraConfig{
		Position: mgl64.Vec3{5, 4, -6},
		Pitch:    -20,
		FOV:      70,
		Cols:     32,
		Rows:     16,
	}

	a, err := Render(flatWorld(t), cam, DefaultShadeConfig(9))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Render(flatWorld(t), cam, DefaultShadeConfig(9))
	if err != nil {
		t.Fatal(err)
	}
	for row := 0; row < a.Rows(); row++ {
		for col := 0; col < a.Cols(); col++ {
			if a.At(col, row) != b.At(col, row) {
				t.Fatalf("cell (%d,%d) differs between identical renders", col, row)
			}
		}
	}
}

func TestRenderSingleCellGroundHit(t *testing.T) {
	w := flatWorld(t)

	// A 1x1 canvas looking straight down from above the flat surface.
	// The single ray hits the top face of the terrain, so the cell
	// carries the biome's surface glyph, not the sky glyph.
	shCfg := DefaultShadeConfig(1)
	canvas, err := Render(w, downCamera(1, 1), shCfg)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	cell := canvas.At(0, 0)
	if cell.Glyph == shCfg.SkyGlyph {
		t.Fatal("straight-down ray shaded as sky")
	}
	if want := ','; cell.Glyph != want {
		t.Errorf("glyph = %q, want plains surface glyph %q", cell.Glyph, want)
	}
}

func TestRenderAllSky(t *testing.T) {
	w := flatWorld(t)

	// Looking straight up from above the terrain, no ray can hit.
	cam := downCamera(8, 4)
	cam.Pitch = 90
	shCfg := DefaultShadeConfig(1)

	canvas, err := Render(w, cam, shCfg)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for row := 0; row < canvas.Rows(); row++ {
		for col := 0; col < canvas.Cols(); col++ {
			if g := canvas.At(col, row).Glyph; g != shCfg.SkyGlyph {
				t.Fatalf("cell (%d,%d) glyph = %q, want sky glyph", col, row, g)
			}
		}
	}
}

func TestRenderEmbeddedCamera(t *testing.T) {
	w := flatWorld(t)

	// A camera buried inside the terrain sees the voxel it occupies in
	// every direction.
	cam := downCamera(6, 3)
	cam.Position = mgl64.Vec3{5, 0.5, 5}
	cam.Pitch = 0
	shCfg := DefaultShadeConfig(1)

	canvas, err := Render(w, cam, shCfg)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for row := 0; row < canvas.Rows(); row++ {
		for col := 0; col < canvas.Cols(); col++ {
			if g := canvas.At(col, row).Glyph; g == shCfg.SkyGlyph {
				t.Fatalf("cell (%d,%d) shaded as sky from inside a solid voxel", col, row)
			}
		}
	}
}

func TestRenderFreezesWorld(t *testing.T) {
	w := flatWorld(t)
	if w.Frozen() {
		t.Fatal("world frozen before render")
	}
	if _, err := Render(w, downCamera(4, 2), DefaultShadeConfig(1)); err != nil {
		t.Fatal(err)
	}
	if !w.Frozen() {
		t.Error("world not frozen after render")
	}
}

func TestRenderRejectsBadShadeConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ShadeConfig)
	}{
		{"zero max distance", func(c *ShadeConfig) { c.MaxDistance = 0 }},
		{"negative max distance", func(c *ShadeConfig) { c.MaxDistance = -4 }},
		{"intensity above one", func(c *ShadeConfig) { c.Haze.Intensity = 1.5 }},
		{"negative intensity", func(c *ShadeConfig) { c.Haze.Intensity = -0.1 }},
		{"zero power with haze on", func(c *ShadeConfig) { c.Haze.Power = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultShadeConfig(1)
			tt.mutate(&cfg)
			_, err := Render(flatWorld(t), downCamera(2, 2), cfg)
			var cerr *config.ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("err = %v, want *config.ConfigError", err)
			}
		})
	}
}

func TestCanvasRowMatchesAt(t *testing.T) {
	canvas, err := Render(flatWorld(t), downCamera(5, 3), DefaultShadeConfig(1))
	if err != nil {
		t.Fatal(err)
	}
	for row := 0; row < canvas.Rows(); row++ {
		cells := canvas.Row(row)
		if len(cells) != canvas.Cols() {
			t.Fatalf("Row(%d) has %d cells, want %d", row, len(cells), canvas.Cols())
		}
		for col, c := range cells {
			if c != canvas.At(col, row) {
				t.Fatalf("Row(%d)[%d] != At(%d,%d)", row, col, col, row)
			}
		}
	}
}
