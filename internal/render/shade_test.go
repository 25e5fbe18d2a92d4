package render

import (
	"testing"

	"landscape/internal/terrain"
	"landscape/internal/voxel"
)

func testShader(t *testing.T, rows int) *shader {
	t.Helper()
	cl, err := terrain.NewClassifier([]terrain.Band{
		{UpTo: 0.3, Biome: terrain.Builtin["ocean"]},
		{UpTo: 1.0, Biome: terrain.Builtin["plains"]},
	})
	if err != nil {
		t.Fatalf("NewClassifier: %v", err)
	}
	return &shader{
		cfg:         DefaultShadeConfig(1),
		classifier:  cl,
		worldHeight: 16,
		rows:        rows,
	}
}

// colorDist is a crude channel distance, enough to compare how close
// two colors are.
func colorDist(a, b terrain.RGB) int {
	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}
	return abs(int(a.R)-int(b.R)) + abs(int(a.G)-int(b.G)) + abs(int(a.B)-int(b.B))
}

func TestDefaultShadeConfig(t *testing.T) {
	cfg := DefaultShadeConfig(7)
	if cfg.MaxDistance <= 0 {
		t.Errorf("MaxDistance = %v, want positive", cfg.MaxDistance)
	}
	if cfg.Haze.Intensity < 0 || cfg.Haze.Intensity > 1 {
		t.Errorf("Haze.Intensity = %v, want in [0,1]", cfg.Haze.Intensity)
	}
	if cfg.Haze.Power <= 0 {
		t.Errorf("Haze.Power = %v, want positive", cfg.Haze.Power)
	}
	if cfg.SkyGlyph == 0 {
		t.Error("SkyGlyph is unset")
	}
	if cfg.SkyTop == cfg.SkyHorizon {
		t.Error("sky gradient endpoints are identical")
	}
	if cfg.Seed != 7 {
		t.Errorf("Seed = %d, want 7", cfg.Seed)
	}
}

func TestSkyGradient(t *testing.T) {
	s := testShader(t, 10)
	if got := s.skyAt(0); got != s.cfg.SkyTop {
		t.Errorf("skyAt(0) = %v, want SkyTop %v", got, s.cfg.SkyTop)
	}
	if got := s.skyAt(9); got != s.cfg.SkyHorizon {
		t.Errorf("skyAt(last) = %v, want SkyHorizon %v", got, s.cfg.SkyHorizon)
	}

	// Moving down the canvas steps the color monotonically toward the
	// horizon end.
	prev := colorDist(s.skyAt(0), s.cfg.SkyHorizon)
	for row := 1; row < 10; row++ {
		d := colorDist(s.skyAt(row), s.cfg.SkyHorizon)
		if d > prev {
			t.Fatalf("row %d: distance to horizon color grew from %d to %d", row, prev, d)
		}
		prev = d
	}
}

func TestSkyGradientSingleRow(t *testing.T) {
	s := testShader(t, 1)
	if got := s.skyAt(0); got != s.cfg.SkyTop {
		t.Errorf("skyAt(0) on 1-row canvas = %v, want SkyTop %v", got, s.cfg.SkyTop)
	}
}

func TestHazeMonotonic(t *testing.T) {
	s := testShader(t, 10)
	base := terrain.MustHex("#207a10")
	row := 4
	target := s.skyAt(row)

	prev := colorDist(s.haze(base, row, 0), target)
	for dist := 8.0; dist <= s.cfg.MaxDistance*1.5; dist += 8 {
		d := colorDist(s.haze(base, row, dist), target)
		if d > prev {
			t.Fatalf("distance %v: hazed color moved away from sky (%d > %d)", dist, d, prev)
		}
		prev = d
	}
}

func TestHazeDistanceZero(t *testing.T) {
	s := testShader(t, 4)
	base := terrain.MustHex("#c96a32")
	if got := s.haze(base, 0, 0); got != base {
		t.Errorf("haze at distance 0 = %v, want untouched %v", got, base)
	}
}

func TestHazeClampsBeyondMax(t *testing.T) {
	s := testShader(t, 4)
	base := terrain.MustHex("#c96a32")
	atMax := s.haze(base, 2, s.cfg.MaxDistance)
	beyond := s.haze(base, 2, s.cfg.MaxDistance*3)
	if atMax != beyond {
		t.Errorf("haze past max distance = %v, want clamped to %v", beyond, atMax)
	}
}

func TestHazeDisabled(t *testing.T) {
	s := testShader(t, 4)
	s.cfg.Haze.Intensity = 0
	base := terrain.MustHex("#c96a32")
	if got := s.haze(base, 0, s.cfg.MaxDistance); got != base {
		t.Errorf("haze with zero intensity = %v, want untouched %v", got, base)
	}
}

func TestShadeSkyCell(t *testing.T) {
	s := testShader(t, 6)
	cell := s.shade(Hit{}, 5)
	if cell.Glyph != s.cfg.SkyGlyph {
		t.Errorf("sky glyph = %q, want %q", cell.Glyph, s.cfg.SkyGlyph)
	}
	if cell.Bg != s.skyAt(5) {
		t.Errorf("sky bg = %v, want %v", cell.Bg, s.skyAt(5))
	}
}

func TestTerrainCellFaces(t *testing.T) {
	s := testShader(t, 6)
	plains := 1 // second band in testShader
	hit := func(f Face) Hit {
		return Hit{
			Hit:      true,
			Voxel:    voxel.Voxel{Biome: uint8(plains), Solid: true},
			X:        3, Y: 8, Z: 3,
			Distance: 10,
			Face:     f,
		}
	}

	top := s.terrainCell(hit(FaceTop))
	found := false
	for _, g := range terrain.Builtin["plains"].Glyphs {
		if top.Glyph == g {
			found = true
		}
	}
	if !found {
		t.Errorf("top face glyph %q not in plains glyph set", top.Glyph)
	}

	if got := s.terrainCell(hit(FaceWest)).Glyph; got != '▓' {
		t.Errorf("west face glyph = %q, want ▓", got)
	}
	if got := s.terrainCell(hit(FaceBottom)).Glyph; got != '░' {
		t.Errorf("bottom face glyph = %q, want ░", got)
	}
	if got := s.terrainCell(hit(FaceNorth)).Glyph; got != '█' {
		t.Errorf("north face glyph = %q, want █", got)
	}
}

func TestTerrainCellGradient(t *testing.T) {
	s := testShader(t, 6)
	cell := func(y int) Cell {
		return s.terrainCell(Hit{
			Hit:   true,
			Voxel: voxel.Voxel{Biome: 1, Solid: true},
			X:     0, Y: y, Z: 0,
			Face:  FaceTop,
		})
	}

	lo := terrain.Builtin["plains"].ColorLo
	hi := terrain.Builtin["plains"].ColorHi
	low := cell(5) // 5/15 ≈ 0.33, near the band's lower bound
	high := cell(15)
	if colorDist(low.Bg, lo) > colorDist(high.Bg, lo) {
		t.Errorf("low elevation bg %v is farther from ColorLo than high elevation %v", low.Bg, high.Bg)
	}
	if colorDist(high.Bg, hi) > colorDist(low.Bg, hi) {
		t.Errorf("high elevation bg %v is farther from ColorHi than low elevation %v", high.Bg, low.Bg)
	}
}

func TestDetailCells(t *testing.T) {
	s := testShader(t, 6)
	h := Hit{
		Hit:   true,
		Voxel: voxel.Voxel{Biome: 1, Detail: voxel.DetailTrunk, Solid: true},
		X:     2, Y: 9, Z: 2,
		Face:  FaceNorth,
	}
	if got := s.shade(h, 0).Glyph; got != terrain.TrunkGlyph {
		t.Errorf("trunk glyph = %q, want %q", got, terrain.TrunkGlyph)
	}

	h.Voxel.Detail = voxel.DetailCanopy
	g := s.shade(h, 0).Glyph
	found := false
	for _, tg := range terrain.TreeGlyphs {
		if g == tg {
			found = true
		}
	}
	if !found {
		t.Errorf("canopy glyph %q not in tree glyph set", g)
	}
}

func TestFaceShadeOrdering(t *testing.T) {
	if faceShade(FaceTop) < faceShade(FaceEast) ||
		faceShade(FaceEast) < faceShade(FaceNorth) ||
		faceShade(FaceNorth) < faceShade(FaceBottom) {
		t.Errorf("face shading not ordered top >= side >= bottom: top=%v east=%v north=%v bottom=%v",
			faceShade(FaceTop), faceShade(FaceEast), faceShade(FaceNorth), faceShade(FaceBottom))
	}
	if faceShade(FaceNone) != 1.0 {
		t.Errorf("embedded hit shade = %v, want 1.0", faceShade(FaceNone))
	}
}
