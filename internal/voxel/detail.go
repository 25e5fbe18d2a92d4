package voxel

import (
	"landscape/internal/config"
	"landscape/internal/noise"
	"landscape/internal/terrain"
)

// TemplateCell is one voxel of a detail object, offset from the surface
// voxel it is planted on.
type TemplateCell struct {
	DX, DY, DZ int
	Kind       DetailKind
}

// Template is a pluggable detail-object shape. Placement stamps its
// cells above a surface voxel; cells that would land inside terrain or
// out of bounds are skipped.
type Template struct {
	Name  string
	Cells []TemplateCell
}

// TreeTemplate is the default detail object: a two-voxel trunk with a
// canopy cluster on top.
func TreeTemplate() *Template {
	return &Template{
		Name: "tree",
		Cells: []TemplateCell{
			{DX: 0, DY: 1, DZ: 0, Kind: DetailTrunk},
			{DX: 0, DY: 2, DZ: 0, Kind: DetailTrunk},
			{DX: 0, DY: 3, DZ: 0, Kind: DetailCanopy},
			{DX: 1, DY: 3, DZ: 0, Kind: DetailCanopy},
			{DX: -1, DY: 3, DZ: 0, Kind: DetailCanopy},
			{DX: 0, DY: 3, DZ: 1, Kind: DetailCanopy},
			{DX: 0, DY: 3, DZ: -1, Kind: DetailCanopy},
			{DX: 0, DY: 4, DZ: 0, Kind: DetailCanopy},
		},
	}
}

// ShrubTemplate is a single-voxel canopy, used by sparse biomes.
func ShrubTemplate() *Template {
	return &Template{
		Name: "shrub",
		Cells: []TemplateCell{
			{DX: 0, DY: 1, DZ: 0, Kind: DetailCanopy},
		},
	}
}

// DetailRule scatters one template across columns of one biome.
type DetailRule struct {
	// Biome is the display name of the eligible biome.
	Biome string
	// Density is the per-column placement probability, 0 to 1.
	Density float64
	// Spacing is the minimum Chebyshev distance between placements of
	// this rule, in columns. Zero disables the spacing test.
	Spacing  int
	Template *Template
}

// DetailConfig parameterizes detail placement.
type DetailConfig struct {
	Seed  int64
	Rules []DetailRule
}

// DefaultDetailConfig derives tree rules from the tree density of each
// band's biome.
func DefaultDetailConfig(seed int64, bands []terrain.Band) DetailConfig {
	cfg := DetailConfig{Seed: seed}
	for _, b := range bands {
		if b.Biome.TreeDensity <= 0 {
			continue
		}
		cfg.Rules = append(cfg.Rules, DetailRule{
			Biome:    b.Biome.Name,
			Density:  b.Biome.TreeDensity,
			Spacing:  2,
			Template: TreeTemplate(),
		})
	}
	return cfg
}

// detailSeedOffset keeps placement decisions decorrelated from the
// height field built on the same seed.
const detailSeedOffset = 5000

// PlaceDetails deterministically scatters detail objects on eligible
// surface voxels and freezes the world. Terrain voxels are never
// altered; template cells only fill empty space. Identical seed and
// world always produce identical placement: every column's accept
// decision is a pure function of the seed and the world, and stamping
// walks columns in a fixed order.
func PlaceDetails(w *World, cfg DetailConfig) error {
	if w.Frozen() {
		return config.Errorf("world", "already frozen; place details before rendering")
	}
	for i := range cfg.Rules {
		r := &cfg.Rules[i]
		if r.Density < 0 || r.Density > 1 {
			return config.Errorf("rules", "density %v for %q out of [0,1]", r.Density, r.Biome)
		}
		if r.Template == nil || len(r.Template.Cells) == 0 {
			return config.Errorf("rules", "rule for %q has no template", r.Biome)
		}
	}

	for x := 0; x < w.width; x++ {
		for z := 0; z < w.depth; z++ {
			rule := matchRule(w, cfg.Rules, x, z)
			if rule == nil {
				continue
			}
			if !isCandidate(w, cfg, rule, x, z) {
				continue
			}
			if !winsSpacing(w, cfg, rule, x, z) {
				continue
			}
			stamp(w, rule.Template, x, z)
		}
	}

	w.Freeze()
	return nil
}

// matchRule finds the rule covering the biome of column (x, z).
func matchRule(w *World, rules []DetailRule, x, z int) *DetailRule {
	surfY := w.SurfaceY(x, z)
	name := w.classifier.Band(int(w.At(x, surfY, z).Biome)).Biome.Name
	for i := range rules {
		if rules[i].Biome == name {
			return &rules[i]
		}
	}
	return nil
}

// isCandidate runs the seeded probability test for a column.
func isCandidate(w *World, cfg DetailConfig, rule *DetailRule, x, z int) bool {
	return noise.Rand2(int64(x), int64(z), cfg.Seed+detailSeedOffset) < rule.Density
}

// winsSpacing resolves minimum spacing without cross-column state: a
// candidate survives only if its hash is the maximum among all
// candidate columns of the same rule within the spacing radius. Each
// column's outcome is a pure function of the seed and world, so
// placement stays order-independent.
func winsSpacing(w *World, cfg DetailConfig, rule *DetailRule, x, z int) bool {
	if rule.Spacing <= 0 {
		return true
	}
	own := noise.Hash2(int64(x), int64(z), cfg.Seed+detailSeedOffset)
	for dx := -rule.Spacing; dx <= rule.Spacing; dx++ {
		for dz := -rule.Spacing; dz <= rule.Spacing; dz++ {
			if dx == 0 && dz == 0 {
				continue
			}
			nx, nz := x+dx, z+dz
			if nx < 0 || nx >= w.width || nz < 0 || nz >= w.depth {
				continue
			}
			if matchRule(w, []DetailRule{*rule}, nx, nz) == nil {
				continue
			}
			if !isCandidate(w, cfg, rule, nx, nz) {
				continue
			}
			other := noise.Hash2(int64(nx), int64(nz), cfg.Seed+detailSeedOffset)
			if other > own {
				return false
			}
			if other == own && (nx < x || (nx == x && nz < z)) {
				return false
			}
		}
	}
	return true
}

// stamp writes template cells above the surface voxel. Existing solid
// voxels, terrain or detail, are left untouched.
func stamp(w *World, tpl *Template, x, z int) {
	base := w.SurfaceY(x, z)
	biome := w.At(x, base, z).Biome
	for _, c := range tpl.Cells {
		tx, ty, tz := x+c.DX, base+c.DY, z+c.DZ
		if !w.InBounds(tx, ty, tz) {
			continue
		}
		if w.At(tx, ty, tz).Solid {
			continue
		}
		w.set(tx, ty, tz, Voxel{Biome: biome, Detail: c.Kind, Solid: true})
	}
}
