package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"landscape/internal/config"
	"landscape/internal/export"
	"landscape/internal/render"
	"landscape/internal/signature"
	"landscape/internal/term"
	"landscape/internal/terrain"
	"landscape/internal/voxel"
)

func main() {
	var (
		presetName = flag.String("preset", "", "biome preset (see -list)")
		biomeList  = flag.String("biomes", "", "comma-separated biome names, low to high elevation")
		seed       = flag.Int64("seed", -1, "generation seed; random when unset")
		sig        = flag.String("signature", "", "12-hex signature to reconstruct a landscape")
		sceneFile  = flag.String("config", "", "YAML scene file")
		cols       = flag.Int("cols", 0, "canvas width in cells (0 = terminal width)")
		rows       = flag.Int("rows", 0, "canvas height in cells (0 = terminal height)")
		pngPath    = flag.String("png", "", "also save the canvas as a PNG file")
		pngScale   = flag.Int("scale", 4, "PNG pixels per cell")
		list       = flag.Bool("list", false, "list presets and built-in biomes, then exit")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *list {
		printCatalog()
		return
	}

	if err := run(log, *presetName, *biomeList, *sig, *sceneFile, *seed, *cols, *rows, *pngPath, *pngScale); err != nil {
		log.Error("render failed", "error", err)
		os.Exit(1)
	}
}

func printCatalog() {
	fmt.Println("presets:")
	for _, name := range config.PresetNames() {
		fmt.Printf("  %-16s %s\n", name, strings.Join(config.Presets[name], ", "))
	}
	fmt.Println("biomes:")
	for _, name := range terrain.BuiltinNames() {
		fmt.Printf("  %s\n", name)
	}
}

func run(log *slog.Logger, presetName, biomeList, sig, sceneFile string, seed int64, cols, rows int, pngPath string, pngScale int) error {
	var scene *config.Scene
	if sceneFile != "" {
		s, err := config.LoadScene(sceneFile)
		if err != nil {
			return err
		}
		scene = s
	}

	biomes, sigSeed, err := resolveBiomes(presetName, biomeList, sig)
	if err != nil {
		return err
	}

	// Seed precedence: -seed flag, then signature, then scene file,
	// then random. The seed is clamped to the signature range so the
	// printed signature always reproduces this exact landscape.
	switch {
	case seed >= 0:
	case sigSeed >= 0:
		seed = sigSeed
	case scene != nil && scene.Seed > 0:
		seed = scene.Seed
	default:
		seed = rand.Int63n(signature.MaxSeed + 1)
	}
	if seed > signature.MaxSeed {
		log.Warn("seed exceeds signature range, clamping", "seed", seed, "max", int64(signature.MaxSeed))
		seed = signature.MaxSeed
	}

	var bands []terrain.Band
	if biomes != nil {
		bands, err = config.BandsFor(biomes)
	} else if scene != nil && len(scene.Biomes) > 0 {
		bands, err = scene.Bands()
		for _, spec := range scene.Biomes {
			biomes = append(biomes, spec.Name)
		}
	} else {
		biomes = config.Presets["coastal"]
		bands, err = config.BandsFor(biomes)
	}
	if err != nil {
		return err
	}

	width, depth, height := 160, 160, 48
	if scene != nil && scene.World.Width > 0 {
		width, depth, height = scene.World.Width, scene.World.Depth, scene.World.Height
	}

	log.Debug("generating", "size", fmt.Sprintf("%dx%dx%d", width, depth, height), "seed", seed, "biomes", biomes)
	start := time.Now()
	w, err := voxel.Generate(voxel.GenConfig{
		Width: width, Depth: depth, Height: height,
		Seed:  seed,
		Bands: bands,
	})
	if err != nil {
		return err
	}
	if err := voxel.PlaceDetails(w, voxel.DefaultDetailConfig(seed, bands)); err != nil {
		return err
	}

	if cols == 0 || rows == 0 {
		tc, tr := term.Size()
		if cols == 0 {
			cols = tc
		}
		if rows == 0 {
			rows = tr - 1 // keep the header line visible
		}
	}

	camCfg := defaultCamera(width, depth, height, cols, rows)
	if scene != nil && scene.Camera.FOV > 0 {
		c := scene.Camera
		camCfg.Position = mgl64.Vec3{c.X, c.Y, c.Z}
		camCfg.Yaw, camCfg.Pitch, camCfg.FOV = c.Yaw, c.Pitch, c.FOV
	}

	shCfg := render.DefaultShadeConfig(seed)
	if scene != nil {
		if scene.MaxDistance > 0 {
			shCfg.MaxDistance = scene.MaxDistance
		}
		if scene.Haze.Intensity > 0 {
			shCfg.Haze = render.HazeConfig{Power: scene.Haze.Power, Intensity: scene.Haze.Intensity}
		}
	}

	canvas, err := render.Render(w, camCfg, shCfg)
	if err != nil {
		return err
	}
	log.Debug("rendered", "cells", cols*rows, "elapsed", time.Since(start))

	outSig, err := signature.Encode(signature.Scene{Seed: seed, Biomes: biomes})
	if err != nil {
		// Custom scene biomes may not have signature codes; the
		// render is still valid, only unshareable.
		log.Debug("signature unavailable", "error", err)
		outSig = "------------"
	}
	fmt.Printf("seed %d  signature %s\n", seed, outSig)
	if err := term.Fprint(os.Stdout, canvas); err != nil {
		return err
	}

	if pngPath != "" {
		if err := export.SavePNG(pngPath, canvas, pngScale); err != nil {
			return err
		}
		log.Info("wrote png", "path", pngPath, "scale", pngScale)
	}
	return nil
}

// resolveBiomes picks the biome line-up from the signature, preset, and
// -biomes flag, later sources overriding earlier ones. The returned
// seed is -1 unless a signature supplied one.
func resolveBiomes(presetName, biomeList, sig string) (biomes []string, seed int64, err error) {
	seed = -1
	if sig != "" {
		s, err := signature.Decode(sig)
		if err != nil {
			return nil, 0, err
		}
		biomes, seed = s.Biomes, s.Seed
	}
	if presetName != "" {
		p, ok := config.Presets[presetName]
		if !ok {
			return nil, 0, config.Errorf("preset", "unknown preset %q, see -list", presetName)
		}
		biomes = p
	}
	if biomeList != "" {
		biomes = strings.Split(biomeList, ",")
		for i := range biomes {
			biomes[i] = strings.TrimSpace(biomes[i])
		}
	}
	return biomes, seed, nil
}

// defaultCamera frames the world from outside the near edge, slightly
// above the tallest terrain, with the cell aspect of a typical
// terminal font.
func defaultCamera(width, depth, height, cols, rows int) render.CameraConfig {
	return render.CameraConfig{
		Position: mgl64.Vec3{float64(width) / 2, float64(height) * 1.2, -float64(depth) * 0.25},
		Pitch:    -18,
		FOV:      70,
		Cols:     cols,
		Rows:     rows,
	}
}
