// Package app implements the seedscape command line.
package app

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"seedscape/internal/config"
	"seedscape/internal/palette"
	"seedscape/internal/profiling"
	"seedscape/internal/scene"
	"seedscape/internal/swatch"
	"seedscape/internal/terrain"
	"seedscape/pkg/preset"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitRuntime = 1
	ExitUsage   = 2
)

// Options are the parsed command line flags.
type Options struct {
	Seed        string
	PaletteSize int
	Factor      float64
	Number      int
	OutDir      string
	Quality     int
	Decimate    float64
	MapSize     int
	RenderLevel int
	PresetDir   string
	PresetName  string
	Plan        string
	PlanPath    string
	SwatchPath  string
	Profile     bool
	Verbose     bool
}

// ParseOptions parses args (without argv[0]).
func ParseOptions(args []string, stderr io.Writer) (Options, error) {
	var o Options
	fs := flag.NewFlagSet("seedscape", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.Seed, "seed", "test2", "seed string all values derive from")
	fs.IntVar(&o.PaletteSize, "palette", 5, "number of adjacent colors")
	fs.Float64Var(&o.Factor, "factor", palette.DefaultFactor, "adjacent color perturbation factor")
	fs.IntVar(&o.Number, "number", config.GetNumber(), "render number used to prefix exported files")
	fs.StringVar(&o.OutDir, "out", config.GetExportDir(), "export directory for plan outputs")
	fs.IntVar(&o.Quality, "quality", config.GetSubdivisionQuality(), "model subdivision quality (1-12)")
	fs.Float64Var(&o.Decimate, "decimate", config.GetDecimateRatio(), "model decimate ratio (0.01-1)")
	w, _ := config.GetDisplacementMapSize()
	fs.IntVar(&o.MapSize, "map-size", w, "baked displacement map size in pixels")
	fs.IntVar(&o.RenderLevel, "render-levels", config.GetRenderLevels(), "render subdivision levels (1-12)")
	fs.StringVar(&o.PresetDir, "preset", "", "directory containing presets/<name>.json")
	fs.StringVar(&o.PresetName, "preset-name", preset.BuiltinTerrain, "preset to load")
	fs.StringVar(&o.Plan, "plan", "none", "scene plan to emit: render, model or none")
	fs.StringVar(&o.PlanPath, "plan-out", "", "write the scene plan here instead of stdout")
	fs.StringVar(&o.SwatchPath, "swatch", "", "write a palette swatch PNG to this path")
	fs.BoolVar(&o.Profile, "profile", false, "log per-stage timings")
	fs.BoolVar(&o.Verbose, "v", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if o.PaletteSize < 0 {
		return o, fmt.Errorf("-palette must not be negative, got %d", o.PaletteSize)
	}
	if o.Plan != "none" {
		if _, err := scene.ParseMode(o.Plan); err != nil {
			return o, err
		}
	}
	return o, nil
}

// Run executes the command line and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	o, err := ParseOptions(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, err)
		}
		return ExitUsage
	}

	logger := log.New(io.Discard, "", log.LstdFlags)
	if o.Verbose || o.Profile {
		logger.SetOutput(stderr)
	}

	if err := execute(o, stdout, logger); err != nil {
		fmt.Fprintln(stderr, err)
		return ExitRuntime
	}
	return ExitOK
}

func applyConfig(o Options) {
	config.SetNumber(o.Number)
	config.SetExportDir(o.OutDir)
	config.SetSubdivisionQuality(o.Quality)
	config.SetDecimateRatio(o.Decimate)
	config.SetDisplacementMapSize(o.MapSize, o.MapSize)
	config.SetRenderLevels(o.RenderLevel)
}

func execute(o Options, stdout io.Writer, logger *log.Logger) error {
	profiling.Reset()
	applyConfig(o)

	stop := profiling.Track("terrain.Derive")
	params, err := terrain.Derive(o.Seed, o.PaletteSize, o.Factor)
	stop()
	if err != nil {
		return fmt.Errorf("derive %q: %w", o.Seed, err)
	}
	logger.Printf("seed %q: base %s, noise phase %.4f, displacement %.4f, %d palette colors",
		o.Seed, params.BaseColor.Hex(), params.NoisePhase, params.DisplacementScale, len(params.Palette))

	if o.SwatchPath != "" {
		if err := writeSwatch(o.SwatchPath, params); err != nil {
			return err
		}
		logger.Printf("wrote swatch %s", o.SwatchPath)
	}

	if o.Plan == "none" {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(params); err != nil {
			return fmt.Errorf("encode params: %w", err)
		}
	} else if err := emitPlan(o, params, stdout, logger); err != nil {
		return err
	}

	if o.Profile {
		logger.Printf("timings: %s", profiling.TopN(5))
	}
	return nil
}

func loadPreset(o Options) (*preset.Preset, error) {
	defer profiling.Track("preset.Load")()
	if o.PresetDir == "" {
		if o.PresetName != preset.BuiltinTerrain {
			return nil, fmt.Errorf("-preset-name %q needs -preset", o.PresetName)
		}
		return preset.Default(), nil
	}
	return preset.NewLoader(o.PresetDir).Load(o.PresetName)
}

func emitPlan(o Options, params terrain.Params, stdout io.Writer, logger *log.Logger) error {
	mode, err := scene.ParseMode(o.Plan)
	if err != nil {
		return err
	}
	pr, err := loadPreset(o)
	if err != nil {
		return fmt.Errorf("load preset: %w", err)
	}

	stop := profiling.Track("scene.Build")
	plan, err := scene.Build(mode, params, pr)
	stop()
	if err != nil {
		return err
	}
	if err := plan.Validate(); err != nil {
		return err
	}
	logger.Printf("%s plan: %d nodes, %d commands, %d exports", mode, len(plan.Material.Nodes), len(plan.Commands), len(plan.Exports))

	if o.PlanPath == "" {
		return plan.WriteJSON(stdout)
	}
	f, err := os.Create(o.PlanPath)
	if err != nil {
		return fmt.Errorf("create plan file: %w", err)
	}
	defer f.Close()
	if err := plan.WriteJSON(f); err != nil {
		return fmt.Errorf("write plan: %w", err)
	}
	logger.Printf("wrote plan %s", o.PlanPath)
	return nil
}

func writeSwatch(path string, params terrain.Params) error {
	defer profiling.Track("swatch.Render")()
	img := swatch.Render(params.BaseColor, params.Palette, swatch.Options{Labels: true})
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create swatch file: %w", err)
	}
	defer f.Close()
	return swatch.WritePNG(f, img)
}
