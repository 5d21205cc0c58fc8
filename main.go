package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// cliConfig holds everything the command line controls
type cliConfig struct {
	Scene       string
	Sampling    renderer.SamplingConfig // Zero fields keep the scene's defaults
	Render      renderer.RenderConfig
	TexturePath string
	OutPath     string
	Upload      bool
	Help        bool
}

func main() {
	if err := loadDotEnv(".env"); err != nil {
		log.Printf("Warning: %v", err)
	}

	cfg, flags, err := parseFlags(os.Args[1:], os.Getenv)
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(2)
	}

	if cfg.Help {
		printUsage(os.Stdout, flags)
		return
	}

	// Ctrl-C stops the render between rows
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, renderer.NewDefaultLogger()); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// loadDotEnv loads an optional env file. Variables already set take
// precedence; a missing file is not an error, a malformed one is.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// parseFlags reads flags, using RAYTRACER_* environment values as their defaults
func parseFlags(args []string, getenv func(string) string) (cliConfig, *flag.FlagSet, error) {
	var cfg cliConfig
	env := envReader{getenv: getenv}

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.StringVar(&cfg.Scene, "scene", env.String("RAYTRACER_SCENE", "default"), "Scene name (see -help)")
	fs.IntVar(&cfg.Sampling.Width, "width", env.Int("RAYTRACER_WIDTH", 0), "Image width (0 = scene default)")
	fs.IntVar(&cfg.Sampling.Height, "height", env.Int("RAYTRACER_HEIGHT", 0), "Image height (0 = scene default)")
	fs.IntVar(&cfg.Sampling.SamplesPerPixel, "samples", env.Int("RAYTRACER_SAMPLES", 0), "Samples per pixel (0 = scene default)")
	fs.IntVar(&cfg.Sampling.MaxDepth, "depth", env.Int("RAYTRACER_DEPTH", 0), "Maximum bounce depth (0 = scene default)")
	fs.Int64Var(&cfg.Sampling.Seed, "seed", int64(env.Int("RAYTRACER_SEED", 0)), "Random seed, non-zero (unset = scene default)")
	fs.IntVar(&cfg.Render.NumWorkers, "workers", env.Int("RAYTRACER_WORKERS", 0), "Number of parallel workers (0 = CPU count)")
	fs.IntVar(&cfg.Render.TileSize, "tile", env.Int("RAYTRACER_TILE", renderer.DefaultRenderConfig().TileSize), "Tile size in pixels")
	fs.StringVar(&cfg.TexturePath, "texture", env.String("RAYTRACER_TEXTURE", ""), "Image for the textures scene")
	fs.StringVar(&cfg.OutPath, "out", env.String("RAYTRACER_OUT", ""), "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	fs.BoolVar(&cfg.Upload, "upload", false, "Also upload the PNG to S3 (S3_* environment variables)")
	fs.BoolVar(&cfg.Help, "help", false, "Show help information")

	if env.err != nil {
		return cliConfig{}, fs, env.err
	}
	if err := fs.Parse(args); err != nil {
		return cliConfig{}, fs, err
	}

	// Zero means "scene default" everywhere, so an explicit zero seed is refused
	explicitSeed := getenv("RAYTRACER_SEED") != ""
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			explicitSeed = true
		}
	})
	if explicitSeed && cfg.Sampling.Seed == 0 {
		return cliConfig{}, fs, errors.New("seed 0 is reserved for the scene default, use a non-zero seed")
	}
	return cfg, fs, nil
}

// envReader looks up typed environment values, keeping the first parse error
type envReader struct {
	getenv func(string) string
	err    error
}

func (e *envReader) String(name, fallback string) string {
	if value := e.getenv(name); value != "" {
		return value
	}
	return fallback
}

func (e *envReader) Int(name string, fallback int) int {
	value := e.getenv(name)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		if e.err == nil {
			e.err = fmt.Errorf("invalid %s=%q: %w", name, value, err)
		}
		return fallback
	}
	return parsed
}

// run builds the scene, renders it and writes the result
func run(ctx context.Context, cfg cliConfig, logger core.Logger) error {
	logger.Printf("Starting Path Tracer...\n")

	selectedScene, err := scene.NewScene(cfg.Scene, scene.Options{
		Sampling:    cfg.Sampling,
		TexturePath: cfg.TexturePath,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	logger.Printf("Using %s scene (%d shapes)...\n", cfg.Scene, selectedScene.GetPrimitiveCount())

	img, stats, err := renderer.NewParallelRenderer(selectedScene, cfg.Render, logger).Render(ctx)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	filename := cfg.OutPath
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = output.RenderFilename("output", cfg.Scene, timestamp)
	}
	if err := output.SavePNG(filename, img); err != nil {
		return err
	}
	logger.Printf("Render saved as %s (%.1f samples/pixel, average luminance %.3f)\n",
		filename, stats.AverageSamples(), renderer.CalculateAverageLuminance(img))

	if cfg.Upload {
		publisher, err := output.NewS3Publisher(output.S3ConfigFromEnv(), logger)
		if err != nil {
			return fmt.Errorf("upload requested: %w", err)
		}
		key := filepath.ToSlash(filepath.Join(cfg.Scene, filepath.Base(filename)))
		if err := publisher.Publish(ctx, key, img); err != nil {
			return err
		}
	}

	return nil
}

// printUsage writes help text, including the available scenes
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Path Tracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListSceneInfo() {
		fmt.Fprintf(w, "  %-9s - %s\n", info.ID, info.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags default to RAYTRACER_* environment variables, also read from .env.")
	fmt.Fprintln(w, "Output will be saved to output/<scene>/render_<timestamp>.png")
}
