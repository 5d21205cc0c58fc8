package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderConfig contains configuration for parallel rendering
type RenderConfig struct {
	TileSize   int // Size of each square tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   32,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// ParallelRenderer splits an image into tiles and renders them on a worker pool
type ParallelRenderer struct {
	raytracer *Raytracer
	config    RenderConfig
	logger    core.Logger
}

// NewParallelRenderer creates a renderer for scene. A nil logger discards output.
func NewParallelRenderer(scene Scene, config RenderConfig, logger core.Logger) *ParallelRenderer {
	return &ParallelRenderer{
		raytracer: NewRaytracer(scene),
		config:    config,
		logger:    core.LoggerOrNop(logger),
	}
}

// SetSamplingConfig overrides the scene's sampling configuration
func (pr *ParallelRenderer) SetSamplingConfig(config SamplingConfig) {
	pr.raytracer.SetSamplingConfig(config)
}

// Render renders the full image and blocks until every tile is done or ctx
// is cancelled, in which case the partial image is discarded
func (pr *ParallelRenderer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	config := pr.raytracer.GetSamplingConfig()
	if err := config.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid sampling config: %w", err)
	}

	startTime := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, config.Width, config.Height))
	tiles := NewTileGrid(config.Width, config.Height, pr.config.TileSize)

	workerPool := NewWorkerPool(NewTileRenderer(pr.raytracer), pr.config.NumWorkers, len(tiles))
	workerPool.Start(ctx)
	defer workerPool.Stop()

	pr.logger.Printf("Rendering %dx%d at %d samples/pixel, depth %d (%d tiles, %d workers)...\n",
		config.Width, config.Height, config.SamplesPerPixel, config.MaxDepth, len(tiles), workerPool.GetNumWorkers())

	for taskID, tile := range tiles {
		workerPool.SubmitTask(TileTask{
			Tile:   tile,
			TaskID: taskID,
			Image:  img,
		})
	}

	stats := RenderStats{
		Tiles:   len(tiles),
		Workers: workerPool.GetNumWorkers(),
	}
	for i := 0; i < len(tiles); i++ {
		result, ok := workerPool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			pr.logger.Printf("Render cancelled: %v\n", result.Error)
			return nil, RenderStats{}, fmt.Errorf("render cancelled: %w", result.Error)
		}
		stats.Merge(result.Stats)
	}
	stats.Duration = time.Since(startTime)

	pr.logger.Printf("Render completed in %v (%d pixels, %.1f samples/pixel)\n",
		stats.Duration, stats.TotalPixels, stats.AverageSamples())

	return img, stats, nil
}
