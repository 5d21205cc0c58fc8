package renderer

import (
	"context"
	"image"
)

// Tile is a rectangular region of the output image rendered as one task
type Tile struct {
	ID     int
	Bounds image.Rectangle
}

// NewTileGrid splits a width x height image into tiles of at most
// tileSize x tileSize, in row-major order
func NewTileGrid(width, height, tileSize int) []*Tile {
	if tileSize <= 0 {
		tileSize = max(width, height)
	}

	var tiles []*Tile
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, &Tile{
				ID:     len(tiles),
				Bounds: image.Rect(x, y, min(x+tileSize, width), min(y+tileSize, height)),
			})
		}
	}
	return tiles
}

// TileRenderer renders rectangular regions of the image
type TileRenderer struct {
	raytracer *Raytracer
}

// NewTileRenderer creates a new tile renderer backed by a shared raytracer
func NewTileRenderer(raytracer *Raytracer) *TileRenderer {
	return &TileRenderer{raytracer: raytracer}
}

// RenderTileBounds renders every pixel within bounds into img.
// Callers must give concurrent calls disjoint bounds. ctx is checked before
// each row; a cancelled tile is left partially drawn.
func (tr *TileRenderer) RenderTileBounds(ctx context.Context, bounds image.Rectangle, img *image.RGBA) (RenderStats, error) {
	var stats RenderStats

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ps := tr.raytracer.SamplePixel(x, y)
			img.SetRGBA(x, y, vec3ToColor(ps.GetColor()))
			stats.TotalPixels++
			stats.TotalSamples += ps.SampleCount
		}
	}

	return stats, nil
}
