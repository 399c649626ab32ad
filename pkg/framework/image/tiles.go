package image

import (
	"context"

	"github.com/samber/oops"
	"golang.org/x/sync/errgroup"
)

// Tile is one horizontal band of a writable image.
type Tile[P Format] struct {
	DescriptorMut[P]
	Index int
}

// Tiles splits the buffer into min(n, height) bands of contiguous rows. The
// bands cover every row exactly once; the first height%n bands are one row
// taller than the rest. n < 1 is treated as 1.
func (d DescriptorMut[P]) Tiles(n int) []Tile[P] {
	height := d.bounds.Height()
	if height <= 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}
	if n > height {
		n = height
	}

	base, extra := height/n, height%n
	tiles := make([]Tile[P], 0, n)
	y := d.bounds.Y1
	for i := 0; i < n; i++ {
		rows := base
		if i < extra {
			rows++
		}
		sub := d.Descriptor
		sub.bounds.Y1 = y
		sub.bounds.Y2 = y + rows
		if !d.bounds.Empty() {
			sub.data = d.rowPointer(y)
		}
		tiles = append(tiles, Tile[P]{DescriptorMut: DescriptorMut[P]{sub}, Index: i})
		y += rows
	}
	return tiles
}

// ProcessTiles runs fn on every tile in its own goroutine, waits for all of
// them and returns the first error. A panic in fn is returned as an error.
// The context passed to fn is cancelled once any tile fails.
func ProcessTiles[P Format](ctx context.Context, tiles []Tile[P], fn func(context.Context, Tile[P]) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, tile := range tiles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var fnErr error
			err := oops.In("image").
				With("tile", tile.Index).
				Recoverf(func() { fnErr = fn(ctx, tile) }, "tile %d panicked", tile.Index)
			if err != nil {
				return err
			}
			return fnErr
		})
	}
	return g.Wait()
}
