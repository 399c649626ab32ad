package plugin

import (
	"context"
	"errors"

	"github.com/justyntemme/ofxgo/pkg/framework/handle"
	"github.com/justyntemme/ofxgo/pkg/framework/image"
	"github.com/justyntemme/ofxgo/pkg/framework/property"
	"github.com/justyntemme/ofxgo/pkg/ofx"
)

var errAborted = errors.New("render aborted by host")

// TileFunc fills one output tile. src covers the whole source image.
type TileFunc[P image.Format] func(ctx context.Context, src image.Descriptor[P], dst image.Tile[P]) error

// Processor reduces a filter's Render action to a per-tile function: it
// fetches the source and output images, splits the output into row tiles and
// processes them on goroutines. Both images are released before Render
// returns.
type Processor[P image.Format] struct {
	tiles int
	fn    TileFunc[P]
}

// NewProcessor creates a processor that runs fn on every output tile.
func NewProcessor[P image.Format](fn TileFunc[P]) *Processor[P] {
	return &Processor[P]{fn: fn}
}

// Tiles sets the number of tiles per frame. Zero asks the host how many CPUs
// it has.
func (p *Processor[P]) Tiles(n int) *Processor[P] {
	p.tiles = n
	return p
}

func (p *Processor[P]) tileCount(effect handle.ImageEffect) int {
	if p.tiles > 0 {
		return p.tiles
	}
	mt, err := effect.Suites().MultiThread()
	if err != nil {
		return 1
	}
	n, st := mt.MultiThreadNumCPUs()
	if st != ofx.StatOK || n < 1 {
		return 1
	}
	return n
}

// Render processes the frame described by in. A host abort request stops
// outstanding tiles and is not reported as an error.
func (p *Processor[P]) Render(ctx context.Context, effect handle.ImageEffect, in property.RenderIn) error {
	t, err := property.Time.Get(in)
	if err != nil {
		return err
	}
	src, err := effect.SourceClip()
	if err != nil {
		return err
	}
	out, err := effect.OutputClip()
	if err != nil {
		return err
	}

	err = src.WithImage(t, nil, func(srcImg *handle.Image) error {
		srcDesc, err := handle.Descriptor[P](srcImg)
		if err != nil {
			return err
		}
		return out.WithImageMut(t, nil, func(dst *handle.ImageMut) error {
			tiles, release, err := handle.TilesMut[P](dst, p.tileCount(effect))
			if err != nil {
				return err
			}
			defer release()

			return image.ProcessTiles(ctx, tiles, func(ctx context.Context, tile image.Tile[P]) error {
				if effect.Abort() {
					return errAborted
				}
				return p.fn(ctx, srcDesc, tile)
			})
		})
	})
	if errors.Is(err, errAborted) {
		return nil
	}
	return err
}
