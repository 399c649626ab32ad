// Package image describes host pixel buffers as typed Go views and splits
// them into row tiles for parallel processing.
package image

import (
	"unsafe"

	"github.com/justyntemme/ofxgo/pkg/ofx"
)

// Format is a pixel layout. The zero value of a Format type is a valid pixel
// whose memory layout matches the host's for that depth and component set.
type Format interface {
	Depth() ofx.BitDepth
	Components() ofx.PixelComponent
}

type (
	RGBA8   struct{ R, G, B, A uint8 }
	RGBA16  struct{ R, G, B, A uint16 }
	RGBAF   struct{ R, G, B, A float32 }
	RGB8    struct{ R, G, B uint8 }
	RGB16   struct{ R, G, B uint16 }
	RGBF    struct{ R, G, B float32 }
	Alpha8  struct{ A uint8 }
	Alpha16 struct{ A uint16 }
	AlphaF  struct{ A float32 }
)

func (RGBA8) Depth() ofx.BitDepth { return ofx.BitDepthByte }
func (RGBA8) Components() ofx.PixelComponent { return ofx.ComponentRGBA }
func (RGBA16) Depth() ofx.BitDepth { return ofx.BitDepthShort }
func (RGBA16) Components() ofx.PixelComponent { return ofx.ComponentRGBA }
func (RGBAF) Depth() ofx.BitDepth { return ofx.BitDepthFloat }
func (RGBAF) Components() ofx.PixelComponent { return ofx.ComponentRGBA }
func (RGB8) Depth() ofx.BitDepth { return ofx.BitDepthByte }
func (RGB8) Components() ofx.PixelComponent { return ofx.ComponentRGB }
func (RGB16) Depth() ofx.BitDepth { return ofx.BitDepthShort }
func (RGB16) Components() ofx.PixelComponent { return ofx.ComponentRGB }
func (RGBF) Depth() ofx.BitDepth { return ofx.BitDepthFloat }
func (RGBF) Components() ofx.PixelComponent { return ofx.ComponentRGB }
func (Alpha8) Depth() ofx.BitDepth { return ofx.BitDepthByte }
func (Alpha8) Components() ofx.PixelComponent { return ofx.ComponentAlpha }
func (Alpha16) Depth() ofx.BitDepth { return ofx.BitDepthShort }
func (Alpha16) Components() ofx.PixelComponent { return ofx.ComponentAlpha }
func (AlphaF) Depth() ofx.BitDepth { return ofx.BitDepthFloat }
func (AlphaF) Components() ofx.PixelComponent { return ofx.ComponentAlpha }

// PixelSize returns the size in bytes of one P.
func PixelSize[P Format]() int {
	var p P
	return int(unsafe.Sizeof(p))
}

// Check fails with InvalidHandle unless P matches depth and components.
func Check[P Format](depth ofx.BitDepth, components ofx.PixelComponent) error {
	var p P
	if p.Depth() != depth || p.Components() != components {
		return ofx.NewError(ofx.KindInvalidHandle,
			"pixel format %T does not match image %s/%s", p, depth, components)
	}
	return nil
}
