package image

import (
	"context"
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/justyntemme/ofxgo/pkg/ofx"
	"github.com/justyntemme/ofxgo/pkg/ofx/ofxtest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func frameDescriptor(t *testing.T, f *ofxtest.Frame) DescriptorMut[RGBA8] {
	t.Helper()
	row := f.Row(f.Bounds.Y1)
	d, err := NewDescriptorMut[RGBA8](f.Bounds, f.RowBytes(), uintptr(unsafe.Pointer(&row[0])))
	require.NoError(t, err)
	return d
}

func TestFormats(t *testing.T) {
	assert.Equal(t, 4, PixelSize[RGBA8]())
	assert.Equal(t, 8, PixelSize[RGBA16]())
	assert.Equal(t, 16, PixelSize[RGBAF]())
	assert.Equal(t, 3, PixelSize[RGB8]())
	assert.Equal(t, 12, PixelSize[RGBF]())
	assert.Equal(t, 2, PixelSize[Alpha16]())

	assert.NoError(t, Check[RGBAF](ofx.BitDepthFloat, ofx.ComponentRGBA))
	err := Check[RGBA8](ofx.BitDepthFloat, ofx.ComponentRGBA)
	assert.True(t, ofx.IsKind(err, ofx.KindInvalidHandle))
}

func TestDescriptor(t *testing.T) {
	t.Run("TopDown", func(t *testing.T) {
		f := ofxtest.NewFrame(ofx.RectI{X1: 10, Y1: 20, X2: 14, Y2: 23}, ofx.BitDepthByte, ofx.ComponentRGBA)
		d := frameDescriptor(t, f)
		d.Set(11, 21, RGBA8{R: 1, G: 2, B: 3, A: 4})

		assert.Equal(t, RGBA8{R: 1, G: 2, B: 3, A: 4}, d.ReadOnly().At(11, 21))
		assert.Equal(t, []byte{1, 2, 3, 4}, f.Row(21)[4:8])
	})

	t.Run("BottomUp", func(t *testing.T) {
		f := ofxtest.NewFrame(ofx.RectI{X2: 2, Y2: 3}, ofx.BitDepthByte, ofx.ComponentRGBA)
		f.BottomUp = true
		d := frameDescriptor(t, f)
		assert.Negative(t, d.RowBytes())

		for y := 0; y < 3; y++ {
			d.Set(0, y, RGBA8{R: uint8(y + 1)})
		}
		for y := 0; y < 3; y++ {
			assert.Equal(t, uint8(y+1), f.Row(y)[0])
		}
		assert.Equal(t, uint8(3), f.Data[0], "last row is first in memory")
	})

	t.Run("ShortStride", func(t *testing.T) {
		buf := make([]byte, 16)
		_, err := NewDescriptor[RGBA8](ofx.RectI{X2: 4, Y2: 1}, 8, uintptr(unsafe.Pointer(&buf[0])))
		assert.True(t, ofx.IsKind(err, ofx.KindInvalidHandle))
	})

	t.Run("NoData", func(t *testing.T) {
		_, err := NewDescriptor[RGBA8](ofx.RectI{X2: 4, Y2: 1}, 16, 0)
		assert.True(t, ofx.IsKind(err, ofx.KindInvalidHandle))
	})

	t.Run("CopyRow", func(t *testing.T) {
		f := ofxtest.NewFrame(ofx.RectI{X2: 3, Y2: 1}, ofx.BitDepthByte, ofx.ComponentRGBA)
		d := frameDescriptor(t, f)
		d.Row(0)[2] = RGBA8{A: 9}
		dst := make([]RGBA8, 3)
		assert.Equal(t, 3, d.ReadOnly().CopyRow(dst, 0))
		assert.Equal(t, uint8(9), dst[2].A)
	})
}

func TestTiles(t *testing.T) {
	tests := []struct {
		name   string
		height int
		n      int
		want   []int
	}{
		{"Even", 8, 4, []int{2, 2, 2, 2}},
		{"Remainder", 10, 4, []int{3, 3, 2, 2}},
		{"MoreTilesThanRows", 3, 8, []int{1, 1, 1}},
		{"Single", 5, 1, []int{5}},
		{"ZeroMeansOne", 5, 0, []int{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bounds := ofx.RectI{X1: 0, Y1: 7, X2: 2, Y2: 7 + tt.height}
			d := frameDescriptor(t, ofxtest.NewFrame(bounds, ofx.BitDepthByte, ofx.ComponentRGBA))
			tiles := d.Tiles(tt.n)
			require.Len(t, tiles, len(tt.want))

			y := bounds.Y1
			for i, tile := range tiles {
				assert.Equal(t, i, tile.Index)
				assert.Equal(t, y, tile.Bounds().Y1, "tiles must be contiguous")
				assert.Equal(t, tt.want[i], tile.Bounds().Height())
				assert.Equal(t, bounds.X1, tile.Bounds().X1)
				assert.Equal(t, bounds.X2, tile.Bounds().X2)
				y = tile.Bounds().Y2
			}
			assert.Equal(t, bounds.Y2, y, "tiles must cover every row")
		})
	}

	t.Run("TilesAliasParent", func(t *testing.T) {
		f := ofxtest.NewFrame(ofx.RectI{X2: 1, Y2: 4}, ofx.BitDepthByte, ofx.ComponentRGBA)
		d := frameDescriptor(t, f)
		for _, tile := range d.Tiles(2) {
			for y := tile.Bounds().Y1; y < tile.Bounds().Y2; y++ {
				tile.Set(0, y, RGBA8{G: uint8(10 + y)})
			}
		}
		for y := 0; y < 4; y++ {
			assert.Equal(t, uint8(10+y), d.ReadOnly().At(0, y).G)
		}
	})

	t.Run("EmptyImage", func(t *testing.T) {
		d, err := NewDescriptorMut[RGBA8](ofx.RectI{}, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, d.Tiles(4))
	})
}

func TestProcessTiles(t *testing.T) {
	f := ofxtest.NewFrame(ofx.RectI{X2: 4, Y2: 9}, ofx.BitDepthByte, ofx.ComponentRGBA)
	d := frameDescriptor(t, f)

	t.Run("AllTiles", func(t *testing.T) {
		err := ProcessTiles(context.Background(), d.Tiles(3), func(_ context.Context, tile Tile[RGBA8]) error {
			for y := tile.Bounds().Y1; y < tile.Bounds().Y2; y++ {
				row := tile.Row(y)
				for x := range row {
					row[x] = RGBA8{A: 255}
				}
			}
			return nil
		})
		require.NoError(t, err)
		for y := 0; y < 9; y++ {
			assert.Equal(t, uint8(255), d.ReadOnly().At(3, y).A)
		}
	})

	t.Run("FirstError", func(t *testing.T) {
		boom := errors.New("boom")
		err := ProcessTiles(context.Background(), d.Tiles(3), func(_ context.Context, tile Tile[RGBA8]) error {
			if tile.Index == 1 {
				return boom
			}
			return nil
		})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("Panic", func(t *testing.T) {
		err := ProcessTiles(context.Background(), d.Tiles(2), func(context.Context, Tile[RGBA8]) error {
			panic("bad pixel")
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "panicked")
	})
}
