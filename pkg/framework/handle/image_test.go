package handle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/ofxgo/pkg/framework/image"
	"github.com/justyntemme/ofxgo/pkg/ofx"
	"github.com/justyntemme/ofxgo/pkg/ofx/ofxtest"
)

func sourceClip(t *testing.T, opts ...ofxtest.Option) (*ofxtest.Host, *ofxtest.Frame, ClipInstance) {
	t.Helper()
	host, fx, e := newInstance(t, opts...)
	frame := ofxtest.NewFrame(ofx.RectI{X2: 4, Y2: 2}, ofx.BitDepthByte, ofx.ComponentRGBA)
	fx.AddClip(ofx.SimpleSourceClipName, frame)
	clip, err := e.SourceClip()
	require.NoError(t, err)
	return host, frame, clip
}

func TestImageRelease(t *testing.T) {
	t.Run("ExactlyOnce", func(t *testing.T) {
		host, _, clip := sourceClip(t)
		img, err := clip.GetImage(0)
		require.NoError(t, err)
		assert.Equal(t, 1, host.LiveImages())

		require.NoError(t, img.Release())
		require.NoError(t, img.Release())
		assert.True(t, img.Released())
		assert.Zero(t, host.LiveImages())
		assert.Equal(t, 1, host.Calls("clipReleaseImage"))
	})

	t.Run("WithImage", func(t *testing.T) {
		host, _, clip := sourceClip(t)
		err := clip.WithImage(0, nil, func(img *Image) error {
			bounds, err := img.Bounds()
			require.NoError(t, err)
			assert.Equal(t, ofx.RectI{X2: 4, Y2: 2}, bounds)
			return nil
		})
		require.NoError(t, err)
		assert.Zero(t, host.LiveImages())
	})

	t.Run("WithImageError", func(t *testing.T) {
		host, _, clip := sourceClip(t)
		want := errors.New("render failed")
		err := clip.WithImage(0, nil, func(*Image) error { return want })
		assert.ErrorIs(t, err, want)
		assert.Zero(t, host.LiveImages())
	})

	t.Run("WithImagePanic", func(t *testing.T) {
		host, _, clip := sourceClip(t)
		assert.Panics(t, func() {
			_ = clip.WithImage(0, nil, func(*Image) error { panic("boom") })
		})
		assert.Zero(t, host.LiveImages())
		assert.Equal(t, 1, host.Calls("clipReleaseImage"))
	})

	t.Run("ReleaseFailureSurfaces", func(t *testing.T) {
		host, _, clip := sourceClip(t)
		host.Fail("clipReleaseImage", ofx.StatErrBadHandle)
		err := clip.WithImage(0, nil, func(*Image) error { return nil })
		assert.Equal(t, ofx.StatErrBadHandle, ofx.StatusOf(err))
	})

	t.Run("SuiteLookupFailureKeepsImage", func(t *testing.T) {
		host, _, clip := sourceClip(t)
		img, err := clip.GetImage(0)
		require.NoError(t, err)

		detached := &Image{props: img.props}
		err = detached.Release()
		assert.True(t, ofx.IsKind(err, ofx.KindSuiteNotInitialized))
		assert.False(t, detached.Released())
		assert.Equal(t, 1, host.LiveImages())

		detached.suites = img.suites
		require.NoError(t, detached.Release())
		assert.True(t, detached.Released())
		assert.Zero(t, host.LiveImages())
		assert.Equal(t, 1, host.Calls("clipReleaseImage"))
	})

	t.Run("Region", func(t *testing.T) {
		_, fx, e := newInstance(t)
		fake := fx.AddClip(ofx.SimpleSourceClipName, ofxtest.NewFrame(ofx.RectI{X2: 4, Y2: 2}, ofx.BitDepthByte, ofx.ComponentRGBA))
		clip, err := e.SourceClip()
		require.NoError(t, err)

		region := ofx.RectD{X1: 1, X2: 3, Y2: 2}
		img, err := clip.GetImageRect(0, region)
		require.NoError(t, err)
		defer img.Release()
		require.NotNil(t, fake.LastRegion)
		assert.Equal(t, region, *fake.LastRegion)
	})

	t.Run("NoFrame", func(t *testing.T) {
		_, fx, e := newInstance(t)
		fx.AddClip(ofx.SimpleSourceClipName, nil)
		clip, err := e.SourceClip()
		require.NoError(t, err)

		_, err = clip.GetImage(0)
		assert.Equal(t, ofx.StatFailed, ofx.StatusOf(err))
	})
}

func TestTextures(t *testing.T) {
	t.Run("LoadAndFree", func(t *testing.T) {
		host, _, clip := sourceClip(t)
		tex, err := clip.LoadTexture(0, "", nil)
		require.NoError(t, err)
		assert.True(t, tex.IsTexture())

		_, err = Descriptor[image.RGBA8](tex)
		assert.True(t, ofx.IsKind(err, ofx.KindInvalidHandle))

		require.NoError(t, tex.Release())
		assert.Equal(t, 1, host.Calls("clipFreeTexture"))
		assert.Zero(t, host.Calls("clipReleaseImage"))
		assert.Zero(t, host.LiveImages())
	})

	t.Run("MissingSuite", func(t *testing.T) {
		host, _, clip := sourceClip(t, ofxtest.WithoutSuite(ofx.SuiteImageEffectOpenGLRender, 1))
		_, err := clip.LoadTexture(0, ofx.BitDepthFloat, nil)
		assert.True(t, ofx.IsKind(err, ofx.KindInvalidSuite))
		assert.Equal(t, ofx.StatErrMissingHostFeature, ofx.StatusOf(err))
		assert.Zero(t, host.LiveImages())

		tex := &Image{texture: true, suites: clip.suites}
		err = tex.Release()
		assert.True(t, ofx.IsKind(err, ofx.KindInvalidSuite))
		assert.False(t, tex.Released(), "a texture the host never freed stays live")
	})
}

func TestPixelAccess(t *testing.T) {
	t.Run("Descriptor", func(t *testing.T) {
		_, frame, clip := sourceClip(t)
		copy(frame.Row(1)[4:8], []byte{9, 8, 7, 6})

		err := clip.WithImage(0, nil, func(img *Image) error {
			d, err := Descriptor[image.RGBA8](img)
			if err != nil {
				return err
			}
			assert.Equal(t, image.RGBA8{R: 9, G: 8, B: 7, A: 6}, d.At(1, 1))
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("FormatMismatch", func(t *testing.T) {
		_, _, clip := sourceClip(t)
		err := clip.WithImage(0, nil, func(img *Image) error {
			_, err := Descriptor[image.RGBAF](img)
			return err
		})
		assert.True(t, ofx.IsKind(err, ofx.KindInvalidHandle))
	})

	t.Run("Released", func(t *testing.T) {
		_, _, clip := sourceClip(t)
		img, err := clip.GetImage(0)
		require.NoError(t, err)
		require.NoError(t, img.Release())

		_, err = Descriptor[image.RGBA8](img)
		assert.True(t, ofx.IsKind(err, ofx.KindInvalidHandle))
	})

	t.Run("Writable", func(t *testing.T) {
		_, frame, clip := sourceClip(t)
		err := clip.WithImageMut(0, nil, func(m *ImageMut) error {
			d, release, err := Writable[image.RGBA8](m)
			if err != nil {
				return err
			}
			defer release()
			d.Set(3, 0, image.RGBA8{R: 1, G: 2, B: 3, A: 4})
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2, 3, 4}, frame.Row(0)[12:16])
	})

	t.Run("Tiles", func(t *testing.T) {
		_, frame, clip := sourceClip(t)
		m, err := clip.GetImageMut(0)
		require.NoError(t, err)
		defer m.Release()

		tiles, release, err := TilesMut[image.RGBA8](m, 2)
		require.NoError(t, err)
		require.Len(t, tiles, 2)
		for _, tile := range tiles {
			b := tile.Bounds()
			for y := b.Y1; y < b.Y2; y++ {
				tile.Set(0, y, image.RGBA8{A: 255})
			}
		}
		release()

		assert.Equal(t, byte(255), frame.Row(0)[3])
		assert.Equal(t, byte(255), frame.Row(1)[3])
	})
}

func TestBorrows(t *testing.T) {
	_, _, clip := sourceClip(t)
	m, err := clip.GetImageMut(0)
	require.NoError(t, err)
	defer m.Release()

	readA, err := m.Borrow()
	require.NoError(t, err)
	readB, err := m.Borrow()
	require.NoError(t, err)

	_, err = m.BorrowMut()
	assert.True(t, ofx.IsKind(err, ofx.KindBusy), "write while read")

	readA()
	readA()
	_, err = m.BorrowMut()
	assert.True(t, ofx.IsKind(err, ofx.KindBusy), "one reader left")

	readB()
	write, err := m.BorrowMut()
	require.NoError(t, err)

	_, _, err = ReadOnly[image.RGBA8](m)
	assert.True(t, ofx.IsKind(err, ofx.KindBusy), "read while write")
	assert.Equal(t, ofx.StatFailed, ofx.StatusOf(err))

	write()
	d, release, err := ReadOnly[image.RGBA8](m)
	require.NoError(t, err)
	defer release()
	assert.Equal(t, ofx.RectI{X2: 4, Y2: 2}, d.Bounds())
}
