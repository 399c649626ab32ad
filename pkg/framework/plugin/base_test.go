package plugin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/justyntemme/ofxgo/pkg/framework/handle"
	"github.com/justyntemme/ofxgo/pkg/framework/image"
	"github.com/justyntemme/ofxgo/pkg/framework/param"
	"github.com/justyntemme/ofxgo/pkg/framework/property"
	"github.com/justyntemme/ofxgo/pkg/framework/suite"
	"github.com/justyntemme/ofxgo/pkg/ofx"
	"github.com/justyntemme/ofxgo/pkg/ofx/ofxtest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBaseDescribe(t *testing.T) {
	_, fx, e := describer(t)
	b := NewBase(Info{ID: "com.example.test", Label: "Test"}).
		Contexts(ofx.ContextFilter, ofx.ContextGeneral).
		PixelDepths(ofx.BitDepthFloat).
		ThreadSafety(ofx.RenderInstanceSafe).
		Tiles(false)

	require.NoError(t, b.Describe(e))
	assert.Equal(t, "Test", fx.Props.String(ofx.PropLabel, 0))
	assert.Equal(t,
		[]any{string(ofx.ContextFilter), string(ofx.ContextGeneral)},
		fx.Props.Values(ofx.ImageEffectPropSupportedContexts))
	assert.Equal(t, []any{string(ofx.BitDepthFloat)}, fx.Props.Values(ofx.ImageEffectPropSupportedPixelDepths))
	assert.Equal(t, string(ofx.RenderInstanceSafe), fx.Props.String(ofx.ImageEffectPluginRenderThreadSafety, 0))
	assert.Equal(t, 0, fx.Props.Int(ofx.ImageEffectPropSupportsTiles, 0))
}

func TestBaseDescribeInContext(t *testing.T) {
	t.Run("Filter", func(t *testing.T) {
		_, fx, e := describer(t)
		b := NewBase(Info{ID: "com.example.test"})
		b.Parameters().Add(param.Mix("mix"), param.Toggle("flip", "Flip", false))

		require.NoError(t, b.DescribeInContext(e, ofx.ContextFilter))
		for _, name := range []string{ofx.OutputClipName, ofx.SimpleSourceClipName} {
			c := fx.Clip(name)
			require.NotNil(t, c, name)
			assert.Equal(t, []any{string(ofx.ComponentRGBA)}, c.Props.Values(ofx.ImageEffectPropSupportedComponents))
		}
		assert.Equal(t, []string{"mix", "flip"}, fx.Params.Order)
	})

	t.Run("GeneratorHasNoSource", func(t *testing.T) {
		_, fx, e := describer(t)
		b := NewBase(Info{ID: "com.example.gen"}).Contexts(ofx.ContextGenerator)

		require.NoError(t, b.DescribeInContext(e, ofx.ContextGenerator))
		assert.NotNil(t, fx.Clip(ofx.OutputClipName))
		assert.Nil(t, fx.Clip(ofx.SimpleSourceClipName))
	})

	t.Run("UnsupportedContext", func(t *testing.T) {
		host, _, e := describer(t)
		b := NewBase(Info{ID: "com.example.test"})

		err := b.DescribeInContext(e, ofx.ContextRetimer)
		assert.True(t, ofx.IsKind(err, ofx.KindUnimplemented))
		assert.Equal(t, ofx.StatErrUnsupported, ofx.StatusOf(err))
		assert.Zero(t, host.Calls("clipDefine"))
	})
}

type renderFixture struct {
	host   *ofxtest.Host
	fx     *ofxtest.Effect
	effect handle.ImageEffect
	in     property.RenderIn
	src    *ofxtest.Frame
	dst    *ofxtest.Frame
}

func newRenderFixture(t *testing.T) renderFixture {
	t.Helper()
	host := ofxtest.NewHost(ofxtest.WithCPUs(3))
	suites, err := suite.Load(host)
	require.NoError(t, err)

	bounds := ofx.RectI{X2: 4, Y2: 5}
	src := ofxtest.NewFrame(bounds, ofx.BitDepthByte, ofx.ComponentRGBA)
	dst := ofxtest.NewFrame(bounds, ofx.BitDepthByte, ofx.ComponentRGBA)
	for y := 0; y < 5; y++ {
		row := src.Row(y)
		for i := range row {
			row[i] = byte(10*y + i)
		}
	}

	fx := host.NewEffect(ofx.ContextFilter)
	fx.AddClip(ofx.SimpleSourceClipName, src)
	fx.AddClip(ofx.OutputClipName, dst)

	ps, err := suites.Property()
	require.NoError(t, err)
	in := host.NewPropertySet().Set(ofx.PropTime, 3.0)

	return renderFixture{
		host:   host,
		fx:     fx,
		effect: handle.NewImageEffect(fx.Handle(), suites),
		in:     property.RenderIn{Set: property.NewSet(in.Handle(), ps)},
		src:    src,
		dst:    dst,
	}
}

func invert(_ context.Context, src image.Descriptor[image.RGBA8], dst image.Tile[image.RGBA8]) error {
	b := dst.Bounds()
	for y := b.Y1; y < b.Y2; y++ {
		for x := b.X1; x < b.X2; x++ {
			p := src.At(x, y)
			dst.Set(x, y, image.RGBA8{R: 255 - p.R, G: 255 - p.G, B: 255 - p.B, A: p.A})
		}
	}
	return nil
}

func TestProcessor(t *testing.T) {
	t.Run("Render", func(t *testing.T) {
		f := newRenderFixture(t)
		require.NoError(t, NewProcessor(invert).Render(context.Background(), f.effect, f.in))

		for y := 0; y < 5; y++ {
			src, dst := f.src.Row(y), f.dst.Row(y)
			for i := 0; i < len(src); i += 4 {
				assert.Equal(t, 255-src[i], dst[i])
				assert.Equal(t, src[i+3], dst[i+3], "alpha untouched")
			}
		}
		assert.Zero(t, f.host.LiveImages())
		assert.Equal(t, 1, f.host.Calls("multiThreadNumCPUs"))
	})

	t.Run("ExplicitTiles", func(t *testing.T) {
		f := newRenderFixture(t)
		var seen [5]int
		p := NewProcessor(func(_ context.Context, _ image.Descriptor[image.RGBA8], dst image.Tile[image.RGBA8]) error {
			for y := dst.Bounds().Y1; y < dst.Bounds().Y2; y++ {
				seen[y]++
			}
			return nil
		}).Tiles(2)

		require.NoError(t, p.Render(context.Background(), f.effect, f.in))
		assert.Equal(t, [5]int{1, 1, 1, 1, 1}, seen)
		assert.Zero(t, f.host.Calls("multiThreadNumCPUs"))
	})

	t.Run("WrongFormat", func(t *testing.T) {
		f := newRenderFixture(t)
		p := NewProcessor(func(context.Context, image.Descriptor[image.RGBAF], image.Tile[image.RGBAF]) error {
			return nil
		})
		err := p.Render(context.Background(), f.effect, f.in)
		assert.True(t, ofx.IsKind(err, ofx.KindInvalidHandle))
		assert.Zero(t, f.host.LiveImages())
	})

	t.Run("TileError", func(t *testing.T) {
		f := newRenderFixture(t)
		want := errors.New("bad pixel")
		p := NewProcessor(func(context.Context, image.Descriptor[image.RGBA8], image.Tile[image.RGBA8]) error {
			return want
		})
		assert.ErrorIs(t, p.Render(context.Background(), f.effect, f.in), want)
		assert.Zero(t, f.host.LiveImages())
	})

	t.Run("Abort", func(t *testing.T) {
		f := newRenderFixture(t)
		f.fx.SetAbort(true)
		called := false
		p := NewProcessor(func(context.Context, image.Descriptor[image.RGBA8], image.Tile[image.RGBA8]) error {
			called = true
			return nil
		}).Tiles(1)

		assert.NoError(t, p.Render(context.Background(), f.effect, f.in))
		assert.False(t, called)
		assert.Zero(t, f.host.LiveImages())
	})

	t.Run("MissingSource", func(t *testing.T) {
		host := ofxtest.NewHost()
		suites, err := suite.Load(host)
		require.NoError(t, err)
		fx := host.NewEffect(ofx.ContextFilter)
		ps, _ := suites.Property()
		in := property.RenderIn{Set: property.NewSet(host.NewPropertySet().Set(ofx.PropTime, 0.0).Handle(), ps)}

		err = NewProcessor(invert).Render(context.Background(), handle.NewImageEffect(fx.Handle(), suites), in)
		assert.True(t, ofx.IsKind(err, ofx.KindInvalidHandle))
	})
}
