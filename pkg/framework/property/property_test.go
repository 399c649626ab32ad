package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/ofxgo/pkg/ofx"
	"github.com/justyntemme/ofxgo/pkg/ofx/ofxtest"
)

func newSet(t *testing.T) (*ofxtest.Host, *ofxtest.PropSet, Set) {
	t.Helper()
	host := ofxtest.NewHost()
	suite, ok := host.FetchSuite(ofx.SuiteProperty, 1).(ofx.PropertySuiteV1)
	require.True(t, ok)
	ps := host.NewPropertySet()
	return host, ps, NewSet(ps.Handle(), suite)
}

func TestScalarProperties(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		_, ps, set := newSet(t)
		view := ClipDescriptor{set}
		require.NoError(t, Label.Set(view, "Source"))
		assert.Equal(t, "Source", ps.String(ofx.PropLabel, 0))

		got, err := Label.Get(view)
		require.NoError(t, err)
		assert.Equal(t, "Source", got)
	})

	t.Run("Bool", func(t *testing.T) {
		_, ps, set := newSet(t)
		view := ClipDescriptor{set}
		require.NoError(t, Optional.Set(view, true))
		assert.Equal(t, 1, ps.Int(ofx.ImageClipPropOptional, 0))
		require.NoError(t, Optional.Set(view, false))
		assert.Equal(t, 0, ps.Int(ofx.ImageClipPropOptional, 0))

		ps.Set(ofx.ImageClipPropOptional, 7)
		v, err := Optional.Get(view)
		require.NoError(t, err)
		assert.True(t, v, "nonzero reads as true")
	})

	t.Run("Token", func(t *testing.T) {
		_, ps, set := newSet(t)
		ps.Set(ofx.ImageEffectPropContext, ofx.ContextGeneral)
		ctx, err := Context.Get(EffectInstance{set})
		require.NoError(t, err)
		assert.Equal(t, ofx.ContextGeneral, ctx)
	})

	t.Run("PointerRoundTrip", func(t *testing.T) {
		_, ps, set := newSet(t)
		view := EffectInstance{set}
		require.NoError(t, InstanceData.Set(view, 0xdead))
		assert.Equal(t, uintptr(0xdead), ps.Pointer(ofx.PropInstanceData, 0))
		v, err := InstanceData.Get(view)
		require.NoError(t, err)
		assert.Equal(t, uintptr(0xdead), v)
	})

	t.Run("Time", func(t *testing.T) {
		_, ps, set := newSet(t)
		ps.Set(ofx.PropTime, 12.5)
		v, err := Time.Get(RenderIn{set})
		require.NoError(t, err)
		assert.Equal(t, ofx.Time(12.5), v)
	})
}

func TestCompositeProperties(t *testing.T) {
	t.Run("RectI", func(t *testing.T) {
		_, ps, set := newSet(t)
		ps.Set(ofx.ImagePropBounds, 0, 10, 640, 480)
		b, err := Bounds.Get(Image{set})
		require.NoError(t, err)
		assert.Equal(t, ofx.RectI{X1: 0, Y1: 10, X2: 640, Y2: 480}, b)
	})

	t.Run("RectD", func(t *testing.T) {
		_, ps, set := newSet(t)
		out := RegionOfDefinitionOut{set}
		rod := ofx.RectD{X1: -1, Y1: -2, X2: 3.5, Y2: 4.5}
		require.NoError(t, RegionOfDefinition.Set(out, rod))
		assert.Equal(t, []any{-1.0, -2.0, 3.5, 4.5}, ps.Values(ofx.ImageEffectPropRegionOfDefinition))
	})

	t.Run("Tokens", func(t *testing.T) {
		_, ps, set := newSet(t)
		view := EffectDescriptor{set}
		contexts := []ofx.Context{ofx.ContextFilter, ofx.ContextGeneral}
		require.NoError(t, SupportedContexts.Set(view, contexts))
		assert.Equal(t, []any{string(ofx.ContextFilter), string(ofx.ContextGeneral)},
			ps.Values(ofx.ImageEffectPropSupportedContexts))

		got, err := SupportedContexts.Get(view)
		require.NoError(t, err)
		assert.Equal(t, contexts, got)
	})

	t.Run("DynamicPerClip", func(t *testing.T) {
		_, ps, set := newSet(t)
		out := ClipPreferencesOut{set}
		require.NoError(t, ClipComponents.Set(out, "Source", ofx.ComponentRGBA))
		assert.Equal(t, string(ofx.ComponentRGBA), ps.String("OfxImageClipPropComponents_Source", 0))

		roi := RegionsOfInterestOut{set}
		require.NoError(t, ClipRegionOfInterest.Set(roi, "Source", ofx.RectD{X2: 10, Y2: 10}))
		got, err := ClipRegionOfInterest.Get(roi, "Source")
		require.NoError(t, err)
		assert.Equal(t, ofx.RectD{X2: 10, Y2: 10}, got)
	})

	t.Run("FramesNeeded", func(t *testing.T) {
		_, ps, set := newSet(t)
		out := FramesNeededOut{set}
		ranges := []ofx.RangeD{{Min: 0, Max: 2}, {Min: 10, Max: 10}}
		require.NoError(t, ClipFramesNeeded.Set(out, "Source", ranges))
		assert.Len(t, ps.Values("OfxImageClipPropFrameRange_Source"), 4)

		got, err := ClipFramesNeeded.Get(out, "Source")
		require.NoError(t, err)
		assert.Equal(t, ranges, got)
	})
}

func TestPropertyErrors(t *testing.T) {
	t.Run("NoSuite", func(t *testing.T) {
		_, ps, _ := newSet(t)
		view := Image{NewSet(ps.Handle(), nil)}
		_, err := RowBytes.Get(view)
		assert.True(t, ofx.IsKind(err, ofx.KindSuiteNotInitialized))
	})

	t.Run("NilHandle", func(t *testing.T) {
		_, _, set := newSet(t)
		view := Image{NewSet(nil, set.suite)}
		_, err := RowBytes.Get(view)
		assert.True(t, ofx.IsKind(err, ofx.KindInvalidHandle))
	})

	t.Run("HostStatus", func(t *testing.T) {
		_, _, set := newSet(t)
		_, err := RowBytes.Get(Image{set})
		require.Error(t, err)
		assert.Equal(t, ofx.StatErrUnknown, ofx.StatusOf(err))
		assert.Contains(t, err.Error(), ofx.ImagePropRowBytes)
	})

	t.Run("ForcedFailure", func(t *testing.T) {
		host, _, set := newSet(t)
		host.Fail("propSetString", ofx.StatErrMemory)
		err := Label.Set(ClipDescriptor{set}, "x")
		assert.Equal(t, ofx.StatErrMemory, ofx.StatusOf(err))
	})

	t.Run("EmbeddedNul", func(t *testing.T) {
		host, _, set := newSet(t)
		err := Label.Set(ClipDescriptor{set}, "a\x00b")
		assert.True(t, ofx.IsKind(err, ofx.KindStringConversion))
		assert.Zero(t, host.Calls("propSetString"), "rejected before any suite call")
	})

	t.Run("InvalidUTF8FromHost", func(t *testing.T) {
		_, ps, set := newSet(t)
		ps.Set(ofx.PropLabel, "\xff\xfe")
		_, err := Label.Get(ClipDescriptor{set})
		assert.True(t, ofx.IsKind(err, ofx.KindStringConversion))
	})

	t.Run("InvalidClipName", func(t *testing.T) {
		_, _, set := newSet(t)
		err := ClipDepth.Set(ClipPreferencesOut{set}, "bad\x00clip", ofx.BitDepthByte)
		assert.True(t, ofx.IsKind(err, ofx.KindStringConversion))
	})
}

func TestCheckString(t *testing.T) {
	assert.NoError(t, CheckString("Ünïcode ok"))
	assert.Error(t, CheckString("nul\x00"))
	assert.Error(t, CheckString(string([]byte{0xc3})))
}

// Compile-time capability checks: these views must carry these properties.
var (
	_ Typed               = Image{}
	_ PixelTyped          = ClipInstance{}
	_ PixelTyped          = Image{}
	_ Scaled              = RenderIn{}
	_ Windowed            = IsIdentityIn{}
	_ SetsClipPreferences = ClipPreferencesOut{}
	_ DoubleDescribing    = DoubleParamDescriptor{}
	_ ParamDescribing     = ParamInstance{}
	_ EffectInstanceProps = EffectInstance{}
	_ ContextSupporting   = Host{}
	_ FeatureFlags        = EffectDescriptor{}
)
