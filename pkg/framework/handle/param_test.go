package handle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/ofxgo/pkg/framework/property"
	"github.com/justyntemme/ofxgo/pkg/ofx"
	"github.com/justyntemme/ofxgo/pkg/ofx/ofxtest"
)

func paramSet(t *testing.T, opts ...ofxtest.Option) (*ofxtest.Host, *ofxtest.Effect, ParamSet) {
	t.Helper()
	host, fx, e := newInstance(t, opts...)
	set, err := e.ParamSet()
	require.NoError(t, err)
	return host, fx, set
}

func TestParamDefine(t *testing.T) {
	t.Run("Double", func(t *testing.T) {
		_, fx, set := paramSet(t)
		desc, err := set.DefineDouble("gain")
		require.NoError(t, err)
		require.NoError(t, property.DoubleDefault.Set(desc, 0.5))

		p := fx.Params.Param("gain")
		require.NotNil(t, p)
		assert.Equal(t, ofx.ParamTypeDouble, p.Type)
		assert.InDelta(t, 0.5, p.Props.Double(ofx.ParamPropDefault, 0), 1e-9)
	})

	t.Run("EveryKind", func(t *testing.T) {
		_, fx, set := paramSet(t)
		_, err := set.DefineInt("count")
		require.NoError(t, err)
		_, err = set.DefineBool("enabled")
		require.NoError(t, err)
		_, err = set.DefineString("label")
		require.NoError(t, err)
		_, err = set.DefineChoice("mode")
		require.NoError(t, err)
		_, err = set.DefineGroup("advanced")
		require.NoError(t, err)
		_, err = set.DefinePage("Controls")
		require.NoError(t, err)
		_, err = set.DefineButton("reset")
		require.NoError(t, err)
		_, err = set.DefineParametric("curves")
		require.NoError(t, err)

		assert.Equal(t, []string{"count", "enabled", "label", "mode", "advanced", "Controls", "reset", "curves"}, fx.Params.Order)
	})

	t.Run("BadNameSkipsHost", func(t *testing.T) {
		host, _, set := paramSet(t)
		_, err := set.DefineDouble("ga\x00in")
		assert.True(t, ofx.IsKind(err, ofx.KindStringConversion))
		assert.Zero(t, host.Calls("paramDefine"))
	})

	t.Run("Duplicate", func(t *testing.T) {
		_, _, set := paramSet(t)
		_, err := set.DefineInt("count")
		require.NoError(t, err)
		_, err = set.DefineInt("count")
		assert.Equal(t, ofx.StatErrExists, ofx.StatusOf(err))
	})

	t.Run("EditBlock", func(t *testing.T) {
		_, fx, set := paramSet(t)
		require.NoError(t, set.EditBegin("reset all"))
		require.NoError(t, set.EditEnd())
		assert.Equal(t, []string{"begin:reset all", "end"}, fx.Params.Edits)
	})
}

func TestParameterLookup(t *testing.T) {
	t.Run("Unknown", func(t *testing.T) {
		_, _, set := paramSet(t)
		_, err := Parameter[float64](set, "missing")
		assert.True(t, ofx.IsKind(err, ofx.KindInvalidHandle))
	})

	tests := []struct {
		name      string
		paramType ofx.ParamType
		lookup    func(ParamSet, string) error
		wantErr   bool
	}{
		{"IntFromInteger", ofx.ParamTypeInteger, lookupAs[int], false},
		{"IntFromChoice", ofx.ParamTypeChoice, lookupAs[int], false},
		{"FloatFromDouble", ofx.ParamTypeDouble, lookupAs[float64], false},
		{"BoolFromBoolean", ofx.ParamTypeBoolean, lookupAs[bool], false},
		{"StringFromString", ofx.ParamTypeString, lookupAs[string], false},
		{"FloatFromInteger", ofx.ParamTypeInteger, lookupAs[float64], true},
		{"BoolFromString", ofx.ParamTypeString, lookupAs[bool], true},
		{"IntFromPage", ofx.ParamTypePage, lookupAs[int], true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, fx, set := paramSet(t)
			fx.Params.Define(tt.paramType, "p")
			err := tt.lookup(set, "p")
			if tt.wantErr {
				assert.True(t, ofx.IsKind(err, ofx.KindInvalidHandle))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func lookupAs[T ParamValue](set ParamSet, name string) error {
	_, err := Parameter[T](set, name)
	return err
}

func TestParamValues(t *testing.T) {
	t.Run("Double", func(t *testing.T) {
		_, fx, set := paramSet(t)
		fx.Params.Define(ofx.ParamTypeDouble, "gain")
		p, err := Parameter[float64](set, "gain")
		require.NoError(t, err)

		require.NoError(t, p.SetValue(1.5))
		v, err := p.Value()
		require.NoError(t, err)
		assert.InDelta(t, 1.5, v, 1e-9)
	})

	t.Run("BoolTravelsAsInt", func(t *testing.T) {
		_, fx, set := paramSet(t)
		raw := fx.Params.Define(ofx.ParamTypeBoolean, "enabled")
		p, err := Parameter[bool](set, "enabled")
		require.NoError(t, err)

		require.NoError(t, p.SetValue(true))
		assert.Equal(t, 1, raw.Raw())

		raw.SetRaw(7)
		v, err := p.Value()
		require.NoError(t, err)
		assert.True(t, v, "any nonzero int is true")

		raw.SetRaw(0)
		v, err = p.Value()
		require.NoError(t, err)
		assert.False(t, v)
	})

	t.Run("NullString", func(t *testing.T) {
		_, fx, set := paramSet(t)
		fx.Params.Define(ofx.ParamTypeString, "label")
		p, err := Parameter[string](set, "label")
		require.NoError(t, err)

		v, err := p.Value()
		require.NoError(t, err)
		assert.Equal(t, "", v)
	})

	t.Run("String", func(t *testing.T) {
		_, fx, set := paramSet(t)
		raw := fx.Params.Define(ofx.ParamTypeString, "label")
		p, err := Parameter[string](set, "label")
		require.NoError(t, err)

		require.NoError(t, p.SetValue("héllo"))
		stored, ok := raw.Raw().(*string)
		require.True(t, ok)
		assert.Equal(t, "héllo", *stored)

		v, err := p.Value()
		require.NoError(t, err)
		assert.Equal(t, "héllo", v)
	})

	t.Run("InvalidHostString", func(t *testing.T) {
		_, fx, set := paramSet(t)
		raw := fx.Params.Define(ofx.ParamTypeString, "label")
		bad := string([]byte{0xff, 0xfe})
		raw.SetRaw(&bad)
		p, err := Parameter[string](set, "label")
		require.NoError(t, err)

		_, err = p.Value()
		assert.True(t, ofx.IsKind(err, ofx.KindStringConversion))
	})

	t.Run("StringWithNULRejectedBeforeHost", func(t *testing.T) {
		host, fx, set := paramSet(t)
		fx.Params.Define(ofx.ParamTypeString, "label")
		p, err := Parameter[string](set, "label")
		require.NoError(t, err)

		err = p.SetValue("a\x00b")
		assert.True(t, ofx.IsKind(err, ofx.KindStringConversion))
		assert.Zero(t, host.Calls("paramSetValue"))
	})

	t.Run("HostFailure", func(t *testing.T) {
		host, fx, set := paramSet(t)
		fx.Params.Define(ofx.ParamTypeInteger, "count")
		p, err := Parameter[int](set, "count")
		require.NoError(t, err)

		host.Fail("paramGetValue", ofx.StatErrBadHandle)
		_, err = p.Value()
		assert.Equal(t, ofx.StatErrBadHandle, ofx.StatusOf(err))
	})
}

func TestParamKeys(t *testing.T) {
	_, fx, set := paramSet(t)
	fx.Params.Define(ofx.ParamTypeDouble, "gain")
	p, err := Parameter[float64](set, "gain")
	require.NoError(t, err)

	require.NoError(t, p.SetValueAtTime(10, 1.0))
	require.NoError(t, p.SetValueAtTime(20, 2.0))

	n, err := p.NumKeys()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	at, err := p.KeyTime(1)
	require.NoError(t, err)
	assert.Equal(t, ofx.Time(20), at)

	v, err := p.ValueAtTime(20)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, v, 1e-9)

	i, err := p.KeyIndex(15, ofx.KeySearchNext)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	i, err = p.KeyIndex(5, ofx.KeySearchPrevious)
	assert.Equal(t, ofx.StatFailed, ofx.StatusOf(err))
	assert.Equal(t, -1, i)

	require.NoError(t, p.DeleteKey(10))
	n, err = p.NumKeys()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, p.DeleteAllKeys())
	n, err = p.NumKeys()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestParametric(t *testing.T) {
	t.Run("ControlPoints", func(t *testing.T) {
		_, fx, set := paramSet(t)
		raw := fx.Params.Define(ofx.ParamTypeParametric, "curves")
		p, err := set.Parametric("curves")
		require.NoError(t, err)

		require.NoError(t, p.AddControlPoint(0, 0, ControlPoint{Key: 0, Value: 0}, false))
		require.NoError(t, p.AddControlPoint(0, 0, ControlPoint{Key: 1, Value: 1}, false))
		assert.Len(t, raw.Curve(0), 2)

		points, err := p.ControlPoints(0, 0)
		require.NoError(t, err)
		assert.Equal(t, []ControlPoint{{0, 0}, {1, 1}}, points)

		require.NoError(t, p.SetControlPoint(0, 0, 1, ControlPoint{Key: 1, Value: 0.5}, false))
		pt, err := p.ControlPoint(0, 0, 1)
		require.NoError(t, err)
		assert.Equal(t, ControlPoint{Key: 1, Value: 0.5}, pt)

		require.NoError(t, p.DeleteControlPoint(0, 0))
		assert.Len(t, raw.Curve(0), 1)
		require.NoError(t, p.DeleteAllControlPoints(0))
		assert.Empty(t, raw.Curve(0))
	})

	t.Run("WrongKind", func(t *testing.T) {
		_, fx, set := paramSet(t)
		fx.Params.Define(ofx.ParamTypeDouble, "gain")
		_, err := set.Parametric("gain")
		assert.True(t, ofx.IsKind(err, ofx.KindInvalidHandle))
	})

	t.Run("MissingSuite", func(t *testing.T) {
		_, fx, set := paramSet(t, ofxtest.WithoutSuite(ofx.SuiteParametricParameter, 1))
		fx.Params.Define(ofx.ParamTypeParametric, "curves")
		p, err := set.Parametric("curves")
		require.NoError(t, err)

		_, err = p.Value(0, 0, 0.5)
		assert.True(t, ofx.IsKind(err, ofx.KindInvalidSuite))
	})
}
