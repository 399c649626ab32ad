package param

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/ofxgo/pkg/framework/handle"
	"github.com/justyntemme/ofxgo/pkg/framework/suite"
	"github.com/justyntemme/ofxgo/pkg/ofx"
	"github.com/justyntemme/ofxgo/pkg/ofx/ofxtest"
)

func newSet(t *testing.T) (*ofxtest.Host, *ofxtest.ParamSet, handle.ParamSet) {
	t.Helper()
	host := ofxtest.NewHost()
	suites, err := suite.Load(host)
	require.NoError(t, err)
	fx := host.NewEffect("")
	set, err := handle.NewImageEffect(fx.Handle(), suites).ParamSet()
	require.NoError(t, err)
	return host, fx.Params, set
}

func TestDouble(t *testing.T) {
	_, params, set := newSet(t)

	err := Double("gain").
		Label("Gain").
		Hint("Output gain").
		Range(0, 4).
		DisplayRange(0, 2).
		Default(1).
		Digits(3).
		Type(ofx.DoubleTypeScale).
		Define(set)
	require.NoError(t, err)

	p := params.Param("gain")
	require.NotNil(t, p)
	assert.Equal(t, ofx.ParamTypeDouble, p.Type)
	assert.Equal(t, "Gain", p.Props.String(ofx.PropLabel, 0))
	assert.Equal(t, "Output gain", p.Props.String(ofx.ParamPropHint, 0))
	assert.InDelta(t, 0.0, p.Props.Double(ofx.ParamPropMin, 0), 1e-9)
	assert.InDelta(t, 4.0, p.Props.Double(ofx.ParamPropMax, 0), 1e-9)
	assert.InDelta(t, 2.0, p.Props.Double(ofx.ParamPropDisplayMax, 0), 1e-9)
	assert.InDelta(t, 1.0, p.Props.Double(ofx.ParamPropDefault, 0), 1e-9)
	assert.Equal(t, 3, p.Props.Int(ofx.ParamPropDigits, 0))
	assert.Equal(t, string(ofx.DoubleTypeScale), p.Props.String(ofx.ParamPropDoubleType, 0))
}

func TestKinds(t *testing.T) {
	tests := []struct {
		name  string
		def   Definer
		kind  ofx.ParamType
		check func(t *testing.T, p *ofxtest.Param)
	}{
		{
			name: "Int",
			def:  Int("count").Range(1, 10).Default(3),
			kind: ofx.ParamTypeInteger,
			check: func(t *testing.T, p *ofxtest.Param) {
				assert.Equal(t, 3, p.Props.Int(ofx.ParamPropDefault, 0))
				assert.Equal(t, 10, p.Props.Int(ofx.ParamPropMax, 0))
			},
		},
		{
			name: "Bool",
			def:  Bool("enabled").Default(true).Animates(false),
			kind: ofx.ParamTypeBoolean,
			check: func(t *testing.T, p *ofxtest.Param) {
				assert.Equal(t, 1, p.Props.Int(ofx.ParamPropDefault, 0))
				assert.Equal(t, 0, p.Props.Int(ofx.ParamPropAnimates, 0))
			},
		},
		{
			name: "String",
			def:  String("path").Default("/tmp").Mode(ofx.StringFilePath),
			kind: ofx.ParamTypeString,
			check: func(t *testing.T, p *ofxtest.Param) {
				assert.Equal(t, "/tmp", p.Props.String(ofx.ParamPropDefault, 0))
				assert.Equal(t, string(ofx.StringFilePath), p.Props.String(ofx.ParamPropStringMode, 0))
			},
		},
		{
			name: "Choice",
			def:  Choice("mode").Options("Fast", "Good", "Best").Default(1),
			kind: ofx.ParamTypeChoice,
			check: func(t *testing.T, p *ofxtest.Param) {
				assert.Equal(t, []any{"Fast", "Good", "Best"}, p.Props.Values(ofx.ParamPropChoiceOption))
				assert.Equal(t, 1, p.Props.Int(ofx.ParamPropDefault, 0))
			},
		},
		{
			name: "Page",
			def:  Page("Controls").Children("gain", "mode"),
			kind: ofx.ParamTypePage,
			check: func(t *testing.T, p *ofxtest.Param) {
				assert.Equal(t, []any{"gain", "mode"}, p.Props.Values(ofx.ParamPropPageChild))
			},
		},
		{
			name: "Button",
			def:  Button("reset").Label("Reset"),
			kind: ofx.ParamTypePushButton,
			check: func(t *testing.T, p *ofxtest.Param) {
				assert.Equal(t, "Reset", p.Props.String(ofx.PropLabel, 0))
			},
		},
		{
			name: "Parametric",
			def:  Parametric("curves").Dimension(3).Range(0, 1),
			kind: ofx.ParamTypeParametric,
			check: func(t *testing.T, p *ofxtest.Param) {
				assert.Equal(t, 3, p.Props.Int(ofx.ParamPropParametricDimension, 0))
				assert.InDelta(t, 1.0, p.Props.Double(ofx.ParamPropParametricRange, 1), 1e-9)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, params, set := newSet(t)
			require.NoError(t, tt.def.Define(set))

			p := params.Param(tt.def.Name())
			require.NotNil(t, p)
			assert.Equal(t, tt.kind, p.Type)
			tt.check(t, p)
		})
	}
}

func TestChoiceDefaultOutOfRange(t *testing.T) {
	host, _, set := newSet(t)
	err := Choice("mode").Options("A", "B").Default(2).Define(set)
	assert.True(t, ofx.IsKind(err, ofx.KindInvalidHandle))
	assert.Zero(t, host.Calls("paramDefine"))
}

func TestGroupChildren(t *testing.T) {
	_, params, set := newSet(t)
	require.NoError(t, Channels("channels").Define(set))

	assert.Equal(t, []string{"channels", "processR", "processG", "processB", "processA"}, params.Order)
	for _, name := range []string{"processR", "processA"} {
		p := params.Param(name)
		require.NotNil(t, p)
		assert.Equal(t, "channels", p.Props.String(ofx.ParamPropParent, 0))
	}
	assert.Equal(t, 1, params.Param("channels").Props.Int(ofx.ParamPropGroupOpen, 0))
	assert.Equal(t, 0, params.Param("processA").Props.Int(ofx.ParamPropDefault, 0))
}

func TestDefineStopsAtFirstFailure(t *testing.T) {
	host, _, set := newSet(t)
	host.Fail("propSetString", ofx.StatErrValue)

	err := Double("gain").Label("Gain").Default(1).Define(set)
	assert.Equal(t, ofx.StatErrValue, ofx.StatusOf(err))
	assert.Zero(t, host.Calls("propSetDouble"), "later properties are not written")
}

func TestRegistry(t *testing.T) {
	t.Run("Order", func(t *testing.T) {
		r := NewRegistry().Add(
			Mix("mix"),
			Angle("angle", "Angle"),
			Mix("mix"),
		)
		assert.Equal(t, 2, r.Count())
		assert.Equal(t, "angle", r.All()[1].Name())
		assert.NotNil(t, r.Get("mix"))
		assert.Nil(t, r.Get("missing"))
	})

	t.Run("Define", func(t *testing.T) {
		_, params, set := newSet(t)
		r := NewRegistry().Add(
			Amount("amount", "Amount", 0.5),
			Scale("scale", "Scale"),
			Toggle("flip", "Flip", false),
		)
		require.NoError(t, r.Define(set))
		assert.Equal(t, []string{"amount", "scale", "flip"}, params.Order)
	})

	t.Run("DefineError", func(t *testing.T) {
		_, _, set := newSet(t)
		r := NewRegistry().Add(Mix("mix"), Mix("bad\x00name"))
		err := r.Define(set)
		assert.True(t, ofx.IsKind(err, ofx.KindStringConversion))
	})
}
