package action

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/ofxgo/pkg/framework/property"
	"github.com/justyntemme/ofxgo/pkg/framework/suite"
	"github.com/justyntemme/ofxgo/pkg/ofx"
	"github.com/justyntemme/ofxgo/pkg/ofx/ofxtest"
)

func loaded(t *testing.T) (*ofxtest.Host, *suite.Table, *ofxtest.Effect) {
	t.Helper()
	host := ofxtest.NewHost()
	suites, err := suite.Load(host)
	require.NoError(t, err)
	return host, suites, host.NewEffect(ofx.ContextFilter)
}

func TestTable(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range Table() {
		assert.False(t, seen[r.Name], "duplicate row %s", r.Name)
		seen[r.Name] = true

		if strings.HasPrefix(r.Name, "OfxImageEffectAction") {
			assert.Equal(t, Instance, r.Scope, r.Name)
		} else {
			assert.Equal(t, Global, r.Scope, r.Name)
		}
		assert.Equal(t, r.Name == ofx.ActionLoad || r.Name == ofx.ActionUnload, r.Library, r.Name)
	}
	for _, name := range Unsupported() {
		assert.False(t, seen[name], "%s is both supported and unsupported", name)
	}

	t.Run("ArgumentShapes", func(t *testing.T) {
		m := NewMapper()
		tests := []struct {
			name string
			args Args
		}{
			{ofx.ActionLoad, NoArgs},
			{ofx.ActionCreateInstance, NoArgs},
			{ofx.ActionBeginInstanceEdit, NoArgs},
			{ofx.ActionInstanceChanged, InArgs},
			{ofx.ImageEffectActionDescribeInContext, InArgs},
			{ofx.ImageEffectActionGetClipPreferences, OutArgs},
			{ofx.ImageEffectActionGetTimeDomain, OutArgs},
			{ofx.ImageEffectActionIsIdentity, InOutArgs},
			{ofx.ImageEffectActionGetFramesNeeded, InOutArgs},
			{ofx.ImageEffectActionRender, InArgs},
		}
		for _, tt := range tests {
			r, ok := m.Lookup(tt.name)
			require.True(t, ok, tt.name)
			assert.Equal(t, tt.args, r.Args, tt.name)
		}
	})
}

func TestMap(t *testing.T) {
	tests := []struct {
		name string
		want Action
	}{
		{ofx.ActionLoad, Load{}},
		{ofx.ActionUnload, Unload{}},
		{ofx.ActionDescribe, Describe{}},
		{ofx.ActionCreateInstance, CreateInstance{}},
		{ofx.ActionDestroyInstance, DestroyInstance{}},
		{ofx.ActionPurgeCaches, PurgeCaches{}},
		{ofx.ActionSyncPrivateData, SyncPrivateData{}},
		{ofx.ActionBeginInstanceChanged, BeginInstanceChanged{}},
		{ofx.ActionInstanceChanged, InstanceChanged{}},
		{ofx.ActionEndInstanceChanged, EndInstanceChanged{}},
		{ofx.ActionBeginInstanceEdit, BeginInstanceEdit{}},
		{ofx.ActionEndInstanceEdit, EndInstanceEdit{}},
		{ofx.ActionOpenGLContextAttached, OpenGLContextAttached{}},
		{ofx.ActionOpenGLContextDetached, OpenGLContextDetached{}},
		{ofx.ImageEffectActionDescribeInContext, DescribeInContext{}},
		{ofx.ImageEffectActionGetRegionOfDefinition, GetRegionOfDefinition{}},
		{ofx.ImageEffectActionGetRegionsOfInterest, GetRegionsOfInterest{}},
		{ofx.ImageEffectActionGetTimeDomain, GetTimeDomain{}},
		{ofx.ImageEffectActionGetFramesNeeded, GetFramesNeeded{}},
		{ofx.ImageEffectActionGetClipPreferences, GetClipPreferences{}},
		{ofx.ImageEffectActionIsIdentity, IsIdentity{}},
		{ofx.ImageEffectActionRender, Render{}},
		{ofx.ImageEffectActionBeginSequenceRender, BeginSequenceRender{}},
		{ofx.ImageEffectActionEndSequenceRender, EndSequenceRender{}},
	}
	require.Len(t, tests, len(Table()), "every row is covered")

	m := NewMapper()
	host, suites, fx := loaded(t)
	in, out := host.NewPropertySet(), host.NewPropertySet()

	for _, tt := range tests {
		t.Run(strings.TrimPrefix(strings.TrimPrefix(tt.name, "OfxImageEffectAction"), "OfxAction"), func(t *testing.T) {
			a, err := m.Map(suites, Raw{Name: tt.name, Handle: fx.Handle(), In: in.Handle(), Out: out.Handle()})
			require.NoError(t, err)
			assert.IsType(t, tt.want, a)
			assert.Equal(t, tt.name, a.Name())

			effect, ok := EffectOf(a)
			if tt.name == ofx.ActionLoad || tt.name == ofx.ActionUnload {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, fx.Handle(), effect.Handle())
		})
	}
}

func TestPayloads(t *testing.T) {
	m := NewMapper()

	t.Run("RenderIn", func(t *testing.T) {
		host, suites, fx := loaded(t)
		in := host.NewPropertySet().
			Set(ofx.PropTime, 12.0).
			Set(ofx.ImageEffectPropRenderWindow, 0, 0, 64, 32).
			Set(ofx.ImageEffectPropFieldToRender, string(ofx.FieldNone))

		a, err := m.Map(suites, Raw{Name: ofx.ImageEffectActionRender, Handle: fx.Handle(), In: in.Handle()})
		require.NoError(t, err)
		render := a.(Render)

		tm, err := property.Time.Get(render.In)
		require.NoError(t, err)
		assert.Equal(t, ofx.Time(12), tm)

		window, err := property.RenderWindow.Get(render.In)
		require.NoError(t, err)
		assert.Equal(t, ofx.RectI{X1: 0, Y1: 0, X2: 64, Y2: 32}, window)
	})

	t.Run("RegionOfDefinitionOut", func(t *testing.T) {
		host, suites, fx := loaded(t)
		in := host.NewPropertySet().Set(ofx.PropTime, 0.0)
		out := host.NewPropertySet()

		a, err := m.Map(suites, Raw{
			Name:   ofx.ImageEffectActionGetRegionOfDefinition,
			Handle: fx.Handle(),
			In:     in.Handle(),
			Out:    out.Handle(),
		})
		require.NoError(t, err)
		rod := a.(GetRegionOfDefinition)

		require.NoError(t, property.RegionOfDefinition.Set(rod.Out, ofx.RectD{X2: 100, Y2: 50}))
		assert.Equal(t, []any{0.0, 0.0, 100.0, 50.0}, out.Values(ofx.ImageEffectPropRegionOfDefinition))
	})

	t.Run("NoArgsIgnoresHandles", func(t *testing.T) {
		host, suites, fx := loaded(t)
		stray := host.NewPropertySet()
		a, err := m.Map(suites, Raw{Name: ofx.ActionCreateInstance, Handle: fx.Handle(), In: stray.Handle()})
		require.NoError(t, err)
		assert.IsType(t, CreateInstance{}, a)
	})

	t.Run("BeforeLoad", func(t *testing.T) {
		host := ofxtest.NewHost()
		fx := host.NewEffect(ofx.ContextFilter)
		in := host.NewPropertySet().Set(ofx.PropTime, 1.0)

		a, err := m.Map(nil, Raw{Name: ofx.ImageEffectActionRender, Handle: fx.Handle(), In: in.Handle()})
		require.NoError(t, err)

		_, err = property.Time.Get(a.(Render).In)
		assert.True(t, ofx.IsKind(err, ofx.KindSuiteNotInitialized))
	})
}

func TestMapErrors(t *testing.T) {
	m := NewMapper()
	_, suites, fx := loaded(t)

	tests := []struct {
		name   string
		raw    Raw
		kind   ofx.Kind
		status ofx.Status
	}{
		{
			name:   "Unknown",
			raw:    Raw{Name: "OfxActionTeleport", Handle: fx.Handle()},
			kind:   ofx.KindInvalidAction,
			status: ofx.StatReplyDefault,
		},
		{
			name:   "Empty",
			raw:    Raw{Handle: fx.Handle()},
			kind:   ofx.KindInvalidAction,
			status: ofx.StatReplyDefault,
		},
		{
			name:   "InvalidUTF8",
			raw:    Raw{Name: "OfxAction\xff", Handle: fx.Handle()},
			kind:   ofx.KindStringConversion,
			status: ofx.StatErrValue,
		},
		{
			name:   "NilHandle",
			raw:    Raw{Name: ofx.ImageEffectActionRender},
			kind:   ofx.KindInvalidHandle,
			status: ofx.StatErrBadHandle,
		},
	}
	for _, name := range Unsupported() {
		tests = append(tests, struct {
			name   string
			raw    Raw
			kind   ofx.Kind
			status ofx.Status
		}{name, Raw{Name: name, Handle: fx.Handle()}, ofx.KindInvalidAction, ofx.StatReplyDefault})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := m.Map(suites, tt.raw)
			assert.Nil(t, a)
			assert.True(t, ofx.IsKind(err, tt.kind), "got %v", err)
			assert.Equal(t, tt.status, ofx.StatusOf(err))
		})
	}

	t.Run("LoadNeedsNoHandle", func(t *testing.T) {
		a, err := m.Map(nil, Raw{Name: ofx.ActionLoad})
		require.NoError(t, err)
		assert.Equal(t, Load{}, a)
	})
}
