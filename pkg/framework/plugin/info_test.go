package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/ofxgo/pkg/framework/handle"
	"github.com/justyntemme/ofxgo/pkg/framework/suite"
	"github.com/justyntemme/ofxgo/pkg/ofx"
	"github.com/justyntemme/ofxgo/pkg/ofx/ofxtest"
)

func describer(t *testing.T) (*ofxtest.Host, *ofxtest.Effect, handle.ImageEffect) {
	t.Helper()
	host := ofxtest.NewHost()
	suites, err := suite.Load(host)
	require.NoError(t, err)
	fx := host.NewEffect("")
	return host, fx, handle.NewImageEffect(fx.Handle(), suites)
}

func TestInfoValidate(t *testing.T) {
	tests := []struct {
		name    string
		info    Info
		wantErr bool
	}{
		{
			name: "Valid plugin ID",
			info: Info{ID: "com.example.plugin"},
		},
		{
			name:    "Empty plugin ID",
			info:    Info{ID: ""},
			wantErr: true,
		},
		{
			name:    "Embedded NUL",
			info:    Info{ID: "com.example\x00plugin"},
			wantErr: true,
		},
		{
			name:    "Invalid UTF-8",
			info:    Info{ID: "com.example.\xff"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.info.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, ofx.IsKind(err, ofx.KindStringConversion), "got %v", err)
		})
	}
}

func TestInfoDescribe(t *testing.T) {
	t.Run("AllFields", func(t *testing.T) {
		_, fx, e := describer(t)
		desc, err := e.Descriptor()
		require.NoError(t, err)

		info := Info{
			ID:           "com.example.invert",
			Label:        "Invert",
			Grouping:     "Color",
			Description:  "Inverts colour channels",
			VersionMajor: 1,
			VersionMinor: 2,
		}
		require.NoError(t, info.Describe(desc))

		assert.Equal(t, "Invert", fx.Props.String(ofx.PropLabel, 0))
		assert.Equal(t, "Color", fx.Props.String(ofx.ImageEffectPluginPropGrouping, 0))
		assert.Equal(t, "Inverts colour channels", fx.Props.String(ofx.PropPluginDescription, 0))
		assert.Equal(t, []any{1, 2}, fx.Props.Values(ofx.PropVersion))
		assert.Equal(t, "1.2", fx.Props.String(ofx.PropVersionLabel, 0))
		assert.Equal(t, 1, info.APIVersion())
	})

	t.Run("LabelFallsBackToID", func(t *testing.T) {
		_, fx, e := describer(t)
		desc, err := e.Descriptor()
		require.NoError(t, err)

		require.NoError(t, Info{ID: "com.example.bare"}.Describe(desc))
		assert.Equal(t, "com.example.bare", fx.Props.String(ofx.PropLabel, 0))
		assert.False(t, fx.Props.Has(ofx.ImageEffectPluginPropGrouping))
	})

	t.Run("HostFailure", func(t *testing.T) {
		host, _, e := describer(t)
		desc, err := e.Descriptor()
		require.NoError(t, err)

		host.Fail("propSetString", ofx.StatErrUnknown)
		err = Info{ID: "com.example.x"}.Describe(desc)
		assert.Equal(t, ofx.StatErrUnknown, ofx.StatusOf(err))
	})
}
