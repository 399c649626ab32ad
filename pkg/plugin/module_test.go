package plugin

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/ofxgo/pkg/framework/action"
	"github.com/justyntemme/ofxgo/pkg/framework/config"
	"github.com/justyntemme/ofxgo/pkg/framework/debug"
	framework "github.com/justyntemme/ofxgo/pkg/framework/plugin"
	"github.com/justyntemme/ofxgo/pkg/ofx"
	"github.com/justyntemme/ofxgo/pkg/ofx/ofxtest"
)

func emptyRegistry(t *testing.T) {
	t.Helper()
	descriptorsMu.Lock()
	saved := descriptors
	descriptors = nil
	descriptorsMu.Unlock()
	t.Cleanup(func() {
		descriptorsMu.Lock()
		descriptors = saved
		descriptorsMu.Unlock()
	})
}

func TestRegister(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		emptyRegistry(t)
		d, err := Register(framework.Info{ID: "com.example.a"}, BaseEffect{})
		require.NoError(t, err)
		assert.Equal(t, 1, Count())

		got, ok := At(0)
		require.True(t, ok)
		assert.Same(t, d, got)
		assert.Equal(t, "com.example.a", got.Info().ID)

		_, ok = At(1)
		assert.False(t, ok)
		_, ok = At(-1)
		assert.False(t, ok)
	})

	t.Run("Duplicate", func(t *testing.T) {
		emptyRegistry(t)
		_, err := Register(framework.Info{ID: "com.example.a"}, BaseEffect{})
		require.NoError(t, err)
		_, err = Register(framework.Info{ID: "com.example.a"}, BaseEffect{})
		assert.True(t, ofx.IsKind(err, ofx.KindAlreadyExists))
		assert.Equal(t, 1, Count())
	})

	t.Run("InvalidInfo", func(t *testing.T) {
		emptyRegistry(t)
		_, err := Register(framework.Info{ID: "bad\x00id"}, BaseEffect{})
		assert.True(t, ofx.IsKind(err, ofx.KindStringConversion))
		_, err = Register(framework.Info{ID: "com.example.nil"}, nil)
		assert.True(t, ofx.IsKind(err, ofx.KindInvalidHandle))
		assert.Zero(t, Count())
	})

	t.Run("SlotLimit", func(t *testing.T) {
		emptyRegistry(t)
		for i := 0; i < MaxPlugins; i++ {
			_, err := Register(framework.Info{ID: fmt.Sprintf("com.example.p%d", i)}, BaseEffect{})
			require.NoError(t, err)
		}
		_, err := Register(framework.Info{ID: "com.example.overflow"}, BaseEffect{})
		assert.True(t, ofx.IsKind(err, ofx.KindUnimplemented))
		assert.Equal(t, MaxPlugins, Count())
	})

	t.Run("MustRegisterPanics", func(t *testing.T) {
		emptyRegistry(t)
		assert.Panics(t, func() { MustRegister(framework.Info{}, BaseEffect{}) })
		assert.NotPanics(t, func() { MustRegister(framework.Info{ID: "com.example.ok"}, BaseEffect{}) })
	})
}

func TestConfigure(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "ofxgo.log")
	m := debug.NewMetrics()
	prev := debug.DefaultMetrics
	debug.DefaultMetrics = m
	t.Cleanup(func() {
		require.NoError(t, Configure(config.Default()))
		debug.DefaultMetrics = prev
	})

	cfg := &config.Config{
		Log:     config.Log{Level: "trace", File: logPath, Format: "json"},
		Metrics: config.Metrics{Enabled: false},
		Render:  config.Render{Tiles: 3},
	}
	require.NoError(t, Configure(cfg))
	assert.Equal(t, 3, renderTiles())
	assert.False(t, m.IsEnabled())

	// The configured tile count reaches effects through the context.
	var tiles int
	fx := &recorder{onRender: func(ctx *Context, _ action.Render) error {
		tiles = ctx.Tiles()
		return nil
	}}
	host := ofxtest.NewHost()
	d := newDescriptor(framework.Info{ID: "com.example.tiles"}, fx)
	d.SetHost(host)
	require.Equal(t, ofx.StatOK, d.MainEntry(action.Raw{Name: ofx.ActionLoad}))
	inst := host.NewEffect(ofx.ContextFilter)
	require.Equal(t, ofx.StatOK, d.MainEntry(action.Raw{Name: ofx.ImageEffectActionRender, Handle: inst.Handle()}))
	assert.Equal(t, 3, tiles)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"dispatch"`)

	t.Run("BadLevel", func(t *testing.T) {
		bad := config.Default()
		bad.Log.Level = "loud"
		assert.Error(t, Configure(bad))
	})
}
