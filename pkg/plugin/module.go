package plugin

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/justyntemme/ofxgo/pkg/framework/config"
	"github.com/justyntemme/ofxgo/pkg/framework/debug"
	framework "github.com/justyntemme/ofxgo/pkg/framework/plugin"
	"github.com/justyntemme/ofxgo/pkg/ofx"
)

// MaxPlugins is how many plugins one module can export. The bridge has a
// fixed setHost/mainEntry trampoline pair per slot.
const MaxPlugins = 16

var (
	// Global list of registered plugins, in export order
	descriptors   []*Descriptor
	descriptorsMu sync.RWMutex

	configOnce sync.Once
	tiles      atomic.Int64

	logMu   sync.Mutex
	logFile io.Closer
)

// Register adds a plugin to the module. It is normally called from an init
// function of the plugin's main package.
func Register(info framework.Info, effect Effect) (*Descriptor, error) {
	if err := info.Validate(); err != nil {
		return nil, err
	}
	if effect == nil {
		return nil, ofx.NewError(ofx.KindInvalidHandle, "plugin %s has no effect", info.ID)
	}

	descriptorsMu.Lock()
	defer descriptorsMu.Unlock()
	for _, d := range descriptors {
		if d.info.ID == info.ID {
			return nil, ofx.NewError(ofx.KindAlreadyExists, "plugin %s is already registered", info.ID)
		}
	}
	if len(descriptors) >= MaxPlugins {
		return nil, ofx.NewError(ofx.KindUnimplemented, "a module exports at most %d plugins", MaxPlugins)
	}

	d := newDescriptor(info, effect)
	descriptors = append(descriptors, d)
	return d, nil
}

// MustRegister is Register for init functions: it panics on error.
func MustRegister(info framework.Info, effect Effect) *Descriptor {
	d, err := Register(info, effect)
	if err != nil {
		panic(err)
	}
	return d
}

// Count returns the number of registered plugins.
func Count() int {
	descriptorsMu.RLock()
	defer descriptorsMu.RUnlock()
	return len(descriptors)
}

// At returns the i-th registered plugin.
func At(i int) (*Descriptor, bool) {
	descriptorsMu.RLock()
	defer descriptorsMu.RUnlock()
	if i < 0 || i >= len(descriptors) {
		return nil, false
	}
	return descriptors[i], true
}

// configure loads the module configuration the first time any plugin gets
// a host. A broken config file is logged and the defaults apply.
func configure() {
	configOnce.Do(func() {
		log := debug.Component("plugin")
		cfg, err := config.Load("")
		if err != nil {
			log.Error().Err(err).Msg("config rejected, using defaults")
			cfg = config.Default()
		}
		if err := Configure(cfg); err != nil {
			log.Error().Err(err).Msg("configure logging")
		}
	})
}

// Configure applies cfg to logging, metrics and render defaults. The log
// file, if any, stays open for the life of the process.
func Configure(cfg *config.Config) error {
	debug.DefaultMetrics.SetEnabled(cfg.Metrics.Enabled)
	tiles.Store(int64(cfg.Render.Tiles))

	closer, err := debug.Configure(cfg.Log)
	if err != nil {
		return err
	}
	logMu.Lock()
	defer logMu.Unlock()
	if logFile != nil {
		logFile.Close()
	}
	logFile = closer
	return nil
}

func renderTiles() int {
	return int(tiles.Load())
}
