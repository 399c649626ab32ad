// Package debug provides logging and metrics for OpenFX plugin development.
package debug

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/oops"

	"github.com/justyntemme/ofxgo/pkg/framework/config"
)

var (
	mu            sync.RWMutex
	defaultOutput io.Writer = os.Stderr
	defaultPrefix           = "ofxgo"
	defaultLevel            = zerolog.InfoLevel
	defaultLogger           = New(os.Stderr, "ofxgo")
)

// New creates a logger writing JSON lines to w. A non-empty prefix is added
// to every event as the "plugin" field.
func New(w io.Writer, prefix string) zerolog.Logger {
	ctx := zerolog.New(w).With().Timestamp()
	if prefix != "" {
		ctx = ctx.Str("plugin", prefix)
	}
	return ctx.Logger().Level(zerolog.InfoLevel)
}

// Default returns the process-wide logger.
func Default() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide logger.
func SetDefault(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = l
	defaultLevel = l.GetLevel()
}

// Component returns the default logger tagged with a component name.
func Component(name string) zerolog.Logger {
	return Default().With().Str("component", name).Logger()
}

// SetOutput redirects the default logger.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	defaultOutput = w
	defaultLogger = New(w, defaultPrefix).Level(defaultLevel)
}

// SetPrefix changes the plugin field of the default logger.
func SetPrefix(prefix string) {
	mu.Lock()
	defer mu.Unlock()
	defaultPrefix = prefix
	defaultLogger = New(defaultOutput, prefix).Level(defaultLevel)
}

// SetLevel sets the minimum level of the default logger.
func SetLevel(level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	defaultLevel = level
	defaultLogger = defaultLogger.Level(level)
}

// SetEnabled turns the default logger off, or back on at its last level.
func SetEnabled(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	if enabled {
		defaultLogger = defaultLogger.Level(defaultLevel)
		return
	}
	defaultLogger = defaultLogger.Level(zerolog.Disabled)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Configure rebuilds the default logger from cfg. The returned Closer closes
// the log file, if one was opened; it is safe to call when none was.
func Configure(cfg config.Log) (io.Closer, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, oops.In("debug").With("level", cfg.Level).Wrapf(err, "parse log level")
	}

	var out io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return nil, oops.In("debug").With("file", cfg.File).Wrapf(err, "create log directory")
		}
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, oops.In("debug").With("file", cfg.File).Wrapf(err, "open log file")
		}
		out, closer = file, file
	}

	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    cfg.File != "",
		}
	}

	mu.Lock()
	defer mu.Unlock()
	defaultOutput = out
	defaultLevel = level
	defaultLogger = New(out, defaultPrefix).Level(level)
	return closer, nil
}
