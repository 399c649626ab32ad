package suite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/ofxgo/pkg/ofx"
	"github.com/justyntemme/ofxgo/pkg/ofx/ofxtest"
)

func TestLoad(t *testing.T) {
	t.Run("AllSuites", func(t *testing.T) {
		table, err := Load(ofxtest.NewHost())
		require.NoError(t, err)

		_, err = table.Property()
		assert.NoError(t, err)
		_, err = table.MessageV2()
		assert.NoError(t, err)
		_, err = table.OpenGL()
		assert.NoError(t, err)
		assert.Len(t, table.Optional(), 4)
	})

	t.Run("NilHost", func(t *testing.T) {
		table, err := Load(nil)
		assert.Nil(t, table)
		assert.True(t, ofx.IsKind(err, ofx.KindHostNotReady))
	})

	required := []string{
		ofx.SuiteImageEffect, ofx.SuiteProperty, ofx.SuiteParameter, ofx.SuiteMemory,
		ofx.SuiteMultiThread, ofx.SuiteMessage, ofx.SuiteProgress, ofx.SuiteTimeLine,
	}
	for _, name := range required {
		t.Run("Missing"+name, func(t *testing.T) {
			table, err := Load(ofxtest.NewHost(ofxtest.WithoutSuite(name, 1)))
			assert.Nil(t, table, "table must stay unset")
			require.Error(t, err)
			assert.True(t, ofx.IsKind(err, ofx.KindInvalidSuite))
			assert.Equal(t, ofx.StatErrMissingHostFeature, ofx.StatusOf(err))
			assert.Contains(t, err.Error(), name)
		})
	}

	t.Run("OptionalMissing", func(t *testing.T) {
		host := ofxtest.NewHost(
			ofxtest.WithoutSuite(ofx.SuiteMessage, 2),
			ofxtest.WithoutSuite(ofx.SuiteImageEffectOpenGLRender, 1),
		)
		table, err := Load(host)
		require.NoError(t, err)

		_, err = table.MessageV2()
		assert.True(t, ofx.IsKind(err, ofx.KindInvalidSuite))
		_, err = table.OpenGL()
		assert.True(t, ofx.IsKind(err, ofx.KindInvalidSuite))
		_, err = table.Message()
		assert.NoError(t, err, "v1 message suite is still there")
		assert.NotContains(t, table.Optional(), ofx.SuiteImageEffectOpenGLRender)
	})
}

func TestNilTable(t *testing.T) {
	var table *Table

	checks := map[string]func() error{
		"ImageEffect": func() error { _, err := table.ImageEffect(); return err },
		"Property":    func() error { _, err := table.Property(); return err },
		"Parameter":   func() error { _, err := table.Parameter(); return err },
		"Memory":      func() error { _, err := table.Memory(); return err },
		"MultiThread": func() error { _, err := table.MultiThread(); return err },
		"Message":     func() error { _, err := table.Message(); return err },
		"Progress":    func() error { _, err := table.Progress(); return err },
		"TimeLine":    func() error { _, err := table.TimeLine(); return err },
		"MessageV2":   func() error { _, err := table.MessageV2(); return err },
		"ProgressV2":  func() error { _, err := table.ProgressV2(); return err },
		"Parametric":  func() error { _, err := table.Parametric(); return err },
		"OpenGL":      func() error { _, err := table.OpenGL(); return err },
	}
	for name, check := range checks {
		t.Run(name, func(t *testing.T) {
			err := check()
			assert.True(t, ofx.IsKind(err, ofx.KindSuiteNotInitialized), "got %v", err)
		})
	}

	_, err := table.Host()
	assert.True(t, ofx.IsKind(err, ofx.KindHostNotReady))
	assert.Nil(t, table.Optional())
}
