package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/justyntemme/ofxgo/pkg/framework/config"
	"github.com/justyntemme/ofxgo/pkg/ofx"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configFile = ""

	cmd := NewRootCmd()
	cmd.Version = "test"
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommand_HasExpectedSubcommands(t *testing.T) {
	output, err := run(t, "--help")
	require.NoError(t, err)

	for _, sub := range []string{"actions", "config", "version"} {
		assert.Contains(t, output, sub, "Help missing %q command", sub)
	}
}

func TestActionsCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name:    "supported only",
			args:    []string{"actions"},
			want:    []string{ofx.ActionLoad, ofx.ImageEffectActionRender, "library", "in+out"},
			notWant: []string{ofx.ActionDialog, "declined"},
		},
		{
			name: "with declined",
			args: []string{"actions", "--all"},
			want: []string{ofx.ImageEffectActionRender, ofx.ActionDialog, ofx.ImageEffectActionInvokeHelp, "declined"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := run(t, tt.args...)
			require.NoError(t, err)
			for _, s := range tt.want {
				assert.Contains(t, output, s)
			}
			for _, s := range tt.notWant {
				assert.NotContains(t, output, s)
			}
		})
	}
}

func TestConfigCommand(t *testing.T) {
	t.Setenv(config.EnvConfigFile, "")

	t.Run("Defaults", func(t *testing.T) {
		output, err := run(t, "config")
		require.NoError(t, err)

		var got config.Config
		require.NoError(t, yaml.Unmarshal([]byte(output), &got))
		assert.Equal(t, *config.Default(), got)
	})

	t.Run("FileAndEnv", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ofxgo.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log:\n  format: json\nrender:\n  tiles: 8\n"), 0o600))
		t.Setenv("OFXGO_LOG_LEVEL", "debug")

		output, err := run(t, "config", "--config", path)
		require.NoError(t, err)

		var got config.Config
		require.NoError(t, yaml.Unmarshal([]byte(output), &got))
		assert.Equal(t, "json", got.Log.Format)
		assert.Equal(t, "debug", got.Log.Level)
		assert.Equal(t, 8, got.Render.Tiles)
	})

	t.Run("Invalid", func(t *testing.T) {
		t.Setenv("OFXGO_LOG_LEVEL", "loud")

		_, err := run(t, "config")
		require.Error(t, err)
	})
}

func TestVersionCommand(t *testing.T) {
	output, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "test\n", output)
}
