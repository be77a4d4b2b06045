package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicalheatmap/smartmattress/internal/config"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)

	assert.Contains(t, out.String(), "smartmattress "+Version)
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	configPath = path
	t.Cleanup(func() { configPath = "" })

	var out bytes.Buffer
	configInitCmd.SetOut(&out)
	configInitCmd.Run(configInitCmd, nil)
	assert.Contains(t, out.String(), path)

	_, err := os.Stat(path)
	require.NoError(t, err)

	out.Reset()
	configShowCmd.SetOut(&out)
	configShowCmd.Run(configShowCmd, nil)
	assert.Contains(t, out.String(), `splash_delay = "2.5s"`)
	assert.Contains(t, out.String(), `zone = "Full Mattress"`)

	shown := filepath.Join(t.TempDir(), "shown.toml")
	require.NoError(t, os.WriteFile(shown, out.Bytes(), 0o644))
	cfg, err := config.Load(shown)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestTargetPath(t *testing.T) {
	t.Setenv("SMARTMATTRESS_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	configPath = ""
	assert.Equal(t, filepath.Join("/tmp/xdg", "smartmattress", "config.toml"), targetPath())

	configPath = "/etc/sm.toml"
	t.Cleanup(func() { configPath = "" })
	assert.Equal(t, "/etc/sm.toml", targetPath())
}
