package config

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicalheatmap/smartmattress/internal/mattress"
)

func memLoader(t *testing.T, path, content string) *Loader {
	t.Helper()
	fs := afero.NewMemMapFs()
	if content != "" {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	return &Loader{Fs: fs, Path: path}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/nonexistent-xdg")

	l := &Loader{Fs: afero.NewMemMapFs()}
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 2500*time.Millisecond, cfg.Timing.SplashDelay)
	assert.Equal(t, 20*time.Millisecond, cfg.Timing.LoadingTick)
	assert.Equal(t, mattress.ZoneFullMattress, cfg.Zone())
}

func TestLoad_DefaultConfigRoundTrips(t *testing.T) {
	l := memLoader(t, "/etc/smartmattress.toml", DefaultConfig)
	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileValues(t *testing.T) {
	l := memLoader(t, "/cfg/config.toml", `
[timing]
splash_delay = "1s"
loading_tick = "5ms"

[temperature]
default = 18.5
zone = "Lower Body"

[ui]
alt_screen = false

[log]
level = "debug"
file = "/tmp/sm.log"
`)
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.Timing.SplashDelay)
	assert.Equal(t, 5*time.Millisecond, cfg.Timing.LoadingTick)
	assert.Equal(t, 18.5, cfg.Temperature.Default)
	assert.Equal(t, mattress.ZoneLowerBody, cfg.Zone())
	assert.False(t, cfg.UI.AltScreen)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/sm.log", cfg.Log.File)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("SMARTMATTRESS_TIMING_SPLASH_DELAY", "750ms")
	t.Setenv("SMARTMATTRESS_TEMPERATURE_ZONE", "Upper Body")

	l := memLoader(t, "/cfg/config.toml", `
[timing]
splash_delay = "3s"

[temperature]
zone = "Lower Body"
`)
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, 750*time.Millisecond, cfg.Timing.SplashDelay)
	assert.Equal(t, mattress.ZoneUpperBody, cfg.Zone())
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	l := &Loader{Fs: afero.NewMemMapFs(), Path: "/missing/config.toml"}
	_, err := l.Load()
	assert.Error(t, err)
}

func TestLoad_DefaultPathPickedUp(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	fs := afero.NewMemMapFs()
	path := filepath.Join("/xdg", "smartmattress", "config.toml")
	require.NoError(t, afero.WriteFile(fs, path, []byte("[temperature]\ndefault = 4\n"), 0o644))

	cfg, err := (&Loader{Fs: fs}).Load()
	require.NoError(t, err)
	assert.Equal(t, 4.0, cfg.Temperature.Default)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "zero splash delay", mutate: func(c *Config) { c.Timing.SplashDelay = 0 }},
		{name: "negative loading tick", mutate: func(c *Config) { c.Timing.LoadingTick = -time.Millisecond }},
		{name: "temperature above range", mutate: func(c *Config) { c.Temperature.Default = 20.5 }},
		{name: "temperature below range", mutate: func(c *Config) { c.Temperature.Default = -1 }},
		{name: "unknown zone", mutate: func(c *Config) { c.Temperature.Zone = "Feet" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}

	assert.NoError(t, Default().Validate())
}

func TestWriteDefault(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/home/u/.config/smartmattress/config.toml"

	require.NoError(t, WriteDefault(fs, path, false))

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig, string(data))

	assert.Error(t, WriteDefault(fs, path, false))
	assert.NoError(t, WriteDefault(fs, path, true))
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, "/xdg/smartmattress/config.toml", DefaultPath())
}

func TestEncode_RoundTripsThroughLoader(t *testing.T) {
	want := Default()
	want.Timing.SplashDelay = 1500 * time.Millisecond
	want.Timing.LoadingTick = 5 * time.Millisecond
	want.Temperature.Default = 12.5
	want.Temperature.Zone = "Lower Body"
	want.UI.AltScreen = false
	want.Log.Level = "warn"
	want.Log.File = "/tmp/sm.log"

	var buf bytes.Buffer
	require.NoError(t, want.Encode(&buf))
	assert.Contains(t, buf.String(), `splash_delay = "1.5s"`)
	assert.Contains(t, buf.String(), `loading_tick = "5ms"`)

	got, err := memLoader(t, "/cfg/shown.toml", buf.String()).Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
