package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/medicalheatmap/smartmattress/internal/mattress"
)

const (
	envPrefix  = "SMARTMATTRESS"
	configName = "config"
	configType = "toml"
	appDir     = "smartmattress"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Timing      TimingConfig      `mapstructure:"timing" toml:"timing"`
	Temperature TemperatureConfig `mapstructure:"temperature" toml:"temperature"`
	UI          UIConfig          `mapstructure:"ui" toml:"ui"`
	Log         LogConfig         `mapstructure:"log" toml:"log"`
}

type TimingConfig struct {
	SplashDelay time.Duration `mapstructure:"splash_delay" toml:"splash_delay"`
	LoadingTick time.Duration `mapstructure:"loading_tick" toml:"loading_tick"`
}

type TemperatureConfig struct {
	Default float64 `mapstructure:"default" toml:"default"`
	Zone    string  `mapstructure:"zone" toml:"zone"`
}

type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen" toml:"alt_screen"`
}

type LogConfig struct {
	Level string `mapstructure:"level" toml:"level"`
	File  string `mapstructure:"file" toml:"file"`
}

// Default returns the built-in configuration without touching the
// filesystem or environment.
func Default() Config {
	return Config{
		Timing: TimingConfig{
			SplashDelay: DefaultSplashDelay,
			LoadingTick: DefaultLoadingTick,
		},
		Temperature: TemperatureConfig{
			Default: DefaultTemperature,
			Zone:    DefaultZone,
		},
		UI:  UIConfig{AltScreen: true},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/smartmattress/config.toml, falling back
// to ~/.config.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, appDir, configName+"."+configType)
}

// Loader reads configuration from fs. An explicit path must exist; without
// one, a missing file at DefaultPath is not an error.
type Loader struct {
	Fs   afero.Fs
	Path string
}

func NewLoader(path string) *Loader {
	if path == "" {
		path = os.Getenv(envPrefix + "_CONFIG")
	}
	return &Loader{Fs: afero.NewOsFs(), Path: path}
}

func (l *Loader) Load() (Config, error) {
	v := viper.New()
	v.SetFs(l.Fs)

	def := Default()
	v.SetDefault("timing.splash_delay", def.Timing.SplashDelay)
	v.SetDefault("timing.loading_tick", def.Timing.LoadingTick)
	v.SetDefault("temperature.default", def.Temperature.Default)
	v.SetDefault("temperature.zone", def.Temperature.Zone)
	v.SetDefault("ui.alt_screen", def.UI.AltScreen)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if l.Path != "" {
		v.SetConfigFile(l.Path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", l.Path, err)
		}
	} else {
		path := DefaultPath()
		exists, err := afero.Exists(l.Fs, path)
		if err != nil {
			return Config{}, fmt.Errorf("stat config %s: %w", path, err)
		}
		if exists {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads the configuration from the real filesystem.
func Load(path string) (Config, error) {
	return NewLoader(path).Load()
}

func (c Config) Validate() error {
	if c.Timing.SplashDelay <= 0 {
		return fmt.Errorf("%w: timing.splash_delay must be positive, got %s", ErrInvalid, c.Timing.SplashDelay)
	}
	if c.Timing.LoadingTick <= 0 {
		return fmt.Errorf("%w: timing.loading_tick must be positive, got %s", ErrInvalid, c.Timing.LoadingTick)
	}
	if c.Temperature.Default < mattress.MinTemperature || c.Temperature.Default > mattress.MaxTemperature {
		return fmt.Errorf("%w: temperature.default must be within [%g, %g], got %g",
			ErrInvalid, mattress.MinTemperature, mattress.MaxTemperature, c.Temperature.Default)
	}
	if _, err := mattress.ParseZone(c.Temperature.Zone); err != nil {
		return fmt.Errorf("%w: temperature.zone: %v", ErrInvalid, err)
	}
	return nil
}

// Encode writes c as TOML in the layout Load reads. Durations are written
// as strings such as "2.5s".
func (c Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Zone resolves the configured zone name. Validate has already checked it.
func (c Config) Zone() mattress.Zone {
	z, _ := mattress.ParseZone(c.Temperature.Zone)
	return z
}

// WriteDefault writes DefaultConfig to path, refusing to overwrite an
// existing file unless force is set.
func WriteDefault(fs afero.Fs, path string, force bool) error {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if exists && !force {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	if err := afero.WriteFile(fs, path, []byte(DefaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
