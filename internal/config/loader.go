package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the base name for configuration files (without extension)
	ConfigFileName = "viewfinder"

	// EnvPrefix is the prefix for environment variables
	EnvPrefix = "VIEWFINDER"
)

// Loader reads configuration from defaults, a config file and the environment
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader backed by v, or by a fresh viper instance when v is nil
func NewLoader(v *viper.Viper) *Loader {
	if v == nil {
		v = viper.New()
	}
	return &Loader{v: v}
}

// Load searches the standard locations for a config file. A missing file
// is not an error.
func (l *Loader) Load() (*Config, error) {
	l.v.SetConfigName(ConfigFileName)
	l.v.SetConfigType("yaml")
	l.addConfigPaths()
	l.setup()

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return l.unmarshal()
}

// LoadWithFile loads configuration from a specific file path
func (l *Loader) LoadWithFile(configFile string) (*Config, error) {
	if configFile == "" {
		return l.Load()
	}
	if _, err := os.Stat(configFile); err != nil {
		return nil, fmt.Errorf("config file does not exist: %s", configFile)
	}

	l.v.SetConfigFile(configFile)
	l.setup()

	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
	}
	return l.unmarshal()
}

// ConfigFileUsed returns the path of the config file read, if any
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// Viper returns the underlying viper instance so callers can bind flags
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// LoadFromFile loads and validates the configuration in filename
func LoadFromFile(filename string) (*Config, error) {
	return NewLoader(nil).LoadWithFile(filename)
}

func (l *Loader) unmarshal() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (l *Loader) addConfigPaths() {
	l.v.AddConfigPath(".")
	if configDir, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok {
		l.v.AddConfigPath(filepath.Join(configDir, "viewfinder"))
	} else if home, err := os.UserHomeDir(); err == nil {
		l.v.AddConfigPath(filepath.Join(home, ".config", "viewfinder"))
	}
	l.v.AddConfigPath("/etc/viewfinder")
}

func (l *Loader) setup() {
	l.v.SetEnvPrefix(EnvPrefix)
	l.v.AutomaticEnv()
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	l.setDefaults()
}

func (l *Loader) setDefaults() {
	d := Default()

	l.v.SetDefault("log_level", d.LogLevel)
	l.v.SetDefault("log_format", d.LogFormat)
	l.v.SetDefault("verbose", d.Verbose)

	l.v.SetDefault("display.strategy", d.Display.Strategy)
	l.v.SetDefault("display.rotation", d.Display.Rotation)
	l.v.SetDefault("display.viewfinder", d.Display.Viewfinder)

	l.v.SetDefault("camera.preview_sizes", d.Camera.PreviewSizes)
	l.v.SetDefault("camera.sensor_orientation", d.Camera.SensorOrientation)
	l.v.SetDefault("camera.facing", d.Camera.Facing)

	l.v.SetDefault("framing.width", d.Framing.Width)
	l.v.SetDefault("framing.height", d.Framing.Height)
	l.v.SetDefault("framing.edge_fraction", d.Framing.EdgeFraction)
	l.v.SetDefault("framing.margin_fraction", d.Framing.MarginFraction)

	l.v.SetDefault("server.addr", d.Server.Addr)
	l.v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	l.v.SetDefault("server.write_timeout", d.Server.WriteTimeout)

	l.v.SetDefault("output.format", d.Output.Format)
	l.v.SetDefault("output.quality", d.Output.Quality)
	l.v.SetDefault("output.lossless", d.Output.Lossless)
	l.v.SetDefault("output.max_dim", d.Output.MaxDim)
}
