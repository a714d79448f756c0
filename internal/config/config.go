package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/menta2k/viewfinder/pkg/display"
	"github.com/menta2k/viewfinder/pkg/framing"
	"github.com/menta2k/viewfinder/pkg/scaling"
	"github.com/menta2k/viewfinder/pkg/types"
)

// Config holds the application configuration
type Config struct {
	LogLevel  string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format" json:"log_format"`
	Verbose   bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	Display DisplayConfig `mapstructure:"display" yaml:"display" json:"display"`
	Camera  CameraConfig  `mapstructure:"camera" yaml:"camera" json:"camera"`
	Framing FramingConfig `mapstructure:"framing" yaml:"framing" json:"framing"`
	Server  ServerConfig  `mapstructure:"server" yaml:"server" json:"server"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output" json:"output"`
}

// DisplayConfig describes the viewfinder and how previews are placed in it
type DisplayConfig struct {
	Strategy   string `mapstructure:"strategy" yaml:"strategy" json:"strategy"`
	Rotation   int    `mapstructure:"rotation" yaml:"rotation" json:"rotation"`
	Viewfinder string `mapstructure:"viewfinder" yaml:"viewfinder" json:"viewfinder"`
}

// CameraConfig describes the camera supplying previews
type CameraConfig struct {
	// PreviewSizes in natural camera orientation, as WxH
	PreviewSizes      []string `mapstructure:"preview_sizes" yaml:"preview_sizes" json:"preview_sizes"`
	SensorOrientation int      `mapstructure:"sensor_orientation" yaml:"sensor_orientation" json:"sensor_orientation"`
	Facing            string   `mapstructure:"facing" yaml:"facing" json:"facing"`
}

// FramingConfig sizes the scanning frame
type FramingConfig struct {
	Width          int     `mapstructure:"width" yaml:"width" json:"width"`
	Height         int     `mapstructure:"height" yaml:"height" json:"height"`
	EdgeFraction   float64 `mapstructure:"edge_fraction" yaml:"edge_fraction" json:"edge_fraction"`
	MarginFraction float64 `mapstructure:"margin_fraction" yaml:"margin_fraction" json:"margin_fraction"`
}

// ServerConfig holds settings for the serve command
type ServerConfig struct {
	Addr         string        `mapstructure:"addr" yaml:"addr" json:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" yaml:"read_timeout" json:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout" json:"write_timeout"`
}

// OutputConfig holds settings for sketch output
type OutputConfig struct {
	Format   string `mapstructure:"format" yaml:"format" json:"format"`
	Quality  int    `mapstructure:"quality" yaml:"quality" json:"quality"`
	Lossless bool   `mapstructure:"lossless" yaml:"lossless" json:"lossless"`
	MaxDim   int    `mapstructure:"max_dim" yaml:"max_dim" json:"max_dim"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Display: DisplayConfig{
			Strategy:   scaling.CenterCropName,
			Rotation:   0,
			Viewfinder: "1080x1920",
		},
		Camera: CameraConfig{
			PreviewSizes:      []string{"1920x1080", "1280x720", "640x480"},
			SensorOrientation: 90,
			Facing:            "back",
		},
		Framing: FramingConfig{
			MarginFraction: framing.DefaultMarginFraction,
		},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Output: OutputConfig{
			Format:  "png",
			Quality: 90,
			MaxDim:  1024,
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(c.LogLevel)) {
		errs = append(errs, fmt.Errorf("log_level must be one of debug, info, warn, error"))
	}
	if !slices.Contains([]string{"text", "json"}, strings.ToLower(c.LogFormat)) {
		errs = append(errs, fmt.Errorf("log_format must be text or json"))
	}
	if _, err := c.DisplayConfiguration(); err != nil {
		errs = append(errs, fmt.Errorf("display: %w", err))
	}
	if _, err := c.PreviewSizes(); err != nil {
		errs = append(errs, fmt.Errorf("camera.preview_sizes: %w", err))
	}
	if _, err := display.ParseFacing(c.Camera.Facing); err != nil {
		errs = append(errs, fmt.Errorf("camera.facing: %w", err))
	}
	if err := c.FramingOptions().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("framing: %w", err))
	}
	if c.Framing.Width < 0 || c.Framing.Height < 0 {
		errs = append(errs, fmt.Errorf("framing.width and framing.height must not be negative"))
	}
	if c.Output.Quality < 1 || c.Output.Quality > 100 {
		errs = append(errs, fmt.Errorf("output.quality must be between 1 and 100"))
	}
	if !slices.Contains([]string{"png", "jpg", "jpeg", "webp"}, strings.ToLower(c.Output.Format)) {
		errs = append(errs, fmt.Errorf("output.format must be png, jpg or webp"))
	}

	return errors.Join(errs...)
}

// DisplayConfiguration converts the display section
func (c *Config) DisplayConfiguration() (display.Configuration, error) {
	strategy, err := scaling.Parse(c.Display.Strategy)
	if err != nil {
		return display.Configuration{}, err
	}
	viewfinder, err := types.ParseSize(c.Display.Viewfinder)
	if err != nil {
		return display.Configuration{}, err
	}
	cfg := display.Configuration{Rotation: c.Display.Rotation, Viewfinder: viewfinder, Strategy: strategy}
	if err := cfg.Validate(); err != nil {
		return display.Configuration{}, err
	}
	return cfg, nil
}

// PreviewSizes parses the camera's preview sizes
func (c *Config) PreviewSizes() ([]types.Size, error) {
	return types.ParseSizes(c.Camera.PreviewSizes)
}

// FramingOptions converts the framing section
func (c *Config) FramingOptions() framing.Options {
	return framing.Options{
		Size:           types.NewSize(c.Framing.Width, c.Framing.Height),
		EdgeFraction:   c.Framing.EdgeFraction,
		MarginFraction: c.Framing.MarginFraction,
	}
}

// CameraRotation is the rotation between camera and display
func (c *Config) CameraRotation() (int, error) {
	facing, err := display.ParseFacing(c.Camera.Facing)
	if err != nil {
		return 0, err
	}
	return display.CameraRotation(c.Display.Rotation, c.Camera.SensorOrientation, facing)
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./" + ConfigFileName + ".yaml"
	}
	return filepath.Join(home, ".config", "viewfinder", ConfigFileName+".yaml")
}
