package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/menta2k/viewfinder"
	"github.com/menta2k/viewfinder/internal/config"
)

// app is the state shared by every subcommand
type app struct {
	loader  *config.Loader
	cfg     *config.Config
	cfgFile string
	jsonOut bool
}

// NewRootCommand builds the command tree. Each call returns an independent
// tree so tests can execute commands without sharing flag state.
func NewRootCommand() *cobra.Command {
	a := &app{loader: config.NewLoader(nil)}

	rootCmd := &cobra.Command{
		Use:   "viewfinder",
		Short: "Camera preview sizing and framing for barcode scanners",
		Long: `Select camera preview resolutions and place the scaled preview inside a
barcode scanner's viewfinder.

This tool provides:
- Preview size selection with the center-crop, fit-center and fit-xy strategies
- Placement of the scaled preview relative to the viewfinder
- The scanning frame in viewfinder and preview pixel coordinates
- Layout diagrams and an HTTP API

Examples:
  viewfinder best 1920x1080 1280x720 640x480 --strategy fit-center
  viewfinder place 640x480 --viewfinder 1080x1920
  viewfinder frame --rotation 90
  viewfinder serve --addr :8080`,
		Version:           viewfinder.GetVersion(),
		SilenceUsage:      true,
		PersistentPreRunE: a.preRun,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is search in ., $HOME/.config/viewfinder, /etc/viewfinder)")
	pf.BoolP("verbose", "v", false, "verbose output (equivalent to --log-level=debug)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "text", "log format (text, json)")
	pf.BoolVar(&a.jsonOut, "json", false, "print results as JSON")

	pf.StringP("strategy", "s", "", "placement strategy (center-crop, fit-center, fit-xy)")
	pf.String("viewfinder", "", "viewfinder size as WxH")
	pf.Int("rotation", 0, "display rotation in degrees (0, 90, 180, 270)")
	pf.Int("sensor-orientation", 0, "camera sensor orientation in degrees")
	pf.String("facing", "", "camera facing (back, front)")

	pf.Int("frame-width", 0, "fixed scanning frame width")
	pf.Int("frame-height", 0, "fixed scanning frame height")
	pf.Float64("edge-fraction", 0, "square frame edge as a fraction of the shorter visible side")
	pf.Float64("margin-fraction", 0, "frame margin as a fraction of the shorter visible side (< 0.5)")

	a.bindFlags(rootCmd, map[string]string{
		"verbose":            "verbose",
		"log-level":          "log_level",
		"log-format":         "log_format",
		"strategy":           "display.strategy",
		"viewfinder":         "display.viewfinder",
		"rotation":           "display.rotation",
		"sensor-orientation": "camera.sensor_orientation",
		"facing":             "camera.facing",
		"frame-width":        "framing.width",
		"frame-height":       "framing.height",
		"edge-fraction":      "framing.edge_fraction",
		"margin-fraction":    "framing.margin_fraction",
	})

	rootCmd.AddCommand(
		newBestCommand(a),
		newPlaceCommand(a),
		newScoreCommand(a),
		newFrameCommand(a),
		newProbeCommand(a),
		newSketchCommand(a),
		newServeCommand(a),
	)
	return rootCmd
}

// Execute runs the command tree and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// bindFlags binds cmd's flags to configuration keys so that a flag set on
// the command line overrides the config file and environment
func (a *app) bindFlags(cmd *cobra.Command, keys map[string]string) {
	v := a.loader.Viper()
	for name, key := range keys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			flag = cmd.PersistentFlags().Lookup(name)
		}
		cobra.CheckErr(v.BindPFlag(key, flag))
	}
}

func (a *app) preRun(cmd *cobra.Command, _ []string) error {
	cfg, err := a.loader.LoadWithFile(a.cfgFile)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	a.cfg = cfg
	slog.SetDefault(newLogger(cmd.ErrOrStderr(), cfg))
	slog.Debug("configuration loaded", "file", a.loader.ConfigFileUsed())
	return nil
}

// newLogger builds the structured logger selected by the configuration
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	var logLevel slog.Level
	if cfg.Verbose {
		logLevel = slog.LevelDebug
	} else {
		switch strings.ToLower(cfg.LogLevel) {
		case "debug":
			logLevel = slog.LevelDebug
		case "warn":
			logLevel = slog.LevelWarn
		case "error":
			logLevel = slog.LevelError
		default:
			logLevel = slog.LevelInfo
		}
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// print writes v as JSON when --json is set, otherwise calls text
func (a *app) print(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	out := cmd.OutOrStdout()
	if a.jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(out)
	return nil
}

func (a *app) viewfinder() (*viewfinder.Viewfinder, error) {
	return viewfinder.FromConfig(a.cfg)
}
