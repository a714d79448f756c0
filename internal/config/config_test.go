package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menta2k/viewfinder/pkg/scaling"
	"github.com/menta2k/viewfinder/pkg/types"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	dc, err := cfg.DisplayConfiguration()
	require.NoError(t, err)
	assert.Equal(t, scaling.CenterCropName, dc.StrategyName())
	assert.Equal(t, types.NewSize(1080, 1920), dc.Viewfinder)

	sizes, err := cfg.PreviewSizes()
	require.NoError(t, err)
	assert.Len(t, sizes, 3)

	rotation, err := cfg.CameraRotation()
	require.NoError(t, err)
	assert.Equal(t, 90, rotation)
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := Default()
	cfg.Display.Strategy = "stretch"
	cfg.Camera.PreviewSizes = []string{"wide"}
	cfg.Framing.MarginFraction = 0.5
	cfg.Output.Quality = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, scaling.ErrUnknownStrategy)
	assert.ErrorIs(t, err, types.ErrInvalidSize)
	assert.Contains(t, err.Error(), "framing")
	assert.Contains(t, err.Error(), "output.quality")
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "viewfinder.yaml")

	cfg := Default()
	cfg.Display.Strategy = scaling.FitCenterName
	cfg.Display.Viewfinder = "720x1280"
	cfg.Camera.PreviewSizes = []string{"1280x720", "640x480"}
	cfg.Server.ReadTimeout = 3 * time.Second
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadWithFileErrors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("framing:\n  margin_fraction: 0.8\n"), 0o644))
	_, err = LoadFromFile(path)
	assert.ErrorContains(t, err, "configuration validation failed")
}

func TestLoadEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("VIEWFINDER_DISPLAY_STRATEGY", "fit-xy")
	t.Setenv("VIEWFINDER_DISPLAY_ROTATION", "90")

	cfg, err := NewLoader(nil).Load()
	require.NoError(t, err)
	assert.Equal(t, "fit-xy", cfg.Display.Strategy)
	assert.Equal(t, 90, cfg.Display.Rotation)
	assert.Equal(t, Default().Display.Viewfinder, cfg.Display.Viewfinder)
}
