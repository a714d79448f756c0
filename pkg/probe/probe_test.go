package probe

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menta2k/viewfinder/pkg/types"
)

func frame(w, h int) image.Image {
	return imaging.New(w, h, color.NRGBA{R: 64, G: 64, B: 64, A: 255})
}

func writeFrames(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	require.NoError(t, imaging.Save(frame(40, 30), filepath.Join(dir, "a.png")))
	require.NoError(t, imaging.Save(frame(40, 30), filepath.Join(dir, "b.jpg")))

	f, err := os.Create(filepath.Join(dir, "c.webp"))
	require.NoError(t, err)
	require.NoError(t, webp.Encode(f, frame(20, 10), &webp.Options{Quality: 80}))
	require.NoError(t, f.Close())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a frame"), 0o644))
	return dir
}

func TestSize(t *testing.T) {
	dir := writeFrames(t)
	p := New(Options{})

	size, err := p.Size(filepath.Join(dir, "a.png"))
	require.NoError(t, err)
	assert.Equal(t, types.NewSize(40, 30), size)

	size, err = p.Size(filepath.Join(dir, "c.webp"))
	require.NoError(t, err)
	assert.Equal(t, types.NewSize(20, 10), size)

	_, err = p.Size(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}

func TestSizeAutoOrient(t *testing.T) {
	dir := writeFrames(t)

	size, err := New(Options{AutoOrient: true}).Size(filepath.Join(dir, "b.jpg"))
	require.NoError(t, err)
	assert.Equal(t, types.NewSize(40, 30), size)
}

func TestSizeFromReaderUnknown(t *testing.T) {
	_, err := SizeFromReader(bytes.NewReader([]byte("definitely not an image")))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDirDistinctSizes(t *testing.T) {
	dir := writeFrames(t)

	sizes, err := New(Options{}).Dir(dir)
	require.NoError(t, err)
	assert.Equal(t, []types.Size{types.NewSize(40, 30), types.NewSize(20, 10)}, sizes)
}

func TestPaths(t *testing.T) {
	dir := writeFrames(t)

	sizes, err := New(Options{}).Paths(context.Background(), []string{filepath.Join(dir, "c.webp"), dir})
	require.NoError(t, err)
	assert.Equal(t, []types.Size{types.NewSize(20, 10), types.NewSize(40, 30), types.NewSize(20, 10)}, sizes)
}
