// Package probe reads frame dimensions from sample image files so preview
// sizes can be taken from real camera captures.
package probe

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/menta2k/viewfinder/internal/utils"
	"github.com/menta2k/viewfinder/pkg/types"
)

// ErrUnknownFormat is returned when no decoder recognizes the file
var ErrUnknownFormat = errors.New("unknown image format")

// Options controls probing
type Options struct {
	// AutoOrient applies EXIF orientation, reporting the size as displayed.
	// This decodes the whole image.
	AutoOrient bool
	// HTTPClient fetches remote frames; a client with a 30s timeout is
	// used when nil
	HTTPClient *http.Client
}

// Prober reads image dimensions
type Prober struct {
	opts Options
}

// New creates a Prober
func New(opts Options) *Prober {
	return &Prober{opts: opts}
}

// Size returns the dimensions of the image at path
func (p *Prober) Size(path string) (types.Size, error) {
	if p.opts.AutoOrient {
		img, err := imaging.Open(path, imaging.AutoOrientation(true))
		if err != nil {
			return types.Size{}, fmt.Errorf("failed to open %s: %w", path, err)
		}
		b := img.Bounds()
		return types.NewSize(b.Dx(), b.Dy()), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return types.Size{}, err
	}
	defer f.Close()

	size, err := SizeFromReader(f)
	if err != nil {
		return types.Size{}, fmt.Errorf("%s: %w", path, err)
	}
	return size, nil
}

// SizeFromReader reads only the image header to find its dimensions
func SizeFromReader(r io.ReadSeeker) (types.Size, error) {
	if cfg, _, err := image.DecodeConfig(r); err == nil {
		return types.NewSize(cfg.Width, cfg.Height), nil
	}

	// Fallback: explicit WebP header decode
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return types.Size{}, err
	}
	if cfg, err := webp.DecodeConfig(r); err == nil {
		return types.NewSize(cfg.Width, cfg.Height), nil
	}
	return types.Size{}, ErrUnknownFormat
}

// Dir returns the distinct sizes of the image files under dir, in the order
// they were first seen. Unreadable files are skipped.
func (p *Prober) Dir(dir string) ([]types.Size, error) {
	files, err := utils.ListImageFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	seen := map[types.Size]struct{}{}
	var sizes []types.Size
	for _, file := range files {
		size, err := p.Size(file)
		if err != nil {
			slog.Warn("skipping unreadable frame", slog.String("path", file), slog.Any("error", err))
			continue
		}
		if _, ok := seen[size]; ok {
			continue
		}
		seen[size] = struct{}{}
		sizes = append(sizes, size)
	}
	return sizes, nil
}

// Paths probes each path; directories are expanded with Dir and http(s)
// URLs are downloaded
func (p *Prober) Paths(ctx context.Context, paths []string) ([]types.Size, error) {
	var sizes []types.Size
	for _, path := range paths {
		if IsURL(path) {
			size, err := p.URL(ctx, path)
			if err != nil {
				return nil, err
			}
			sizes = append(sizes, size)
			continue
		}
		if utils.DirExists(path) {
			found, err := p.Dir(path)
			if err != nil {
				return nil, err
			}
			sizes = append(sizes, found...)
			continue
		}
		size, err := p.Size(path)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}
