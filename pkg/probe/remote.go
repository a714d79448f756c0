package probe

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/menta2k/viewfinder/pkg/types"
)

const (
	defaultTimeout = 30 * time.Second
	// maxFrameBytes bounds downloads; a frame header is far smaller
	maxFrameBytes = 64 << 20
	userAgent     = "viewfinder-probe/1.0"
)

// IsURL reports whether source is an http or https URL
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// URL downloads the frame at frameURL and returns its dimensions
func (p *Prober) URL(ctx context.Context, frameURL string) (types.Size, error) {
	parsedURL, err := url.Parse(frameURL)
	if err != nil {
		return types.Size{}, fmt.Errorf("invalid URL: %w", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return types.Size{}, fmt.Errorf("unsupported URL scheme: %s (only http and https are supported)", parsedURL.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, frameURL, nil)
	if err != nil {
		return types.Size{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.httpClient().Do(req)
	if err != nil {
		return types.Size{}, fmt.Errorf("failed to download frame: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Size{}, fmt.Errorf("failed to download frame: HTTP %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return types.Size{}, fmt.Errorf("URL does not point to an image (Content-Type: %s)", contentType)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFrameBytes))
	if err != nil {
		return types.Size{}, fmt.Errorf("failed to read frame data: %w", err)
	}
	size, err := SizeFromReader(bytes.NewReader(data))
	if err != nil {
		return types.Size{}, fmt.Errorf("%s: %w", frameURL, err)
	}
	return size, nil
}

func (p *Prober) httpClient() *http.Client {
	if p.opts.HTTPClient != nil {
		return p.opts.HTTPClient
	}
	return &http.Client{Timeout: defaultTimeout}
}
