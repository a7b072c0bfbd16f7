// Package preview renders generated pages in a headless browser.
package preview

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a single screenshot
const DefaultTimeout = 30 * time.Second

// Options configures a screenshot
type Options struct {
	// Width of the browser viewport in pixels
	Width   int
	// Height of the browser viewport in pixels. The capture covers the full page regardless.
	Height  int
	Timeout time.Duration
	Logger  *zap.Logger
}

// DefaultOptions returns a desktop-sized viewport
func DefaultOptions() Options {
	return Options{Width: 1280, Height: 800, Timeout: DefaultTimeout}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.Timeout <= 0 {
		o.Timeout = d.Timeout
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// FileURL returns the file:// URL of path
func FileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(), nil
}

// Screenshot renders page in headless Chrome and returns a full-page PNG.
// Requires Chrome/Chromium to be installed on the system.
func Screenshot(ctx context.Context, page string, opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	dir, err := os.MkdirTemp("", "sitegen-preview-")
	if err != nil {
		return nil, fmt.Errorf("failed to create preview directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, []byte(page), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write preview page: %w", err)
	}
	target, err := FileURL(path)
	if err != nil {
		return nil, err
	}

	opts.Logger.Debug("starting headless browser", zap.String("url", target))

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.WindowSize(opts.Width, opts.Height),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, opts.Timeout)
	defer cancel()

	var png []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate(target),
		chromedp.WaitReady("body"),
		// quality 100 selects PNG
		chromedp.FullScreenshot(&png, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("browser rendering failed: %w", err)
	}

	opts.Logger.Debug("captured screenshot", zap.Int("bytes", len(png)))
	return png, nil
}
