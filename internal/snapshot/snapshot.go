// Package snapshot captures screenshots of the running site in a headless
// browser at a given viewport size.
package snapshot

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/chromedp/chromedp"
)

// Defaults for Options.
const (
	DefaultWidth   = 1280
	DefaultHeight  = 800
	DefaultTimeout = 30 * time.Second
	DefaultSettle  = 2 * time.Second
)

// Options describes one capture.
type Options struct {
	URL     string
	Width   int
	Height  int
	Timeout time.Duration
	// Settle is how long to wait after the background appears, so the
	// websocket push and entrance animations have run.
	Settle  time.Duration
	Quality int
	Verbose bool
}

// Result is a captured page.
type Result struct {
	PNG []byte
	// Mode is the data-mode of the page background after settling.
	Mode string
}

// Validate checks the options and fills in defaults.
func (o *Options) Validate() error {
	if o.URL == "" {
		return fmt.Errorf("url is required")
	}
	u, err := url.Parse(o.URL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", o.URL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid url %q: scheme must be http or https", o.URL)
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Width < 0 || o.Height < 0 {
		return fmt.Errorf("invalid viewport %dx%d", o.Width, o.Height)
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.Settle < 0 {
		o.Settle = 0
	} else if o.Settle == 0 {
		o.Settle = DefaultSettle
	}
	if o.Quality <= 0 || o.Quality > 100 {
		o.Quality = 90
	}
	return nil
}

// TargetURL returns opts.URL with the viewport width added as the vw query
// parameter, so the first server render already matches the viewport.
func (o Options) TargetURL() (string, error) {
	u, err := url.Parse(o.URL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("vw", strconv.Itoa(o.Width))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Capture renders the page in a headless browser and takes a full-page
// screenshot. Requires Chrome/Chromium to be installed on the system.
func Capture(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	target, err := opts.TargetURL()
	if err != nil {
		return nil, err
	}

	if opts.Verbose {
		log.Printf("[snapshot] Starting headless browser for: %s (%dx%d)", target, opts.Width, opts.Height)
	}

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

	var (
		png  []byte
		mode string
		ok   bool
	)
	err = chromedp.Run(browserCtx,
		chromedp.EmulateViewport(int64(opts.Width), int64(opts.Height)),
		chromedp.Navigate(target),
		chromedp.WaitVisible("#background", chromedp.ByQuery),
		chromedp.Sleep(opts.Settle),
		chromedp.AttributeValue("#background", "data-mode", &mode, &ok, chromedp.ByQuery),
		chromedp.FullScreenshot(&png, opts.Quality),
	)
	if err != nil {
		return nil, fmt.Errorf("browser capture failed: %w", err)
	}

	if opts.Verbose {
		log.Printf("[snapshot] Captured %d bytes, background mode %q", len(png), mode)
	}
	return &Result{PNG: png, Mode: mode}, nil
}

// Save captures the page and writes the screenshot to path.
func Save(ctx context.Context, opts Options, path string) (*Result, error) {
	if path == "" {
		return nil, fmt.Errorf("output path is required")
	}
	result, err := Capture(ctx, opts)
	if err != nil {
		return nil, err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, result.PNG, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write screenshot: %w", err)
	}
	return result, nil
}
