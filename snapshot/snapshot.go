// Package snapshot captures full-page screenshots of the running dashboard
// with a headless browser.
package snapshot

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/chromedp"

	"airbnb-dashboard/utils"
)

// Target is one page to capture and the element that marks it as rendered.
type Target struct {
	Path     string
	WaitFor  string
	Settle   time.Duration
	FileName string
}

// DefaultTargets are the dashboard and the listings map.
var DefaultTargets = []Target{
	{Path: "/airbnb-dashboard", WaitFor: "#figure-0 .main-svg", Settle: 2 * time.Second},
	{Path: "/map", WaitFor: "#map .leaflet-pane", Settle: 3 * time.Second},
}

// Options configure a Capturer.
type Options struct {
	BaseURL        string
	OutputDir      string
	ChromeBin      string
	MaxConcurrency int
	MaxRetries     int
	Timeout        time.Duration
}

// Capturer drives a shared browser and saves one PNG per target.
type Capturer struct {
	opts    Options
	logger  *utils.Logger
	pool    *utils.WorkerPool
	visited *utils.URLSet
	retry   *utils.RetryConfig
}

// New creates a Capturer. Captures start at least 500ms apart.
func New(opts Options, logger *utils.Logger) *Capturer {
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	return &Capturer{
		opts:    opts,
		logger:  logger,
		pool:    utils.NewWorkerPool(opts.MaxConcurrency, 500),
		visited: utils.NewURLSet(),
		retry: &utils.RetryConfig{
			MaxAttempts: opts.MaxRetries,
			BaseDelay:   2 * time.Second,
			Logger:      logger,
		},
	}
}

// Capture saves a screenshot of every distinct target and returns the
// written file paths in target order. Failed targets are logged and
// reported in the returned error; successful files are still returned.
func (c *Capturer) Capture(ctx context.Context, targets []Target) ([]string, error) {
	if err := os.MkdirAll(c.opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("snapshot: create output dir: %w", err)
	}

	jobs := c.dedupe(targets)
	if len(jobs) == 0 {
		return nil, nil
	}

	chromeBin := c.opts.ChromeBin
	if chromeBin == "" {
		chromeBin = findChromeBinary()
	}
	c.logger.Info("[snapshot] Using browser binary: %s", chromeBin)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocatorOptions(chromeBin)...)
	defer cancelAlloc()

	// Suppress chromedp log noise
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelBrowser()

	// Start the browser before fanning out tabs.
	if err := chromedp.Run(browserCtx); err != nil {
		return nil, fmt.Errorf("snapshot: start browser: %w", err)
	}

	var (
		mu     sync.Mutex
		files  = make([]string, len(jobs))
		failed []string
	)
	for i, t := range jobs {
		i, t := i, t
		c.pool.Submit(ctx, func() {
			file, err := c.captureOne(browserCtx, t)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				c.logger.Error("[snapshot] %s failed: %v", t.Path, err)
				failed = append(failed, t.Path)
				return
			}
			files[i] = file
			c.logger.Info("[snapshot] %s → %s", t.Path, file)
		})
	}
	c.pool.Wait()

	written := make([]string, 0, len(files))
	for _, f := range files {
		if f != "" {
			written = append(written, f)
		}
	}
	if len(failed) > 0 {
		return written, fmt.Errorf("snapshot: %d of %d captures failed: %s",
			len(failed), len(jobs), strings.Join(failed, ", "))
	}
	return written, nil
}

// dedupe drops targets whose resolved URL was already seen and fills in
// missing file names.
func (c *Capturer) dedupe(targets []Target) []Target {
	out := make([]Target, 0, len(targets))
	for _, t := range targets {
		if !c.visited.Add(c.pageURL(t.Path)) {
			c.logger.Debug("[snapshot] Skipping duplicate: %s", t.Path)
			continue
		}
		if t.FileName == "" {
			t.FileName = FileName(t.Path)
		}
		out = append(out, t)
	}
	return out
}

func (c *Capturer) captureOne(browserCtx context.Context, t Target) (string, error) {
	target := c.pageURL(t.Path)
	dest := filepath.Join(c.opts.OutputDir, t.FileName)

	err := c.retry.Do(browserCtx, "capture "+t.Path, func() error {
		tabCtx, cancel := chromedp.NewContext(browserCtx)
		defer cancel()

		tabCtx, cancelTimeout := context.WithTimeout(tabCtx, c.opts.Timeout)
		defer cancelTimeout()

		var png []byte
		actions := []chromedp.Action{
			chromedp.EmulateViewport(1280, 960),
			chromedp.Navigate(target),
		}
		if t.WaitFor != "" {
			actions = append(actions, chromedp.WaitVisible(t.WaitFor, chromedp.ByQuery))
		}
		if t.Settle > 0 {
			actions = append(actions, chromedp.Sleep(t.Settle))
		}
		actions = append(actions, chromedp.FullScreenshot(&png, 90))

		if err := chromedp.Run(tabCtx, actions...); err != nil {
			return fmt.Errorf("chromedp capture: %w", err)
		}
		return os.WriteFile(dest, png, 0o644)
	})
	if err != nil {
		return "", err
	}
	return dest, nil
}

func (c *Capturer) pageURL(path string) string {
	return strings.TrimRight(c.opts.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// FileName turns a page path into a PNG file name, e.g. "/airbnb-dashboard"
// becomes "airbnb-dashboard.png" and "/" becomes "index.png".
func FileName(path string) string {
	if u, err := url.Parse(path); err == nil {
		path = u.Path
	}
	name := strings.Trim(path, "/")
	if name == "" {
		name = "index"
	}
	name = strings.NewReplacer("/", "_", "\\", "_", ".", "_").Replace(name)
	return name + ".png"
}

func allocatorOptions(chromeBin string) []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.Flag("hide-scrollbars", true),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}
	return opts
}

// findChromeBinary locates a Chrome/Chromium binary, or returns "" to let
// chromedp search on its own.
func findChromeBinary() string {
	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
