// Package render rasterizes composed card HTML with headless Chromium.
package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
)

// Card artifacts are laid out for a 700x400 viewport; the page gets a margin
// so shadows are not clipped before the element screenshot.
const (
	cardWidth  = 700
	cardHeight = 400
	pageMargin = 100

	// fontSettle gives Google Fonts time to load before capture.
	fontSettle = 1500 * time.Millisecond
)

// Chromium renders a saved HTML card to PNG via a headless browser. Each call
// launches, captures, and tears down; there is no pooling, one render at a
// time.
type Chromium struct {
	log *zap.Logger

	// bin optionally pins the browser binary instead of rod's managed one.
	bin string
}

// NewChromium creates a renderer. bin may be empty to use the default browser
// resolution.
func NewChromium(bin string, log *zap.Logger) *Chromium {
	if log == nil {
		log = zap.NewNop()
	}
	return &Chromium{log: log, bin: bin}
}

// Render loads htmlPath in headless Chromium and writes a PNG of the .card
// element to pngPath. Falls back to a fixed viewport clip when the element is
// missing.
func (c *Chromium) Render(ctx context.Context, htmlPath, pngPath string) error {
	abs, err := filepath.Abs(htmlPath)
	if err != nil {
		return fmt.Errorf("resolve html path: %w", err)
	}

	launch := launcher.New().Headless(true)
	if c.bin != "" {
		launch = launch.Bin(c.bin)
	}
	controlURL, err := launch.Launch()
	if err != nil {
		return fmt.Errorf("launch chrome: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("connect to chrome: %w", err)
	}
	defer func() { _ = browser.Close() }()

	page, err := browser.Page(proto.TargetCreateTarget{URL: "file://" + abs})
	if err != nil {
		return fmt.Errorf("open card page: %w", err)
	}

	if err := (proto.EmulationSetDeviceMetricsOverride{
		Width:             cardWidth + pageMargin,
		Height:            cardHeight + pageMargin,
		DeviceScaleFactor: 1.0,
		Mobile:            false,
	}).Call(page); err != nil {
		c.log.Warn("failed to set viewport", zap.Error(err))
	}

	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("load card page: %w", err)
	}
	time.Sleep(fontSettle)

	data, err := c.capture(page)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(pngPath), 0o755); err != nil {
		return fmt.Errorf("create render output directory: %w", err)
	}
	if err := os.WriteFile(pngPath, data, 0o644); err != nil {
		return fmt.Errorf("write rendered card: %w", err)
	}

	c.log.Debug("card rendered", zap.String("png", pngPath))
	return nil
}

// capture screenshots the .card element, or clips the card region of the
// viewport when the element cannot be found.
func (c *Chromium) capture(page *rod.Page) ([]byte, error) {
	el, err := page.Timeout(5 * time.Second).Element(".card")
	if err == nil {
		data, err := el.Screenshot(proto.PageCaptureScreenshotFormatPng, 0)
		if err == nil {
			return data, nil
		}
		c.log.Warn("element screenshot failed, clipping viewport", zap.Error(err))
	}

	data, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
		Clip: &proto.PageViewport{
			X:      0,
			Y:      0,
			Width:  cardWidth,
			Height: cardHeight,
			Scale:  1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("screenshot card: %w", err)
	}
	return data, nil
}
