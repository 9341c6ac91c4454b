package monitor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"tradecard/internal/card"
)

// Capture files business-card screenshots into the screenshots directory
// under the prospect's name.
type Capture struct {
	dir string
	log *zap.Logger

	// run invokes the native interactive capture utility; swapped in tests.
	run func(ctx context.Context, outPath string) error
}

// NewCapture creates a Capture writing into dir.
func NewCapture(dir string, log *zap.Logger) *Capture {
	if log == nil {
		log = zap.NewNop()
	}
	return &Capture{
		dir: dir,
		log: log,
		run: func(ctx context.Context, outPath string) error {
			// macOS interactive region selection. Non-zero exit means the
			// operator cancelled.
			return exec.CommandContext(ctx, "screencapture", "-i", outPath).Run()
		},
	}
}

// targetPath builds the destination filename for a prospect's screenshot.
func (c *Capture) targetPath(name string, now time.Time) string {
	filename := fmt.Sprintf("%s_%s.png", card.SafeName(name), now.Format("20060102_150405"))
	return filepath.Join(c.dir, filename)
}

// Interactive triggers the native region-selection capture. A cancelled
// capture returns an empty path and no error; the caller already told the
// operator what happened on stdout.
func (c *Capture) Interactive(ctx context.Context, name string, now time.Time) (string, error) {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshots directory: %w", err)
	}

	path := c.targetPath(name, now)
	fmt.Printf("\n📸 Screenshot will be saved to: %s\n", path)
	fmt.Println("Use Cmd+Shift+4 to capture the business card area...")

	if err := c.run(ctx, path); err != nil {
		c.log.Info("screenshot cancelled", zap.String("prospect", name), zap.Error(err))
		fmt.Println("❌ Screenshot cancelled")
		return "", nil
	}
	fmt.Printf("✅ Screenshot saved: %s\n", path)
	return path, nil
}

// Watch waits for the next image dropped into the screenshots directory and
// files it under the prospect's name. Useful when the operator captures with
// the OS hotkey and drags the file over. Blocks until a file arrives or ctx
// expires.
func (c *Capture) Watch(ctx context.Context, name string, now time.Time) (string, error) {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshots directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return "", fmt.Errorf("start screenshot watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(c.dir); err != nil {
		return "", fmt.Errorf("watch screenshots directory: %w", err)
	}

	fmt.Printf("\n👀 Watching %s — drop a screenshot there (Ctrl-C to stop)...\n", c.dir)

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case err := <-watcher.Errors:
			return "", fmt.Errorf("screenshot watcher: %w", err)
		case ev := <-watcher.Events:
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if !isImage(ev.Name) || strings.HasPrefix(filepath.Base(ev.Name), ".") {
				continue
			}

			target := c.targetPath(name, now)
			if ev.Name == target {
				return target, nil
			}
			if err := os.Rename(ev.Name, target); err != nil {
				return "", fmt.Errorf("file screenshot: %w", err)
			}
			c.log.Info("screenshot filed",
				zap.String("from", ev.Name),
				zap.String("to", target))
			fmt.Printf("✅ Screenshot filed: %s\n", target)
			return target, nil
		}
	}
}

func isImage(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}
