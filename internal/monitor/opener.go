package monitor

import (
	"fmt"
	"time"

	"github.com/pkg/browser"
	"go.uber.org/zap"
)

// tabStagger spaces out tab opens so the browser keeps up.
const tabStagger = 2 * time.Second

// Opener opens monitored groups in the operator's default browser.
type Opener struct {
	log     *zap.Logger
	stagger time.Duration

	// openURL is swapped in tests.
	openURL func(url string) error
}

// NewOpener creates an Opener using the system default browser.
func NewOpener(log *zap.Logger) *Opener {
	if log == nil {
		log = zap.NewNop()
	}
	return &Opener{log: log, stagger: tabStagger, openURL: browser.OpenURL}
}

// OpenGroups opens a tab per group, staggered. Failures to open a tab are
// logged and skipped; the operator can open the printed URL by hand.
func (o *Opener) OpenGroups(groups []Group) {
	fmt.Printf("\n🔍 Opening %d groups for monitoring...\n", len(groups))
	fmt.Println("==================================================")

	for i, g := range groups {
		fmt.Printf("\n[%d] %s (Tier %d)\n", i+1, g.Name, g.Tier)
		fmt.Printf("    URL: %s\n", g.URL)
		if err := o.openURL(g.URL); err != nil {
			o.log.Warn("failed to open group tab", zap.String("url", g.URL), zap.Error(err))
			fmt.Printf("    ⚠️  Could not open tab: %v\n", err)
		}
		if i < len(groups)-1 {
			time.Sleep(o.stagger)
		}
	}

	fmt.Println("\n==================================================")
	fmt.Println("📋 MONITORING CHECKLIST:")
	fmt.Println("  1. Scroll through each group's recent posts")
	fmt.Println("  2. Look for business card photos")
	fmt.Println("  3. Screenshot bad cards (Cmd+Shift+4 on Mac)")
	fmt.Println("  4. Save screenshots to the screenshots directory")
	fmt.Println("  5. Run: prospect add <name> <trade>")
	fmt.Println("==================================================")
}
