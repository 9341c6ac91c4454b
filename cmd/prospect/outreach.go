package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tradecard/internal/outreach"
	"tradecard/internal/payments"
	"tradecard/internal/prospect"
)

var outreachLink string

var outreachCmd = &cobra.Command{
	Use:   "outreach",
	Short: "Generate simulated DMs for every new prospect",
	Long: `Fills the outreach message template for each prospect still in "new"
status and writes one transcript per prospect without sending anything. Copy
the text into Messenger by hand, then mark the prospect contacted.`,
	RunE: runOutreach,
}

func init() {
	outreachCmd.Flags().StringVar(&outreachLink, "payment-link", "",
		"Payment link to embed (default: first created product, or a placeholder)")
}

func runOutreach(cmd *cobra.Command, args []string) error {
	store := prospect.NewStore(paths.ProspectsFile, logger)
	doc, err := store.Load()
	if err != nil {
		return err
	}

	templates, err := outreach.LoadTemplates(paths.DMTemplatesFile)
	if err != nil {
		return err
	}

	link := outreachLink
	if link == "" {
		link = defaultPaymentLink()
	}

	now := time.Now()
	sim := outreach.NewSimulator(paths.SimulatedDMsDir, link, templates[0], logger)
	messages, err := sim.SimulateAll(doc, now)
	if err != nil {
		return err
	}

	rule := strings.Repeat("=", 60)
	fmt.Println("\n" + rule)
	fmt.Println("📨 SIMULATED DM OUTREACH")
	fmt.Printf("   Date: %s\n", prospect.DateString(now))
	fmt.Printf("   Prospects: %d\n", len(doc.Prospects))
	fmt.Println(rule)

	for _, m := range messages {
		fmt.Printf("\n%s\n", strings.Repeat("─", 60))
		fmt.Printf("📬 TO: %s (%s)\n", m.Prospect.Name, m.Prospect.Trade)
		fmt.Printf("   Source: %s\n", m.Prospect.GroupSource)
		fmt.Printf("   Card Score: %d/10\n", m.Prospect.CardScore)
		fmt.Printf("%s\n", strings.Repeat("─", 60))
		fmt.Println(m.Body)
		fmt.Printf("\n   💾 Saved to: %s\n", m.SimPath)
	}

	fmt.Printf("\n%s\n", rule)
	fmt.Printf("✅ Simulated %d DMs\n", len(messages))
	fmt.Printf("   Files saved to: %s\n", paths.SimulatedDMsDir)
	fmt.Println("\n   To go LIVE: open each profile, paste the DM, attach the preview,")
	fmt.Println("   send, then run: prospect update <ID> contacted")
	fmt.Println(rule)
	return nil
}

// defaultPaymentLink pulls the first created product's link, falling back to
// the placeholder test link when products have not been set up.
func defaultPaymentLink() string {
	cfg, ok, err := payments.LoadConfig(paths.StripeConfigFile)
	if err != nil {
		logger.Warn("could not read stripe config", zap.Error(err))
	}
	if ok && len(cfg.Products) > 0 {
		return cfg.Products[0].PaymentURL
	}
	return "https://buy.stripe.com/test_XXXXXXXX"
}
