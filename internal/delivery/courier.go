// Package delivery emails purchased final artifacts to the buyer, degrading
// to a manual-delivery listing when SMTP is not configured.
package delivery

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"tradecard/internal/card"
	"tradecard/internal/config"
)

// Courier finds a prospect's final artifacts and sends them by email.
type Courier struct {
	creds        config.Credentials
	redesignsDir string
	log          *zap.Logger

	// send is swapped in tests to avoid a real SMTP dial.
	send func(ctx context.Context, msg *mail.Msg) error
}

// NewCourier creates a Courier reading finals from redesignsDir.
func NewCourier(creds config.Credentials, redesignsDir string, log *zap.Logger) *Courier {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Courier{creds: creds, redesignsDir: redesignsDir, log: log}
	c.send = c.smtpSend
	return c
}

// FinalFiles returns the prospect's final artifacts in name order.
func (c *Courier) FinalFiles(prospectName string) ([]string, error) {
	pattern := filepath.Join(c.redesignsDir, card.SafeName(prospectName)+"_*_final.*")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("find final artifacts: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

// Deliver emails the buyer their final files. Missing files or unconfigured
// SMTP degrade to operator instructions; only a failed send is an error.
func (c *Courier) Deliver(ctx context.Context, email, name string, metadata map[string]string) error {
	prospectName := metadata["prospect_name"]
	if prospectName == "" {
		prospectName = "customer"
	}
	receipt := uuid.NewString()

	files, err := c.FinalFiles(prospectName)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		c.log.Warn("no final artifacts for buyer, manual delivery needed",
			zap.String("receipt", receipt),
			zap.String("prospect", prospectName))
		fmt.Printf("⚠️ No files found for %s — manual delivery needed\n", prospectName)
		return nil
	}

	if !c.creds.SMTPConfigured() {
		fmt.Printf("📧 Email delivery not configured. Files ready at: %s\n", c.redesignsDir)
		for _, f := range files {
			fmt.Printf("   → %s\n", f)
		}
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(c.creds.SMTPUser); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(email); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(fmt.Sprintf("Your Professional Business Card Redesign — %s", name))
	msg.SetBodyString(mail.TypeTextPlain, deliveryBody(name))
	for _, f := range files {
		msg.AttachFile(f)
	}

	if err := c.send(ctx, msg); err != nil {
		fmt.Printf("❌ Email failed: %v\n", err)
		fmt.Printf("   Files ready for manual delivery at: %s\n", c.redesignsDir)
		return fmt.Errorf("send delivery email: %w", err)
	}

	c.log.Info("files delivered",
		zap.String("receipt", receipt),
		zap.String("email", email),
		zap.Int("files", len(files)))
	fmt.Printf("✅ Files delivered to %s\n", email)
	return nil
}

func (c *Courier) smtpSend(ctx context.Context, msg *mail.Msg) error {
	client, err := mail.NewClient(c.creds.SMTPHost,
		mail.WithPort(c.creds.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.creds.SMTPUser),
		mail.WithPassword(c.creds.SMTPPass),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, msg)
}

func deliveryBody(name string) string {
	return fmt.Sprintf(`Hi %s,

Thank you for your order! Your professional business card redesigns are attached.

What's included:
• 3 unique design variations
• Print-ready PNG files (300 DPI)
• Files sized for standard 3.5" × 2" business cards

NEXT STEPS:
1. Pick your favorite design
2. Reply to this email if you want any changes (unlimited revisions!)
3. Ready to print? I recommend Vistaprint or MOO for premium quality

Need any changes? Just reply to this email and I'll take care of it.

Best,
Design Arbitrage Co.
`, name)
}
