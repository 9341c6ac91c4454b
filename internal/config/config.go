// Package config holds the explicit configuration passed into each component.
// Paths are derived from a single data root so nothing reaches for globals;
// credentials come only from the environment.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Paths locates every file and directory the toolkit reads or writes.
// Construct with DefaultPaths and override individual fields as needed.
type Paths struct {
	// Root is the data directory everything else defaults under.
	Root string

	// MonitorConfigFile is the monitoring targets + keywords JSON document.
	MonitorConfigFile string

	// ProspectsFile is the prospect store JSON document.
	ProspectsFile string

	// ScreenshotsDir receives captured business-card screenshots.
	ScreenshotsDir string

	// RedesignsDir receives clean (final) card artifacts.
	RedesignsDir string

	// WatermarkedDir receives watermarked (preview) card artifacts.
	WatermarkedDir string

	// SimulatedDMsDir receives outreach simulation transcripts.
	SimulatedDMsDir string

	// DMTemplatesFile is the outreach message template YAML document.
	DMTemplatesFile string

	// StripeConfigFile persists created product/price/payment-link IDs.
	StripeConfigFile string
}

// DefaultPaths returns the standard layout rooted at dir.
func DefaultPaths(dir string) Paths {
	return Paths{
		Root:              dir,
		MonitorConfigFile: filepath.Join(dir, "config.json"),
		ProspectsFile:     filepath.Join(dir, "research", "prospects.json"),
		ScreenshotsDir:    filepath.Join(dir, "assets", "screenshots"),
		RedesignsDir:      filepath.Join(dir, "assets", "redesigns"),
		WatermarkedDir:    filepath.Join(dir, "assets", "watermarked"),
		SimulatedDMsDir:   filepath.Join(dir, "delivery", "simulated-dms"),
		DMTemplatesFile:   filepath.Join(dir, "templates", "dm-messages.yaml"),
		StripeConfigFile:  filepath.Join(dir, "config", "stripe.json"),
	}
}

// Credentials are the secrets for the payment and delivery integrations.
// They are read from the environment only, never from a config file.
type Credentials struct {
	StripeSecretKey     string `env:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`
	SMTPHost            string `env:"SMTP_HOST" env-default:"smtp.gmail.com"`
	SMTPPort            int    `env:"SMTP_PORT" env-default:"587"`
	SMTPUser            string `env:"SMTP_USER"`
	SMTPPass            string `env:"SMTP_PASS"`
}

// LoadCredentials reads Credentials from the environment.
func LoadCredentials() (Credentials, error) {
	var c Credentials
	if err := cleanenv.ReadEnv(&c); err != nil {
		return Credentials{}, fmt.Errorf("read credentials from environment: %w", err)
	}
	return c, nil
}

// SMTPConfigured reports whether enough SMTP settings are present to send mail.
func (c Credentials) SMTPConfigured() bool {
	return c.SMTPUser != "" && c.SMTPPass != ""
}
