// Package payments wraps the Stripe SDK: product/price/payment-link setup and
// the checkout webhook receiver that triggers delivery.
package payments

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	stripe "github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"go.uber.org/zap"
)

// ProductSpec describes one sellable package.
type ProductSpec struct {
	Name        string
	Description string
	// AmountCents is the price in minor units.
	AmountCents int64
	Metadata    map[string]string
}

// Catalog is the fixed product lineup.
var Catalog = []ProductSpec{
	{
		Name:        "Business Card Redesign",
		Description: "Professional business card redesign — 3 design options, print-ready PDF & PNG files, unlimited revisions",
		AmountCents: 5000,
		Metadata: map[string]string{
			"type":     "card_redesign",
			"delivery": "24h",
			"includes": "3 designs, print-ready files, revision",
		},
	},
	{
		Name:        "Rush Business Card Redesign",
		Description: "Same-day professional redesign — 3 options delivered within 4 hours",
		AmountCents: 7500,
		Metadata: map[string]string{
			"type":     "rush_redesign",
			"delivery": "4h",
			"includes": "3 designs, print-ready files, priority",
		},
	},
	{
		Name:        "Business Card + Logo Package",
		Description: "Complete brand refresh — new logo design + business card + social media profile graphics",
		AmountCents: 15000,
		Metadata: map[string]string{
			"type":     "full_package",
			"delivery": "48h",
			"includes": "logo, card, social graphics, brand guide",
		},
	},
}

// CreatedProduct records the Stripe identifiers for one created package.
type CreatedProduct struct {
	ProductID     string  `json:"product_id"`
	PriceID       string  `json:"price_id"`
	PaymentLinkID string  `json:"payment_link_id"`
	PaymentURL    string  `json:"payment_url"`
	Amount        float64 `json:"amount"`
	Name          string  `json:"name"`
}

// Config is the persisted record of created products.
type Config struct {
	Products []CreatedProduct `json:"products"`
	Created  string           `json:"created"`
}

// Setup creates products, prices, and payment links through the Stripe API
// and persists the resulting identifiers.
type Setup struct {
	api        *client.API
	configPath string
	log        *zap.Logger
}

// NewSetup creates a Setup using the given secret key.
func NewSetup(secretKey, configPath string, log *zap.Logger) *Setup {
	if log == nil {
		log = zap.NewNop()
	}
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Setup{api: api, configPath: configPath, log: log}
}

// CreateProducts creates every catalog entry and saves the identifiers to the
// config file. The first Stripe failure aborts.
func (s *Setup) CreateProducts(redirectURL string) ([]CreatedProduct, error) {
	created := make([]CreatedProduct, 0, len(Catalog))

	for _, spec := range Catalog {
		fmt.Printf("\n📦 Creating: %s...\n", spec.Name)

		productParams := &stripe.ProductParams{
			Name:        stripe.String(spec.Name),
			Description: stripe.String(spec.Description),
		}
		for k, v := range spec.Metadata {
			productParams.AddMetadata(k, v)
		}
		product, err := s.api.Products.New(productParams)
		if err != nil {
			return nil, fmt.Errorf("create product %q: %w", spec.Name, err)
		}

		price, err := s.api.Prices.New(&stripe.PriceParams{
			Product:    stripe.String(product.ID),
			UnitAmount: stripe.Int64(spec.AmountCents),
			Currency:   stripe.String(string(stripe.CurrencyUSD)),
		})
		if err != nil {
			return nil, fmt.Errorf("create price for %q: %w", spec.Name, err)
		}

		linkParams := &stripe.PaymentLinkParams{
			LineItems: []*stripe.PaymentLinkLineItemParams{
				{Price: stripe.String(price.ID), Quantity: stripe.Int64(1)},
			},
			AfterCompletion: &stripe.PaymentLinkAfterCompletionParams{
				Type: stripe.String("redirect"),
				Redirect: &stripe.PaymentLinkAfterCompletionRedirectParams{
					URL: stripe.String(redirectURL),
				},
			},
		}
		for k, v := range spec.Metadata {
			linkParams.AddMetadata(k, v)
		}
		link, err := s.api.PaymentLinks.New(linkParams)
		if err != nil {
			return nil, fmt.Errorf("create payment link for %q: %w", spec.Name, err)
		}

		result := CreatedProduct{
			ProductID:     product.ID,
			PriceID:       price.ID,
			PaymentLinkID: link.ID,
			PaymentURL:    link.URL,
			Amount:        float64(spec.AmountCents) / 100,
			Name:          spec.Name,
		}
		created = append(created, result)

		s.log.Info("product created",
			zap.String("product_id", product.ID),
			zap.String("payment_link", link.URL))
		fmt.Printf("  ✅ Product: %s\n", product.ID)
		fmt.Printf("  💰 Price: $%.2f\n", result.Amount)
		fmt.Printf("  🔗 Payment link: %s\n", link.URL)
	}

	if err := SaveConfig(s.configPath, Config{
		Products: created,
		Created:  time.Now().Format(time.RFC3339),
	}); err != nil {
		return nil, err
	}
	return created, nil
}

// SaveConfig persists the created-product record.
func SaveConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode stripe config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create stripe config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write stripe config: %w", err)
	}
	return nil
}

// LoadConfig reads the created-product record; absent file returns ok=false.
func LoadConfig(path string) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, false, nil
		}
		return Config{}, false, fmt.Errorf("read stripe config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, false, fmt.Errorf("parse stripe config %s: %w", path, err)
	}
	return cfg, true, nil
}
