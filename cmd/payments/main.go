// Command payments sells finished redesigns: it creates the Stripe product
// catalog with shareable payment links, and runs the checkout webhook receiver
// that emails final files to buyers.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tradecard/internal/config"
	"tradecard/internal/delivery"
	"tradecard/internal/payments"
)

var (
	verbose bool
	dataDir string

	logger *zap.Logger
	paths  config.Paths

	createRedirectURL string
	serveAddr         string
)

var rootCmd = &cobra.Command{
	Use:   "payments",
	Short: "Stripe setup and checkout delivery for the redesign service",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		paths = config.DefaultPaths(dataDir)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var createProductsCmd = &cobra.Command{
	Use:   "create-products",
	Short: "Create the Stripe products, prices, and payment links",
	RunE:  runCreateProducts,
}

var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "Show the saved payment links",
	RunE:  runLinks,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the checkout webhook receiver",
	Long: `Listens for signed Stripe webhook events on POST /webhook. A completed
checkout triggers email delivery of the buyer's final files.

Expose locally with: ngrok http 4242`,
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", ".", "Data directory root")

	createProductsCmd.Flags().StringVar(&createRedirectURL, "redirect-url",
		"https://yourdomain.com/thank-you?session_id={CHECKOUT_SESSION_ID}",
		"Post-checkout redirect URL")
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":4242", "Listen address")

	rootCmd.AddCommand(createProductsCmd)
	rootCmd.AddCommand(linksCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCreateProducts(cmd *cobra.Command, args []string) error {
	creds, err := config.LoadCredentials()
	if err != nil {
		return err
	}
	if creds.StripeSecretKey == "" {
		fmt.Fprintln(os.Stderr, "❌ Set STRIPE_SECRET_KEY environment variable")
		fmt.Fprintln(os.Stderr, "   Get your key at: https://dashboard.stripe.com/apikeys")
		os.Exit(1)
	}

	setup := payments.NewSetup(creds.StripeSecretKey, paths.StripeConfigFile, logger)
	created, err := setup.CreateProducts(createRedirectURL)
	if err != nil {
		return err
	}

	fmt.Printf("\n✅ All %d products created! Config saved to: %s\n", len(created), paths.StripeConfigFile)
	return nil
}

func runLinks(cmd *cobra.Command, args []string) error {
	cfg, ok, err := payments.LoadConfig(paths.StripeConfigFile)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("❌ No Stripe config found. Run: payments create-products")
		return nil
	}

	rule := strings.Repeat("=", 60)
	fmt.Println("\n🔗 PAYMENT LINKS")
	fmt.Println(rule)
	for _, p := range cfg.Products {
		fmt.Printf("\n  %s — $%.2f\n", p.Name, p.Amount)
		fmt.Printf("  %s\n", p.PaymentURL)
	}
	fmt.Println("\n" + rule)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	creds, err := config.LoadCredentials()
	if err != nil {
		return err
	}
	if creds.StripeWebhookSecret == "" {
		fmt.Fprintln(os.Stderr, "❌ Set STRIPE_WEBHOOK_SECRET environment variable")
		fmt.Fprintln(os.Stderr, "   Find it on your webhook endpoint at: https://dashboard.stripe.com/webhooks")
		os.Exit(1)
	}

	courier := delivery.NewCourier(creds, paths.RedesignsDir, logger)
	handler := payments.NewWebhookHandler(creds.StripeWebhookSecret, courier, logger)
	srv := payments.NewServer(serveAddr, handler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("webhook server listening", zap.String("addr", serveAddr))
		fmt.Printf("🚀 Webhook server running on %s\n", serveAddr)
		fmt.Println("   Expose with: ngrok http 4242")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down webhook server")
		return srv.Shutdown(context.Background())
	}
}
