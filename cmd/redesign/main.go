// Command redesign turns extracted business-card info into professional
// redesign mockups: watermarked previews for outreach and clean finals for
// paid delivery.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tradecard/internal/card"
	"tradecard/internal/config"
	"tradecard/internal/render"
)

var (
	verbose bool
	dataDir string

	logger *zap.Logger
	paths  config.Paths

	genName     string
	genTrade    string
	genPhone    string
	genEmail    string
	genLocation string
	genLicense  string
	genAccent   string
	genTemplate string
	genProspect string
	genNoRender bool
)

var rootCmd = &cobra.Command{
	Use:   "redesign",
	Short: "Business card redesign pipeline",
	Long: `redesign generates card mockups from extracted info.

Pipeline: screenshot → extract (vision prompt) → generate (template fill →
headless render → watermark) → deliver.`,
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

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate redesign artifacts from card info",
	RunE:  runGenerate,
}

var extractCmd = &cobra.Command{
	Use:   "extract [screenshot-path]",
	Short: "Print the vision-model prompt for extracting card info from a screenshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(card.ExtractPrompt(args[0]))
		return nil
	},
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available card templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Available templates:")
		for _, name := range card.TemplateNames() {
			fmt.Printf("  • %s\n", name)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", ".", "Data directory root")

	generateCmd.Flags().StringVar(&genName, "name", "", "Business name (required)")
	generateCmd.Flags().StringVar(&genTrade, "trade", "", "Trade/service (required)")
	generateCmd.Flags().StringVar(&genPhone, "phone", "", "Phone number")
	generateCmd.Flags().StringVar(&genEmail, "email", "", "Email address")
	generateCmd.Flags().StringVar(&genLocation, "location", "", "City/area")
	generateCmd.Flags().StringVar(&genLicense, "license", "", "License text")
	generateCmd.Flags().StringVar(&genAccent, "accent", "", "Accent color override (hex)")
	generateCmd.Flags().StringVar(&genTemplate, "template", "all", "Template name or 'all'")
	generateCmd.Flags().StringVar(&genProspect, "prospect", "", "Prospect name for file naming (default: business name)")
	generateCmd.Flags().BoolVar(&genNoRender, "no-render", false, "Skip rasterization, keep HTML only")
	_ = generateCmd.MarkFlagRequired("name")
	_ = generateCmd.MarkFlagRequired("trade")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(templatesCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	info := card.Info{
		BusinessName: genName,
		Trade:        genTrade,
		Phone:        genPhone,
		Email:        genEmail,
		Location:     genLocation,
		LicenseText:  genLicense,
		AccentColor:  genAccent,
	}

	prospectName := genProspect
	if prospectName == "" {
		prospectName = genName
	}

	var templates []string
	if genTemplate != "all" {
		templates = []string{genTemplate}
	}

	var renderer card.Renderer
	if !genNoRender {
		renderer = render.NewChromium("", logger)
	}

	pipeline := card.NewPipeline(renderer, paths.WatermarkedDir, paths.RedesignsDir, logger)
	artifacts, err := pipeline.Generate(cmd.Context(), info, prospectName, templates, time.Now())
	if err != nil {
		return err
	}

	for _, a := range artifacts {
		logger.Info("redesign generated",
			zap.String("template", a.Template),
			zap.String("preview", a.Preview),
			zap.String("final", a.Final))
	}
	fmt.Printf("\n✅ Generated %d redesign variants for %s\n", len(artifacts), prospectName)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
