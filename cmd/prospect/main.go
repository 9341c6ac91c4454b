// Command prospect tracks sales prospects found while manually monitoring
// trade groups: opening groups for a browsing pass, filing screenshots,
// recording prospects, and walking them through the outreach lifecycle.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tradecard/internal/config"
)

var (
	// Global flags
	verbose bool
	dataDir string

	// Logger
	logger *zap.Logger

	// paths is derived from dataDir before any command runs.
	paths config.Paths
)

var rootCmd = &cobra.Command{
	Use:   "prospect",
	Short: "Trade-group prospect tracker for the card redesign service",
	Long: `prospect tracks businesses with bad cards found while manually browsing
trade groups. The human scrolls; the tool records.

Typical day:
  prospect monitor --tier 1
  prospect add "Joe Smith Plumbing" plumber --score 2 --group "Nashville Contractors"
  prospect update 1 contacted
  prospect report`,
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

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", ".", "Data directory root")

	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(screenshotCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(outreachCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
