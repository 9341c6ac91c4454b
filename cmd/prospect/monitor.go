package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tradecard/internal/monitor"
)

var (
	monitorTier     int
	screenshotWatch bool
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Open monitored groups in the browser for a manual pass",
	RunE:  runMonitor,
}

var screenshotCmd = &cobra.Command{
	Use:   "screenshot [name]",
	Short: "Capture a business-card screenshot for a prospect",
	Args:  cobra.ExactArgs(1),
	RunE:  runScreenshot,
}

func init() {
	monitorCmd.Flags().IntVar(&monitorTier, "tier", 0, "Only open groups in this tier (0 = all)")
	screenshotCmd.Flags().BoolVar(&screenshotWatch, "watch", false,
		"Wait for a screenshot dropped into the screenshots directory instead of invoking the capture utility")
}

func runMonitor(cmd *cobra.Command, args []string) error {
	cfg, err := monitor.LoadConfig(paths.MonitorConfigFile)
	if err != nil {
		return err
	}

	groups := cfg.FilterTier(monitorTier)
	logger.Info("opening groups for monitoring",
		zap.Int("groups", len(groups)),
		zap.Int("tier", monitorTier))

	monitor.NewOpener(logger).OpenGroups(groups)
	return nil
}

func runScreenshot(cmd *cobra.Command, args []string) error {
	capture := monitor.NewCapture(paths.ScreenshotsDir, logger)

	if screenshotWatch {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		_, err := capture.Watch(ctx, args[0], time.Now())
		if err == context.Canceled {
			return nil
		}
		return err
	}

	_, err := capture.Interactive(cmd.Context(), args[0], time.Now())
	return err
}
