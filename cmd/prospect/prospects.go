package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tradecard/internal/monitor"
	"tradecard/internal/prospect"
)

var (
	addPhone      string
	addGroup      string
	addScore      int
	addScreenshot bool
	addNotes      string

	listStatus string
)

var addCmd = &cobra.Command{
	Use:   "add [name] [trade]",
	Short: "Add a new prospect",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdd,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List prospects",
	RunE:  runList,
}

var updateCmd = &cobra.Command{
	Use:   "update [id] [status]",
	Short: "Update a prospect's status",
	Long: `Moves a prospect through the lifecycle: new → contacted → replied →
converted → delivered. Entering "contacted" stamps the contact date; entering
"converted" stamps the conversion date and records the $50 fee.`,
	Args: cobra.ExactArgs(2),
	RunE: runUpdate,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the daily monitoring report",
	RunE:  runReport,
}

func init() {
	addCmd.Flags().StringVar(&addPhone, "phone", "", "Phone number")
	addCmd.Flags().StringVar(&addGroup, "group", "", "Source group")
	addCmd.Flags().IntVar(&addScore, "score", 3, "Card quality score (1-10, lower=worse)")
	addCmd.Flags().BoolVar(&addScreenshot, "screenshot", false, "Capture a screenshot first")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "Additional notes")

	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status")
}

func runAdd(cmd *cobra.Command, args []string) error {
	name, trade := args[0], args[1]

	screenshotPath := ""
	if addScreenshot {
		capture := monitor.NewCapture(paths.ScreenshotsDir, logger)
		path, err := capture.Interactive(cmd.Context(), name, time.Now())
		if err != nil {
			return err
		}
		screenshotPath = path
	}

	store := prospect.NewStore(paths.ProspectsFile, logger)
	doc, err := store.Load()
	if err != nil {
		return err
	}

	rec := doc.Add(prospect.AddInfo{
		Name:           name,
		Trade:          trade,
		Phone:          addPhone,
		GroupSource:    addGroup,
		CardScore:      addScore,
		ScreenshotPath: screenshotPath,
		Notes:          addNotes,
	}, time.Now())

	if err := store.Save(doc); err != nil {
		return err
	}

	logger.Info("prospect added",
		zap.Int("id", rec.ID),
		zap.String("name", rec.Name),
		zap.String("trade", rec.Trade))
	fmt.Printf("✅ Added prospect: %s (%s) — Card score: %d/10\n", rec.Name, rec.Trade, rec.CardScore)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	store := prospect.NewStore(paths.ProspectsFile, logger)
	doc, err := store.Load()
	if err != nil {
		return err
	}

	records := doc.Prospects
	if listStatus != "" {
		status, err := prospect.ParseStatus(listStatus)
		if err != nil {
			return err
		}
		records = doc.ByStatus(status)
	}

	if len(records) == 0 {
		fmt.Println("No prospects found.")
		return nil
	}
	for _, r := range records {
		fmt.Println(formatListLine(r))
	}
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("prospect ID must be a number, got %q", args[0])
	}
	status, err := prospect.ParseStatus(args[1])
	if err != nil {
		return err
	}

	store := prospect.NewStore(paths.ProspectsFile, logger)
	doc, err := store.Load()
	if err != nil {
		return err
	}

	tr, err := doc.UpdateStatus(id, status, time.Now())
	if errors.Is(err, prospect.ErrNotFound) {
		logger.Warn("update on unknown prospect", zap.Int("id", id))
		fmt.Printf("❌ Prospect #%d not found\n", id)
		return nil
	}
	if err != nil {
		return err
	}

	if err := store.Save(doc); err != nil {
		return err
	}

	logger.Info("status updated",
		zap.Int("id", id),
		zap.String("from", string(tr.From)),
		zap.String("to", string(tr.To)))
	fmt.Printf("✅ %s: %s → %s\n", tr.Record.Name, tr.From, tr.To)
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	store := prospect.NewStore(paths.ProspectsFile, logger)
	doc, err := store.Load()
	if err != nil {
		return err
	}

	printReport(doc, time.Now())
	return nil
}
