package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"tradecard/internal/prospect"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle  = lipgloss.NewStyle().Bold(true)
	ruleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

var statusEmoji = map[prospect.Status]string{
	prospect.StatusNew:       "🆕",
	prospect.StatusContacted: "📨",
	prospect.StatusReplied:   "💬",
	prospect.StatusConverted: "💰",
	prospect.StatusDelivered: "✅",
}

func formatListLine(r prospect.Record) string {
	emoji, ok := statusEmoji[r.Status]
	if !ok {
		emoji = "❓"
	}
	return fmt.Sprintf("  %s [%d] %s (%s) — %s — Score: %d/10",
		emoji, r.ID, r.Name, r.Trade, r.Status, r.CardScore)
}

func printReport(doc *prospect.Document, day time.Time) {
	rep := doc.BuildReport(day)
	rule := ruleStyle.Render(strings.Repeat("=", 50))

	fmt.Println()
	fmt.Println(rule)
	fmt.Println(headerStyle.Render(fmt.Sprintf("📊 DAILY REPORT — %s", rep.Date)))
	fmt.Println(rule)
	row := func(label string, n int) {
		fmt.Printf("  %s %s\n", labelStyle.Render(fmt.Sprintf("%-17s", label+":")), valueStyle.Render(fmt.Sprintf("%d", n)))
	}
	row("Found today", rep.FoundToday)
	row("Total prospects", rep.TotalFound)
	row("Pending contact", rep.ByStatus[prospect.StatusNew])
	row("Contacted", rep.ByStatus[prospect.StatusContacted])
	row("Converted", rep.ByStatus[prospect.StatusConverted])
	fmt.Printf("  %s %s\n", labelStyle.Render(fmt.Sprintf("%-17s", "Revenue:")), valueStyle.Render(fmt.Sprintf("$%d", rep.TotalRevenue)))
	fmt.Println(rule)

	pending := doc.ByStatus(prospect.StatusNew)
	if len(pending) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(headerStyle.Render("🎯 READY TO CONTACT:"))
	for i, p := range pending {
		if i == 5 {
			break
		}
		fmt.Printf("  • %s (%s) — Score: %d/10 — %s\n", p.Name, p.Trade, p.CardScore, p.GroupSource)
	}
}
