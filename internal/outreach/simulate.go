package outreach

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"tradecard/internal/card"
	"tradecard/internal/prospect"
)

// Message is one simulated DM: the filled body plus where the transcript was
// written.
type Message struct {
	Prospect prospect.Record
	Body     string
	SimPath  string
}

// Simulator fills the outreach template per new prospect and writes one
// transcript file each, never sending anything.
type Simulator struct {
	dir         string
	paymentLink string
	tmpl        Template
	log         *zap.Logger
}

// NewSimulator creates a Simulator writing transcripts into dir. paymentLink
// is substituted into the message; pass the placeholder test link when no
// products exist yet.
func NewSimulator(dir, paymentLink string, tmpl Template, log *zap.Logger) *Simulator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Simulator{dir: dir, paymentLink: paymentLink, tmpl: tmpl, log: log}
}

// Fill substitutes a prospect's fields into the template body.
func (s *Simulator) Fill(rec prospect.Record) string {
	safeName := card.SafeName(rec.Name)
	previewFile := fmt.Sprintf("%s_%s_*_preview.html", safeName, card.DefaultTemplate)

	return strings.NewReplacer(
		"{name}", rec.Name,
		"{group}", rec.GroupSource,
		"{trade}", rec.Trade,
		"{preview_file}", previewFile,
		"{payment_link}", s.paymentLink,
	).Replace(s.tmpl.Body)
}

// SimulateAll generates a simulated DM for every prospect still in "new"
// status and writes the transcripts to disk.
func (s *Simulator) SimulateAll(doc *prospect.Document, now time.Time) ([]Message, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create simulations directory: %w", err)
	}

	var messages []Message
	for _, rec := range doc.Prospects {
		if rec.Status != prospect.StatusNew {
			continue
		}

		body := s.Fill(rec)
		path := filepath.Join(s.dir, fmt.Sprintf("dm_%s_%s.txt", card.SafeName(rec.Name), prospect.DateString(now)))
		if err := os.WriteFile(path, []byte(s.transcript(rec, body, now)), 0o644); err != nil {
			return nil, fmt.Errorf("write simulated DM: %w", err)
		}

		s.log.Info("simulated DM written",
			zap.Int("prospect_id", rec.ID),
			zap.String("path", path))
		messages = append(messages, Message{Prospect: rec, Body: body, SimPath: path})
	}
	return messages, nil
}

// transcript renders the saved simulation file: a header block, the message,
// and the attachment list.
func (s *Simulator) transcript(rec prospect.Record, body string, now time.Time) string {
	safeName := card.SafeName(rec.Name)
	var b strings.Builder
	fmt.Fprintf(&b, "TO: %s (Facebook Messenger)\n", rec.Name)
	fmt.Fprintf(&b, "FROM: Design Arbitrage\n")
	fmt.Fprintf(&b, "DATE: %s\n", prospect.DateString(now))
	fmt.Fprintf(&b, "STATUS: SIMULATED (not sent)\n")
	fmt.Fprintf(&b, "CARD SCORE: %d/10\n", rec.CardScore)
	fmt.Fprintf(&b, "NOTES: %s\n", rec.Notes)
	fmt.Fprintf(&b, "\n%s\n\n", strings.Repeat("=", 50))
	b.WriteString(body)
	fmt.Fprintf(&b, "\n\n%s\n", strings.Repeat("=", 50))
	b.WriteString("ATTACHMENTS:\n")
	for i, tmpl := range card.TemplateNames() {
		fmt.Fprintf(&b, "  %d. %s_%s_preview.html\n", i+1, safeName, tmpl)
	}
	return b.String()
}
