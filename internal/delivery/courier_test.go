package delivery

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"

	"tradecard/internal/config"
)

var smtpCreds = config.Credentials{
	SMTPHost: "smtp.example.com",
	SMTPPort: 587,
	SMTPUser: "sender@example.com",
	SMTPPass: "hunter2",
}

func writeFinals(t *testing.T, dir string, names ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("png"), 0o644))
	}
}

func TestFinalFilesMatchesOnlyProspectFinals(t *testing.T) {
	dir := t.TempDir()
	writeFinals(t, dir,
		"joe_smith_clean_professional_20260901_final.png",
		"joe_smith_dark_bold_20260901_final.png",
		"joe_smith_dark_bold_20260901_preview.png",
		"maria_trade_badge_20260901_final.png",
	)
	c := NewCourier(smtpCreds, dir, nil)

	files, err := c.FinalFiles("Joe Smith")
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Contains(t, files[0], "clean_professional")
	assert.Contains(t, files[1], "dark_bold")
}

func TestDeliverNoFilesIsNotAnError(t *testing.T) {
	c := NewCourier(smtpCreds, t.TempDir(), nil)
	c.send = func(context.Context, *mail.Msg) error {
		t.Fatal("send should not be called with no files")
		return nil
	}

	err := c.Deliver(context.Background(), "joe@example.com", "Joe", map[string]string{"prospect_name": "Joe Smith"})
	assert.NoError(t, err)
}

func TestDeliverWithoutSMTPDegradesToManualListing(t *testing.T) {
	dir := t.TempDir()
	writeFinals(t, dir, "joe_smith_dark_bold_20260901_final.png")
	c := NewCourier(config.Credentials{}, dir, nil)
	c.send = func(context.Context, *mail.Msg) error {
		t.Fatal("send should not be called without SMTP config")
		return nil
	}

	err := c.Deliver(context.Background(), "joe@example.com", "Joe", map[string]string{"prospect_name": "Joe Smith"})
	assert.NoError(t, err)
}

func TestDeliverSendsEmailWithAttachments(t *testing.T) {
	dir := t.TempDir()
	writeFinals(t, dir,
		"joe_smith_clean_professional_20260901_final.png",
		"joe_smith_dark_bold_20260901_final.png",
	)
	c := NewCourier(smtpCreds, dir, nil)

	var sent *mail.Msg
	c.send = func(_ context.Context, msg *mail.Msg) error {
		sent = msg
		return nil
	}

	err := c.Deliver(context.Background(), "joe@example.com", "Joe Smith", map[string]string{"prospect_name": "Joe Smith"})
	require.NoError(t, err)
	require.NotNil(t, sent)

	to, err := sent.GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"joe@example.com"}, to)
	assert.Len(t, sent.GetAttachments(), 2)
}

func TestDeliverSendFailureIsSurfaced(t *testing.T) {
	dir := t.TempDir()
	writeFinals(t, dir, "joe_smith_dark_bold_20260901_final.png")
	c := NewCourier(smtpCreds, dir, nil)
	c.send = func(context.Context, *mail.Msg) error {
		return errors.New("connection refused")
	}

	err := c.Deliver(context.Background(), "joe@example.com", "Joe", map[string]string{"prospect_name": "Joe Smith"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send delivery email")
}

func TestDeliverDefaultsProspectName(t *testing.T) {
	c := NewCourier(smtpCreds, t.TempDir(), nil)
	err := c.Deliver(context.Background(), "joe@example.com", "Joe", nil)
	assert.NoError(t, err)
}
