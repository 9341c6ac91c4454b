package card

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTradeIconAndColor(t *testing.T) {
	tests := []struct {
		trade     string
		wantIcon  string
		wantColor string
	}{
		{trade: "electrician", wantIcon: "⚡", wantColor: "#f59e0b"},
		{trade: "Electrician", wantIcon: "⚡", wantColor: "#f59e0b"},
		{trade: "plumber", wantIcon: "🔧", wantColor: "#2563eb"},
		{trade: "HVAC", wantIcon: "❄️", wantColor: "#06b6d4"},
		{trade: "beekeeper", wantIcon: "🔨", wantColor: "#2563eb"},
		{trade: "", wantIcon: "🔨", wantColor: "#2563eb"},
	}
	for _, tt := range tests {
		t.Run(tt.trade, func(t *testing.T) {
			assert.Equal(t, tt.wantIcon, TradeIcon(tt.trade))
			assert.Equal(t, tt.wantColor, TradeColor(tt.trade))
		})
	}
}

func TestComposeAppliesDefaults(t *testing.T) {
	html, err := Compose(Info{}, DefaultTemplate, false)
	require.NoError(t, err)

	assert.Contains(t, html, "Your Business Name")
	assert.Contains(t, html, "Contractor")
	assert.Contains(t, html, "(615) 555-0000")
	assert.Contains(t, html, "info@example.com")
	assert.Contains(t, html, "Nashville, TN")
	assert.Contains(t, html, "Licensed & Insured")
	assert.NotContains(t, html, "{{")
}

func TestComposeKeepsProvidedFields(t *testing.T) {
	info := Info{
		BusinessName: "Maria's Electric",
		Trade:        "electrician",
		Phone:        "(615) 555-1234",
		Email:        "maria@mariaselectric.com",
		Location:     "Franklin, TN",
		LicenseText:  "TN License #E-4821",
	}
	html, err := Compose(info, "dark_bold", false)
	require.NoError(t, err)

	assert.Contains(t, html, "Maria's Electric")
	assert.Contains(t, html, "maria@mariaselectric.com")
	assert.Contains(t, html, "TN License #E-4821")
	assert.Contains(t, html, "#f59e0b")
	assert.NotContains(t, html, "Your Business Name")
}

func TestComposeAccentColorOverride(t *testing.T) {
	html, err := Compose(Info{Trade: "plumber", AccentColor: "#123456"}, DefaultTemplate, false)
	require.NoError(t, err)
	assert.Contains(t, html, "#123456")
	assert.NotContains(t, html, "#2563eb")
}

func TestComposeWatermarkIsTheOnlyVariantDifference(t *testing.T) {
	info := Info{BusinessName: "Joe Smith Plumbing", Trade: "plumber"}
	for _, name := range TemplateNames() {
		preview, err := Compose(info, name, true)
		require.NoError(t, err)
		final, err := Compose(info, name, false)
		require.NoError(t, err)

		assert.Contains(t, preview, "PREVIEW")
		assert.NotContains(t, final, "PREVIEW")

		// Stripping the overlay markup and styles from the preview yields the
		// clean card.
		stripped := strings.ReplaceAll(preview, watermarkCSS, "")
		stripped = strings.ReplaceAll(stripped, watermarkHTML, "")
		assert.Equal(t, final, stripped, "template %s", name)
	}
}

func TestComposeUnknownTemplateFallsBack(t *testing.T) {
	want, err := Compose(Info{Trade: "plumber"}, DefaultTemplate, false)
	require.NoError(t, err)
	got, err := Compose(Info{Trade: "plumber"}, "brutalist", false)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSafeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Joe Smith Plumbing", "joe_smith_plumbing"},
		{"Maria's Electric", "marias_electric"},
		{"ABC", "abc"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SafeName(tt.in))
	}
}

func TestArtifactBase(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	got := ArtifactBase("Joe Smith Plumbing", "dark_bold", day, VariantPreview)
	assert.Equal(t, "joe_smith_plumbing_dark_bold_20260901_preview", got)

	got = ArtifactBase("Maria's Electric", "trade_badge", day, VariantFinal)
	assert.Equal(t, "marias_electric_trade_badge_20260901_final", got)
}
