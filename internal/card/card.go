// Package card composes business-card HTML from a small set of named layouts.
// It produces the textual artifact only; rasterization is the render package's
// concern.
package card

import (
	"fmt"
	"strings"
	"text/template"
	"time"
)

// DefaultTemplate is used when an unknown template name is requested.
const DefaultTemplate = "clean_professional"

var templates = map[string]*template.Template{
	"clean_professional": template.Must(template.New("clean_professional").Parse(templateCleanProfessional)),
	"dark_bold":          template.Must(template.New("dark_bold").Parse(templateDarkBold)),
	"trade_badge":        template.Must(template.New("trade_badge").Parse(templateTradeBadge)),
}

// TemplateNames returns the available template names in display order.
func TemplateNames() []string {
	return []string{"clean_professional", "dark_bold", "trade_badge"}
}

// tradeIcons maps a lowercased trade to its badge icon.
var tradeIcons = map[string]string{
	"plumber":            "🔧",
	"plumbing":           "🔧",
	"electrician":        "⚡",
	"electrical":         "⚡",
	"hvac":               "❄️",
	"roofing":            "🏠",
	"roofer":             "🏠",
	"painter":            "🎨",
	"painting":           "🎨",
	"landscaper":         "🌿",
	"landscaping":        "🌿",
	"handyman":           "🛠️",
	"general contractor": "🏗️",
	"contractor":         "🏗️",
	"carpenter":          "🪚",
	"carpentry":          "🪚",
	"flooring":           "🪵",
	"concrete":           "🧱",
	"mason":              "🧱",
	"welder":             "🔥",
	"welding":            "🔥",
}

// tradeColors maps a lowercased trade to its accent color.
var tradeColors = map[string]string{
	"plumber":            "#2563eb",
	"plumbing":           "#2563eb",
	"electrician":        "#f59e0b",
	"electrical":         "#f59e0b",
	"hvac":               "#06b6d4",
	"roofing":            "#dc2626",
	"roofer":             "#dc2626",
	"painter":            "#8b5cf6",
	"painting":           "#8b5cf6",
	"landscaper":         "#16a34a",
	"landscaping":        "#16a34a",
	"handyman":           "#ea580c",
	"general contractor": "#334155",
	"contractor":         "#334155",
}

const (
	defaultIcon  = "🔨"
	defaultColor = "#2563eb"
)

// TradeIcon returns the icon for a trade, case-insensitively, with a generic
// fallback for unrecognized trades.
func TradeIcon(trade string) string {
	if icon, ok := tradeIcons[strings.ToLower(trade)]; ok {
		return icon
	}
	return defaultIcon
}

// TradeColor returns the accent color for a trade, case-insensitively, with a
// generic fallback for unrecognized trades.
func TradeColor(trade string) string {
	if color, ok := tradeColors[strings.ToLower(trade)]; ok {
		return color
	}
	return defaultColor
}

// Info carries the display fields for one card. It is ephemeral and never
// persisted; zero-value fields fall back to documented defaults at render.
type Info struct {
	BusinessName     string
	Trade            string
	TradeDescription string
	Phone            string
	Email            string
	Location         string
	LicenseText      string
	AccentColor      string
}

// fields is the fully-defaulted substitution set handed to a template.
// Defaulting happens here, once, not per-slot during substitution.
type fields struct {
	BusinessName     string
	TradeDescription string
	Phone            string
	Email            string
	Location         string
	LicenseText      string
	TradeIcon        string
	AccentColor      string
	WatermarkCSS     string
	WatermarkHTML    string
}

func (i Info) withDefaults(watermark bool) fields {
	trade := i.Trade
	if trade == "" {
		trade = "contractor"
	}
	f := fields{
		BusinessName:     i.BusinessName,
		TradeDescription: i.TradeDescription,
		Phone:            i.Phone,
		Email:            i.Email,
		Location:         i.Location,
		LicenseText:      i.LicenseText,
		TradeIcon:        TradeIcon(trade),
		AccentColor:      i.AccentColor,
	}
	if f.BusinessName == "" {
		f.BusinessName = "Your Business Name"
	}
	if f.TradeDescription == "" {
		f.TradeDescription = titleCase(trade)
	}
	if f.Phone == "" {
		f.Phone = "(615) 555-0000"
	}
	if f.Email == "" {
		f.Email = "info@example.com"
	}
	if f.Location == "" {
		f.Location = "Nashville, TN"
	}
	if f.LicenseText == "" {
		f.LicenseText = "Licensed & Insured"
	}
	if f.AccentColor == "" {
		f.AccentColor = TradeColor(trade)
	}
	if watermark {
		f.WatermarkCSS = watermarkCSS
		f.WatermarkHTML = watermarkHTML
	}
	return f
}

// Compose fills the named template with the card info. Unknown template names
// fall back to the default layout rather than failing.
func Compose(info Info, templateName string, watermark bool) (string, error) {
	tmpl, ok := templates[templateName]
	if !ok {
		tmpl = templates[DefaultTemplate]
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, info.withDefaults(watermark)); err != nil {
		return "", fmt.Errorf("fill card template %s: %w", templateName, err)
	}
	return b.String(), nil
}

// Variant distinguishes the watermarked preview from the clean deliverable.
type Variant string

const (
	VariantPreview Variant = "preview"
	VariantFinal   Variant = "final"
)

// SafeName converts a display name into its filename form: lowercased, spaces
// to underscores, apostrophes dropped.
func SafeName(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "'", "")
	return s
}

// ArtifactBase builds the artifact filename stem:
// {safe_name}_{template}_{date}_{preview|final}.
func ArtifactBase(name, templateName string, day time.Time, variant Variant) string {
	return fmt.Sprintf("%s_%s_%s_%s", SafeName(name), templateName, day.Format("20060102"), variant)
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
