package card

import "fmt"

// ExtractPrompt builds the vision-model prompt for pulling card info out of a
// screenshot. The operator pastes the prompt into their model of choice and
// feeds the JSON answer back through `redesign generate`.
func ExtractPrompt(screenshotPath string) string {
	return fmt.Sprintf(`Analyze this business card image and extract the following information.
Return it as a JSON object:

{
    "business_name": "The business or person's name",
    "trade": "Their trade/service (e.g., plumber, electrician)",
    "trade_description": "Full description of services",
    "phone": "Phone number",
    "email": "Email if visible",
    "location": "City/area",
    "license_text": "License number or 'Licensed & Insured'",
    "quality_issues": ["list", "of", "design", "problems"],
    "score": 3
}

Be specific about quality issues (bad fonts, too many colors, pixelated logo, etc.)
Image: %s`, screenshotPath)
}
