package render

import (
	"fmt"
	"time"
)

// FormatDate renders an ISO YYYY-MM-DD date for display as "Jan 2".
// Empty or unparseable dates render as a dash.
func FormatDate(iso string) string {
	if iso == "" {
		return "-"
	}
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return "-"
	}
	return d.Format("Jan 2")
}

// FitCategory maps a fit score to its styling category. The thresholds
// are a product decision baked into the stylesheet; do not adjust them
// without updating styles.css to match.
func FitCategory(score int) string {
	switch {
	case score >= 90:
		return "exceptional"
	case score >= 85:
		return "strong"
	case score >= 78:
		return "good"
	case score >= 70:
		return "risk"
	case score >= 60:
		return "stretch"
	default:
		return "weak"
	}
}

// FormatFitScore renders a fit score span with its category class. A
// nil score renders as an em dash with the "none" category.
func FormatFitScore(score *int) string {
	if score == nil {
		return `<span class="fit-score fit-none">—</span>`
	}
	return fmt.Sprintf(`<span class="fit-score fit-%s">%d</span>`, FitCategory(*score), *score)
}
