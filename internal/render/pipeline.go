package render

import (
	"fmt"
	"strings"

	"github.com/jonathan/status-page/internal/metrics"
	"github.com/jonathan/status-page/internal/stage"
)

const pipelineArrow = `<span class="pipeline-arrow">→</span>`

// CurrentPipeline renders the snapshot funnel as filter buttons, one
// per stage in model order. Stages with no active roles are disabled.
func CurrentPipeline(model *stage.Model, cur metrics.Current) string {
	parts := make([]string, 0, len(model.Stages))
	for _, s := range model.Stages {
		count := cur.Pipeline[s]
		disabled := ""
		if count == 0 {
			disabled = " disabled"
		}
		parts = append(parts, fmt.Sprintf(
			"<button class=\"pipeline-stage %s\" data-stage=\"%s\"%s>\n  <span class=\"stage-name\">%s</span>\n  <span class=\"stage-count\">%d</span>\n</button>",
			stage.ClassName(s), EscapeHTML(s), disabled, EscapeHTML(s), count))
	}
	return strings.Join(parts, pipelineArrow)
}

// HistoricalPipeline renders the cumulative all-time funnel. Stages
// past the first carry their conversion rate from the previous stage.
func HistoricalPipeline(model *stage.Model, hist metrics.Historical) string {
	parts := make([]string, 0, len(model.Stages))
	for i, s := range model.Stages {
		rateHTML := ""
		if i > 0 {
			rateHTML = fmt.Sprintf(`<span class="conversion-rate">%d%%</span>`, hist.ConversionRates[s])
		}
		parts = append(parts, fmt.Sprintf(
			"<div class=\"historical-stage %s\">\n  <span class=\"stage-name\">%s</span>\n  <span class=\"stage-count\">%d</span>\n  %s\n</div>",
			stage.ClassName(s), EscapeHTML(s), hist.Pipeline[s], rateHTML))
	}
	return strings.Join(parts, pipelineArrow)
}

// HistoricalStats renders the all-time block: funnel, conversion list,
// outcome breakdown, and timeline figures.
func HistoricalStats(model *stage.Model, hist metrics.Historical) string {
	var conversions strings.Builder
	for _, s := range model.Stages[1:] {
		fmt.Fprintf(&conversions, `<li><span class="metric-label">%s:</span> <span class="metric-value">%d%%</span></li>`,
			EscapeHTML(s), hist.ConversionRates[s])
		conversions.WriteString("\n")
	}

	var outcomes strings.Builder
	for _, o := range model.Outcomes {
		fmt.Fprintf(&outcomes, `<li><span class="badge badge-%s">%s</span> <span class="metric-value">%d</span></li>`,
			stage.ClassName(o), EscapeHTML(o), hist.Outcomes[o])
		outcomes.WriteString("\n")
	}

	return fmt.Sprintf(`<div class="historical-grid">
  <div class="historical-funnel">
    <h4>All-Time Pipeline</h4>
    <div class="historical-pipeline">%s</div>
  </div>
  <div class="historical-metrics">
    <div class="metrics-column">
      <h4>Conversion Rates</h4>
      <ul class="conversion-list">
%s      </ul>
    </div>
    <div class="metrics-column">
      <h4>Outcomes</h4>
      <ul class="outcome-list">
%s      </ul>
    </div>
    <div class="metrics-column">
      <h4>Timeline</h4>
      <ul class="timeline-list">
        <li><span class="metric-label">Days active:</span> <span class="metric-value">%d</span></li>
        <li><span class="metric-label">Total roles:</span> <span class="metric-value">%d</span></li>
        <li><span class="metric-label">Avg response:</span> <span class="metric-value">%d days</span></li>
      </ul>
    </div>
  </div>
</div>`,
		HistoricalPipeline(model, hist),
		conversions.String(),
		outcomes.String(),
		hist.DaysActive, hist.TotalRoles, hist.AvgDaysToResponse)
}
