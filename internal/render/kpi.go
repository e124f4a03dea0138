package render

import (
	"fmt"
	"strings"

	"github.com/jonathan/status-page/internal/metrics"
)

// Card is one KPI figure: a value, its label, and an optional warning
// flag that highlights the card.
type Card struct {
	Value   int
	Label   string
	Warning bool
}

// KPICards renders a card list. Every KPI group on the page goes
// through this one function so the markup stays uniform; the client
// script keys off that structure.
func KPICards(cards []Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		warn := ""
		if c.Warning {
			warn = " kpi-warning"
		}
		parts = append(parts, fmt.Sprintf(
			"<div class=\"kpi-card%s\">\n  <div class=\"kpi-value\">%d</div>\n  <div class=\"kpi-label\">%s</div>\n</div>",
			warn, c.Value, EscapeHTML(c.Label)))
	}
	return strings.Join(parts, "\n")
}

// TrackerKPICards renders the applications KPI group.
func TrackerKPICards(cur metrics.Current) string {
	return KPICards([]Card{
		{Value: cur.ActiveCount, Label: "Active Roles"},
		{Value: cur.AppliedCount, Label: "Applied"},
		{Value: cur.UpdatedThisWeek, Label: "Updated This Week"},
		{Value: cur.InterviewingCount, Label: "Interviewing"},
	})
}

// TaskKPICards renders the tasks KPI group. Overdue warns when nonzero.
func TaskKPICards(stats metrics.TaskStats) string {
	return KPICards([]Card{
		{Value: stats.PendingCount, Label: "Pending Tasks"},
		{Value: stats.OverdueCount, Label: "Overdue", Warning: stats.OverdueCount > 0},
		{Value: stats.DueSoonCount, Label: "Due Soon"},
		{Value: stats.CompletedCount, Label: "Completed"},
	})
}

// NetworkKPICards renders the network KPI group.
func NetworkKPICards(net metrics.Network) string {
	return KPICards([]Card{
		{Value: net.ContactCount, Label: "Contacts"},
		{Value: net.TotalInteractions, Label: "Total Interactions"},
		{Value: net.RecentInteractionCount, Label: "This Week"},
		{Value: net.ContactsWithJobsCount, Label: "Linked to Jobs"},
	})
}
