package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/status-page/internal/metrics"
	"github.com/jonathan/status-page/internal/slug"
	"github.com/jonathan/status-page/internal/stage"
	"github.com/jonathan/status-page/internal/types"
)

func TestActiveRows_SortsByStageThenUpdated(t *testing.T) {
	model := stage.Default()
	roles := []types.Role{
		{Company: "A", Role: "r1", Stage: "Applied", Updated: "2025-06-01", URL: "https://a.example"},
		{Company: "B", Role: "r2", Stage: "Offer", Updated: "2025-05-01"},
		{Company: "C", Role: "r3", Stage: "Applied", Updated: "2025-06-10"},
	}
	tracker := types.TrackerData{Active: roles}

	doc := parseFragment(t, "<table><tbody>"+ActiveRows(model, roles, FitScores{}, slug.Build(tracker))+"</tbody></table>")

	companies := doc.Find("td.col-company").Map(func(_ int, s *goquery.Selection) string {
		return strings.TrimSpace(s.Text())
	})
	// Offer first, then the two Applied roles by updated descending.
	assert.Equal(t, []string{"B", "C", "A"}, companies)
}

func TestActiveRows_RowAttributesAndLinks(t *testing.T) {
	model := stage.Default()
	score := 85
	roles := []types.Role{
		{Company: "Acme Corp", Role: "Engineer", Stage: "Phone Screen", Updated: "2025-06-01", URL: "https://acme.example/jobs/1"},
	}
	tracker := types.TrackerData{Active: roles}
	fit := FitScores{slug.Key("Acme Corp", "Engineer"): &score}

	html := ActiveRows(model, roles, fit, slug.Build(tracker))
	doc := parseFragment(t, "<table><tbody>"+html+"</tbody></table>")

	row := doc.Find("tr").First()
	assert.Equal(t, "Phone Screen", row.AttrOr("data-stage", ""))
	assert.Equal(t, "85", row.AttrOr("data-fit", ""))
	assert.Equal(t, "2025-06-01", row.AttrOr("data-updated", ""))

	assert.Equal(t, "https://acme.example/jobs/1", row.Find("td.col-company a").AttrOr("href", ""))
	assert.Equal(t, "roles/acme-corp-engineer.html", row.Find("td.col-role a").AttrOr("href", ""))
	assert.Contains(t, html, `badge-phone-screen`)
}

func TestActiveRows_EscapesUserText(t *testing.T) {
	model := stage.Default()
	roles := []types.Role{
		{Company: `<script>alert(1)</script>`, Role: "R", Stage: "Applied", Next: `"quoted"`},
	}

	html := ActiveRows(model, roles, FitScores{}, slug.Map{})
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "&quot;quoted&quot;")
}

func TestClosedRows_SortsByClosedDesc(t *testing.T) {
	roles := []types.Role{
		{Company: "A", Role: "r", Outcome: "Rejected", Closed: "2025-01-01"},
		{Company: "B", Role: "r", Outcome: "Withdrew", Closed: "2025-03-01"},
	}

	doc := parseFragment(t, "<table><tbody>"+ClosedRows(roles, slug.Map{})+"</tbody></table>")
	first := doc.Find("tr").First()
	assert.Contains(t, first.Text(), "B")
	assert.Contains(t, first.Find(".badge").Last().Text(), "Withdrew")
}

func TestClosedRows_MissingStageRendersDash(t *testing.T) {
	roles := []types.Role{{Company: "A", Role: "r", Outcome: "Expired"}}
	html := ClosedRows(roles, slug.Map{})
	assert.Contains(t, html, "<td>-</td>")
}

func TestSkippedRows_SortsByAddedDesc(t *testing.T) {
	roles := []types.Role{
		{Company: "Old", Role: "r", Added: "2025-01-01", Reason: "stale"},
		{Company: "New", Role: "r", Added: "2025-04-01", Reason: "comp"},
	}

	doc := parseFragment(t, "<table><tbody>"+SkippedRows(roles)+"</tbody></table>")
	assert.Contains(t, doc.Find("tr").First().Text(), "New")
}

func TestPendingTaskRows_Order(t *testing.T) {
	today := "2025-06-15"
	stats := metrics.TaskStats{Pending: []types.Task{
		{Task: "undated", Status: "pending", Created: "2025-06-01"},
		{Task: "tomorrow", Status: "pending", Due: "2025-06-16"},
		{Task: "yesterday", Status: "pending", Due: "2025-06-14"},
	}}

	doc := parseFragment(t, "<table><tbody>"+PendingTaskRows(stats, today)+"</tbody></table>")
	tasks := doc.Find("td.col-task").Map(func(_ int, s *goquery.Selection) string {
		return strings.TrimSpace(s.Text())
	})
	assert.Equal(t, []string{"yesterday", "tomorrow", "undated"}, tasks)

	assert.True(t, doc.Find("tr").First().HasClass("overdue"))
}

func TestPendingTaskRows_EmptyState(t *testing.T) {
	html := PendingTaskRows(metrics.TaskStats{}, "2025-06-15")
	assert.Contains(t, html, "No pending tasks")
	assert.Contains(t, html, `colspan="4"`)
}

func TestCompletedTaskRows_TruncatesToTen(t *testing.T) {
	var tasks []types.Task
	for i := 0; i < 15; i++ {
		tasks = append(tasks, types.Task{
			Task:      "t",
			Status:    "completed",
			Completed: fmt.Sprintf("2025-06-%02d", i+1),
		})
	}

	doc := parseFragment(t, "<table><tbody>"+CompletedTaskRows(metrics.TaskStats{Completed: tasks})+"</tbody></table>")
	assert.Equal(t, 10, doc.Find("tr").Length())
}

func TestCompletedTaskRows_FallsBackToCreated(t *testing.T) {
	stats := metrics.TaskStats{Completed: []types.Task{
		{Task: "a", Status: "completed", Created: "2025-06-01"},
		{Task: "b", Status: "completed", Completed: "2025-06-10"},
	}}

	doc := parseFragment(t, "<table><tbody>"+CompletedTaskRows(stats)+"</tbody></table>")
	assert.Contains(t, doc.Find("tr").First().Text(), "b")
}

func TestContactRows_SortsByLastInteraction(t *testing.T) {
	net := metrics.Network{Contacts: []types.Contact{
		{Name: "Quiet", Added: "2025-01-01"},
		{Name: "Busy", Interactions: []types.Interaction{{Date: "2025-06-10", Type: "call"}}},
	}}

	doc := parseFragment(t, "<table><tbody>"+ContactRows(net)+"</tbody></table>")
	assert.Contains(t, doc.Find("tr").First().Text(), "Busy")
}

func TestContactRows_EmptyState(t *testing.T) {
	assert.Contains(t, ContactRows(metrics.Network{}), "No contacts yet")
}

func TestRecentInteractionRows(t *testing.T) {
	net := metrics.Network{Recent: []metrics.RecentInteraction{
		{Interaction: types.Interaction{Date: "2025-06-14", Type: "coffee", Summary: "intro chat"}, ContactName: "Dana"},
	}}

	doc := parseFragment(t, "<table><tbody>"+RecentInteractionRows(net)+"</tbody></table>")
	row := doc.Find("tr").First()
	assert.Contains(t, row.Text(), "Dana")
	assert.Contains(t, row.Text(), "intro chat")
	require.Equal(t, 1, row.Find(".badge-coffee").Length())
}

func TestRecentInteractionRows_EmptyState(t *testing.T) {
	assert.Contains(t, RecentInteractionRows(metrics.Network{}), "No interactions this week")
}
