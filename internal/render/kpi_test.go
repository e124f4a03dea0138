package render

import (
	"strconv"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/status-page/internal/metrics"
)

func parseFragment(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestKPICards_RoundTrip(t *testing.T) {
	// Rendering then re-extracting the displayed values must return the
	// original inputs: integer formatting is lossless.
	cards := []Card{
		{Value: 0, Label: "Zero"},
		{Value: 7, Label: "Lucky"},
		{Value: 1234, Label: "Big", Warning: true},
	}

	doc := parseFragment(t, KPICards(cards))

	sel := doc.Find(".kpi-card")
	require.Equal(t, len(cards), sel.Length())
	sel.Each(func(i int, s *goquery.Selection) {
		got, err := strconv.Atoi(strings.TrimSpace(s.Find(".kpi-value").Text()))
		require.NoError(t, err)
		assert.Equal(t, cards[i].Value, got)
		assert.Equal(t, cards[i].Label, strings.TrimSpace(s.Find(".kpi-label").Text()))
		assert.Equal(t, cards[i].Warning, s.HasClass("kpi-warning"))
	})
}

func TestKPICards_EscapesLabels(t *testing.T) {
	out := KPICards([]Card{{Value: 1, Label: "<script>bad</script>"}})
	assert.NotContains(t, out, "<script>")
}

func TestTrackerKPICards(t *testing.T) {
	cur := metrics.Current{ActiveCount: 5, AppliedCount: 4, UpdatedThisWeek: 2, InterviewingCount: 1}
	doc := parseFragment(t, TrackerKPICards(cur))

	values := doc.Find(".kpi-value").Map(func(_ int, s *goquery.Selection) string {
		return strings.TrimSpace(s.Text())
	})
	assert.Equal(t, []string{"5", "4", "2", "1"}, values)
}

func TestTaskKPICards_OverdueWarning(t *testing.T) {
	t.Run("warns when overdue", func(t *testing.T) {
		doc := parseFragment(t, TaskKPICards(metrics.TaskStats{OverdueCount: 2}))
		assert.Equal(t, 1, doc.Find(".kpi-warning").Length())
	})

	t.Run("no warning when clear", func(t *testing.T) {
		doc := parseFragment(t, TaskKPICards(metrics.TaskStats{PendingCount: 3}))
		assert.Equal(t, 0, doc.Find(".kpi-warning").Length())
	})
}
