package render

import (
	"fmt"
	"strings"

	"github.com/jonathan/status-page/internal/analysis"
	"github.com/jonathan/status-page/internal/types"
)

// Detail carries everything a role's detail page can show. The HTML
// fields arrive pre-rendered by the markdown collaborator; everything
// else is escaped here.
type Detail struct {
	Role               types.Role
	Slug               string
	Analysis           analysis.Analysis
	NotesHTML          string
	JobDescriptionHTML string
	ResearchHTML       string
	Tasks              []types.Task
	Contacts           []types.Contact
}

// Tab is one content tab on a detail page.
type Tab struct {
	ID      string
	Label   string
	Content string
}

// Tabs selects and renders the detail page's tabs. Fit Assessment,
// Notes, and Job Description always exist (with placeholder hints when
// their source is absent); Tasks & Contacts, Resume Changes, and
// Research Packet exist only when they have at least one item.
func (d Detail) Tabs() []Tab {
	tabs := []Tab{
		{ID: "fit", Label: "Fit Assessment", Content: d.fitTab()},
		{ID: "notes", Label: "Notes", Content: placeholderIfEmpty(d.NotesHTML, "No notes recorded for this role yet.")},
		{ID: "jd", Label: "Job Description", Content: placeholderIfEmpty(d.JobDescriptionHTML, "No job description saved for this role.")},
	}
	if len(d.Tasks) > 0 || len(d.Contacts) > 0 {
		tabs = append(tabs, Tab{ID: "links", Label: "Tasks & Contacts", Content: d.linksTab()})
	}
	if len(d.Analysis.Changes) > 0 || len(d.Analysis.Removed) > 0 || len(d.Analysis.Flagged) > 0 {
		tabs = append(tabs, Tab{ID: "changes", Label: "Resume Changes", Content: d.changesTab()})
	}
	if d.ResearchHTML != "" {
		tabs = append(tabs, Tab{ID: "research", Label: "Research Packet", Content: d.ResearchHTML})
	}
	return tabs
}

// TabButtons renders the tab strip; the first tab starts active.
func TabButtons(tabs []Tab) string {
	parts := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		active := ""
		if i == 0 {
			active = " active"
		}
		parts = append(parts, fmt.Sprintf(
			`<button class="tab-btn%s" data-tab="%s">%s</button>`,
			active, tab.ID, EscapeHTML(tab.Label)))
	}
	return strings.Join(parts, "\n")
}

// TabPanels renders the tab content containers matching TabButtons.
func TabPanels(tabs []Tab) string {
	parts := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		active := ""
		if i == 0 {
			active = " active"
		}
		parts = append(parts, fmt.Sprintf(
			"<div class=\"tab-content%s\" id=\"tab-%s\">\n%s\n</div>",
			active, tab.ID, tab.Content))
	}
	return strings.Join(parts, "\n")
}

func placeholderIfEmpty(html, hint string) string {
	if html == "" {
		return fmt.Sprintf(`<p class="empty-state">%s</p>`, EscapeHTML(hint))
	}
	return html
}

func (d Detail) fitTab() string {
	a := d.Analysis
	if a.Empty() {
		return `<p class="empty-state">No analysis document found for this role.</p>`
	}

	var b strings.Builder
	b.WriteString(`<div class="fit-summary">`)
	b.WriteString(FormatFitScore(a.OverallScore))
	if a.OverallLabel != "" {
		fmt.Fprintf(&b, ` <span class="fit-label">%s</span>`, EscapeHTML(a.OverallLabel))
	}
	b.WriteString("</div>\n")

	if len(a.Dimensions) > 0 {
		b.WriteString("<table class=\"dimension-table\">\n<thead><tr><th>Dimension</th><th>Score</th><th>Notes</th></tr></thead>\n<tbody>\n")
		for _, dim := range a.Dimensions {
			score := dim.Score
			fmt.Fprintf(&b, "<tr>\n  <td>%s</td>\n  <td>%s</td>\n  <td>%s</td>\n</tr>\n",
				EscapeHTML(dim.Name), FormatFitScore(&score), EscapeHTML(dim.Notes))
		}
		b.WriteString("</tbody>\n</table>\n")
	}

	if len(a.Strengths) > 0 {
		b.WriteString("<h4>Key Strengths</h4>\n")
		b.WriteString(bulletList(a.Strengths, "strength-list"))
	}
	if len(a.Gaps) > 0 {
		b.WriteString("<h4>Primary Gaps</h4>\n")
		b.WriteString(bulletList(a.Gaps, "gap-list"))
	}
	return b.String()
}

func (d Detail) changesTab() string {
	var b strings.Builder
	a := d.Analysis
	if len(a.Changes) > 0 {
		b.WriteString("<h4>Changes Made</h4>\n")
		b.WriteString(bulletList(a.Changes, "change-list"))
	}
	if len(a.Removed) > 0 {
		b.WriteString("<h4>Removed</h4>\n")
		b.WriteString(bulletList(a.Removed, "removed-list"))
	}
	if len(a.Flagged) > 0 {
		b.WriteString("<h4>Flagged for Review</h4>\n<ol class=\"flagged-list\">\n")
		for _, item := range a.Flagged {
			fmt.Fprintf(&b, "<li>%s</li>\n", EscapeHTML(item))
		}
		b.WriteString("</ol>\n")
	}
	return b.String()
}

func (d Detail) linksTab() string {
	var b strings.Builder
	if len(d.Tasks) > 0 {
		b.WriteString("<h4>Linked Tasks</h4>\n<ul class=\"linked-task-list\">\n")
		for _, t := range d.Tasks {
			due := ""
			if t.Due != "" {
				due = fmt.Sprintf(` <span class="task-due">(due %s)</span>`, FormatDate(t.Due))
			}
			fmt.Fprintf(&b, `<li class="task-%s">%s%s</li>`+"\n", EscapeHTML(t.Status), EscapeHTML(t.Task), due)
		}
		b.WriteString("</ul>\n")
	}
	if len(d.Contacts) > 0 {
		b.WriteString("<h4>Linked Contacts</h4>\n<ul class=\"linked-contact-list\">\n")
		for _, c := range d.Contacts {
			detail := ""
			if c.Title != "" || c.Company != "" {
				detail = fmt.Sprintf(` <span class="contact-detail">%s</span>`,
					EscapeHTML(strings.TrimSpace(c.Title+" "+c.Company)))
			}
			fmt.Fprintf(&b, "<li>%s%s</li>\n", EscapeHTML(c.Name), detail)
		}
		b.WriteString("</ul>\n")
	}
	return b.String()
}

func bulletList(items []string, class string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<ul class=\"%s\">\n", class)
	for _, item := range items {
		fmt.Fprintf(&b, "<li>%s</li>\n", EscapeHTML(item))
	}
	b.WriteString("</ul>\n")
	return b.String()
}
