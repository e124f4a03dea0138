package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/status-page/internal/metrics"
	"github.com/jonathan/status-page/internal/slug"
	"github.com/jonathan/status-page/internal/stage"
	"github.com/jonathan/status-page/internal/types"
)

// FitScores maps slug.Key(company, role) to that role's extracted fit
// score, nil when no analysis document was found.
type FitScores map[string]*int

const completedTableLimit = 10
const recentTableLimit = 10

// companyCell renders the company name, linked to the posting URL when
// one is recorded.
func companyCell(r types.Role) string {
	if r.URL == "" {
		return EscapeHTML(r.Company)
	}
	return fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener">%s</a>`,
		EscapeHTML(r.URL), EscapeHTML(r.Company))
}

// roleCell renders the role title, linked to its detail page when the
// role has a slug assigned.
func roleCell(r types.Role, slugs slug.Map) string {
	s := slugs.Lookup(r.Company, r.Role)
	if s == "" {
		return EscapeHTML(r.Role)
	}
	return fmt.Sprintf(`<a href="roles/%s.html">%s</a>`, s, EscapeHTML(r.Role))
}

// ActiveRows renders the active-role table body, sorted by stage
// descending (later stage first) then updated descending.
func ActiveRows(model *stage.Model, roles []types.Role, fit FitScores, slugs slug.Map) string {
	sorted := make([]types.Role, len(roles))
	copy(sorted, roles)
	sort.SliceStable(sorted, func(i, j int) bool {
		si, sj := model.Index(sorted[i].Stage), model.Index(sorted[j].Stage)
		if si != sj {
			return si > sj
		}
		return sorted[i].Updated > sorted[j].Updated
	})

	rows := make([]string, 0, len(sorted))
	for _, r := range sorted {
		score := fit[slug.Key(r.Company, r.Role)]
		dataFit := ""
		if score != nil {
			dataFit = fmt.Sprintf("%d", *score)
		}
		rows = append(rows, fmt.Sprintf(
			"<tr data-stage=\"%s\" data-fit=\"%s\" data-updated=\"%s\">\n"+
				"  <td class=\"col-company\">%s</td>\n"+
				"  <td class=\"col-role\">%s</td>\n"+
				"  <td class=\"col-fit\">%s</td>\n"+
				"  <td class=\"col-stage\"><span class=\"badge badge-%s\">%s</span></td>\n"+
				"  <td class=\"col-next\" title=\"%s\">%s</td>\n"+
				"  <td class=\"col-updated\">%s</td>\n"+
				"</tr>",
			EscapeHTML(r.Stage), dataFit, EscapeHTML(r.Updated),
			companyCell(r),
			roleCell(r, slugs),
			FormatFitScore(score),
			stage.ClassName(r.Stage), EscapeHTML(r.Stage),
			EscapeHTML(r.Next), EscapeHTML(r.Next),
			FormatDate(r.Updated)))
	}
	return strings.Join(rows, "\n")
}

// ClosedRows renders the closed-role table body, sorted by close date
// descending.
func ClosedRows(roles []types.Role, slugs slug.Map) string {
	sorted := make([]types.Role, len(roles))
	copy(sorted, roles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Closed > sorted[j].Closed
	})

	rows := make([]string, 0, len(sorted))
	for _, r := range sorted {
		stageCell := "-"
		if r.Stage != "" {
			stageCell = fmt.Sprintf(`<span class="badge badge-%s">%s</span>`,
				stage.ClassName(r.Stage), EscapeHTML(r.Stage))
		}
		rows = append(rows, fmt.Sprintf(
			"<tr>\n  <td>%s</td>\n  <td>%s</td>\n  <td>%s</td>\n  <td><span class=\"badge badge-%s\">%s</span></td>\n  <td>%s</td>\n</tr>",
			companyCell(r),
			roleCell(r, slugs),
			stageCell,
			stage.ClassName(r.Outcome), EscapeHTML(r.Outcome),
			FormatDate(r.Closed)))
	}
	return strings.Join(rows, "\n")
}

// SkippedRows renders the skipped-role table body, sorted by added
// date descending.
func SkippedRows(roles []types.Role) string {
	sorted := make([]types.Role, len(roles))
	copy(sorted, roles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Added > sorted[j].Added
	})

	rows := make([]string, 0, len(sorted))
	for _, r := range sorted {
		rows = append(rows, fmt.Sprintf(
			"<tr>\n  <td>%s</td>\n  <td>%s</td>\n  <td>%s</td>\n  <td>%s</td>\n</tr>",
			companyCell(r),
			EscapeHTML(r.Role),
			EscapeHTML(r.Reason),
			FormatDate(r.Added)))
	}
	return strings.Join(rows, "\n")
}

// linkedItems flattens a task's linked contacts and linked job
// companies into one display string.
func linkedItems(t types.Task) string {
	items := make([]string, 0, len(t.LinkedContacts)+len(t.LinkedJobs))
	items = append(items, t.LinkedContacts...)
	for _, j := range t.LinkedJobs {
		company, _, _ := strings.Cut(j, " - ")
		items = append(items, company)
	}
	return strings.Join(items, ", ")
}

// PendingTaskRows renders pending tasks: overdue first, then by due
// date ascending with undated tasks after all dated ones, then by
// created date descending.
func PendingTaskRows(stats metrics.TaskStats, today string) string {
	sorted := make([]types.Task, len(stats.Pending))
	copy(sorted, stats.Pending)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		aOver := a.Due != "" && a.Due < today
		bOver := b.Due != "" && b.Due < today
		if aOver != bOver {
			return aOver
		}
		if a.Due != "" && b.Due != "" && a.Due != b.Due {
			return a.Due < b.Due
		}
		if (a.Due != "") != (b.Due != "") {
			return a.Due != ""
		}
		return a.Created > b.Created
	})

	if len(sorted) == 0 {
		return `<tr><td colspan="4" class="empty-state">No pending tasks</td></tr>`
	}

	rows := make([]string, 0, len(sorted))
	for _, t := range sorted {
		cls := ""
		if t.Due != "" && t.Due < today {
			cls = "overdue"
		}
		due := "—"
		if t.Due != "" {
			due = FormatDate(t.Due)
		}
		linked := linkedItems(t)
		linkedCell := EscapeHTML(linked)
		if linkedCell == "" {
			linkedCell = "—"
		}
		rows = append(rows, fmt.Sprintf(
			"<tr class=\"%s\">\n  <td class=\"col-task\">%s</td>\n  <td class=\"col-due\">%s</td>\n  <td class=\"col-linked\" title=\"%s\">%s</td>\n  <td class=\"col-created\">%s</td>\n</tr>",
			cls, EscapeHTML(t.Task), due, EscapeHTML(linked), linkedCell, FormatDate(t.Created)))
	}
	return strings.Join(rows, "\n")
}

// CompletedTaskRows renders completed tasks by completion date (falling
// back to created date) descending, truncated to the most recent 10.
func CompletedTaskRows(stats metrics.TaskStats) string {
	sorted := make([]types.Task, len(stats.Completed))
	copy(sorted, stats.Completed)
	doneDate := func(t types.Task) string {
		if t.Completed != "" {
			return t.Completed
		}
		return t.Created
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return doneDate(sorted[i]) > doneDate(sorted[j])
	})
	if len(sorted) > completedTableLimit {
		sorted = sorted[:completedTableLimit]
	}

	if len(sorted) == 0 {
		return `<tr><td colspan="3" class="empty-state">No completed tasks</td></tr>`
	}

	rows := make([]string, 0, len(sorted))
	for _, t := range sorted {
		linkedCell := EscapeHTML(linkedItems(t))
		if linkedCell == "" {
			linkedCell = "—"
		}
		rows = append(rows, fmt.Sprintf(
			"<tr>\n  <td class=\"col-task\">%s</td>\n  <td class=\"col-linked\">%s</td>\n  <td class=\"col-created\">%s</td>\n</tr>",
			EscapeHTML(t.Task), linkedCell, FormatDate(doneDate(t))))
	}
	return strings.Join(rows, "\n")
}

// ContactRows renders the contacts table sorted by most recent
// interaction (falling back to the date the contact was added)
// descending.
func ContactRows(net metrics.Network) string {
	sorted := make([]types.Contact, len(net.Contacts))
	copy(sorted, net.Contacts)
	lastDate := func(c types.Contact) string {
		if last := c.LastInteraction(); last != nil {
			return last.Date
		}
		return c.Added
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return lastDate(sorted[i]) > lastDate(sorted[j])
	})

	if len(sorted) == 0 {
		return `<tr><td colspan="5" class="empty-state">No contacts yet</td></tr>`
	}

	rows := make([]string, 0, len(sorted))
	for _, c := range sorted {
		nameCell := EscapeHTML(c.Name)
		if c.LinkedIn != "" {
			nameCell = fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener">%s</a>`,
				EscapeHTML(c.LinkedIn), EscapeHTML(c.Name))
		}
		lastCell := "—"
		if last := c.LastInteraction(); last != nil {
			lastCell = fmt.Sprintf("%s (%s)", FormatDate(last.Date), EscapeHTML(last.Type))
		}
		linkedJobs := 0
		for _, in := range c.Interactions {
			linkedJobs += len(in.LinkedJobs)
		}
		jobsCell := "—"
		if linkedJobs > 0 {
			jobsCell = fmt.Sprintf("%d roles", linkedJobs)
		}
		rows = append(rows, fmt.Sprintf(
			"<tr>\n  <td class=\"col-name\">%s</td>\n  <td class=\"col-company\">%s</td>\n  <td class=\"col-title\">%s</td>\n  <td class=\"col-last-contact\">%s</td>\n  <td class=\"col-linked-jobs\">%s</td>\n</tr>",
			nameCell,
			orDash(c.Company),
			orDash(c.Title),
			lastCell,
			jobsCell))
	}
	return strings.Join(rows, "\n")
}

// RecentInteractionRows renders the last week's interactions, already
// sorted by the metrics engine, truncated to the most recent 10.
func RecentInteractionRows(net metrics.Network) string {
	if len(net.Recent) == 0 {
		return `<tr><td colspan="4" class="empty-state">No interactions this week</td></tr>`
	}

	recent := net.Recent
	if len(recent) > recentTableLimit {
		recent = recent[:recentTableLimit]
	}

	rows := make([]string, 0, len(recent))
	for _, in := range recent {
		rows = append(rows, fmt.Sprintf(
			"<tr>\n  <td class=\"col-date\">%s</td>\n  <td class=\"col-contact\">%s</td>\n  <td class=\"col-type\"><span class=\"badge badge-%s\">%s</span></td>\n  <td class=\"col-summary\" title=\"%s\">%s</td>\n</tr>",
			FormatDate(in.Date),
			EscapeHTML(in.ContactName),
			stage.ClassName(in.Type), EscapeHTML(in.Type),
			EscapeHTML(in.Summary), EscapeHTML(in.Summary)))
	}
	return strings.Join(rows, "\n")
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return EscapeHTML(s)
}
