// Package site orchestrates a full build: load data, compute metrics,
// render fragments, assemble pages, write the output tree.
package site

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/status-page/internal/analysis"
	"github.com/jonathan/status-page/internal/assemble"
	"github.com/jonathan/status-page/internal/loader"
	"github.com/jonathan/status-page/internal/markdown"
	"github.com/jonathan/status-page/internal/metrics"
	"github.com/jonathan/status-page/internal/render"
	"github.com/jonathan/status-page/internal/slug"
	"github.com/jonathan/status-page/internal/stage"
	"github.com/jonathan/status-page/internal/types"
	"github.com/jonathan/status-page/internal/validate"
)

// Options holds everything a build needs. Zero-value string fields are
// invalid; the CLI layer fills them from config and flags.
type Options struct {
	DataDir   string
	RootDir   string
	OutDir    string
	Templates string // override directory, empty for embedded
	Stages    string // stage model override file, empty for embedded
	Verbose   bool
	Now       time.Time // zero means time.Now()
}

// Result summarizes a completed build.
type Result struct {
	BuildID     uuid.UUID
	IndexPath   string
	DetailPages int
	Warnings    []string

	ActiveCount  int
	AppliedCount int
	PendingTasks int
	ContactCount int
}

// Build runs one complete build. Data problems degrade to warnings;
// only unusable templates, an unusable stage model, or output write
// failures abort.
func Build(ctx context.Context, opts Options) (*Result, error) {
	buildID := uuid.New()
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	clock := metrics.NewClock(now)

	printer := NewPrinter(os.Stdout, opts.Verbose)

	model := stage.Default()
	if opts.Stages != "" {
		var err error
		model, err = stage.Load(opts.Stages)
		if err != nil {
			return nil, fmt.Errorf("failed to load stage model: %w", err)
		}
	}

	templates, err := LoadTemplates(opts.Templates)
	if err != nil {
		return nil, err
	}

	fmt.Printf("Step 1/6: Loading tracking data from %s...\n", opts.DataDir)
	data := loader.Load(opts.DataDir)
	warnings := data.Warnings

	fmt.Printf("Step 2/6: Validating records...\n")
	warnings = append(warnings, validate.Tracker(data.Tracker, model)...)

	fmt.Printf("Step 3/6: Computing metrics...\n")
	current := metrics.ComputeCurrent(model, *data.Tracker, clock)
	historical := metrics.ComputeHistorical(model, *data.Tracker, clock)
	taskStats := metrics.ComputeTasks(*data.Tasks, clock)
	network := metrics.ComputeNetwork(*data.Network, clock)

	fmt.Printf("Step 4/6: Reading role documents...\n")
	slugs := slug.Build(*data.Tracker)
	pages, fit, docWarnings := collectRolePages(opts.RootDir, data.Tracker, data.Tasks, data.Network, slugs)
	warnings = append(warnings, docWarnings...)

	for _, w := range warnings {
		fmt.Printf("Warning: %s\n", w)
	}

	fmt.Printf("Step 5/6: Assembling index page...\n")
	indexHTML, assembleWarnings, err := assembleIndex(templates, model, data.Tracker, current, historical, taskStats, network, fit, slugs, buildID, now)
	if err != nil {
		return nil, err
	}
	for _, w := range assembleWarnings {
		fmt.Printf("Warning: %s\n", w)
	}
	warnings = append(warnings, assembleWarnings...)

	if err := os.MkdirAll(filepath.Join(opts.OutDir, "roles"), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	indexPath := filepath.Join(opts.OutDir, "index.html")
	if err := os.WriteFile(indexPath, []byte(indexHTML), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", indexPath, err)
	}

	fmt.Printf("Step 6/6: Rendering %d detail pages...\n", len(pages))
	if err := writeDetailPages(ctx, opts.OutDir, templates, pages, buildID, now); err != nil {
		return nil, err
	}

	res := &Result{
		BuildID:      buildID,
		IndexPath:    indexPath,
		DetailPages:  len(pages),
		Warnings:     warnings,
		ActiveCount:  current.ActiveCount,
		AppliedCount: current.AppliedCount,
		PendingTasks: taskStats.PendingCount,
		ContactCount: network.ContactCount,
	}

	fmt.Printf("Built status page: %s\n", indexPath)
	fmt.Printf("Active: %d | Applied: %d | Tasks: %d | Contacts: %d\n",
		res.ActiveCount, res.AppliedCount, res.PendingTasks, res.ContactCount)
	printer.PrintBuildSummary(res)

	return res, nil
}

// rolePage is one detail page waiting to be assembled and written.
type rolePage struct {
	detail render.Detail
}

// collectRolePages reads each role's documents, extracts fit scores,
// and prepares detail page inputs. Document reads stay serial; they
// share warnings and the fit map.
func collectRolePages(rootDir string, tracker *types.TrackerData, tasks *types.TasksData, network *types.NetworkData, slugs slug.Map) ([]rolePage, render.FitScores, []string) {
	var pages []rolePage
	var warnings []string
	fit := make(render.FitScores)

	collect := func(roles []types.Role) {
		for i := range roles {
			role := roles[i]
			docs, docWarnings := loader.ReadDocuments(rootDir, &role)
			warnings = append(warnings, docWarnings...)

			extracted := analysis.Extract(docs.Analysis)
			fit[slug.Key(role.Company, role.Role)] = extracted.OverallScore

			detail := render.Detail{
				Role:     role,
				Slug:     slugs.Lookup(role.Company, role.Role),
				Analysis: extracted,
				Tasks:    linkedTasks(tasks, role),
				Contacts: linkedContacts(network, role),
			}
			detail.NotesHTML = renderDoc(docs.Notes, role, "notes", &warnings)
			detail.JobDescriptionHTML = renderDoc(docs.JobDescription, role, "job description", &warnings)
			detail.ResearchHTML = renderDoc(docs.Research, role, "research packet", &warnings)

			pages = append(pages, rolePage{detail: detail})
		}
	}

	collect(tracker.Active)
	collect(tracker.Closed)
	collect(tracker.Skipped)

	return pages, fit, warnings
}

func renderDoc(doc string, role types.Role, kind string, warnings *[]string) string {
	html, err := markdown.Render(doc)
	if err != nil {
		*warnings = append(*warnings, fmt.Sprintf("failed to render %s for %s - %s: %v", kind, role.Company, role.Role, err))
		return ""
	}
	return html
}

// linkedTasks returns the tasks whose linked jobs mention this role,
// matched on the "Company - Role" convention used in the tracking data.
func linkedTasks(tasks *types.TasksData, role types.Role) []types.Task {
	ref := role.Company + " - " + role.Role
	var out []types.Task
	for _, t := range tasks.Tasks {
		for _, j := range t.LinkedJobs {
			if j == ref {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// linkedContacts returns the contacts with at least one interaction
// linked to this role.
func linkedContacts(network *types.NetworkData, role types.Role) []types.Contact {
	ref := role.Company + " - " + role.Role
	var out []types.Contact
	for _, c := range network.Contacts {
		linked := false
		for _, in := range c.Interactions {
			for _, j := range in.LinkedJobs {
				if j == ref {
					linked = true
					break
				}
			}
			if linked {
				break
			}
		}
		if linked {
			out = append(out, c)
		}
	}
	return out
}

func assembleIndex(templates *Templates, model *stage.Model, tracker *types.TrackerData, current metrics.Current, historical metrics.Historical, taskStats metrics.TaskStats, network metrics.Network, fit render.FitScores, slugs slug.Map, buildID uuid.UUID, now time.Time) (string, []string, error) {
	trackerJSON, err := render.EmbedJSON(tracker.Sanitized())
	if err != nil {
		return "", nil, fmt.Errorf("failed to embed tracker data: %w", err)
	}
	stageOrderJSON, err := render.EmbedJSON(model.Stages)
	if err != nil {
		return "", nil, fmt.Errorf("failed to embed stage order: %w", err)
	}

	values := map[string]string{
		"BUILD_ID":     buildID.String(),
		"STYLES":       templates.Styles,
		"SCRIPT":       templates.Script,
		"LAST_UPDATED": now.Format("Jan 2, 2006 3:04 PM"),

		"KPI_CARDS":        render.TrackerKPICards(current),
		"CURRENT_PIPELINE": render.CurrentPipeline(model, current),
		"HISTORICAL_STATS": render.HistoricalStats(model, historical),
		"ACTIVE_ROWS":      render.ActiveRows(model, tracker.Active, fit, slugs),
		"CLOSED_ROWS":      render.ClosedRows(tracker.Closed, slugs),
		"SKIPPED_ROWS":     render.SkippedRows(tracker.Skipped),
		"CLOSED_COUNT":     fmt.Sprintf("%d", historical.ClosedCount),
		"SKIPPED_COUNT":    fmt.Sprintf("%d", historical.SkippedCount),
		"TRACKER_JSON":     trackerJSON,
		"STAGE_ORDER_JSON": stageOrderJSON,

		"TASK_KPI_CARDS":       render.TaskKPICards(taskStats),
		"PENDING_TASKS_ROWS":   render.PendingTaskRows(taskStats, now.Format("2006-01-02")),
		"COMPLETED_TASKS_ROWS": render.CompletedTaskRows(taskStats),
		"PENDING_COUNT":        fmt.Sprintf("%d", taskStats.PendingCount),
		"COMPLETED_COUNT":      fmt.Sprintf("%d", taskStats.CompletedCount),

		"NETWORK_KPI_CARDS":        render.NetworkKPICards(network),
		"CONTACTS_ROWS":            render.ContactRows(network),
		"RECENT_INTERACTIONS_ROWS": render.RecentInteractionRows(network),
		"CONTACTS_COUNT":           fmt.Sprintf("%d", network.ContactCount),
		"INTERACTIONS_COUNT":       fmt.Sprintf("%d", network.RecentInteractionCount),
	}

	html, warnings := assemble.Apply(templates.Page, values)
	return html, warnings, nil
}

// writeDetailPages renders and writes every role page concurrently.
// The slug map and all page inputs are built before this point, so the
// goroutines share nothing mutable.
func writeDetailPages(ctx context.Context, outDir string, templates *Templates, pages []rolePage, buildID uuid.UUID, now time.Time) error {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for i := range pages {
		page := pages[i]
		g.Go(func() error {
			if page.detail.Slug == "" {
				return nil
			}
			tabs := page.detail.Tabs()
			values := map[string]string{
				"BUILD_ID":    buildID.String(),
				"STYLES":      templates.Styles,
				"SCRIPT":      templates.Script,
				"COMPANY":     render.EscapeHTML(page.detail.Role.Company),
				"ROLE":        render.EscapeHTML(page.detail.Role.Role),
				"URL":         render.EscapeHTML(page.detail.Role.URL),
				"ADDED":       render.FormatDate(page.detail.Role.Added),
				"STAGE_BADGE": stageBadge(page.detail.Role.Stage),
				"TAB_BUTTONS": render.TabButtons(tabs),
				"TAB_PANELS":  render.TabPanels(tabs),
			}
			html, pageWarnings := assemble.Apply(templates.Detail, values)
			for _, w := range pageWarnings {
				fmt.Printf("Warning: %s: %s\n", page.detail.Slug, w)
			}

			path := filepath.Join(outDir, "roles", page.detail.Slug+".html")
			if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			return nil
		})
	}

	return g.Wait()
}

func stageBadge(s string) string {
	if s == "" {
		return ""
	}
	return fmt.Sprintf(`<span class="stage-badge stage-%s">%s</span>`,
		stage.ClassName(s), render.EscapeHTML(s))
}
