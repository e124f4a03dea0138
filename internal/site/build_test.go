package site

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// buildFixture lays out a small but complete data tree: two active
// roles (one with an analysis document), a closed role, a task, and a
// contact with a linked interaction.
func buildFixture(t *testing.T) (dataDir, rootDir string) {
	t.Helper()
	rootDir = t.TempDir()
	dataDir = filepath.Join(rootDir, "data")

	writeFile(t, filepath.Join(dataDir, "tracker.json"), `{
		"active": [
			{"company": "Acme Corp", "role": "Platform Engineer", "url": "https://jobs.example/acme",
			 "added": "2025-06-01", "updated": "2025-06-12", "stage": "Technical",
			 "folder": "roles/acme", "next": "Prep system design"},
			{"company": "Globex", "role": "Backend Engineer", "url": "https://jobs.example/globex",
			 "added": "2025-06-05", "updated": "2025-06-10", "stage": "Applied"}
		],
		"closed": [
			{"company": "Initech", "role": "SRE", "url": "https://jobs.example/initech",
			 "added": "2025-05-01", "stage": "Onsite", "outcome": "Rejected", "closed": "2025-06-02"}
		],
		"skipped": []
	}`)
	writeFile(t, filepath.Join(dataDir, "tasks.json"), `{
		"tasks": [
			{"task": "Follow up with recruiter", "status": "pending", "due": "2025-06-16",
			 "created": "2025-06-10", "linkedJobs": ["Acme Corp - Platform Engineer"]}
		]
	}`)
	writeFile(t, filepath.Join(dataDir, "network.json"), `{
		"contacts": [
			{"id": "c1", "name": "Dana Smith", "company": "Acme Corp", "added": "2025-05-20",
			 "interactions": [
				{"date": "2025-06-12", "type": "call", "summary": "Prep chat",
				 "linkedJobs": ["Acme Corp - Platform Engineer"]}
			 ]}
		]
	}`)
	writeFile(t, filepath.Join(rootDir, "roles", "acme", "comparison-analysis.md"),
		"## Overall Fit Score: 85/100 — Strong Match\n\n**Key Strengths:**\n- Go experience\n")
	writeFile(t, filepath.Join(rootDir, "roles", "acme", "notes.md"),
		"# Notes\n\nTalked to the hiring manager.\n")

	return dataDir, rootDir
}

func testOptions(t *testing.T) Options {
	dataDir, rootDir := buildFixture(t)
	return Options{
		DataDir: dataDir,
		RootDir: rootDir,
		OutDir:  filepath.Join(t.TempDir(), "dist"),
		Now:     time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
	}
}

func parseFile(t *testing.T, path string) *goquery.Document {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(raw)))
	require.NoError(t, err)
	return doc
}

func TestBuild(t *testing.T) {
	opts := testOptions(t)

	res, err := Build(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 2, res.ActiveCount)
	assert.Equal(t, 2, res.AppliedCount)
	assert.Equal(t, 1, res.PendingTasks)
	assert.Equal(t, 1, res.ContactCount)
	assert.Equal(t, 3, res.DetailPages)
	assert.NotEqual(t, res.BuildID.String(), "00000000-0000-0000-0000-000000000000")

	doc := parseFile(t, filepath.Join(opts.OutDir, "index.html"))

	// No placeholder survives assembly.
	html, err := doc.Html()
	require.NoError(t, err)
	assert.NotRegexp(t, `\{\{\w+\}\}`, html)

	// Build ID lands in the meta tag.
	id, _ := doc.Find(`meta[name="build-id"]`).Attr("content")
	assert.Equal(t, res.BuildID.String(), id)

	// Active table carries both roles, later stage first.
	rows := doc.Find("#activeTable tbody tr")
	require.Equal(t, 2, rows.Length())
	assert.Contains(t, rows.First().Text(), "Acme Corp")

	// The analyzed role shows its fit score.
	assert.Contains(t, rows.First().Find(".col-fit").Text(), "85")

	// Role links point at generated detail pages.
	href, _ := rows.First().Find(".col-role a").Attr("href")
	assert.Equal(t, "roles/acme-corp-platform-engineer.html", href)
}

func TestBuild_DetailPages(t *testing.T) {
	opts := testOptions(t)

	_, err := Build(context.Background(), opts)
	require.NoError(t, err)

	doc := parseFile(t, filepath.Join(opts.OutDir, "roles", "acme-corp-platform-engineer.html"))

	assert.Contains(t, doc.Find("h1").Text(), "Acme Corp")
	assert.Contains(t, doc.Find(".stage-badge").Text(), "Technical")

	// Fit, notes, JD always present; links tab present because a task
	// and a contact reference this role; no research tab.
	tabs := doc.Find(".tab-btn")
	labels := tabs.Map(func(_ int, s *goquery.Selection) string { return strings.TrimSpace(s.Text()) })
	assert.Contains(t, labels, "Fit Assessment")
	assert.Contains(t, labels, "Notes")
	assert.Contains(t, labels, "Job Description")
	assert.Contains(t, labels, "Tasks & Contacts")
	assert.NotContains(t, labels, "Research Packet")

	// Markdown notes rendered to HTML.
	assert.Contains(t, doc.Find("#tab-notes").Text(), "Talked to the hiring manager.")

	// The un-analyzed role still gets a page with placeholders.
	other := parseFile(t, filepath.Join(opts.OutDir, "roles", "globex-backend-engineer.html"))
	assert.Contains(t, other.Find("h1").Text(), "Globex")
}

func TestBuild_EmptyDataStillBuilds(t *testing.T) {
	opts := Options{
		DataDir: t.TempDir(), // no files at all
		RootDir: t.TempDir(),
		OutDir:  filepath.Join(t.TempDir(), "dist"),
		Now:     time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
	}

	res, err := Build(context.Background(), opts)
	require.NoError(t, err)

	assert.Zero(t, res.ActiveCount)
	assert.NotEmpty(t, res.Warnings)

	doc := parseFile(t, filepath.Join(opts.OutDir, "index.html"))
	assert.Zero(t, doc.Find("#activeTable tbody tr").Length())
	assert.Equal(t, "No pending tasks", strings.TrimSpace(doc.Find("#tab-tasks .empty-state").First().Text()))
}

func TestBuild_EmbeddedJSONEscaped(t *testing.T) {
	dataDir, rootDir := buildFixture(t)
	// A company name carrying a script-breakout attempt.
	writeFile(t, filepath.Join(dataDir, "tracker.json"), `{
		"active": [{"company": "</script><script>alert(1)</script>", "role": "X",
		            "url": "https://x.example", "added": "2025-06-01", "stage": "Applied"}],
		"closed": [], "skipped": []
	}`)

	opts := Options{
		DataDir: dataDir,
		RootDir: rootDir,
		OutDir:  filepath.Join(t.TempDir(), "dist"),
		Now:     time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
	}
	_, err := Build(context.Background(), opts)
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(opts.OutDir, "index.html"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"</script>`)
}

func TestBuild_FolderStrippedFromEmbed(t *testing.T) {
	opts := testOptions(t)

	_, err := Build(context.Background(), opts)
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(opts.OutDir, "index.html"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "roles/acme\"")
}
