// Package loader reads the three tracking documents and per-role
// markdown files from disk. Missing or unreadable data degrades to
// empty collections with a warning; the build always produces a page.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/status-page/internal/schemas"
	"github.com/jonathan/status-page/internal/types"
)

// Result carries the loaded documents plus any warnings raised while
// reading or validating them.
type Result struct {
	Tracker  *types.TrackerData
	Tasks    *types.TasksData
	Network  *types.NetworkData
	Warnings []string
}

// Load reads tracker.json, tasks.json and network.json from dataDir.
// Each document is validated against its JSON Schema; violations are
// warnings, not errors.
func Load(dataDir string) *Result {
	res := &Result{
		Tracker: &types.TrackerData{},
		Tasks:   &types.TasksData{},
		Network: &types.NetworkData{},
	}

	res.loadJSON(filepath.Join(dataDir, "tracker.json"), schemas.Tracker, res.Tracker)
	res.loadJSON(filepath.Join(dataDir, "tasks.json"), schemas.Tasks, res.Tasks)
	res.loadJSON(filepath.Join(dataDir, "network.json"), schemas.Network, res.Network)

	return res
}

func (r *Result) loadJSON(path, schemaName string, target any) {
	raw, err := os.ReadFile(path)
	if err != nil {
		r.warnf("error reading %s: %v", filepath.Base(path), err)
		return
	}
	for _, w := range schemas.Validate(schemaName, raw) {
		r.warnf("%s: %s", filepath.Base(path), w)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		r.warnf("error parsing %s: %v", filepath.Base(path), err)
	}
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Documents are the per-role markdown files read from a role's folder.
type Documents struct {
	Analysis       string
	Notes          string
	JobDescription string
	Research       string
}

// ReadDocuments loads the markdown documents for a role whose folder
// field points under rootDir. A set folder that does not exist on disk
// is worth a warning; individual missing documents are normal and read
// as empty. Only a missing analysis document is called out, since fit
// scores silently disappear with it.
func ReadDocuments(rootDir string, role *types.Role) (Documents, []string) {
	var docs Documents
	if role.Folder == "" {
		return docs, nil
	}

	folder := filepath.Join(rootDir, role.Folder)
	if _, err := os.Stat(folder); err != nil {
		return docs, []string{fmt.Sprintf("folder not found for %s - %s: %s", role.Company, role.Role, role.Folder)}
	}

	var warnings []string
	docs.Analysis = readOptional(filepath.Join(folder, "comparison-analysis.md"))
	if docs.Analysis == "" {
		warnings = append(warnings, fmt.Sprintf("no analysis found for %s - %s", role.Company, role.Role))
	}
	docs.Notes = readOptional(filepath.Join(folder, "notes.md"))
	docs.JobDescription = readOptional(filepath.Join(folder, "job-description.md"))
	docs.Research = readOptional(filepath.Join(folder, "research-packet.md"))

	return docs, warnings
}

func readOptional(path string) string {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(raw)
}
