// Package analysis extracts structured fields from a role's free-form
// comparison-analysis document. This is pattern extraction, not markdown
// parsing: each field has its own anchored matcher and tolerates the
// others being absent, so partial documents are expected and valid.
package analysis

import (
	"regexp"
	"strconv"
	"strings"
)

// Dimension is one row of the per-dimension scoring table.
type Dimension struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Notes string `json:"notes,omitempty"`
}

// Analysis holds every field the extractor recognizes. A missing or
// unparseable document yields the zero value; no extraction ever fails.
type Analysis struct {
	OverallScore *int        `json:"overallScore,omitempty"`
	OverallLabel string      `json:"overallLabel,omitempty"`
	Dimensions   []Dimension `json:"dimensions,omitempty"`
	Strengths    []string    `json:"strengths,omitempty"`
	Gaps         []string    `json:"gaps,omitempty"`
	Changes      []string    `json:"changes,omitempty"`
	Removed      []string    `json:"removed,omitempty"`
	Flagged      []string    `json:"flagged,omitempty"`
}

// Empty reports whether nothing at all was extracted.
func (a Analysis) Empty() bool {
	return a.OverallScore == nil &&
		len(a.Dimensions) == 0 &&
		len(a.Strengths) == 0 &&
		len(a.Gaps) == 0 &&
		len(a.Changes) == 0 &&
		len(a.Removed) == 0 &&
		len(a.Flagged) == 0
}

var (
	scoreRe     = regexp.MustCompile(`(?i)Overall Fit(?:\s*Score)?:\s*(\d+)\s*/\s*100(?:\s*[—–-]\s*(\S[^\n]*))?`)
	tableRowRe  = regexp.MustCompile(`^\s*\|([^|]+)\|([^|]+)\|([^|]+)\|\s*$`)
	cellScoreRe = regexp.MustCompile(`(\d+)\s*/\s*100`)
	separatorRe = regexp.MustCompile(`^[\s:\-]+$`)
	boldHeadRe  = regexp.MustCompile(`^\s*\*\*[^*]+\*\*:?\s*$`)
	bulletRe    = regexp.MustCompile(`^\s*[-*]\s+(.+)$`)
	numberedRe  = regexp.MustCompile(`^\s*\d+[.)]\s+(.+)$`)
	removedRe   = regexp.MustCompile(`(?im)\*\*Removed:?\*\*\s*"?([^"\n]+?)"?\s*$`)
)

// Extract runs every matcher over the document. The empty string yields
// the zero-value Analysis.
func Extract(doc string) Analysis {
	if doc == "" {
		return Analysis{}
	}
	a := Analysis{}
	a.OverallScore, a.OverallLabel = extractScore(doc)
	a.Dimensions = extractDimensions(doc)
	a.Strengths = extractBulletSection(doc, "Key Strengths")
	a.Gaps = extractBulletSection(doc, "Primary Gaps")
	a.Changes = extractChanges(doc)
	a.Removed = extractRemoved(doc)
	a.Flagged = extractFlagged(doc)
	return a
}

// Score extracts just the overall fit score, for table-summary display
// where parsing the full document would be wasted work. It uses the
// same pattern as Extract and agrees with it on any input.
func Score(doc string) *int {
	score, _ := extractScore(doc)
	return score
}

func extractScore(doc string) (*int, string) {
	m := scoreRe.FindStringSubmatch(doc)
	if m == nil {
		return nil, ""
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, ""
	}
	return &n, strings.TrimSpace(m[2])
}

func extractDimensions(doc string) []Dimension {
	var dims []Dimension
	for _, line := range strings.Split(doc, "\n") {
		m := tableRowRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if name == "" || separatorRe.MatchString(name) || strings.EqualFold(name, "dimension") {
			continue
		}
		cell := cellScoreRe.FindStringSubmatch(m[2])
		if cell == nil {
			continue // header row or prose cell
		}
		score, err := strconv.Atoi(cell[1])
		if err != nil {
			continue
		}
		dims = append(dims, Dimension{
			Name:  strings.Trim(name, "* "),
			Score: score,
			Notes: strings.TrimSpace(m[3]),
		})
	}
	return dims
}

// extractBulletSection collects the bullet list that follows a bolded
// header, stopping at the next bolded header or markdown heading.
func extractBulletSection(doc, header string) []string {
	headerRe := regexp.MustCompile(`(?i)^\s*\*\*` + regexp.QuoteMeta(header) + `:?\*\*`)
	lines := strings.Split(doc, "\n")
	var items []string
	inSection := false
	for _, line := range lines {
		if !inSection {
			if headerRe.MatchString(line) {
				inSection = true
			}
			continue
		}
		if boldHeadRe.MatchString(line) || strings.HasPrefix(strings.TrimSpace(line), "#") {
			break
		}
		if m := bulletRe.FindStringSubmatch(line); m != nil {
			items = append(items, strings.TrimSpace(m[1]))
		}
	}
	return items
}

// extractChanges collects the bullet list under a "Changes Made"
// heading. An optional "Summary" sub-header directly below the heading
// is skipped; the list ends at the next sub-heading or heading.
func extractChanges(doc string) []string {
	headingRe := regexp.MustCompile(`(?i)^\s*(?:#{1,6}\s+|\*\*)Changes Made`)
	summaryRe := regexp.MustCompile(`(?i)^\s*(?:#{1,6}\s+|\*\*)Summary`)
	lines := strings.Split(doc, "\n")
	var items []string
	inSection := false
	for _, line := range lines {
		if !inSection {
			if headingRe.MatchString(line) {
				inSection = true
			}
			continue
		}
		if summaryRe.MatchString(line) {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") || boldHeadRe.MatchString(line) {
			break
		}
		if m := bulletRe.FindStringSubmatch(line); m != nil {
			items = append(items, strings.TrimSpace(m[1]))
		}
	}
	return items
}

// extractRemoved collects every inline "**Removed:**" item across the
// whole document; removals are noted wherever they happened, not in a
// dedicated section.
func extractRemoved(doc string) []string {
	var items []string
	for _, m := range removedRe.FindAllStringSubmatch(doc, -1) {
		if text := strings.TrimSpace(m[1]); text != "" {
			items = append(items, text)
		}
	}
	return items
}

// extractFlagged collects the numbered list under a "Flagged for
// Review" heading, ending at the next heading or end of document.
func extractFlagged(doc string) []string {
	headingRe := regexp.MustCompile(`(?i)^\s*(?:#{1,6}\s+|\*\*)Flagged for Review`)
	lines := strings.Split(doc, "\n")
	var items []string
	inSection := false
	for _, line := range lines {
		if !inSection {
			if headingRe.MatchString(line) {
				inSection = true
			}
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			break
		}
		if m := numberedRe.FindStringSubmatch(line); m != nil {
			items = append(items, strings.TrimSpace(m[1]))
		}
	}
	return items
}
