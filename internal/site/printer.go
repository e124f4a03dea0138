package site

import (
	"fmt"
	"io"
	"strings"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted output for verbose mode
type Printer struct {
	out     io.Writer
	verbose bool
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer, verbose bool) *Printer {
	return &Printer{out: out, verbose: verbose}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintBuildSummary outputs a detailed summary of a completed build in
// verbose mode.
func (p *Printer) PrintBuildSummary(res *Result) {
	if !p.verbose || res == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Build ID:     %s\n", res.BuildID))
	sb.WriteString(fmt.Sprintf("Index:        %s\n", res.IndexPath))
	sb.WriteString(fmt.Sprintf("Detail pages: %d\n", res.DetailPages))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Active roles: %d\n", res.ActiveCount))
	sb.WriteString(fmt.Sprintf("Applied:      %d\n", res.AppliedCount))
	sb.WriteString(fmt.Sprintf("Open tasks:   %d\n", res.PendingTasks))
	sb.WriteString(fmt.Sprintf("Contacts:     %d\n", res.ContactCount))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Warnings:     %d", len(res.Warnings)))

	p.printBox("Build Summary", sb.String())
}
