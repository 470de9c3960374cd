// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-coach-ml/internal/salary"
	"github.com/jonathan/career-coach-ml/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintEstimate outputs a human-readable breakdown of a salary estimate.
// The skill entries are echoed as raw JSON for debugging only; the estimate
// itself never looks at them.
func (p *Printer) PrintEstimate(req *types.PredictionRequest, resp *types.PredictionResponse) {
	if req == nil || resp == nil {
		return
	}

	var sb strings.Builder

	count := req.SkillCount()
	sb.WriteString(fmt.Sprintf("Skills listed:  %d\n", count))
	sb.WriteString(fmt.Sprintf("Base salary:    %d\n", salary.BaseSalary))
	sb.WriteString(fmt.Sprintf("Skill bonus:    %d x %d = %d\n", count, salary.SkillBonus, count*salary.SkillBonus))
	sb.WriteString(fmt.Sprintf("Estimate:       %d\n", resp.PredictedSalary))

	if count > 0 {
		sb.WriteString("\nEntries:\n")
		shown := min(count, maxItemsToShow)
		for i := 0; i < shown; i++ {
			entry := string(req.Skills[i])
			if len(entry) > 45 {
				entry = entry[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", entry))
		}
		if count > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", count-maxItemsToShow))
		}
	}

	p.printBox("SALARY ESTIMATE", strings.TrimSuffix(sb.String(), "\n"))
}
