// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/databonnd/site/internal/animation"
	"github.com/databonnd/site/internal/paths"
	"github.com/databonnd/site/internal/types"
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

	for _, line := range strings.Split(content, "\n") {
		line = truncate(line, boxWidth-4)
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintLayout outputs the resolved background and the first stroke timings.
func (p *Printer) PrintLayout(layout paths.Layout, timings []animation.Timing) {
	if len(layout.Strokes) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Mode:     %s\n", layout.Mode))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", layout.Title))
	sb.WriteString(fmt.Sprintf("ViewBox:  %gx%g\n", layout.ViewBox.Width, layout.ViewBox.Height))
	sb.WriteString(fmt.Sprintf("Strokes:  %d\n", len(layout.Strokes)))

	if len(timings) > 0 {
		sb.WriteString("\n")
		count := min(len(timings), maxItemsToShow)
		for i := 0; i < count; i++ {
			tm := timings[i]
			sb.WriteString(fmt.Sprintf("  • stroke %-3d dur %-6s begin %s\n",
				tm.StrokeID, animation.Seconds(tm.Duration), animation.Seconds(tm.Delay)))
		}
		if len(timings) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(timings)-maxItemsToShow))
		}
	}

	p.printBox("BACKGROUND LAYOUT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCatalog outputs the company entries with their display flags.
func (p *Printer) PrintCatalog(companies []types.Company) {
	if len(companies) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Companies: %d\n\n", len(companies)))
	for i, c := range companies {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, c.Name))

		flags := []string{}
		if c.ShowDetails {
			flags = append(flags, "details")
		}
		if c.LinksOut() {
			flags = append(flags, "website")
		}
		if c.ZoomLogo {
			flags = append(flags, "zoom")
		}
		if len(flags) > 0 {
			sb.WriteString(fmt.Sprintf("    [%s]\n", strings.Join(flags, ", ")))
		}
	}

	p.printBox("COMPANY CATALOG", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWrittenFiles outputs the files an export produced under dir.
func (p *Printer) PrintWrittenFiles(dir string, files []string) {
	if len(files) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Output: %s\n\n", dir))
	count := min(len(files), maxItemsToShow*2)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("• %s\n", files[i]))
	}
	if len(files) > count {
		sb.WriteString(fmt.Sprintf("... and %d more files\n", len(files)-count))
	}

	p.printBox("EXPORTED FILES", strings.TrimSuffix(sb.String(), "\n"))
}
