package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/openkit-devtools/openkit/internal/checks"
	"github.com/openkit-devtools/openkit/internal/docset"
	"github.com/openkit-devtools/openkit/internal/doctor"
	"github.com/openkit-devtools/openkit/internal/reporting"
	"github.com/openkit-devtools/openkit/internal/scoring"
)

// useColor reports whether w is a terminal that should get ANSI colors.
func useColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) && !color.NoColor
}

func statusColor(s scoring.Status) *color.Color {
	switch s {
	case scoring.StatusHealthy:
		return color.New(color.FgGreen, color.Bold)
	case scoring.StatusWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

// printDoctorText writes the human-readable doctor report.
func printDoctorText(w io.Writer, res *doctor.Result) {
	status := res.Report.Status.String()
	if useColor(w) {
		c := statusColor(res.Report.Status)
		c.EnableColor()
		status = c.Sprint(status)
	}
	fmt.Fprintf(w, "Memory Health: %s (score=%d)\n", status, res.Report.Score) //nolint:errcheck

	names := make([]string, 0, len(res.Report.Checks))
	for name := range res.Report.Checks {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(w, "- %s: %s\n", name, res.Report.Checks[name]) //nolint:errcheck
	}

	fmt.Fprintf(w, "\nChecks\n") //nolint:errcheck
	width := 0
	for _, r := range res.Checks {
		width = max(width, runewidth.StringWidth(r.Name))
	}
	for _, r := range res.Checks {
		fmt.Fprintf(w, "  %s  %-8s %s\n", padRight(r.Name, width), r.Display(), r.Summary) //nolint:errcheck
	}

	if len(res.BrokenLinks) > 0 {
		fmt.Fprintf(w, "\nBroken wikilinks (%d):\n", len(res.BrokenLinks)) //nolint:errcheck
		for _, l := range res.BrokenLinks {
			fmt.Fprintf(w, "  - %s\n", l) //nolint:errcheck
		}
	}

	if stale := staleDocuments(res); len(stale) > 0 {
		fmt.Fprintf(w, "\nStale documents (%d):\n", len(stale)) //nolint:errcheck
		for _, line := range stale {
			fmt.Fprintf(w, "  - %s\n", line) //nolint:errcheck
		}
	}

	fmt.Fprintf(w, "\n%s", reporting.FormatSummaryReport(res)) //nolint:errcheck
}

// staleDocuments lists stale paths with their document titles.
func staleDocuments(res *doctor.Result) []string {
	var lines []string
	for _, r := range res.Checks {
		data, ok := r.Data.(*checks.StaleDocsData)
		if !ok {
			continue
		}
		for _, rel := range data.Stale {
			line := rel
			if doc, ok := res.Set.Lookup(rel); ok {
				if title := docset.Title(doc.Content); title != "" {
					line = fmt.Sprintf("%s (%s)", rel, title)
				}
			}
			lines = append(lines, line)
		}
	}
	return lines
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
