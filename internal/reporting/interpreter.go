package reporting

import (
	"fmt"
	"strings"

	"github.com/openkit-devtools/openkit/internal/checks"
	"github.com/openkit-devtools/openkit/internal/doctor"
	"github.com/openkit-devtools/openkit/internal/scoring"
)

// InterpretStatus returns a plain-language label for a health status.
func InterpretStatus(status scoring.Status) string {
	switch status {
	case scoring.StatusHealthy:
		return "Healthy: documentation meets the linking and freshness bar"
	case scoring.StatusWarning:
		return "Warning: some conventions are slipping"
	default:
		return "Critical: documentation needs attention before it can be trusted"
	}
}

// NextStep returns the remediation hint for a check that did not pass, or ""
// when the check passed.
func NextStep(r *checks.CheckResult) string {
	if r.Passed() {
		return ""
	}
	switch r.Name {
	case checks.NameInlineLinks:
		return "Link related documents inline, e.g. \"see [[CONTEXT.md]]\", above the ## Related heading."
	case checks.NameRelatedSections:
		return "Add a ## Related section to each hub (openkit memory related <hub> <link>...)."
	case checks.NameBrokenWikilinks:
		return fmt.Sprintf("Fix or remove %d broken wikilink(s); targets are paths relative to the docs root.", r.Count)
	case checks.NameStaleDocs:
		return "Review stale documents and update or archive them."
	default:
		return "Review the " + r.Name + " check output."
	}
}

// FormatSummaryReport produces the plain-language interpretation of a doctor
// run: status, deductions and next steps.
func FormatSummaryReport(res *doctor.Result) string {
	var b strings.Builder

	b.WriteString("=== Interpretation ===\n\n")
	b.WriteString(fmt.Sprintf("Status:    %s\n", InterpretStatus(res.Report.Status)))
	b.WriteString(fmt.Sprintf("Score:     %d/%d\n", res.Report.Score, scoring.Baseline))
	b.WriteString(fmt.Sprintf("Documents: %d\n", res.Set.Len()))

	if len(res.Score.Deductions) > 0 {
		b.WriteString("\nDeductions:\n")
		for _, d := range res.Score.Deductions {
			b.WriteString(fmt.Sprintf("  -%d %s\n", d.Points, d.Check))
		}
	}

	var steps []string
	for _, r := range res.Checks {
		if s := NextStep(r); s != "" {
			steps = append(steps, s)
		}
	}
	if len(steps) > 0 {
		b.WriteString("\nNext steps:\n")
		for _, s := range steps {
			b.WriteString(fmt.Sprintf("  - %s\n", s))
		}
	}

	return b.String()
}
