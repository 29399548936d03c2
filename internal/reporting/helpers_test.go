package reporting

import (
	"github.com/openkit-devtools/openkit/internal/checks"
	"github.com/openkit-devtools/openkit/internal/docset"
	"github.com/openkit-devtools/openkit/internal/doctor"
	"github.com/openkit-devtools/openkit/internal/scoring"
)

func newTestResult() *doctor.Result {
	results := []*checks.CheckResult{
		{Name: checks.NameInlineLinks, Outcome: checks.OutcomePass, Summary: "Inline links: found in guide.md"},
		checks.Skipped(checks.NameRelatedSections, "Related sections: disabled"),
		{
			Name:    checks.NameBrokenWikilinks,
			Outcome: checks.OutcomeFail,
			Count:   2,
			Summary: "Wikilinks: 2 broken",
			Details: []string{"guide.md -> [[gone.md]]", "guide.md -> [[missing.md]]"},
		},
		{
			Name:    checks.NameStaleDocs,
			Outcome: checks.OutcomeWarn,
			Count:   1,
			Summary: "Freshness: 1 document(s) older than 45 days",
			Details: []string{"old.md last modified 1200h0m0s ago"},
		},
	}
	score := scoring.DefaultPolicy().Evaluate(results)
	set := docset.NewSet("/repo/docs", []docset.Document{
		{Path: "guide.md", Content: "# Guide\n"},
		{Path: "old.md", Content: "# Old\n"},
	})
	return &doctor.Result{
		Report:      doctor.NewReport(results, score),
		BrokenLinks: results[2].Details,
		Checks:      results,
		Score:       score,
		Set:         set,
	}
}
