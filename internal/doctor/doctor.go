// Package doctor runs the documentation health checks over a docs tree and
// reduces them to a versioned Report.
package doctor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openkit-devtools/openkit/internal/checks"
	"github.com/openkit-devtools/openkit/internal/docset"
	"github.com/openkit-devtools/openkit/internal/scoring"
)

// Result is everything a doctor run produced.
type Result struct {
	Report *Report
	// BrokenLinks lists "<source> -> [[<target>]]" descriptors in discovery order.
	BrokenLinks []string
	// Checks holds the full check results in report order.
	Checks []*checks.CheckResult
	Score  *scoring.Result
	// Set is the document snapshot the checks ran against.
	Set *docset.Set
}

// Passed reports whether the run found no broken wikilinks.
func (r *Result) Passed() bool {
	return len(r.BrokenLinks) == 0
}

// Run loads every document under docsRoot once, runs the checks against that
// snapshot and scores them. Any I/O error or missing hub aborts the run and
// no report is returned.
func Run(ctx context.Context, docsRoot string, opts Options) (*Result, error) {
	if err := opts.Docs.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring policy: %w", err)
	}

	set, err := docset.Load(docsRoot, opts.Docs)
	if err != nil {
		return nil, err
	}

	results, err := checks.RunChecks(ctx, opts.checkers(), set)
	if err != nil {
		return nil, err
	}

	score := opts.Policy.Evaluate(results)
	res := &Result{
		Report: NewReport(results, score),
		Checks: results,
		Score:  score,
		Set:    set,
	}
	for _, r := range results {
		if data, ok := r.Data.(*checks.BrokenWikilinksData); ok {
			for _, b := range data.Links {
				res.BrokenLinks = append(res.BrokenLinks, b.String())
			}
		}
	}

	slog.Debug("Doctor run complete", "root", set.Root, "documents", set.Len(), "score", score.Score, "status", score.Status)
	return res, nil
}
