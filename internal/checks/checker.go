// Package checks provides the Checker interface and the documentation health
// checks a doctor run is built from.
package checks

import (
	"context"
	"fmt"

	"github.com/openkit-devtools/openkit/internal/docset"
)

// Check names. They are stable identifiers keyed on by downstream tooling.
const (
	NameInlineLinks     = "inline_links"
	NameRelatedSections = "related_sections"
	NameBrokenWikilinks = "broken_wikilinks"
	NameStaleDocs       = "stale_docs"
)

// CheckResult holds the outcome of a single check.
type CheckResult struct {
	// Name is a stable check identifier used in output and downstream processing.
	Name string
	// Outcome is pass, fail, warn, or skip.
	Outcome Outcome
	// Summary is a human-readable one-line result intended for concise display.
	Summary string
	// Details provides optional supporting lines for diagnostics or remediation.
	Details []string
	// Count is the number of offending items for counting checks.
	Count int
	// Data carries an optional checker-specific payload for structured consumers.
	Data any
}

// Passed reports whether the check met its acceptance criteria.
func (r *CheckResult) Passed() bool {
	return r.Outcome == OutcomePass || r.Outcome == OutcomeSkip
}

// Display renders the outcome as it appears in a report, e.g. "fail(3)" for a
// failing counting check.
func (r *CheckResult) Display() string {
	if r.Outcome == OutcomeFail && r.Count > 0 {
		return fmt.Sprintf("%s(%d)", r.Outcome, r.Count)
	}
	return string(r.Outcome)
}

// Checker runs a single check over a document set. Implementations must not
// modify the set.
type Checker interface {
	Name() string
	Check(ctx context.Context, set *docset.Set) (*CheckResult, error)
}

// Skipped returns the result reported for a check disabled by configuration.
func Skipped(name, reason string) *CheckResult {
	return &CheckResult{Name: name, Outcome: OutcomeSkip, Summary: reason}
}
