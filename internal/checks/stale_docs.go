package checks

import (
	"context"
	"fmt"
	"time"

	"github.com/openkit-devtools/openkit/internal/docset"
)

// DefaultStaleAfter is the age past which a document is stale.
const DefaultStaleAfter = 45 * 24 * time.Hour

//go:generate mockgen -destination=mock_clock_test.go -package=checks . Clock

// Clock supplies the current time to the freshness check.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// StaleDocsChecker warns when any document is older than MaxAge.
type StaleDocsChecker struct {
	// MaxAge overrides DefaultStaleAfter when > 0.
	MaxAge time.Duration
	// Clock defaults to SystemClock.
	Clock Clock
}

// StaleDocsData holds the structured output of a stale docs check.
type StaleDocsData struct {
	Stale  []string
	MaxAge time.Duration
}

var _ Checker = (*StaleDocsChecker)(nil)

func (c *StaleDocsChecker) Name() string { return NameStaleDocs }

func (c *StaleDocsChecker) Check(ctx context.Context, set *docset.Set) (*CheckResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	maxAge := c.MaxAge
	if maxAge <= 0 {
		maxAge = DefaultStaleAfter
	}
	var clock Clock = SystemClock{}
	if c.Clock != nil {
		clock = c.Clock
	}
	now := clock.Now()

	var stale, details []string
	for _, doc := range set.Docs {
		age := now.Sub(doc.ModTime)
		// Modification times in the future are clock skew, not freshness.
		if age <= maxAge {
			continue
		}
		stale = append(stale, doc.Path)
		details = append(details, fmt.Sprintf("%s last modified %s ago", doc.Path, age.Truncate(time.Hour)))
	}

	result := &CheckResult{
		Name:    c.Name(),
		Outcome: OutcomePass,
		Count:   len(stale),
		Details: details,
		Data:    &StaleDocsData{Stale: stale, MaxAge: maxAge},
		Summary: fmt.Sprintf("Freshness: all documents updated within %d days", days(maxAge)),
	}
	if len(stale) > 0 {
		result.Outcome = OutcomeWarn
		result.Summary = fmt.Sprintf("Freshness: %d document(s) older than %d days", len(stale), days(maxAge))
	}
	return result, nil
}

func days(d time.Duration) int {
	return int(d / (24 * time.Hour))
}
