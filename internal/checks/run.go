package checks

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/openkit-devtools/openkit/internal/docset"
	"github.com/openkit-devtools/openkit/internal/wikilink"
)

// RunChecks executes every checker against the same set concurrently and
// returns the results in checker order. The first error cancels the others
// and no results are returned.
func RunChecks(ctx context.Context, checkers []Checker, set *docset.Set) ([]*CheckResult, error) {
	results := make([]*CheckResult, len(checkers))

	g, ctx := errgroup.WithContext(ctx)
	for i, c := range checkers {
		g.Go(func() error {
			r, err := c.Check(ctx, set)
			if err != nil {
				return err
			}
			slog.Debug("Check finished", "check", r.Name, "outcome", r.Outcome, "count", r.Count)
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// DefaultCheckers returns the four doctor checks in report order.
func DefaultCheckers() []Checker {
	return []Checker{
		&InlineLinksChecker{},
		&RelatedSectionsChecker{Required: DefaultRequiredHubs},
		&BrokenWikilinksChecker{StripPrefix: wikilink.DefaultStripPrefix},
		&StaleDocsChecker{},
	}
}
