package checks

import (
	"context"
	"fmt"

	"github.com/openkit-devtools/openkit/internal/docset"
	"github.com/openkit-devtools/openkit/internal/wikilink"
)

// BrokenWikilinksChecker reports wikilinks whose targets are not documents
// of the scanned set.
type BrokenWikilinksChecker struct {
	// StripPrefix is removed from targets before lookup. Empty disables it.
	StripPrefix string
}

// BrokenWikilinksData holds the structured output of a broken wikilinks check.
type BrokenWikilinksData struct {
	Links []wikilink.Broken
}

var _ Checker = (*BrokenWikilinksChecker)(nil)

func (c *BrokenWikilinksChecker) Name() string { return NameBrokenWikilinks }

func (c *BrokenWikilinksChecker) Check(ctx context.Context, set *docset.Set) (*CheckResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	broken := wikilink.Resolver{StripPrefix: c.StripPrefix}.Resolve(set)

	result := &CheckResult{
		Name:    c.Name(),
		Outcome: passOrFail(len(broken) == 0),
		Count:   len(broken),
		Details: wikilink.Strings(broken),
		Data:    &BrokenWikilinksData{Links: broken},
	}
	if len(broken) == 0 {
		result.Summary = "Wikilinks: all resolve"
	} else {
		result.Summary = fmt.Sprintf("Wikilinks: %d broken", len(broken))
	}
	return result, nil
}
