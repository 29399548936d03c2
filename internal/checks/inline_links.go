package checks

import (
	"context"

	"github.com/openkit-devtools/openkit/internal/docset"
	"github.com/openkit-devtools/openkit/internal/wikilink"
)

// RelatedMarker is the literal heading that starts a Related section.
const RelatedMarker = "## Related"

// InlineLinksChecker passes when at least one document links contextually,
// that is with a wikilink before its Related heading.
type InlineLinksChecker struct {
	// Marker overrides RelatedMarker when non-empty.
	Marker string
}

// InlineLinksData holds the structured output of an inline links check.
type InlineLinksData struct {
	// Document is the first document with an inline link, empty on failure.
	Document string
}

var _ Checker = (*InlineLinksChecker)(nil)

func (c *InlineLinksChecker) Name() string { return NameInlineLinks }

func (c *InlineLinksChecker) Check(ctx context.Context, set *docset.Set) (*CheckResult, error) {
	marker := c.Marker
	if marker == "" {
		marker = RelatedMarker
	}

	for _, doc := range set.Docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if wikilink.ContainsBefore(doc.Content, marker) {
			return &CheckResult{
				Name:    c.Name(),
				Outcome: OutcomePass,
				Summary: "Inline links: found in " + doc.Path,
				Data:    &InlineLinksData{Document: doc.Path},
			}, nil
		}
	}

	return &CheckResult{
		Name:    c.Name(),
		Outcome: OutcomeFail,
		Summary: "Inline links: no document links before its Related section",
		Data:    &InlineLinksData{},
	}, nil
}
