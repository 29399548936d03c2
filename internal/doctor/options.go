package doctor

import (
	"context"
	"slices"
	"time"

	"github.com/openkit-devtools/openkit/internal/checks"
	"github.com/openkit-devtools/openkit/internal/docset"
	"github.com/openkit-devtools/openkit/internal/projectconfig"
	"github.com/openkit-devtools/openkit/internal/scoring"
	"github.com/openkit-devtools/openkit/internal/wikilink"
)

// Options carries the policy a doctor run applies to a document set.
type Options struct {
	// Docs filters the walk. Zero value scans every .md file.
	Docs docset.Options
	// StripPrefix is removed once from wikilink targets before lookup.
	StripPrefix string
	// RequiredHubs lists the hub documents that must carry a Related section.
	RequiredHubs []string
	// MaxAge is the freshness threshold.
	MaxAge time.Duration
	// SkipInlineLinks and SkipRelatedSections turn the linking checks off.
	SkipInlineLinks     bool
	SkipRelatedSections bool
	// Policy scores the check results.
	Policy scoring.Policy
	// Clock defaults to checks.SystemClock.
	Clock checks.Clock
}

// DefaultOptions returns the built-in policy.
func DefaultOptions() Options {
	return Options{
		StripPrefix:  wikilink.DefaultStripPrefix,
		RequiredHubs: slices.Clone(checks.DefaultRequiredHubs),
		MaxAge:       checks.DefaultStaleAfter,
		Policy:       scoring.DefaultPolicy(),
	}
}

// FromConfig builds Options from a loaded memory configuration.
func FromConfig(cfg *projectconfig.MemoryConfig) Options {
	opts := Options{
		Docs:                docset.Options{Exclude: slices.Clone(cfg.Doctor.Exclude)},
		StripPrefix:         cfg.Prefix(),
		RequiredHubs:        slices.Clone(cfg.Doctor.RequiredHubs),
		MaxAge:              time.Duration(cfg.Doctor.StaleAfterDays) * 24 * time.Hour,
		SkipInlineLinks:     !cfg.InlineLinksRequired(),
		SkipRelatedSections: !cfg.RelatedSectionRequired(),
		Policy: scoring.Policy{
			Deductions: scoring.DefaultDeductions(),
			Healthy:    cfg.HealthThresholds.Healthy,
			Warning:    cfg.HealthThresholds.Warning,
		},
	}
	for name, points := range cfg.Doctor.Deductions {
		opts.Policy.Deductions[name] = points
	}
	return opts
}

// checkers returns the default checks in report order, configured from o.
// Disabled checks are replaced by a checker that reports skip.
func (o Options) checkers() []checks.Checker {
	cs := checks.DefaultCheckers()
	for i, c := range cs {
		switch c := c.(type) {
		case *checks.InlineLinksChecker:
			if o.SkipInlineLinks {
				cs[i] = disabled{name: checks.NameInlineLinks, reason: "Inline links: disabled by linking.require_inline_links"}
			}
		case *checks.RelatedSectionsChecker:
			if o.SkipRelatedSections {
				cs[i] = disabled{name: checks.NameRelatedSections, reason: "Related sections: disabled by linking.require_related_section"}
			} else {
				c.Required = o.RequiredHubs
			}
		case *checks.BrokenWikilinksChecker:
			c.StripPrefix = o.StripPrefix
		case *checks.StaleDocsChecker:
			c.MaxAge = o.MaxAge
			c.Clock = o.Clock
		}
	}
	return cs
}

type disabled struct {
	name   string
	reason string
}

func (d disabled) Name() string { return d.name }

func (d disabled) Check(ctx context.Context, _ *docset.Set) (*checks.CheckResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return checks.Skipped(d.name, d.reason), nil
}
