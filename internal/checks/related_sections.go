package checks

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/openkit-devtools/openkit/internal/docset"
)

// DefaultRequiredHubs are the hub documents every docs tree must carry.
var DefaultRequiredHubs = []string{
	"HUB-DOCS.md",
	"CONTEXT.md",
	"SECURITY.md",
	"QUALITY_GATES.md",
	"requirements/HUB-REQUIREMENTS.md",
	"sprint/HUB-SPRINTS.md",
}

// ErrMissingRequiredDocument is matched by MissingRequiredDocumentError.
var ErrMissingRequiredDocument = errors.New("missing required document")

// MissingRequiredDocumentError reports a required hub that does not exist.
// It aborts a doctor run since the heading condition cannot be evaluated.
type MissingRequiredDocumentError struct {
	// Path is the hub path relative to the docs root.
	Path string
	Err  error
}

func (e *MissingRequiredDocumentError) Error() string {
	return fmt.Sprintf("missing required document %s", e.Path)
}

func (e *MissingRequiredDocumentError) Is(target error) bool {
	return target == ErrMissingRequiredDocument
}

func (e *MissingRequiredDocumentError) Unwrap() error { return e.Err }

// RelatedSectionsChecker verifies that each required hub has a Related
// section. The list is policy supplied by the caller; hubs are never
// discovered.
type RelatedSectionsChecker struct {
	// Required lists hub paths relative to the docs root.
	Required []string
	// Marker overrides RelatedMarker when non-empty.
	Marker string
}

// RelatedSectionsData holds the structured output of a related sections check.
type RelatedSectionsData struct {
	// Missing lists hubs without the Related heading.
	Missing []string
}

var _ Checker = (*RelatedSectionsChecker)(nil)

func (c *RelatedSectionsChecker) Name() string { return NameRelatedSections }

func (c *RelatedSectionsChecker) Check(ctx context.Context, set *docset.Set) (*CheckResult, error) {
	marker := c.Marker
	if marker == "" {
		marker = RelatedMarker
	}

	contents := make([]string, len(c.Required))
	for i, rel := range c.Required {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		content, err := hubContent(set, rel)
		if err != nil {
			return nil, err
		}
		contents[i] = content
	}

	var missing []string
	for i, rel := range c.Required {
		if !strings.Contains(contents[i], marker) {
			missing = append(missing, rel)
		}
	}

	result := &CheckResult{
		Name:    c.Name(),
		Outcome: passOrFail(len(missing) == 0),
		Data:    &RelatedSectionsData{Missing: missing},
	}
	if len(missing) == 0 {
		result.Summary = fmt.Sprintf("Related sections: %d/%d hubs", len(c.Required), len(c.Required))
		return result, nil
	}
	result.Summary = fmt.Sprintf("Related sections: %d of %d hubs lack %q", len(missing), len(c.Required), marker)
	for _, rel := range missing {
		result.Details = append(result.Details, rel+" has no "+marker+" heading")
	}
	return result, nil
}

// hubContent prefers the loaded document and falls back to disk for hubs the
// document filter left out.
func hubContent(set *docset.Set, rel string) (string, error) {
	if doc, ok := set.Lookup(rel); ok {
		return doc.Content, nil
	}
	path := set.Abs(rel)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &MissingRequiredDocumentError{Path: rel, Err: err}
		}
		return "", &docset.IOError{Op: "read", Path: path, Err: err}
	}
	return string(data), nil
}
