package wikilink

import (
	"fmt"
	"strings"

	"github.com/openkit-devtools/openkit/internal/docset"
)

// DefaultStripPrefix is removed from link targets before lookup.
const DefaultStripPrefix = "docs/"

// Index is the set of addressable document paths.
type Index map[string]struct{}

// NewIndex records every path with platform separators collapsed to '/'.
func NewIndex(paths []string) Index {
	idx := make(Index, len(paths))
	for _, p := range paths {
		idx[canonical(p)] = struct{}{}
	}
	return idx
}

// Contains reports whether target is an addressable path.
func (idx Index) Contains(target string) bool {
	_, ok := idx[target]
	return ok
}

func canonical(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// Broken is a link whose target does not resolve.
type Broken struct {
	// Source is the relative path of the document holding the link.
	Source string
	// Target is the fragment-stripped, trimmed target as authored.
	Target string
	Offset int
}

func (b Broken) String() string {
	return fmt.Sprintf("%s -> [[%s]]", b.Source, b.Target)
}

// Resolver validates wikilinks against the documents of one Set.
type Resolver struct {
	// StripPrefix is removed once from each target before lookup.
	StripPrefix string
}

// Resolve indexes set and then reports every link occurrence that does not
// resolve, in traversal order then textual order. Index and resolution use the
// same Set so they always agree on which documents exist.
func (r Resolver) Resolve(set *docset.Set) []Broken {
	idx := NewIndex(set.Paths())

	var broken []Broken
	for _, doc := range set.Docs {
		for _, link := range Extract(doc.Content) {
			if link.Target == "" {
				continue
			}
			if idx.Contains(Normalize(link.Target, r.StripPrefix)) {
				continue
			}
			broken = append(broken, Broken{Source: doc.Path, Target: link.Target, Offset: link.Offset})
		}
	}
	return broken
}

// Strings renders broken links as "source -> [[target]]" descriptors.
func Strings(broken []Broken) []string {
	if len(broken) == 0 {
		return nil
	}
	out := make([]string, len(broken))
	for i, b := range broken {
		out[i] = b.String()
	}
	return out
}
