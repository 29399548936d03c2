// Package wikilink extracts and resolves double-bracket links such as
// [[guide.md]] and [[docs/guide.md#setup]].
package wikilink

import (
	"regexp"
	"strings"
)

// pattern matches [[...]] where the body holds no closing bracket.
var pattern = regexp.MustCompile(`\[\[([^\]]+)\]\]`)

// Link is one wikilink occurrence in a document.
type Link struct {
	// Raw is the text between the brackets.
	Raw string
	// Target is Raw with any #fragment removed and surrounding space trimmed.
	Target string
	// Fragment is the text after the first '#', if any.
	Fragment string
	// Offset is the byte offset of the opening brackets.
	Offset int
}

// Extract returns all wikilinks in content in textual order.
func Extract(content string) []Link {
	matches := pattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return nil
	}
	links := make([]Link, 0, len(matches))
	for _, m := range matches {
		raw := content[m[2]:m[3]]
		target, fragment, _ := strings.Cut(raw, "#")
		links = append(links, Link{
			Raw:      raw,
			Target:   strings.TrimSpace(target),
			Fragment: fragment,
			Offset:   m[0],
		})
	}
	return links
}

// ContainsBefore reports whether a wikilink occurs before the first
// occurrence of marker. When marker does not occur, any wikilink counts.
// Both the marker and the bracket syntax are matched literally.
func ContainsBefore(content, marker string) bool {
	if marker != "" {
		if pos := strings.Index(content, marker); pos >= 0 {
			content = content[:pos]
		}
	}
	return pattern.MatchString(content)
}

// Normalize removes a single leading stripPrefix from target. Targets are
// authored against a virtual root one segment above the scanned root.
func Normalize(target, stripPrefix string) string {
	if stripPrefix == "" {
		return target
	}
	return strings.TrimPrefix(target, stripPrefix)
}
