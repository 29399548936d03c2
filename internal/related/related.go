// Package related writes the "## Related" section of a markdown document.
package related

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/openkit-devtools/openkit/internal/docset"
)

// heading is the section title Sync maintains.
const heading = "Related"

// ErrNoLinks is returned when no usable link is supplied.
var ErrNoLinks = errors.New("at least one related link is required")

// Normalize trims links and drops empties and duplicates, keeping order.
func Normalize(links []string) []string {
	seen := make(map[string]struct{}, len(links))
	var out []string
	for _, l := range links {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

// Section renders a Related section listing links as wikilink bullets.
func Section(links []string) string {
	var b strings.Builder
	b.WriteString("## " + heading + "\n\n")
	for _, l := range links {
		fmt.Fprintf(&b, "- [[%s]]\n", l)
	}
	return b.String()
}

// Apply returns content with its Related section replaced by one listing
// links. The existing section runs from its level-2 heading to the next
// heading of level 2 or above. Without one the section is appended.
func Apply(content string, links []string) (string, error) {
	links = Normalize(links)
	if len(links) == 0 {
		return "", ErrNoLinks
	}
	section := Section(links)

	outline := docset.Outline(content)
	for i, h := range outline {
		if h.Level != 2 || h.Text != heading {
			continue
		}
		end := len(content)
		for _, next := range outline[i+1:] {
			if next.Level <= 2 {
				end = next.Offset
				break
			}
		}
		if end == len(content) {
			return content[:h.Offset] + section, nil
		}
		return content[:h.Offset] + section + "\n" + content[end:], nil
	}

	trimmed := strings.TrimRight(content, " \t\r\n")
	if trimmed == "" {
		return section, nil
	}
	return trimmed + "\n\n" + section, nil
}

// Sync rewrites the Related section of the file at path. It reports whether
// the file changed.
func Sync(path string, links []string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, &docset.IOError{Op: "read", Path: path, Err: err}
	}
	updated, err := Apply(string(data), links)
	if err != nil {
		return false, err
	}
	if updated == string(data) {
		return false, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, &docset.IOError{Op: "stat", Path: path, Err: err}
	}
	if err := os.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		return false, &docset.IOError{Op: "write", Path: path, Err: err}
	}
	return true, nil
}
