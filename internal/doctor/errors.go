package doctor

import (
	"fmt"
	"strings"
)

// previewLinks is how many broken links a BrokenLinksError message shows.
const previewLinks = 3

// BrokenLinksError is returned by the CLI when a completed audit found broken
// wikilinks.
type BrokenLinksError struct {
	Links []string
}

func (e *BrokenLinksError) Error() string {
	preview := e.Links
	if len(preview) > previewLinks {
		preview = preview[:previewLinks]
	}
	return fmt.Sprintf("memory doctor failed: found broken wikilinks. Examples: %s", strings.Join(preview, " | "))
}
