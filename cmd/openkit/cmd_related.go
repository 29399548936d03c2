package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openkit-devtools/openkit/internal/related"
)

func newRelatedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "related <file> <link>...",
		Short: "Create or replace a document's Related section",
		Long: `Write a "## Related" section listing each link as a [[wikilink]] bullet.

Links are trimmed and deduplicated. An existing level-2 Related section is
replaced up to the next heading of the same or higher level; otherwise the
section is appended. Relative file paths resolve against the project root.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveProject(cmd, true)
			if err != nil {
				return err
			}
			path := args[0]
			if !filepath.IsAbs(path) {
				path = filepath.Join(root, path)
			}

			changed, err := related.Sync(path, args[1:])
			if err != nil {
				return err
			}
			if changed {
				fmt.Fprintf(cmd.OutOrStdout(), "Updated Related section in %s\n", args[0]) //nolint:errcheck
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Related section in %s is up to date\n", args[0]) //nolint:errcheck
			}
			return nil
		},
	}
}
