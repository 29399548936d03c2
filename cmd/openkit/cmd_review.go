package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openkit-devtools/openkit/internal/memory"
)

func newReviewCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Review the memory operations backlog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveProject(cmd, true)
			if err != nil {
				return err
			}
			report, err := memory.Review(root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to serialize review report: %w", err)
				}
				fmt.Fprintln(out, string(data)) //nolint:errcheck
				return nil
			}

			fmt.Fprintf(out, "Memory Review: sessions=%d, observations=%d, tensions=%d\n", //nolint:errcheck
				report.Sessions, report.Observations, report.Tensions)
			for _, item := range report.Recommendations {
				fmt.Fprintf(out, "- %s\n", item) //nolint:errcheck
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")

	return cmd
}
