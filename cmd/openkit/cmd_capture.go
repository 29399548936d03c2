package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openkit-devtools/openkit/internal/memory"
)

func newCaptureCommand() *cobra.Command {
	var opts memory.CaptureOptions

	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Capture a session snapshot",
		Long: `Write a session snapshot to .openkit/ops/sessions.

The session id defaults to mk-<unix seconds> and the actions to "capture".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveProject(cmd, true)
			if err != nil {
				return err
			}
			res, err := memory.Capture(root, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Captured session %s\n", res.Snapshot.SessionID) //nolint:errcheck
			fmt.Fprintf(cmd.OutOrStdout(), "Snapshot: %s\n", res.Path)                       //nolint:errcheck
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.SessionID, "session-id", "", "Session identifier")
	cmd.Flags().StringVar(&opts.Summary, "summary", "", "One-line session summary")
	cmd.Flags().StringArrayVar(&opts.Actions, "action", nil, "Action performed in the session (repeatable)")

	return cmd
}
