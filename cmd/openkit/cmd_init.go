package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openkit-devtools/openkit/internal/memory"
)

func newInitCommand() *cobra.Command {
	var force bool
	var yes bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the memory kernel layout",
		Long: `Initialize the memory kernel in the project root.

Creates .openkit/ops/{sessions,observations,tensions,health,queue} and
.openkit/memory, then writes config.yaml, derivation.yaml and the
maintenance queue. Existing files are kept unless --force is given; on an
interactive terminal --force asks before overwriting (skip with --yes).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initCommandE(cmd, force, yes)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing memory files")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask before overwriting")

	return cmd
}

func initCommandE(cmd *cobra.Command, force, yes bool) error {
	root, err := resolveProject(cmd, false)
	if err != nil {
		return err
	}

	if force && !yes && isTerminal(cmd.InOrStdin()) {
		if existing := memory.Existing(root); len(existing) > 0 {
			question := fmt.Sprintf("Overwrite %s?", strings.Join(existing, ", "))
			if !promptConfirm(cmd.InOrStdin(), cmd.OutOrStdout(), question) {
				return errors.New("init aborted: existing memory files were kept")
			}
		}
	}

	res, err := memory.Init(root, force)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized Memory Kernel structure at %s\n", res.Root) //nolint:errcheck
	for _, rel := range res.Written {
		fmt.Fprintf(out, "  wrote %s\n", rel) //nolint:errcheck
	}
	for _, rel := range res.Skipped {
		fmt.Fprintf(out, "  kept %s (use --force to overwrite)\n", rel) //nolint:errcheck
	}
	return nil
}
