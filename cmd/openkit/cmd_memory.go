package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openkit-devtools/openkit/internal/projectconfig"
)

func newMemoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memory",
		Short: "Manage the project memory kernel",
	}

	cmd.PersistentFlags().String("project", "", "Project root (default: nearest directory with .openkit, else the current directory)")

	cmd.AddCommand(newInitCommand())
	cmd.AddCommand(newDoctorCommand())
	cmd.AddCommand(newCaptureCommand())
	cmd.AddCommand(newReviewCommand())
	cmd.AddCommand(newRelatedCommand())

	return cmd
}

// resolveProject returns the --project value, or the current directory.
// With search set it first walks up to the nearest .openkit directory.
func resolveProject(cmd *cobra.Command, search bool) (string, error) {
	project, err := cmd.Flags().GetString("project")
	if err != nil {
		return "", err
	}
	if project != "" {
		abs, err := filepath.Abs(project)
		if err != nil {
			return "", fmt.Errorf("resolving project %q: %w", project, err)
		}
		return abs, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to detect current directory: %w", err)
	}
	if !search {
		return cwd, nil
	}
	root, err := projectconfig.FindProjectRoot(cwd)
	if errors.Is(err, os.ErrNotExist) {
		return cwd, nil
	}
	return root, err
}
