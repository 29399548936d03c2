package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/openkit-devtools/openkit/internal/doctor"
	"github.com/openkit-devtools/openkit/internal/projectconfig"
	"github.com/openkit-devtools/openkit/internal/reporting"
	"github.com/openkit-devtools/openkit/internal/scoring"
)

func newDoctorCommand() *cobra.Command {
	var format string
	var jsonOut bool
	var write bool
	var minStatus string
	var junitPath string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Audit documentation health",
		Long: `Audit the docs tree and report a 0-100 health score.

Four checks run against one snapshot of the markdown documents:
  inline_links      some document links before its ## Related heading
  related_sections  every required hub has a ## Related section
  broken_wikilinks  every [[target]] resolves to a document
  stale_docs        no document is older than the freshness threshold

A missing hub or unreadable file aborts the audit. Broken wikilinks are
reported and exit with status 1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOut {
				if cmd.Flags().Changed("format") && format != "json" {
					return errors.New("--json cannot be combined with --format " + format)
				}
				format = "json"
			}
			return doctorCommandE(cmd, format, write, minStatus, junitPath)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json, yaml or junit")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Shorthand for --format json")
	cmd.Flags().BoolVar(&write, "write", false, "Write the report to "+projectconfig.HealthPath)
	cmd.Flags().StringVar(&junitPath, "junit", "", "Also write a JUnit XML report to this file")
	cmd.Flags().StringVar(&minStatus, "min-status", "", "Fail unless status is at least healthy, warning or critical")

	return cmd
}

func doctorCommandE(cmd *cobra.Command, format string, write bool, minStatus, junitPath string) error {
	switch format {
	case "text", "json", "yaml", "junit":
	default:
		return fmt.Errorf("unsupported format %q: must be text, json, yaml or junit", format)
	}
	var floor scoring.Status
	if minStatus != "" {
		s, err := scoring.ParseStatus(minStatus)
		if err != nil {
			return err
		}
		floor = s
	}

	root, err := resolveProject(cmd, true)
	if err != nil {
		return err
	}
	cfg, err := projectconfig.Load(root)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := doctor.Run(cmd.Context(), cfg.DocsRoot(root), doctor.FromConfig(cfg))
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if write {
		path, err := doctor.WriteHealthFile(root, res.Report)
		if err != nil {
			return err
		}
		slog.Debug("Wrote health file", "path", path)
	}
	if junitPath != "" {
		if err := reporting.WriteJUnitXML(reporting.ConvertToJUnit(res, elapsed, start), junitPath); err != nil {
			return fmt.Errorf("writing JUnit report: %w", err)
		}
		slog.Debug("Wrote JUnit report", "path", junitPath)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		data, err := res.Report.MarshalIndented()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data)) //nolint:errcheck
	case "yaml":
		data, err := yaml.Marshal(res.Report)
		if err != nil {
			return fmt.Errorf("serializing doctor report: %w", err)
		}
		fmt.Fprint(out, string(data)) //nolint:errcheck
	case "junit":
		data, err := reporting.MarshalJUnitXML(reporting.ConvertToJUnit(res, elapsed, start))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data)) //nolint:errcheck
	default:
		printDoctorText(out, res)
	}

	if !res.Passed() {
		return &doctor.BrokenLinksError{Links: res.BrokenLinks}
	}
	if floor != "" && !res.Report.Status.AtLeast(floor) {
		return &HealthFailureError{
			Message: fmt.Sprintf("memory doctor failed: status %s is below %s (score=%d)", res.Report.Status, floor, res.Report.Score),
		}
	}
	return nil
}
