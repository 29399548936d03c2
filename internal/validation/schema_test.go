package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const validReportJSON = `{
  "version": 1,
  "score": 70,
  "status": "warning",
  "checks": {
    "broken_wikilinks": "fail(2)",
    "inline_links": "pass",
    "related_sections": "pass",
    "stale_docs": "skip"
  }
}`

const invalidReportJSON = `{
  "version": 1,
  "score": 140,
  "status": "fine",
  "checks": {"inline_links": "broken"}
}`

const validSnapshotJSON = `{
  "version": 1,
  "session_id": "mk-1700000000",
  "started_at": "1700000000",
  "ended_at": "1700000000",
  "summary": "OpenKit memory session capture",
  "actions": ["capture"]
}`

const validConfigYAML = `version: 1
mode: assisted
health_thresholds:
  healthy: 85
  warning: 70
linking:
  require_inline_links: true
doctor:
  exclude: ["archive/**"]
  deductions:
    stale_docs: 5
`

const invalidConfigYAML = `health_thresholds:
  healthy: 150
doctor:
  stale_after_days: "soon"
  unknown: true
`

func TestValidateReportJSON_Valid(t *testing.T) {
	errs := ValidateReportJSON([]byte(validReportJSON))
	require.Empty(t, errs, "valid report should have no errors")
}

func TestValidateReportJSON_Invalid(t *testing.T) {
	errs := ValidateReportJSON([]byte(invalidReportJSON))
	require.NotEmpty(t, errs, "invalid report should have errors")

	joined := joinErrs(errs)
	require.Contains(t, joined, "/score")
	require.Contains(t, joined, "/status")
	require.Contains(t, joined, "/checks/inline_links")
}

func TestValidateReportJSON_Malformed(t *testing.T) {
	errs := ValidateReportJSON([]byte(`{"version":`))
	require.Len(t, errs, 1)
	require.Contains(t, errs[0], "JSON parse error")
}

func TestValidateSnapshotJSON(t *testing.T) {
	require.Empty(t, ValidateSnapshotJSON([]byte(validSnapshotJSON)))

	errs := ValidateSnapshotJSON([]byte(`{"version":1,"session_id":"","actions":[]}`))
	require.NotEmpty(t, errs)
	joined := joinErrs(errs)
	require.Contains(t, joined, "session_id")
	require.Contains(t, joined, "actions")
}

func TestValidateConfigBytes_Valid(t *testing.T) {
	require.Empty(t, ValidateConfigBytes([]byte(validConfigYAML)))
	require.Empty(t, ValidateConfigBytes(nil), "empty config is valid")
}

func TestValidateConfigBytes_Invalid(t *testing.T) {
	errs := ValidateConfigBytes([]byte(invalidConfigYAML))
	require.NotEmpty(t, errs)

	joined := joinErrs(errs)
	require.Contains(t, joined, "healthy")
	require.Contains(t, joined, "stale_after_days")
	require.Contains(t, joined, "unknown")
}

func TestValidateConfigBytes_BadYAML(t *testing.T) {
	errs := ValidateConfigBytes([]byte("doctor: [unclosed"))
	require.Len(t, errs, 1)
	require.Contains(t, errs[0], "YAML parse error")
}

func joinErrs(errs []string) string {
	return strings.Join(errs, "\n")
}
