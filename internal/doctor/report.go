package doctor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openkit-devtools/openkit/internal/checks"
	"github.com/openkit-devtools/openkit/internal/scoring"
	"github.com/openkit-devtools/openkit/internal/validation"
)

// SchemaVersion is the version field of every Report.
const SchemaVersion = 1

// Report is the persisted and printed summary of a doctor run.
type Report struct {
	Version int            `json:"version" yaml:"version"`
	Score   int            `json:"score" yaml:"score"`
	Status  scoring.Status `json:"status" yaml:"status"`
	// Checks maps a check name to its displayed outcome, e.g. "fail(2)".
	Checks map[string]string `json:"checks" yaml:"checks"`
}

// NewReport assembles a Report from check results and their score.
func NewReport(results []*checks.CheckResult, score *scoring.Result) *Report {
	r := &Report{
		Version: SchemaVersion,
		Score:   score.Score,
		Status:  score.Status,
		Checks:  make(map[string]string, len(results)),
	}
	for _, res := range results {
		r.Checks[res.Name] = res.Display()
	}
	return r
}

// MarshalIndented returns the report as indented JSON after checking it
// against the embedded report schema.
func (r *Report) MarshalIndented() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing doctor report: %w", err)
	}
	if errs := validation.ValidateReportJSON(data); len(errs) > 0 {
		return nil, fmt.Errorf("doctor report does not match schema: %s", strings.Join(errs, "; "))
	}
	return data, nil
}
