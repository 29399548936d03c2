// Package scoring reduces check results to a 0-100 health score and a status.
package scoring

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/openkit-devtools/openkit/internal/checks"
)

// Status is the traffic-light classification of a score.
type Status string

const (
	StatusHealthy  Status = "healthy"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

var statusRank = map[Status]int{
	StatusCritical: 0,
	StatusWarning:  1,
	StatusHealthy:  2,
}

func (s Status) String() string {
	return string(s)
}

// AtLeast returns true if s is at or above the target status.
func (s Status) AtLeast(target Status) bool {
	return statusRank[s] >= statusRank[target]
}

// ParseStatus converts a flag value to a Status.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "healthy":
		return StatusHealthy, nil
	case "warning":
		return StatusWarning, nil
	case "critical":
		return StatusCritical, nil
	default:
		return StatusCritical, fmt.Errorf("invalid status %q: must be healthy, warning, or critical", s)
	}
}

// Policy constants. Downstream tooling keys on these exact values.
const (
	Baseline = 100

	DefaultHealthyThreshold = 85
	DefaultWarningThreshold = 70

	DeductInlineLinks     = 25
	DeductRelatedSections = 20
	DeductBrokenWikilinks = 30
	DeductStaleDocs       = 10
)

// Policy holds the flat per-check deductions and the status cutoffs.
type Policy struct {
	// Deductions maps a check name to the points removed when it fails or warns.
	Deductions map[string]int
	// Healthy is the minimum score for StatusHealthy.
	Healthy int
	// Warning is the minimum score for StatusWarning.
	Warning int
}

// DefaultPolicy returns the standard deductions and thresholds.
func DefaultPolicy() Policy {
	return Policy{
		Deductions: DefaultDeductions(),
		Healthy:    DefaultHealthyThreshold,
		Warning:    DefaultWarningThreshold,
	}
}

// DefaultDeductions returns a fresh copy of the standard deductions.
func DefaultDeductions() map[string]int {
	return map[string]int{
		checks.NameInlineLinks:     DeductInlineLinks,
		checks.NameRelatedSections: DeductRelatedSections,
		checks.NameBrokenWikilinks: DeductBrokenWikilinks,
		checks.NameStaleDocs:       DeductStaleDocs,
	}
}

// Validate rejects thresholds and deductions outside the score range.
func (p Policy) Validate() error {
	if p.Healthy < 0 || p.Healthy > Baseline || p.Warning < 0 || p.Warning > Baseline {
		return fmt.Errorf("health thresholds must be within 0-%d (healthy=%d, warning=%d)", Baseline, p.Healthy, p.Warning)
	}
	if p.Warning > p.Healthy {
		return fmt.Errorf("warning threshold %d exceeds healthy threshold %d", p.Warning, p.Healthy)
	}
	for name, points := range p.Deductions {
		if points < 0 {
			return fmt.Errorf("deduction for %s must not be negative, got %d", name, points)
		}
	}
	return nil
}

// Classify maps a clamped score to a status.
func (p Policy) Classify(score int) Status {
	switch {
	case score >= p.Healthy:
		return StatusHealthy
	case score >= p.Warning:
		return StatusWarning
	default:
		return StatusCritical
	}
}

// Deduction records points removed for one check.
type Deduction struct {
	Check  string
	Points int
}

// Result is the scoring output.
type Result struct {
	Score      int
	Status     Status
	Deductions []Deduction
}

// Evaluate starts from Baseline, subtracts the deduction of every check that
// failed or warned, clamps to [0, Baseline], and classifies. Deductions are
// flat and independent of one another.
func (p Policy) Evaluate(results []*checks.CheckResult) *Result {
	score := Baseline
	var applied []Deduction
	for _, r := range results {
		if r == nil || r.Passed() {
			continue
		}
		points := p.Deductions[r.Name]
		if points == 0 {
			continue
		}
		score -= points
		applied = append(applied, Deduction{Check: r.Name, Points: points})
		slog.Debug("Score deduction", "check", r.Name, "outcome", r.Outcome, "points", points)
	}
	score = max(0, min(Baseline, score))

	return &Result{
		Score:      score,
		Status:     p.Classify(score),
		Deductions: applied,
	}
}
