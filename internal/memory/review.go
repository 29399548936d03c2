package memory

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
)

// Review thresholds and their recommendations.
const (
	ObservationThreshold = 10
	TensionThreshold     = 5
	SessionThreshold     = 5

	RecommendObservations = "Run memory review for accumulated observations"
	RecommendTensions     = "Resolve repeated tensions before next implementation phase"
	RecommendSessions     = "Summarize recent sessions into sprint artifacts"
	RecommendNothing      = "Memory operations are within thresholds"
)

// ReviewReport counts the operations backlog.
type ReviewReport struct {
	Sessions        int      `json:"sessions"`
	Observations    int      `json:"observations"`
	Tensions        int      `json:"tensions"`
	Recommendations []string `json:"recommendations"`
}

// Review counts files under the sessions, observations and tensions
// directories and recommends follow-ups for the ones over threshold.
func Review(projectRoot string) (*ReviewReport, error) {
	r := &ReviewReport{}
	var err error
	if r.Sessions, err = countFiles(opsPath(projectRoot, SessionsDir)); err != nil {
		return nil, err
	}
	if r.Observations, err = countFiles(opsPath(projectRoot, ObservationsDir)); err != nil {
		return nil, err
	}
	if r.Tensions, err = countFiles(opsPath(projectRoot, TensionsDir)); err != nil {
		return nil, err
	}

	if r.Observations >= ObservationThreshold {
		r.Recommendations = append(r.Recommendations, RecommendObservations)
	}
	if r.Tensions >= TensionThreshold {
		r.Recommendations = append(r.Recommendations, RecommendTensions)
	}
	if r.Sessions >= SessionThreshold {
		r.Recommendations = append(r.Recommendations, RecommendSessions)
	}
	if len(r.Recommendations) == 0 {
		r.Recommendations = []string{RecommendNothing}
	}
	return r, nil
}

// countFiles counts regular files below dir. A missing dir counts zero.
func countFiles(dir string) (int, error) {
	n := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if d.Type().IsRegular() {
			n++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("counting files in %s: %w", dir, err)
	}
	return n, nil
}
