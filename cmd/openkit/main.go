package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/openkit-devtools/openkit/internal/doctor"
)

// Exit codes for different failure modes
const (
	ExitSuccess      = 0 // Command completed and every gate passed
	ExitDoctorFailed = 1 // Audit completed but found broken links or a low status
	ExitError        = 2 // Configuration, I/O or usage error
)

// HealthFailureError indicates that the audit ran successfully but the
// documentation did not reach the requested status.
type HealthFailureError struct {
	Message string
}

func (e *HealthFailureError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var brokenErr *doctor.BrokenLinksError
	if errors.As(err, &brokenErr) {
		return ExitDoctorFailed
	}
	var healthErr *HealthFailureError
	if errors.As(err, &healthErr) {
		return ExitDoctorFailed
	}
	// All other errors are configuration/runtime errors
	return ExitError
}
