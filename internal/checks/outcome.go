package checks

// Outcome is the result state of a check.
type Outcome string

const (
	// OutcomePass indicates the check passes.
	OutcomePass Outcome = "pass"
	// OutcomeFail indicates the document set misses a quality bar.
	OutcomeFail Outcome = "fail"
	// OutcomeWarn indicates a softer issue, such as stale documents.
	OutcomeWarn Outcome = "warn"
	// OutcomeSkip indicates the check was disabled by configuration.
	OutcomeSkip Outcome = "skip"
)

func passOrFail(ok bool) Outcome {
	if ok {
		return OutcomePass
	}
	return OutcomeFail
}
