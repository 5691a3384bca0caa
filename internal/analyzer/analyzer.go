// Package analyzer implements the four independent competitor
// analyzers (web, seo, news, social) and the runner that executes a
// requested subset of them against a single competitor.
package analyzer

import (
	"time"

	"github.com/marketscout/compete-cli/internal/model"
)

// Status classifies the outcome of one analysis step.
type Status string

const (
	// StatusOK means the step ran and produced data.
	StatusOK Status = "ok"
	// StatusSkipped means a precondition was missing (e.g. no site
	// URL configured). Not an error.
	StatusSkipped Status = "skipped"
	// StatusEmpty means the step ran cleanly but found nothing.
	StatusEmpty Status = "empty"
	// StatusFailed means a fetch or parse failure was absorbed.
	StatusFailed Status = "failed"
)

// StepReport records how a single analysis step went. Err is only set
// for StatusFailed and is informational: the run never aborts on it.
type StepReport struct {
	Kind     model.AnalysisKind
	Status   Status
	Err      error
	Duration time.Duration
}
