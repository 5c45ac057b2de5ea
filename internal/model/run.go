package model

import "time"

// RunArgs is the validated input bundle for a `run` invocation. CLI input
// is rejected here, before the pipeline starts, via go-playground/validator
// tags.
type RunArgs struct {
	File        Path   `validate:"required"`
	TestFile    Path   `validate:"required"`
	TestCmd     string `validate:"omitempty"`
	Function    string `validate:"omitempty"`
	Session     string `validate:"omitempty"`
	TimeoutMult int    `validate:"min=1"`
	JSON        bool
	Quiet       bool
	InPlace     bool
}

// Run is the aggregate result of one `run` invocation: the inputs, the
// baseline calibration, and the vector of per-mutant outcomes in execution
// order, which is also discovery/source order.
type Run struct {
	File        Path
	TestFile    Path
	TestCmd     string
	Function    string
	TimeoutMult int

	Baseline BaselineResult
	Outcomes []Outcome

	StartedAt time.Time
	DurationMS int64
}

// Score is the mutation score: killed/(killed+survived) when that
// denominator is positive; 1.0 when there were no mutants at all; 0.0
// otherwise (every mutant was Timeout/Unviable, a run that tells you
// nothing about coverage, not a perfect one).
func (r Run) Score() float64 {
	killed, survived, _, _ := r.Counts()
	if killed+survived > 0 {
		return float64(killed) / float64(killed+survived)
	}

	if len(r.Outcomes) == 0 {
		return 1.0
	}

	return 0.0
}

// Counts tallies each outcome kind across the Run.
func (r Run) Counts() (killed, survived, timeout, unviable int) {
	for _, o := range r.Outcomes {
		switch o.Result {
		case Killed:
			killed++
		case Survived:
			survived++
		case Timeout:
			timeout++
		case Unviable:
			unviable++
		}
	}

	return killed, survived, timeout, unviable
}

// SessionState is the last Run serialized for recall by `status`/`show`,
// keyed optionally by session id to namespace concurrent agents' temp dirs
// and state files.
type SessionState struct {
	SessionID string
	Run       Run
}
