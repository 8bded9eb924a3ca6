package model

// Outcome describes what happened to a feature or to one of its steps.
type Outcome int

const (
	// OutcomeApplied means the change was written to disk.
	OutcomeApplied Outcome = iota
	// OutcomeSkipped means nothing had to be (or could be) done.
	OutcomeSkipped
	// OutcomeUnsupported means the feature has no implementation for the framework.
	OutcomeUnsupported
	// OutcomeFailed means an error stopped the feature.
	OutcomeFailed
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeUnsupported:
		return "unsupported"
	case OutcomeFailed:
		return "failed"
	}

	return "unknown"
}

// StepResult records a single file mutation attempted by a feature.
type StepResult struct {
	Name    string
	Target  Path
	Outcome Outcome
	Detail  string
}

// FeatureResult is the report of configuring one feature on a project.
type FeatureResult struct {
	Feature   Feature
	Framework Framework
	Outcome   Outcome
	Reason    string
	Steps     []StepResult
	// Warnings are shown to the user whatever the outcome.
	Warnings []string
}

// AddStep appends a step to the result.
func (r *FeatureResult) AddStep(name string, target Path, outcome Outcome, detail string) {
	r.Steps = append(r.Steps, StepResult{
		Name:    name,
		Target:  target,
		Outcome: outcome,
		Detail:  detail,
	})
}

// AddWarning records a message the user should see.
func (r *FeatureResult) AddWarning(message string) {
	r.Warnings = append(r.Warnings, message)
}

// Applied reports whether at least one step changed the project.
func (r FeatureResult) Applied() bool {
	for _, step := range r.Steps {
		if step.Outcome == OutcomeApplied {
			return true
		}
	}

	return false
}
