// Package materialize turns the bundled template into a named project:
// it copies the tree, rewrites identifiers inside a known set of files, and
// renames the files and directories whose paths spell the defaults.
package materialize

import (
	"fmt"
	"sync"
)

// Phase names a step of a materialization run.
type Phase string

const (
	PhaseCopy            Phase = "copy"
	PhaseSubstitute      Phase = "substitute"
	PhaseAppManifest     Phase = "app-manifest"
	PhaseAndroidManifest Phase = "android-manifest"
	PhaseRename          Phase = "rename"
	PhaseRewrite         Phase = "rewrite"
	PhaseInstall         Phase = "install"
	PhasePods            Phase = "pods"
	PhaseGit             Phase = "git"
)

// Kind classifies the outcome of a single step.
type Kind string

const (
	// KindApplied means the step changed the target tree.
	KindApplied Kind = "applied"

	// KindUnchanged means the step ran and found nothing to change.
	KindUnchanged Kind = "unchanged"

	// KindFileSubstitutionSkipped means a listed file was absent, unreadable or unwritable.
	KindFileSubstitutionSkipped Kind = "file-substitution-skipped"

	// KindManifestPatchSkipped means a structured manifest patch could not be applied.
	KindManifestPatchSkipped Kind = "manifest-patch-skipped"

	// KindRenameSkipped means the rename source did not exist.
	KindRenameSkipped Kind = "rename-skipped"

	// KindRenameFailed means the rename source existed but could not be moved.
	KindRenameFailed Kind = "rename-failed"

	// KindPostStepFailed means an install, pods or git step failed.
	KindPostStepFailed Kind = "post-step-failed"

	// KindPostStepSkipped means a post step did not run because a precondition was not met.
	KindPostStepSkipped Kind = "post-step-skipped"
)

// IsWarning reports whether the outcome deserves the user's attention.
// Missing optional paths are expected and stay quiet.
func (k Kind) IsWarning() bool {
	switch k {
	case KindManifestPatchSkipped, KindRenameFailed, KindPostStepFailed:
		return true
	default:
		return false
	}
}

// IsSkip reports whether the step did not take effect.
func (k Kind) IsSkip() bool {
	switch k {
	case KindApplied, KindUnchanged:
		return false
	default:
		return true
	}
}

// Outcome records what happened to one step.
type Outcome struct {
	Phase   Phase  `json:"phase"`
	Path    string `json:"path,omitempty"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message,omitempty"`

	// Remediation lists commands the user can run to finish a failed step by hand.
	Remediation []string `json:"remediation,omitempty"`

	Err error `json:"-"`
}

// String renders the outcome for logs.
func (o Outcome) String() string {
	s := fmt.Sprintf("%s %s: %s", o.Phase, o.Path, o.Kind)
	if o.Message != "" {
		s += " (" + o.Message + ")"
	}
	return s
}

// Report aggregates the outcomes of a run. It is safe for concurrent use.
type Report struct {
	mu       sync.Mutex
	outcomes []Outcome
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

// Add appends outcomes.
func (r *Report) Add(o ...Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, o...)
}

// Merge appends every outcome of other.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Add(other.Outcomes()...)
}

// Outcomes returns a copy of all outcomes in the order they were added.
func (r *Report) Outcomes() []Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Outcome, len(r.outcomes))
	copy(out, r.outcomes)
	return out
}

// Phase returns the outcomes recorded for one phase.
func (r *Report) Phase(p Phase) []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes() {
		if o.Phase == p {
			out = append(out, o)
		}
	}
	return out
}

// Warnings returns outcomes whose kind is a warning.
func (r *Report) Warnings() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes() {
		if o.Kind.IsWarning() {
			out = append(out, o)
		}
	}
	return out
}

// Skipped returns every outcome that did not take effect.
func (r *Report) Skipped() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes() {
		if o.Kind.IsSkip() {
			out = append(out, o)
		}
	}
	return out
}

// Find returns the first outcome for phase and path.
func (r *Report) Find(p Phase, path string) (Outcome, bool) {
	for _, o := range r.Outcomes() {
		if o.Phase == p && o.Path == path {
			return o, true
		}
	}
	return Outcome{}, false
}

// reportJSON is the serialized form of Report.
type reportJSON struct {
	Outcomes []Outcome `json:"outcomes"`
}

// Snapshot returns a value suitable for JSON or YAML encoding.
func (r *Report) Snapshot() interface{} {
	return reportJSON{Outcomes: r.Outcomes()}
}
