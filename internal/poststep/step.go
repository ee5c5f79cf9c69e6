package poststep

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/GilTRipper/create-react-native-app/internal/materialize"
	"github.com/GilTRipper/create-react-native-app/internal/output"
	"github.com/GilTRipper/create-react-native-app/internal/project"
)

// DefaultCommitMessage is used for the initial commit.
const DefaultCommitMessage = "Initial commit from @giltripper/create-rn-app"

// Options configures Run.
type Options struct {
	Runner Runner

	// GOOS decides whether CocoaPods are installed. Default: runtime.GOOS.
	GOOS string

	// CommitMessage overrides DefaultCommitMessage.
	CommitMessage string

	Sink materialize.Sink
}

// Run performs the post-materialization steps the spec does not skip, in
// order: dependency install, pod install, git init. Each step's outcome is
// added to report. Run never fails; a failed step only adds a
// post-step-failed outcome with the commands to finish it manually.
func Run(ctx context.Context, spec project.Spec, report *materialize.Report, opts Options) {
	if opts.GOOS == "" {
		opts.GOOS = runtime.GOOS
	}
	if opts.Runner == nil {
		opts.Runner = NewExecRunner()
	}
	if opts.CommitMessage == "" {
		opts.CommitMessage = DefaultCommitMessage
	}

	installed := false
	if !spec.SkipInstall {
		o := step(opts.Sink, materialize.PhaseInstall, func() materialize.Outcome {
			return Install(ctx, opts.Runner, spec)
		})
		report.Add(o)
		installed = o.Kind == materialize.KindApplied
	}

	// Pods depend on node_modules, so skipping install skips them too.
	if opts.GOOS == "darwin" && !spec.SkipInstall && !spec.SkipPods {
		if reason, remediation := podsBlocked(opts.Runner, spec, installed); reason != "" {
			report.Add(materialize.Outcome{
				Phase:       materialize.PhasePods,
				Path:        "ios",
				Kind:        materialize.KindPostStepSkipped,
				Message:     reason,
				Remediation: remediation,
			})
		} else {
			report.Add(step(opts.Sink, materialize.PhasePods, func() materialize.Outcome {
				return Pods(ctx, opts.Runner, spec)
			}))
		}
	}

	if !spec.SkipGit {
		report.Add(step(opts.Sink, materialize.PhaseGit, func() materialize.Outcome {
			o := GitInit(spec.ProjectPath, opts.CommitMessage)
			if o.Kind == materialize.KindPostStepFailed {
				o.Remediation = append([]string{"cd " + projectDir(spec)}, o.Remediation...)
			}
			return o
		}))
	}
}

// step wraps fn with progress events.
func step(sink materialize.Sink, phase materialize.Phase, fn func() materialize.Outcome) materialize.Outcome {
	if sink == nil {
		sink = materialize.NopSink{}
	}

	sink.Event(materialize.Event{Phase: phase, Status: materialize.StatusStarted})
	o := fn()
	if o.Kind == materialize.KindPostStepFailed {
		output.Warn("post-step failed", "step", phase, "err", o.Err)
		sink.Event(materialize.Event{Phase: phase, Status: materialize.StatusFailed, Message: o.Message})
	} else {
		sink.Event(materialize.Event{Phase: phase, Status: materialize.StatusSucceeded, Message: o.Message})
	}
	return o
}

func failed(phase materialize.Phase, path string, err error, remediation ...string) materialize.Outcome {
	return materialize.Outcome{
		Phase:       phase,
		Path:        path,
		Kind:        materialize.KindPostStepFailed,
		Message:     err.Error(),
		Remediation: remediation,
		Err:         err,
	}
}

func applied(phase materialize.Phase, path, format string, args ...interface{}) materialize.Outcome {
	return materialize.Outcome{
		Phase:   phase,
		Path:    path,
		Kind:    materialize.KindApplied,
		Message: fmt.Sprintf(format, args...),
	}
}

// projectDir returns the project path relative to the working directory
// when it lies below it, and the absolute path otherwise.
func projectDir(spec project.Spec) string {
	wd, err := os.Getwd()
	if err != nil {
		return spec.ProjectPath
	}
	rel, err := filepath.Rel(wd, spec.ProjectPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return spec.ProjectPath
	}
	return rel
}
