package materialize

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/GilTRipper/create-react-native-app/internal/errors"
	"github.com/GilTRipper/create-react-native-app/internal/output"
	"github.com/GilTRipper/create-react-native-app/internal/project"
	"github.com/GilTRipper/create-react-native-app/internal/templates"
)

// Rewrite turns the copied template at root into the project described by
// spec. It runs, strictly in order:
//
//  1. placeholder substitution over the manifest's file list
//  2. the display-name guarantee on the app manifest
//  3. package attribute injection into the Android manifest
//  4. path renames, then the Android package move
//
// Per-file problems are recorded in the report and never abort the run.
// An error is returned only when the run cannot proceed at all: the root is
// missing or unreadable, the rename targets cannot be rendered, or ctx is done.
func Rewrite(ctx context.Context, root string, spec project.Spec, m *templates.Manifest, sink Sink) (*Report, error) {
	sink = sinkOrNop(sink)
	report := NewReport()

	fail := func(location string, err error) (*Report, error) {
		rerr := oerrors.NewRewriteError(location, err)
		sink.Event(Event{Phase: PhaseRewrite, Status: StatusFailed, Message: err.Error()})
		return report, rerr
	}

	sink.Event(Event{Phase: PhaseRewrite, Status: StatusStarted, Message: root})

	info, err := os.Stat(root)
	if err != nil {
		return fail(root, err)
	}
	if !info.IsDir() {
		return fail(root, fmt.Errorf("%s is not a directory", root))
	}
	if _, err := os.ReadDir(root); err != nil {
		return fail(root, err)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return fail(root, err)
	}
	projectFs := afero.NewBasePathFs(afero.NewOsFs(), abs)

	// Render rename targets before touching any file so a broken manifest
	// fails the run cleanly.
	renames, err := templates.NewRenderer(spec).RenderRenames(m.Renames)
	if err != nil {
		return fail(root, err)
	}

	phases := []struct {
		phase Phase
		run   func() []Outcome
	}{
		{PhaseSubstitute, func() []Outcome {
			return substituteFiles(ctx, projectFs, m.Substitute, spec.Placeholders(m.Placeholders))
		}},
		{PhaseAppManifest, func() []Outcome {
			if m.AppManifest == nil {
				return nil
			}
			return []Outcome{ensureDisplayName(root, m.AppManifest.Path, m.AppManifest.DisplayNameField, spec.DisplayName)}
		}},
		{PhaseAndroidManifest, func() []Outcome {
			if m.AndroidManifest == "" {
				return nil
			}
			return []Outcome{ensurePackageAttr(root, m.AndroidManifest, spec.BundleIdentifier)}
		}},
		{PhaseRename, func() []Outcome {
			var out []Outcome
			for _, rn := range renames {
				out = append(out, renamePath(root, rn))
			}
			if m.AndroidPackage != nil {
				out = append(out, moveAndroidPackage(root, *m.AndroidPackage, spec.AndroidPackagePath()))
			}
			return out
		}},
	}

	for _, p := range phases {
		if err := ctx.Err(); err != nil {
			return fail(root, err)
		}

		sink.Event(Event{Phase: p.phase, Status: StatusStarted})
		outcomes := p.run()
		logOutcomes(outcomes)
		report.Add(outcomes...)
		sink.Event(Event{Phase: p.phase, Status: StatusSucceeded, Message: summarize(outcomes)})
	}

	sink.Event(Event{Phase: PhaseRewrite, Status: StatusSucceeded, Message: root})
	return report, nil
}

// logOutcomes writes non-fatal problems as warnings and everything else at debug level.
func logOutcomes(outcomes []Outcome) {
	for _, o := range outcomes {
		if o.Kind.IsWarning() || o.Err != nil {
			output.Warn(string(o.Kind), "phase", o.Phase, "path", o.Path, "reason", o.Message)
			continue
		}
		output.Debug(string(o.Kind), "phase", o.Phase, "path", o.Path)
	}
}

func summarize(outcomes []Outcome) string {
	var applied, skipped int
	for _, o := range outcomes {
		if o.Kind == KindApplied {
			applied++
		} else if o.Kind.IsSkip() {
			skipped++
		}
	}
	return fmt.Sprintf("%d applied, %d skipped", applied, skipped)
}
