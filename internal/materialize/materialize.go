package materialize

import (
	"context"
	"fmt"

	"github.com/GilTRipper/create-react-native-app/internal/project"
	"github.com/GilTRipper/create-react-native-app/internal/templates"
)

// Options configures Materialize.
type Options struct {
	// MatchMode overrides the template's exclusion match mode when set.
	MatchMode *MatchMode

	// ExtraExclusions are added to the template's exclusion patterns.
	ExtraExclusions []string

	Sink Sink
}

// ExclusionsFor returns the copy denylist for m with opts applied.
func ExclusionsFor(m *templates.Manifest, opts Options) (Exclusions, error) {
	mode, ok := ParseMatchMode(m.Exclude.Match)
	if !ok {
		return Exclusions{}, fmt.Errorf("unknown exclusion match mode %q", m.Exclude.Match)
	}
	if opts.MatchMode != nil {
		mode = *opts.MatchMode
	}

	patterns := make([]string, 0, len(m.Exclude.Patterns)+len(opts.ExtraExclusions))
	patterns = append(patterns, m.Exclude.Patterns...)
	patterns = append(patterns, opts.ExtraExclusions...)

	return Exclusions{Patterns: patterns, Mode: mode}, nil
}

// Materialize copies tmpl into spec.ProjectPath and rewrites it for spec.
// The copy runs to completion before any rewriting begins. The returned
// report holds the outcomes of both stages, also when an error is returned.
func Materialize(ctx context.Context, spec project.Spec, tmpl *templates.Template, opts Options) (*Report, error) {
	report := NewReport()

	excl, err := ExclusionsFor(tmpl.Manifest, opts)
	if err != nil {
		return report, err
	}

	copied, err := Copy(ctx, tmpl.FS, spec.ProjectPath, CopyOptions{
		Exclusions:  excl,
		Dotfiles:    tmpl.Manifest.Dotfiles,
		Executables: tmpl.Manifest.Executables,
		Sink:        opts.Sink,
	})
	report.Merge(copied)
	if err != nil {
		return report, err
	}

	rewritten, err := Rewrite(ctx, spec.ProjectPath, spec, tmpl.Manifest, opts.Sink)
	report.Merge(rewritten)
	if err != nil {
		return report, err
	}

	return report, nil
}
