package materialize

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"

	oerrors "github.com/GilTRipper/create-react-native-app/internal/errors"
	"github.com/GilTRipper/create-react-native-app/internal/output"
	"github.com/GilTRipper/create-react-native-app/internal/templates"
)

const (
	dirMode        os.FileMode = 0o755
	executableMode os.FileMode = 0o755
)

// CopyOptions configures Copy.
type CopyOptions struct {
	// Exclusions are evaluated against each entry's template-relative path.
	Exclusions Exclusions

	// Dotfiles are renamed in the target once the copy completes.
	Dotfiles []templates.Rename

	// Executables are written with mode 0755.
	Executables []string

	Sink Sink
}

// Copy instantiates src into targetRoot. targetRoot and its parents are
// created when missing. Any I/O failure aborts the copy and is returned
// as an ErrCopy; the target keeps whatever was written before the failure.
func Copy(ctx context.Context, src fs.FS, targetRoot string, opts CopyOptions) (*Report, error) {
	sink := sinkOrNop(opts.Sink)
	sink.Event(Event{Phase: PhaseCopy, Status: StatusStarted, Message: targetRoot})

	report, err := copyTree(ctx, src, targetRoot, opts)
	if err != nil {
		sink.Event(Event{Phase: PhaseCopy, Status: StatusFailed, Message: err.Error()})
		return report, err
	}

	sink.Event(Event{Phase: PhaseCopy, Status: StatusSucceeded, Message: targetRoot})
	return report, nil
}

func copyTree(ctx context.Context, src fs.FS, targetRoot string, opts CopyOptions) (*Report, error) {
	report := NewReport()

	if err := ctx.Err(); err != nil {
		return report, oerrors.NewCopyError(targetRoot, err)
	}
	if err := os.MkdirAll(targetRoot, dirMode); err != nil {
		return report, oerrors.NewCopyError(targetRoot, err)
	}

	var files, skipped int
	err := copy.Copy(".", targetRoot, copy.Options{
		FS: src,
		Skip: func(info os.FileInfo, srcPath, _ string) (bool, error) {
			if err := ctx.Err(); err != nil {
				return false, err
			}
			rel := filepath.ToSlash(srcPath)
			if opts.Exclusions.Excludes(rel) {
				output.Debug("excluded from copy", "path", rel)
				skipped++
				return true, nil
			}
			if !info.IsDir() && !info.Mode().IsRegular() {
				// Symlinks and devices have no meaning in a project template.
				output.Debug("skipping non-regular template entry", "path", rel)
				return true, nil
			}
			if !info.IsDir() {
				files++
			}
			return false, nil
		},
		// Embedded files are read-only; the rewriter needs to write them back.
		PermissionControl: copy.AddPermission(0o200),
	})
	if err != nil {
		return report, oerrors.NewCopyError(targetRoot, err)
	}

	for _, rel := range opts.Executables {
		dst := filepath.Join(targetRoot, filepath.FromSlash(rel))
		if err := os.Chmod(dst, executableMode); err != nil && !os.IsNotExist(err) {
			return report, oerrors.NewCopyError(dst, err)
		}
	}

	report.Add(Outcome{
		Phase:   PhaseCopy,
		Path:    ".",
		Kind:    KindApplied,
		Message: fmt.Sprintf("copied %d files, excluded %d entries", files, skipped),
	})

	for _, rn := range opts.Dotfiles {
		o, err := renameDotfile(targetRoot, rn)
		if err != nil {
			return report, err
		}
		report.Add(o)
	}

	return report, nil
}

// renameDotfile performs one fixed post-copy rename. A missing source is not an error.
func renameDotfile(targetRoot string, rn templates.Rename) (Outcome, error) {
	from := filepath.Join(targetRoot, filepath.FromSlash(rn.From))
	to := filepath.Join(targetRoot, filepath.FromSlash(rn.To))

	if _, err := os.Lstat(from); err != nil {
		if os.IsNotExist(err) {
			return Outcome{Phase: PhaseCopy, Path: rn.From, Kind: KindRenameSkipped, Message: "not present"}, nil
		}
		return Outcome{}, oerrors.NewCopyError(from, err)
	}

	if err := os.Rename(from, to); err != nil {
		return Outcome{}, oerrors.NewCopyError(from, err)
	}
	return Outcome{Phase: PhaseCopy, Path: rn.From, Kind: KindApplied, Message: "renamed to " + rn.To}, nil
}
