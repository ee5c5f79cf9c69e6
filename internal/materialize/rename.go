package materialize

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/GilTRipper/create-react-native-app/internal/output"
	"github.com/GilTRipper/create-react-native-app/internal/templates"
)

// renamePath moves rn.From to rn.To inside root. A missing source is a
// silent skip; an occupied destination is a failure that leaves both paths alone.
func renamePath(root string, rn templates.Rename) Outcome {
	o := Outcome{Phase: PhaseRename, Path: rn.From}

	from := filepath.Join(root, filepath.FromSlash(rn.From))
	to := filepath.Join(root, filepath.FromSlash(rn.To))

	if _, err := os.Lstat(from); err != nil {
		return missingSource(o, err)
	}
	if from == to {
		o.Kind = KindUnchanged
		o.Message = "already named " + rn.To
		return o
	}
	if _, err := os.Lstat(to); err == nil {
		return renameFailed(o, fmt.Errorf("destination %s already exists", rn.To))
	}

	if err := os.MkdirAll(filepath.Dir(to), dirMode); err != nil {
		return renameFailed(o, err)
	}
	if err := os.Rename(from, to); err != nil {
		return renameFailed(o, err)
	}

	output.Debug("renamed", "from", rn.From, "to", rn.To)
	o.Kind = KindApplied
	o.Message = "renamed to " + rn.To
	return o
}

// moveAndroidPackage moves the template-default package directory to the
// nested directory spelled by segments, e.g. com/helloworld -> com/acme/app.
// The destination may lie inside the source (com/helloworld -> com/helloworld/app);
// the move is then staged through a temporary sibling directory.
// Directories emptied by the move are removed up to the source root.
func moveAndroidPackage(root string, pkg templates.AndroidPackage, segments []string) Outcome {
	fromRel := pkg.Path()
	toRel := path.Join(pkg.SourceRoot, path.Join(segments...))
	o := Outcome{Phase: PhaseRename, Path: fromRel}

	from := filepath.Join(root, filepath.FromSlash(fromRel))
	to := filepath.Join(root, filepath.FromSlash(toRel))
	sourceRoot := filepath.Join(root, filepath.FromSlash(pkg.SourceRoot))

	info, err := os.Lstat(from)
	if err != nil {
		return missingSource(o, err)
	}
	if !info.IsDir() {
		return renameFailed(o, fmt.Errorf("%s is not a directory", fromRel))
	}
	if fromRel == toRel {
		o.Kind = KindUnchanged
		o.Message = "package directory already matches bundle identifier"
		return o
	}
	if isWithin(from, to) {
		return renameFailed(o, fmt.Errorf("destination %s contains the package directory", toRel))
	}

	if isWithin(to, from) {
		if err := stagedMove(sourceRoot, from, to); err != nil {
			return renameFailed(o, err)
		}
	} else {
		if _, err := os.Lstat(to); err == nil {
			return renameFailed(o, fmt.Errorf("destination %s already exists", toRel))
		}
		if err := os.MkdirAll(filepath.Dir(to), dirMode); err != nil {
			return renameFailed(o, err)
		}
		if err := os.Rename(from, to); err != nil {
			return renameFailed(o, err)
		}
		pruneEmptyParents(filepath.Dir(from), sourceRoot)
	}

	output.Debug("moved android package", "from", fromRel, "to", toRel)
	o.Kind = KindApplied
	o.Message = "moved to " + toRel
	return o
}

// stagedMove moves from to a destination nested inside it.
func stagedMove(sourceRoot, from, to string) error {
	staging, err := os.MkdirTemp(sourceRoot, ".rnapp-move-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(staging)

	staged := filepath.Join(staging, "pkg")
	if err := os.Rename(from, staged); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(to), dirMode); err != nil {
		// Put the tree back where it was.
		_ = os.Rename(staged, from)
		return err
	}
	if err := os.Rename(staged, to); err != nil {
		_ = os.Rename(staged, from)
		return err
	}
	return nil
}

// pruneEmptyParents removes dir and its ancestors while they are empty,
// stopping at stop.
func pruneEmptyParents(dir, stop string) {
	for isWithin(dir, stop) {
		entries, err := os.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			return
		}
		if err := os.Remove(dir); err != nil {
			return
		}
		dir = filepath.Dir(dir)
	}
}

// isWithin reports whether p lies strictly below dir.
func isWithin(p, dir string) bool {
	rel, err := filepath.Rel(dir, p)
	if err != nil || rel == "." {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func missingSource(o Outcome, err error) Outcome {
	if errors.Is(err, fs.ErrNotExist) {
		o.Kind = KindRenameSkipped
		o.Message = "not present"
		return o
	}
	return renameFailed(o, err)
}

func renameFailed(o Outcome, err error) Outcome {
	o.Kind = KindRenameFailed
	o.Message = err.Error()
	o.Err = err
	return o
}
