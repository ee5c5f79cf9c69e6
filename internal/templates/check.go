package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"

	"github.com/GilTRipper/create-react-native-app/internal/project"
)

// Finding is one inconsistency between a manifest and its template tree.
type Finding struct {
	Path    string `json:"path"`
	Problem string `json:"problem"`
}

// binarySniffLen is how many leading bytes are inspected for NUL when
// deciding whether a file is text.
const binarySniffLen = 8000

// Check cross-checks the manifest against the template tree:
//   - every substituted file, rename source and the Android package exist;
//   - every path segment that spells a default identifier is covered by a rename;
//   - every text file that mentions a default identifier is on the substitution list.
func Check(t *Template) ([]Finding, error) {
	m := t.Manifest
	var findings []Finding

	exists := func(p string) bool {
		_, err := fs.Stat(t.FS, p)
		return err == nil
	}

	for _, p := range m.Substitute {
		if !exists(p) {
			findings = append(findings, Finding{Path: p, Problem: "listed for substitution but absent from the template"})
		}
	}
	for _, r := range m.Renames {
		if !exists(r.From) {
			findings = append(findings, Finding{Path: r.From, Problem: "rename source absent from the template"})
		}
	}
	if m.AppManifest != nil && !exists(m.AppManifest.Path) {
		findings = append(findings, Finding{Path: m.AppManifest.Path, Problem: "app manifest absent from the template"})
	}
	if m.AndroidManifest != "" && !exists(m.AndroidManifest) {
		findings = append(findings, Finding{Path: m.AndroidManifest, Problem: "Android manifest absent from the template"})
	}
	if m.AndroidPackage != nil && !exists(m.AndroidPackage.Path()) {
		findings = append(findings, Finding{Path: m.AndroidPackage.Path(), Problem: "Android package directory absent from the template"})
	}

	// Placeholder values are irrelevant here; the table is only used to search.
	table := project.NewTable(
		project.Entry{Placeholder: m.Placeholders.ProjectName},
		project.Entry{Placeholder: m.Placeholders.ProjectNameLower},
		project.Entry{Placeholder: m.Placeholders.BundleIdentifier},
		project.Entry{Placeholder: m.Placeholders.DisplayName},
	)

	err := fs.WalkDir(t.FS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == "." {
			return nil
		}

		if f, ok := m.uncoveredSegment(path); ok {
			findings = append(findings, Finding{Path: f, Problem: "path spells a default identifier but is never renamed"})
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() || m.IsSubstituted(path) {
			return nil
		}

		data, err := fs.ReadFile(t.FS, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if isBinary(data) {
			return nil
		}
		if found := table.Remaining(string(data)); len(found) > 0 {
			findings = append(findings, Finding{
				Path:    path,
				Problem: fmt.Sprintf("mentions %s but is not on the substitution list", strings.Join(found, ", ")),
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("checking template %s: %w", t.Name, err)
	}

	return findings, nil
}

// uncoveredSegment returns the shortest prefix of path whose last segment
// contains the default project name (either case) and that no rename or the
// Android package move covers.
func (m *Manifest) uncoveredSegment(path string) (string, bool) {
	names := []string{m.Placeholders.ProjectName, m.Placeholders.ProjectNameLower}
	segs := strings.Split(path, "/")

	for i, seg := range segs {
		if !containsAny(seg, names) {
			continue
		}
		prefix := strings.Join(segs[:i+1], "/")
		if !m.renames(prefix) {
			return prefix, true
		}
	}
	return "", false
}

// renames reports whether p is moved by a rename or the Android package move.
func (m *Manifest) renames(p string) bool {
	for _, r := range m.Renames {
		if r.From == p {
			return true
		}
	}
	if m.AndroidPackage != nil {
		// Every directory from the source root down to the package is rewritten.
		pkg := m.AndroidPackage.Path()
		if underPath(pkg, p) && underPath(p, m.AndroidPackage.SourceRoot) {
			return true
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func isBinary(data []byte) bool {
	if len(data) > binarySniffLen {
		data = data[:binarySniffLen]
	}
	return bytes.IndexByte(data, 0) >= 0
}
