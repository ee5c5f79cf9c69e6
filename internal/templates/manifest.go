package templates

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// Exclusion match modes.
const (
	MatchSubstring = "substring"
	MatchSegment   = "segment"
)

// ParseManifest decodes and validates a rewrite manifest. Unknown keys are rejected.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that the manifest is usable.
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("manifest: name is required")
	}
	if m.Placeholders.ProjectName == "" {
		return fmt.Errorf("manifest %s: placeholders.projectName is required", m.Name)
	}

	switch m.Exclude.Match {
	case "", MatchSubstring, MatchSegment:
	default:
		return fmt.Errorf("manifest %s: exclude.match must be %q or %q, got %q",
			m.Name, MatchSubstring, MatchSegment, m.Exclude.Match)
	}

	var paths []string
	paths = append(paths, m.Substitute...)
	paths = append(paths, m.Executables...)
	for _, r := range m.Dotfiles {
		paths = append(paths, r.From, r.To)
	}
	for _, r := range m.Renames {
		// To is validated once rendered.
		paths = append(paths, r.From)
		if r.To == "" {
			return fmt.Errorf("manifest %s: rename of %s has no target", m.Name, r.From)
		}
	}
	if m.AppManifest != nil {
		if m.AppManifest.DisplayNameField == "" {
			return fmt.Errorf("manifest %s: appManifest.displayNameField is required", m.Name)
		}
		paths = append(paths, m.AppManifest.Path)
	}
	if m.AndroidManifest != "" {
		paths = append(paths, m.AndroidManifest)
	}
	if m.AndroidPackage != nil {
		paths = append(paths, m.AndroidPackage.SourceRoot, m.AndroidPackage.From)
	}

	for _, p := range paths {
		if err := checkRelPath(p); err != nil {
			return fmt.Errorf("manifest %s: %w", m.Name, err)
		}
	}
	return nil
}

// checkRelPath rejects absolute, unclean, or escaping paths.
func checkRelPath(p string) error {
	if p == "" || p == "." || !fs.ValidPath(p) {
		return fmt.Errorf("invalid path %q: must be a clean, slash-separated path inside the template", p)
	}
	return nil
}

// IsSubstituted reports whether path is on the substitution list.
func (m *Manifest) IsSubstituted(path string) bool {
	for _, p := range m.Substitute {
		if p == path {
			return true
		}
	}
	return false
}

// IsExecutable reports whether path is declared executable.
func (m *Manifest) IsExecutable(path string) bool {
	for _, p := range m.Executables {
		if p == path {
			return true
		}
	}
	return false
}

// underPath reports whether p equals dir or lies below it.
func underPath(p, dir string) bool {
	return p == dir || strings.HasPrefix(p, dir+"/")
}
