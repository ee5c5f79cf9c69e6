package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

// The all: prefix keeps _gitignore, which embed would otherwise skip.
//
//go:embed all:reactnative reactnative.yaml
var bundledFS embed.FS

// load builds a Template from the embedded tree at root and its manifest file.
func load(root, manifestFile string) (*Template, error) {
	data, err := bundledFS.ReadFile(manifestFile)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", manifestFile, err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}

	sub, err := fs.Sub(bundledFS, root)
	if err != nil {
		return nil, fmt.Errorf("opening template %s: %w", root, err)
	}

	return &Template{
		Name:        m.Name,
		Description: m.Description,
		FS:          sub,
		Manifest:    m,
	}, nil
}

// ListFiles returns every regular file in fsys, sorted.
func ListFiles(fsys fs.FS) ([]string, error) {
	var files []string

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing template files: %w", err)
	}

	sort.Strings(files)
	return files, nil
}
