package templates

import (
	"fmt"
	"strings"
)

// DefaultTemplateName is the bundled template.
const DefaultTemplateName = "reactnative"

// templates is the internal registry of bundled templates: name -> tree root
// and manifest file inside the embedded filesystem.
var templates = map[string]struct {
	root     string
	manifest string
}{
	"reactnative": {root: "reactnative", manifest: "reactnative.yaml"},
}

// Get returns a bundled template by name.
func Get(name string) (*Template, error) {
	entry, ok := templates[name]
	if !ok {
		return nil, fmt.Errorf("unknown template %q; valid templates: %s", name, strings.Join(Names(), ", "))
	}
	return load(entry.root, entry.manifest)
}

// Default returns the bundled React Native template.
func Default() (*Template, error) {
	return Get(DefaultTemplateName)
}

// Names returns all template names.
func Names() []string {
	return []string{DefaultTemplateName}
}
