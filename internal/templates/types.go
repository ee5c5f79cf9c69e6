// Package templates provides the bundled project template and its rewrite manifest.
package templates

import (
	"io/fs"

	"github.com/GilTRipper/create-react-native-app/internal/project"
)

// Template is a template tree paired with the manifest describing how to rewrite it.
type Template struct {
	// Name is the template identifier.
	Name string

	// Description explains what the template produces.
	Description string

	// FS is rooted at the template tree. It is only ever read.
	FS fs.FS

	// Manifest declares placeholders, exclusions, substitutions and renames.
	Manifest *Manifest
}

// Manifest is the declarative rewrite description of a template.
// All paths are slash-separated and relative to the template root.
type Manifest struct {
	// Name is the template identifier.
	Name string `yaml:"name" json:"name"`

	// Description explains what the template produces.
	Description string `yaml:"description" json:"description,omitempty"`

	// Placeholders are the identifiers the template ships with.
	Placeholders project.Defaults `yaml:"placeholders" json:"placeholders"`

	// Exclude lists paths that are never copied.
	Exclude Exclude `yaml:"exclude" json:"exclude"`

	// Dotfiles are renamed right after the copy (e.g. _gitignore -> .gitignore).
	Dotfiles []Rename `yaml:"dotfiles" json:"dotfiles,omitempty"`

	// Executables get mode 0755 in the target.
	Executables []string `yaml:"executables" json:"executables,omitempty"`

	// Substitute lists files whose content gets the placeholder table applied.
	Substitute []string `yaml:"substitute" json:"substitute"`

	// AppManifest is the JSON file whose display-name field is guaranteed.
	AppManifest *AppManifest `yaml:"appManifest" json:"appManifest,omitempty"`

	// AndroidManifest is the AndroidManifest.xml that needs a package attribute.
	AndroidManifest string `yaml:"androidManifest" json:"androidManifest,omitempty"`

	// Renames run in order after all content rewriting. To is a text/template
	// executed against project.Spec.
	Renames []Rename `yaml:"renames" json:"renames,omitempty"`

	// AndroidPackage is moved to the directory tree matching the bundle identifier.
	AndroidPackage *AndroidPackage `yaml:"androidPackage" json:"androidPackage,omitempty"`
}

// Exclude configures the copy-phase denylist.
type Exclude struct {
	// Match is "substring" (default) or "segment".
	Match string `yaml:"match" json:"match,omitempty"`

	// Patterns are matched against each entry's path relative to the template root.
	Patterns []string `yaml:"patterns" json:"patterns"`
}

// Rename moves From to To.
type Rename struct {
	From string `yaml:"from" json:"from"`
	To   string `yaml:"to" json:"to"`
}

// AppManifest locates the app JSON manifest and its display-name field.
type AppManifest struct {
	Path             string `yaml:"path" json:"path"`
	DisplayNameField string `yaml:"displayNameField" json:"displayNameField"`
}

// AndroidPackage locates the template-default package directory.
type AndroidPackage struct {
	// SourceRoot is the directory holding package trees (e.g. android/app/src/main/java).
	SourceRoot string `yaml:"sourceRoot" json:"sourceRoot"`

	// From is the default package directory below SourceRoot (e.g. com/helloworld).
	From string `yaml:"from" json:"from"`
}

// Path returns the full template-relative path of the default package directory.
func (a AndroidPackage) Path() string {
	return a.SourceRoot + "/" + a.From
}
