package project

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	projectNameRegex   = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)
	bundleSegmentRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
)

// ValidateProjectName checks that name can be used as an iOS target and a
// JavaScript module name.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}

	if !projectNameRegex.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must start with a letter and contain only letters and digits", name)
	}

	return nil
}

// displayNameReserved are characters that would need escaping in the XML,
// plist and JSON files the display name is substituted into verbatim.
const displayNameReserved = `"'\<>&`

// ValidateDisplayName checks that name is non-empty and can be written into
// the template's resource files without escaping.
func ValidateDisplayName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("display name cannot be empty")
	}
	for _, r := range name {
		if strings.ContainsRune(displayNameReserved, r) || unicode.IsControl(r) {
			return fmt.Errorf("invalid display name %q: must not contain %q or control characters", name, r)
		}
	}
	return nil
}

// ValidateBundleIdentifier checks that id is a reverse-domain identifier whose
// segments are also valid Java/Kotlin package names.
func ValidateBundleIdentifier(id string) error {
	if id == "" {
		return fmt.Errorf("bundle identifier cannot be empty")
	}

	segments := strings.Split(id, ".")
	if len(segments) < 2 {
		return fmt.Errorf("invalid bundle identifier %q: needs at least two dot-separated segments", id)
	}

	for _, seg := range segments {
		if !bundleSegmentRegex.MatchString(seg) {
			return fmt.Errorf("invalid bundle identifier %q: segment %q must start with a letter and contain only letters, digits, and underscores", id, seg)
		}
		if isReservedWord(seg) {
			return fmt.Errorf("invalid bundle identifier %q: segment %q is a reserved word", id, seg)
		}
	}

	return nil
}

// isReservedWord checks if a segment is a Java or Kotlin keyword that cannot
// appear in a package name.
func isReservedWord(name string) bool {
	reserved := map[string]bool{
		"abstract":     true,
		"as":           true,
		"boolean":      true,
		"break":        true,
		"byte":         true,
		"case":         true,
		"catch":        true,
		"char":         true,
		"class":        true,
		"const":        true,
		"continue":     true,
		"default":      true,
		"do":           true,
		"double":       true,
		"else":         true,
		"enum":         true,
		"extends":      true,
		"false":        true,
		"final":        true,
		"finally":      true,
		"float":        true,
		"for":          true,
		"fun":          true,
		"goto":         true,
		"if":           true,
		"implements":   true,
		"import":       true,
		"in":           true,
		"instanceof":   true,
		"int":          true,
		"interface":    true,
		"is":           true,
		"long":         true,
		"native":       true,
		"new":          true,
		"null":         true,
		"object":       true,
		"package":      true,
		"private":      true,
		"protected":    true,
		"public":       true,
		"return":       true,
		"short":        true,
		"static":       true,
		"strictfp":     true,
		"super":        true,
		"switch":       true,
		"synchronized": true,
		"this":         true,
		"throw":        true,
		"throws":       true,
		"transient":    true,
		"true":         true,
		"try":          true,
		"typealias":    true,
		"typeof":       true,
		"val":          true,
		"var":          true,
		"void":         true,
		"volatile":     true,
		"when":         true,
		"while":        true,
	}
	return reserved[name]
}
