package materialize

import "strings"

// MatchMode selects how exclusion patterns are compared with paths.
type MatchMode int

const (
	// MatchSubstring excludes any path that contains a pattern anywhere.
	// "build" therefore also excludes "android/app/build.gradle" and
	// "android/app/build" also excludes "x/android/app/builder".
	MatchSubstring MatchMode = iota

	// MatchSegment excludes a path when the pattern's segments equal a
	// contiguous run of the path's segments. "build" excludes
	// "android/app/build/outputs" but not "android/app/build.gradle".
	MatchSegment
)

// String returns the mode's config name.
func (m MatchMode) String() string {
	if m == MatchSegment {
		return "segment"
	}
	return "substring"
}

// ParseMatchMode maps a config name to a mode. ok is false for unknown names.
func ParseMatchMode(s string) (mode MatchMode, ok bool) {
	switch strings.ToLower(s) {
	case "", "substring":
		return MatchSubstring, true
	case "segment":
		return MatchSegment, true
	default:
		return MatchSubstring, false
	}
}

// Exclusions is the copy-phase denylist.
type Exclusions struct {
	Patterns []string
	Mode     MatchMode
}

// Excludes reports whether rel, a slash-separated path relative to the
// template root, must not be copied.
func (e Exclusions) Excludes(rel string) bool {
	for _, p := range e.Patterns {
		if p == "" {
			continue
		}
		switch e.Mode {
		case MatchSegment:
			if containsSegments(rel, p) {
				return true
			}
		default:
			if strings.Contains(rel, p) {
				return true
			}
		}
	}
	return false
}

// containsSegments reports whether the segments of pattern appear as a
// contiguous run in the segments of rel.
func containsSegments(rel, pattern string) bool {
	path := strings.Split(strings.Trim(rel, "/"), "/")
	pat := strings.Split(strings.Trim(pattern, "/"), "/")
	if len(pat) > len(path) {
		return false
	}

	for i := 0; i+len(pat) <= len(path); i++ {
		match := true
		for j := range pat {
			if path[i+j] != pat[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
