package project

import (
	"sort"
	"strings"
)

// Defaults are the identifiers a template ships with before rewriting.
type Defaults struct {
	ProjectName      string `yaml:"projectName" json:"projectName"`
	ProjectNameLower string `yaml:"projectNameLower" json:"projectNameLower"`
	BundleIdentifier string `yaml:"bundleIdentifier" json:"bundleIdentifier"`
	DisplayName      string `yaml:"displayName" json:"displayName"`
}

// Entry is one placeholder -> value mapping.
type Entry struct {
	Placeholder string `json:"placeholder"`
	Value       string `json:"value"`
}

// Table is an ordered set of exact-match substitutions applied in a single
// pass: text produced by one entry is never rescanned for another.
type Table struct {
	entries  []Entry
	replacer *strings.Replacer
}

// NewTable builds a table. Entries with an empty placeholder are dropped.
// Longer placeholders are ordered first so that, at any position, the most
// specific placeholder wins (com.helloworld before helloworld).
func NewTable(entries ...Entry) *Table {
	kept := make([]Entry, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.Placeholder == "" || seen[e.Placeholder] {
			continue
		}
		seen[e.Placeholder] = true
		kept = append(kept, e)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return len(kept[i].Placeholder) > len(kept[j].Placeholder)
	})

	oldnew := make([]string, 0, len(kept)*2)
	for _, e := range kept {
		oldnew = append(oldnew, e.Placeholder, e.Value)
	}

	return &Table{
		entries:  kept,
		replacer: strings.NewReplacer(oldnew...),
	}
}

// Placeholders derives the substitution table for this spec from the
// template's default identifiers.
func (s Spec) Placeholders(d Defaults) *Table {
	return NewTable(
		Entry{Placeholder: d.ProjectName, Value: s.ProjectName},
		Entry{Placeholder: d.ProjectNameLower, Value: s.ProjectNameLower},
		Entry{Placeholder: d.BundleIdentifier, Value: s.BundleIdentifier},
		Entry{Placeholder: d.DisplayName, Value: s.DisplayName},
	)
}

// Apply replaces every placeholder occurrence in content.
func (t *Table) Apply(content string) string {
	return t.replacer.Replace(content)
}

// Entries returns the table entries in application priority order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Remaining returns the placeholders that still occur in content.
func (t *Table) Remaining(content string) []string {
	var found []string
	for _, e := range t.entries {
		if strings.Contains(content, e.Placeholder) {
			found = append(found, e.Placeholder)
		}
	}
	return found
}
