package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testDefaults = Defaults{
	ProjectName:      "HelloWorld",
	ProjectNameLower: "helloworld",
	BundleIdentifier: "com.helloworld",
	DisplayName:      "Hello World",
}

func coolApp() Spec {
	return Spec{
		ProjectName:      "CoolApp",
		ProjectNameLower: "coolapp",
		BundleIdentifier: "com.acme.coolapp",
		DisplayName:      "Cool App",
	}
}

func TestTable_Apply(t *testing.T) {
	table := coolApp().Placeholders(testDefaults)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"project name", `target 'HelloWorld' do`, `target 'CoolApp' do`},
		{"lowercase name", `"name": "helloworld"`, `"name": "coolapp"`},
		{"bundle id wins over lowercase name", `package com.helloworld`, `package com.acme.coolapp`},
		{"display name", `<string>Hello World</string>`, `<string>Cool App</string>`},
		{"all occurrences", `HelloWorld HelloWorld`, `CoolApp CoolApp`},
		{"regex metacharacters are literal", `com.helloworldX comXhelloworld`, `com.acme.coolappX comXcoolapp`},
		{"case sensitive", `HELLOWORLD`, `HELLOWORLD`},
		{"no placeholders", `nothing here`, `nothing here`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Apply(tt.in))
		})
	}
}

func TestTable_SinglePass(t *testing.T) {
	// The replacement for A contains B; B must not be substituted again.
	table := NewTable(
		Entry{Placeholder: "A", Value: "B"},
		Entry{Placeholder: "B", Value: "C"},
	)
	assert.Equal(t, "BC", table.Apply("AB"))
}

func TestNewTable_OrdersLongestFirstAndDropsEmpty(t *testing.T) {
	table := NewTable(
		Entry{Placeholder: "helloworld", Value: "x"},
		Entry{Placeholder: "", Value: "ignored"},
		Entry{Placeholder: "com.helloworld", Value: "y"},
		Entry{Placeholder: "helloworld", Value: "duplicate"},
	)

	entries := table.Entries()
	assert.Len(t, entries, 2)
	assert.Equal(t, "com.helloworld", entries[0].Placeholder)
	assert.Equal(t, "x", entries[1].Value)
}

func TestTable_Remaining(t *testing.T) {
	table := coolApp().Placeholders(testDefaults)
	content := "HelloWorld and com.helloworld"

	assert.ElementsMatch(t, []string{"HelloWorld", "com.helloworld", "helloworld"}, table.Remaining(content))
	assert.Empty(t, table.Remaining(table.Apply(content)))
}
