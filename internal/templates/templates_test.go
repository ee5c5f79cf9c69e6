package templates

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GilTRipper/create-react-native-app/internal/project"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"reactnative"}, Names())
}

func TestGet(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"reactnative", false},
		{"expo", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := Get(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "unknown template")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.name, tmpl.Name)
			assert.NotNil(t, tmpl.FS)
			assert.NotNil(t, tmpl.Manifest)
		})
	}
}

func TestDefault_ManifestContents(t *testing.T) {
	tmpl, err := Default()
	require.NoError(t, err)

	m := tmpl.Manifest
	assert.Equal(t, "HelloWorld", m.Placeholders.ProjectName)
	assert.Equal(t, "helloworld", m.Placeholders.ProjectNameLower)
	assert.Equal(t, "com.helloworld", m.Placeholders.BundleIdentifier)
	assert.Equal(t, "Hello World", m.Placeholders.DisplayName)
	assert.Equal(t, MatchSegment, m.Exclude.Match)
	assert.Contains(t, m.Exclude.Patterns, "node_modules")
	assert.Equal(t, "app.json", m.AppManifest.Path)
	assert.Equal(t, "displayName", m.AppManifest.DisplayNameField)
	assert.Equal(t, "android/app/src/main/java/com/helloworld", m.AndroidPackage.Path())
	assert.True(t, m.IsSubstituted("ios/Podfile"))
	assert.True(t, m.IsExecutable("android/gradlew"))
}

func TestListFiles_Bundled(t *testing.T) {
	tmpl, err := Default()
	require.NoError(t, err)

	files, err := ListFiles(tmpl.FS)
	require.NoError(t, err)

	for _, want := range []string{
		"_gitignore",
		"app.json",
		"package.json",
		"android/app/build.gradle",
		"android/app/src/main/java/com/helloworld/MainActivity.kt",
		"ios/HelloWorld.xcodeproj/project.pbxproj",
		"ios/HelloWorld/Info.plist",
	} {
		assert.Contains(t, files, want)
	}
	assert.NotContains(t, files, "reactnative.yaml", "manifest must live outside the tree")
}

func TestCheck_BundledTemplateIsConsistent(t *testing.T) {
	tmpl, err := Default()
	require.NoError(t, err)

	findings, err := Check(tmpl)
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestCheck_ReportsDrift(t *testing.T) {
	fsys := fstest.MapFS{
		"app.json":                    {Data: []byte(`{"name":"HelloWorld"}`)},
		"README.md":                   {Data: []byte("# Hello World")},
		"ios/HelloWorld/Info.plist":   {Data: []byte("HelloWorld")},
		"ios/HelloWorldTests/Test.m":  {Data: []byte("x")},
		"android/app/src/main/a.bin":  {Data: []byte("Hello\x00World")},
		"android/app/src/main/b.java": {Data: []byte("nothing")},
	}
	m := &Manifest{
		Name: "drift",
		Placeholders: project.Defaults{
			ProjectName:      "HelloWorld",
			ProjectNameLower: "helloworld",
			BundleIdentifier: "com.helloworld",
			DisplayName:      "Hello World",
		},
		Substitute:     []string{"app.json", "ios/Podfile", "ios/HelloWorld/Info.plist"},
		Renames:        []Rename{{From: "ios/HelloWorld", To: "ios/{{.ProjectName}}"}, {From: "ios/Missing", To: "x"}},
		AndroidPackage: &AndroidPackage{SourceRoot: "android/app/src/main/java", From: "com/helloworld"},
	}

	findings, err := Check(&Template{Name: "drift", FS: fsys, Manifest: m})
	require.NoError(t, err)

	byPath := map[string]string{}
	for _, f := range findings {
		byPath[f.Path] = f.Problem
	}

	assert.Contains(t, byPath["ios/Podfile"], "absent")
	assert.Contains(t, byPath["ios/Missing"], "rename source absent")
	assert.Contains(t, byPath["android/app/src/main/java/com/helloworld"], "Android package")
	assert.Contains(t, byPath["ios/HelloWorldTests"], "never renamed")
	assert.Contains(t, byPath["README.md"], "Hello World")
	assert.NotContains(t, byPath, "android/app/src/main/a.bin", "binary files are not scanned")
	assert.NotContains(t, byPath, "ios/HelloWorld/Info.plist")
}
