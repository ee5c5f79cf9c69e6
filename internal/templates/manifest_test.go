package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GilTRipper/create-react-native-app/internal/project"
)

const minimalManifest = `
name: tiny
placeholders:
  projectName: HelloWorld
substitute:
  - app.json
`

func TestParseManifest_Minimal(t *testing.T) {
	m, err := ParseManifest([]byte(minimalManifest))
	require.NoError(t, err)
	assert.Equal(t, "tiny", m.Name)
	assert.Equal(t, []string{"app.json"}, m.Substitute)
	assert.Empty(t, m.Exclude.Match, "match mode defaults to empty (substring)")
	assert.Nil(t, m.AppManifest)
	assert.Nil(t, m.AndroidPackage)
}

func TestParseManifest_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"empty document", ``, "name is required"},
		{"missing placeholders", "name: x\n", "placeholders.projectName"},
		{"unknown key", minimalManifest + "bogus: true\n", "bogus"},
		{"bad match mode", minimalManifest + "exclude:\n  match: glob\n", "exclude.match"},
		{"absolute path", "name: x\nplaceholders: {projectName: A}\nsubstitute: [/etc/passwd]\n", "invalid path"},
		{"escaping path", "name: x\nplaceholders: {projectName: A}\nsubstitute: [../x]\n", "invalid path"},
		{"rename without target", "name: x\nplaceholders: {projectName: A}\nrenames: [{from: ios/A}]\n", "no target"},
		{"app manifest without field", "name: x\nplaceholders: {projectName: A}\nappManifest: {path: app.json}\n", "displayNameField"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRenderer_RenderRenames(t *testing.T) {
	r := NewRenderer(project.Spec{ProjectName: "CoolApp", BundleIdentifier: "com.acme.coolapp"})

	out, err := r.RenderRenames([]Rename{
		{From: "ios/HelloWorld", To: "ios/{{.ProjectName}}"},
		{From: "ios/HelloWorld.xcodeproj", To: "ios/{{.ProjectName}}.xcodeproj"},
	})
	require.NoError(t, err)
	assert.Equal(t, []Rename{
		{From: "ios/HelloWorld", To: "ios/CoolApp"},
		{From: "ios/HelloWorld.xcodeproj", To: "ios/CoolApp.xcodeproj"},
	}, out)
}

func TestRenderer_Errors(t *testing.T) {
	r := NewRenderer(project.Spec{ProjectName: "CoolApp"})

	_, err := r.RenderString("{{.NoSuchField}}")
	assert.Error(t, err)

	_, err = r.RenderString("{{.ProjectName")
	assert.Error(t, err)

	_, err = r.RenderRenames([]Rename{{From: "a", To: "../{{.ProjectName}}"}})
	assert.Error(t, err, "rendered paths must stay inside the tree")
}
