package materialize

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GilTRipper/create-react-native-app/internal/project"
	"github.com/GilTRipper/create-react-native-app/internal/testutil"
)

func coolAppSpec(t *testing.T, dir string) project.Spec {
	t.Helper()
	spec, err := project.New(project.Options{
		ProjectName:      "CoolApp",
		BundleIdentifier: "com.acme.coolapp",
		DisplayName:      "Cool App",
		ProjectPath:      dir,
	})
	require.NoError(t, err)
	return spec
}

func osFs(dir string) afero.Fs {
	return afero.NewBasePathFs(afero.NewOsFs(), dir)
}

// faultyFs fails reads of the files in unreadable and writes to the files
// in unwritable.
type faultyFs struct {
	afero.Fs
	unreadable map[string]bool
	unwritable map[string]bool
}

func (f faultyFs) Open(name string) (afero.File, error) {
	if f.unreadable[name] {
		return nil, &os.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	return f.Fs.Open(name)
}

func (f faultyFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if flag&(os.O_WRONLY|os.O_RDWR) != 0 && f.unwritable[name] {
		return nil, &os.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	if flag == os.O_RDONLY && f.unreadable[name] {
		return nil, &os.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	return f.Fs.OpenFile(name, flag, perm)
}

var helloDefaults = project.Defaults{
	ProjectName:      "HelloWorld",
	ProjectNameLower: "helloworld",
	BundleIdentifier: "com.helloworld",
	DisplayName:      "Hello World",
}

func TestSubstituteFiles_Completeness(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string]string{
		"package.json":             `{"name": "helloworld"}`,
		"app.json":                 `{"name": "HelloWorld", "displayName": "Hello World"}`,
		"android/app/build.gradle": "namespace \"com.helloworld\"\napplicationId \"com.helloworld\"\n",
		"ios/Podfile":              "target 'HelloWorld' do\nend\n",
		"README.md":                "HelloWorld stays here",
	})
	files := []string{"package.json", "app.json", "android/app/build.gradle", "ios/Podfile"}

	table := coolAppSpec(t, dir).Placeholders(helloDefaults)
	outcomes := substituteFiles(context.Background(), osFs(dir), files, table)
	require.Len(t, outcomes, len(files))

	for i, o := range outcomes {
		assert.Equal(t, files[i], o.Path, "outcomes keep list order")
		assert.Equal(t, KindApplied, o.Kind)
		assert.Empty(t, table.Remaining(testutil.ReadFile(t, dir, o.Path)), o.Path)
	}

	assert.Equal(t, `{"name": "coolapp"}`, testutil.ReadFile(t, dir, "package.json"))
	assert.Equal(t, "namespace \"com.acme.coolapp\"\napplicationId \"com.acme.coolapp\"\n",
		testutil.ReadFile(t, dir, "android/app/build.gradle"))
	assert.Equal(t, "HelloWorld stays here", testutil.ReadFile(t, dir, "README.md"), "unlisted files are untouched")
}

func TestSubstituteFiles_MissingAndUnchanged(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "index.js", "import App from './App';\n")
	testutil.WriteFile(t, dir, "ios/HelloWorld/keep", "")

	table := coolAppSpec(t, dir).Placeholders(helloDefaults)
	outcomes := substituteFiles(context.Background(), osFs(dir),
		[]string{"index.js", "ios/Podfile", "ios/HelloWorld", "index.js"}, table)
	require.Len(t, outcomes, 3, "duplicate paths are processed once")

	assert.Equal(t, KindUnchanged, outcomes[0].Kind)
	assert.Equal(t, KindFileSubstitutionSkipped, outcomes[1].Kind)
	assert.Equal(t, "not present", outcomes[1].Message)
	assert.NoError(t, outcomes[1].Err)
	assert.Equal(t, KindFileSubstitutionSkipped, outcomes[2].Kind)
	assert.Equal(t, "is a directory", outcomes[2].Message)
}

func TestSubstituteFiles_Cancelled(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "package.json", `{"name": "helloworld"}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes := substituteFiles(ctx, osFs(dir), []string{"package.json"}, coolAppSpec(t, dir).Placeholders(helloDefaults))
	require.Len(t, outcomes, 1)
	assert.Equal(t, KindFileSubstitutionSkipped, outcomes[0].Kind)
	assert.Equal(t, `{"name": "helloworld"}`, testutil.ReadFile(t, dir, "package.json"))
}

func TestSubstituteFiles_IOFailuresDoNotStopTheRun(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "package.json", []byte(`{"name": "helloworld"}`), 0o644))
	require.NoError(t, afero.WriteFile(mem, "app.json", []byte(`{"name": "HelloWorld"}`), 0o644))
	require.NoError(t, afero.WriteFile(mem, "ios/Podfile", []byte("target 'HelloWorld' do\nend\n"), 0o644))

	fsys := faultyFs{
		Fs:         mem,
		unreadable: map[string]bool{"ios/Podfile": true},
		unwritable: map[string]bool{"app.json": true},
	}
	files := []string{"app.json", "ios/Podfile", "package.json"}

	outcomes := substituteFiles(context.Background(), fsys, files, coolAppSpec(t, t.TempDir()).Placeholders(helloDefaults))
	require.Len(t, outcomes, 3)

	for _, o := range outcomes[:2] {
		assert.Equal(t, KindFileSubstitutionSkipped, o.Kind, o.Path)
		require.Error(t, o.Err, o.Path)
		assert.True(t, errors.Is(o.Err, fs.ErrPermission), o.Path)
		assert.Equal(t, o.Err.Error(), o.Message)
	}
	assert.Equal(t, "app.json", outcomes[0].Path)
	assert.Equal(t, "ios/Podfile", outcomes[1].Path)

	assert.Equal(t, KindApplied, outcomes[2].Kind)
	assert.NoError(t, outcomes[2].Err)

	got, err := afero.ReadFile(mem, "package.json")
	require.NoError(t, err)
	assert.Equal(t, `{"name": "coolapp"}`, string(got))

	got, err = afero.ReadFile(mem, "app.json")
	require.NoError(t, err)
	assert.Equal(t, `{"name": "HelloWorld"}`, string(got), "a failed write leaves the file as it was")
}
