package materialize

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/GilTRipper/create-react-native-app/internal/errors"
	"github.com/GilTRipper/create-react-native-app/internal/templates"
	"github.com/GilTRipper/create-react-native-app/internal/testutil"
)

func copyFixture() map[string]string {
	return map[string]string{
		"_gitignore":                        "node_modules/\n",
		"package.json":                      `{"name":"helloworld"}`,
		"App.tsx":                           "export default function App() {}\n",
		"node_modules/react/index.js":       "module.exports = {}\n",
		".git/HEAD":                         "ref: refs/heads/main\n",
		"android/build.gradle":              "buildscript {}\n",
		"android/gradlew":                   "#!/bin/sh\n",
		"android/app/build.gradle":          "android {}\n",
		"android/app/build/outputs/app.apk": "binary",
		"ios/Pods/Manifest.lock":            "lock",
		"ios/Podfile":                       "target 'HelloWorld'\n",
	}
}

var fixturePatterns = []string{"node_modules", ".git", "android/app/build", "Pods"}

func TestCopy_SubstringExclusion(t *testing.T) {
	files := copyFixture()
	dir := filepath.Join(t.TempDir(), "nested", "CoolApp")

	report, err := Copy(context.Background(), testutil.MapFS(files), dir, CopyOptions{
		Exclusions: Exclusions{Patterns: fixturePatterns},
	})
	require.NoError(t, err)
	require.NotNil(t, report)

	e := Exclusions{Patterns: fixturePatterns}
	for rel, content := range files {
		if e.Excludes(rel) {
			assert.False(t, testutil.Exists(t, dir, rel), "%s should be excluded", rel)
			continue
		}
		assert.Equal(t, content, testutil.ReadFile(t, dir, rel), "%s should be byte-identical", rel)
	}

	// Substring matching also drops the Gradle file next to the build directory.
	assert.False(t, testutil.Exists(t, dir, "android/app/build.gradle"))
	assert.True(t, testutil.Exists(t, dir, "android/build.gradle"))
}

func TestCopy_SegmentExclusionKeepsBuildFiles(t *testing.T) {
	dir := t.TempDir()

	_, err := Copy(context.Background(), testutil.MapFS(copyFixture()), dir, CopyOptions{
		Exclusions: Exclusions{Patterns: fixturePatterns, Mode: MatchSegment},
	})
	require.NoError(t, err)

	assert.True(t, testutil.Exists(t, dir, "android/app/build.gradle"))
	assert.False(t, testutil.Exists(t, dir, "android/app/build"))
	assert.False(t, testutil.Exists(t, dir, "node_modules"))
	assert.False(t, testutil.Exists(t, dir, "ios/Pods"))
}

func TestCopy_RenamesDotfiles(t *testing.T) {
	dir := t.TempDir()

	report, err := Copy(context.Background(), testutil.MapFS(copyFixture()), dir, CopyOptions{
		Exclusions: Exclusions{Patterns: fixturePatterns, Mode: MatchSegment},
		Dotfiles:   []templates.Rename{{From: "_gitignore", To: ".gitignore"}, {From: "_npmrc", To: ".npmrc"}},
	})
	require.NoError(t, err)

	assert.False(t, testutil.Exists(t, dir, "_gitignore"))
	assert.Equal(t, "node_modules/\n", testutil.ReadFile(t, dir, ".gitignore"))

	o, ok := report.Find(PhaseCopy, "_gitignore")
	require.True(t, ok)
	assert.Equal(t, KindApplied, o.Kind)

	o, ok = report.Find(PhaseCopy, "_npmrc")
	require.True(t, ok)
	assert.Equal(t, KindRenameSkipped, o.Kind)
}

func TestCopy_Executables(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not preserved on windows")
	}
	dir := t.TempDir()

	_, err := Copy(context.Background(), testutil.MapFS(copyFixture()), dir, CopyOptions{
		Executables: []string{"android/gradlew"},
	})
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, "android", "gradlew"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	info, err = os.Stat(filepath.Join(dir, "App.tsx"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestCopy_FailureIsCopyError(t *testing.T) {
	base := t.TempDir()
	blocker := testutil.WriteFile(t, base, "blocker", "not a directory")

	sink := &RecordingSink{}
	_, err := Copy(context.Background(), testutil.MapFS(copyFixture()), filepath.Join(blocker, "CoolApp"), CopyOptions{Sink: sink})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrCopy))

	var detail *oerrors.DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "copy failed", detail.Type)

	events := sink.Events()
	require.Len(t, events, 2)
	assert.Equal(t, Event{Phase: PhaseCopy, Status: StatusStarted, Message: filepath.Join(blocker, "CoolApp")}, events[0])
	assert.Equal(t, StatusFailed, events[1].Status)
}

func TestCopy_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Copy(ctx, testutil.MapFS(copyFixture()), t.TempDir(), CopyOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrCopy))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestCopy_SinkEvents(t *testing.T) {
	sink := &RecordingSink{}
	dir := t.TempDir()

	_, err := Copy(context.Background(), testutil.MapFS(copyFixture()), dir, CopyOptions{Sink: sink})
	require.NoError(t, err)

	events := sink.Events()
	require.Len(t, events, 2)
	assert.Equal(t, StatusStarted, events[0].Status)
	assert.Equal(t, StatusSucceeded, events[1].Status)
}

func TestCopy_KeepsSourceExecBit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not preserved on windows")
	}
	dir := t.TempDir()
	fsys := testutil.MapFS(map[string]string{"scripts/bootstrap.sh": "#!/bin/sh\n"})
	fsys["scripts/bootstrap.sh"].Mode = 0o755

	_, err := Copy(context.Background(), fsys, dir, CopyOptions{})
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, "scripts", "bootstrap.sh"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestCopy_ReportsCounts(t *testing.T) {
	report, err := Copy(context.Background(), testutil.MapFS(copyFixture()), t.TempDir(), CopyOptions{
		Exclusions: Exclusions{Patterns: fixturePatterns, Mode: MatchSegment},
	})
	require.NoError(t, err)

	o, ok := report.Find(PhaseCopy, ".")
	require.True(t, ok)
	assert.Equal(t, KindApplied, o.Kind)
	assert.Equal(t, "copied 7 files, excluded 4 entries", o.Message)
}
