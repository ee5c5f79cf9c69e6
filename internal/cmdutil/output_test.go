package cmdutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GilTRipper/create-react-native-app/internal/materialize"
	"github.com/GilTRipper/create-react-native-app/internal/output"
)

func TestAttention(t *testing.T) {
	report := materialize.NewReport()
	report.Add(
		materialize.Outcome{Phase: materialize.PhaseSubstitute, Path: "app.json", Kind: materialize.KindApplied},
		materialize.Outcome{Phase: materialize.PhaseRename, Path: "ios/HelloWorld", Kind: materialize.KindRenameFailed},
		materialize.Outcome{Phase: materialize.PhaseRename, Path: "ios/HelloWorld.xcworkspace", Kind: materialize.KindRenameSkipped},
		materialize.Outcome{Phase: materialize.PhasePods, Path: "ios", Kind: materialize.KindPostStepSkipped},
		materialize.Outcome{Phase: materialize.PhaseGit, Path: ".", Kind: materialize.KindPostStepFailed},
	)

	got := Attention(report)

	paths := make([]string, 0, len(got))
	for _, o := range got {
		paths = append(paths, string(o.Phase)+":"+o.Path)
	}
	assert.Equal(t, []string{"rename:ios/HelloWorld", "pods:ios", "git:."}, paths)
}

func TestOutcomeStatus(t *testing.T) {
	tests := []struct {
		kind materialize.Kind
		want string
	}{
		{materialize.KindApplied, output.StatusApplied},
		{materialize.KindUnchanged, output.StatusUnchanged},
		{materialize.KindRenameFailed, output.StatusFailed},
		{materialize.KindPostStepFailed, output.StatusFailed},
		{materialize.KindManifestPatchSkipped, output.StatusSkipped},
		{materialize.KindFileSubstitutionSkipped, output.StatusSkipped},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, OutcomeStatus(tt.kind))
		})
	}
}
