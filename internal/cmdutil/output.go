package cmdutil

import (
	"github.com/GilTRipper/create-react-native-app/internal/materialize"
	"github.com/GilTRipper/create-react-native-app/internal/output"
)

// Attention returns the outcomes a user should act on: warnings and
// skipped post steps, in report order.
func Attention(report *materialize.Report) []materialize.Outcome {
	var out []materialize.Outcome
	for _, o := range report.Outcomes() {
		if o.Kind.IsWarning() || o.Kind == materialize.KindPostStepSkipped {
			out = append(out, o)
		}
	}
	return out
}

// PrintOutcomes prints each outcome as a status line followed by its
// message and the commands that finish the step by hand.
func PrintOutcomes(outcomes []materialize.Outcome) {
	for _, o := range outcomes {
		output.Println(output.FormatOutcomeLine(string(o.Phase), o.Path, OutcomeStatus(o.Kind)))
		if o.Message != "" {
			output.Println("  " + output.StyleDim.Render(o.Message))
		}
		for _, c := range o.Remediation {
			output.Println(output.FormatCommand(c))
		}
	}
}

// OutcomeStatus maps an outcome kind to a display status.
func OutcomeStatus(k materialize.Kind) string {
	switch k {
	case materialize.KindApplied:
		return output.StatusApplied
	case materialize.KindUnchanged:
		return output.StatusUnchanged
	case materialize.KindRenameFailed, materialize.KindPostStepFailed:
		return output.StatusFailed
	default:
		return output.StatusSkipped
	}
}
