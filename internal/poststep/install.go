package poststep

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/GilTRipper/create-react-native-app/internal/materialize"
	"github.com/GilTRipper/create-react-native-app/internal/project"
)

// InstallArgs returns the arguments that install dependencies with pm.
// npm needs --legacy-peer-deps for the React Native peer dependency tree.
func InstallArgs(pm string) []string {
	if pm == project.PackageManagerNPM {
		return []string{"install", "--legacy-peer-deps"}
	}
	return []string{"install"}
}

// Install runs the package manager in the project root.
func Install(ctx context.Context, r Runner, spec project.Spec) materialize.Outcome {
	args := InstallArgs(spec.PackageManager)
	remediation := []string{
		"cd " + projectDir(spec),
		CommandLine(spec.PackageManager, "install"),
	}

	if err := r.Run(ctx, spec.ProjectPath, spec.PackageManager, args...); err != nil {
		return failed(materialize.PhaseInstall, ".", err, remediation...)
	}
	return applied(materialize.PhaseInstall, ".", "installed dependencies with %s", spec.PackageManager)
}

// Pods runs pod install in the project's ios directory.
func Pods(ctx context.Context, r Runner, spec project.Spec) materialize.Outcome {
	if err := r.Run(ctx, filepath.Join(spec.ProjectPath, "ios"), "pod", "install"); err != nil {
		return failed(materialize.PhasePods, "ios", err, podsRemediation(spec)...)
	}
	return applied(materialize.PhasePods, "ios", "installed CocoaPods")
}

// podsBlocked returns why pod install cannot run and the commands that
// finish it by hand, or "" when it can run.
func podsBlocked(r Runner, spec project.Spec, installed bool) (string, []string) {
	if !installed {
		return "dependencies not installed", podsRemediation(spec)
	}
	if _, err := os.Stat(filepath.Join(spec.ProjectPath, "ios", "Podfile")); err != nil {
		return fmt.Sprintf("no Podfile in %s", filepath.Join(projectDir(spec), "ios")), podsRemediation(spec)
	}
	if _, err := r.LookPath("pod"); err != nil {
		return "CocoaPods is not installed", append([]string{"sudo gem install cocoapods"}, podsRemediation(spec)...)
	}
	return "", nil
}

func podsRemediation(spec project.Spec) []string {
	return []string{"cd " + filepath.Join(projectDir(spec), "ios") + " && pod install"}
}
