package cmd

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GilTRipper/create-react-native-app/internal/cmdutil"
	"github.com/GilTRipper/create-react-native-app/internal/config"
	oerrors "github.com/GilTRipper/create-react-native-app/internal/errors"
	"github.com/GilTRipper/create-react-native-app/internal/materialize"
	"github.com/GilTRipper/create-react-native-app/internal/output"
	"github.com/GilTRipper/create-react-native-app/internal/poststep"
	"github.com/GilTRipper/create-react-native-app/internal/project"
	"github.com/GilTRipper/create-react-native-app/internal/templates"
)

// initOptions holds the flags of the init command.
type initOptions struct {
	project   cmdutil.ProjectFlags
	postSteps cmdutil.PostStepFlags
	exclusion cmdutil.ExclusionFlags
	output    cmdutil.OutputFlags

	// runner executes the post steps. nil means os/exec.
	runner poststep.Runner
}

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	return newInitCmd(&initOptions{})
}

func newInitCmd(opts *initOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <ProjectName>",
		Short: "Create a new React Native app",
		Long: `Create a new React Native app from the bundled template.

The template is copied into the target directory and every template default
identifier is rewritten: file contents, the app.json display name, the
AndroidManifest.xml package, the iOS project names and the Android package
directory. Dependencies, CocoaPods (macOS) and an initial git commit follow
unless skipped; a failure there is reported with the commands to finish by hand.

Examples:
  # Create CoolApp with bundle id com.coolapp
  rnapp init CoolApp

  # Choose the bundle identifier and display name
  rnapp init CoolApp --bundle-id com.acme.coolapp --display-name "Cool App"

  # Generate only, no install or git
  rnapp init CoolApp --skip-install --skip-git

  # Machine-readable report
  rnapp init CoolApp -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exitError(runInit(cmd, args[0], opts))
		},
	}

	opts.project.AddTo(cmd)
	opts.postSteps.AddTo(cmd)
	opts.exclusion.AddTo(cmd)
	opts.output.AddTo(cmd)

	return cmd
}

// initResult is the machine-readable result of init.
type initResult struct {
	Project  project.Spec          `json:"project"`
	Outcomes []materialize.Outcome `json:"outcomes"`
}

func runInit(cmd *cobra.Command, name string, opts *initOptions) error {
	format, err := opts.output.Parse()
	if err != nil {
		return err
	}

	l, err := currentLoader()
	if err != nil {
		return err
	}

	pm := l.Resolve(config.KeyPackageManager, flagValue(cmd, "package-manager", opts.project.PackageManager))
	skipInstall := l.Resolve(config.KeySkipInstall, boolFlagValue(cmd, "skip-install", opts.postSteps.SkipInstall))
	skipGit := l.Resolve(config.KeySkipGit, boolFlagValue(cmd, "skip-git", opts.postSteps.SkipGit))
	skipPods := l.Resolve(config.KeySkipPods, boolFlagValue(cmd, "skip-pods", opts.postSteps.SkipPods))
	excludeMatch := l.Resolve(config.KeyExcludeMatch, flagValue(cmd, "exclude-match", opts.exclusion.Match))
	commitMessage := l.Resolve(config.KeyGitCommitMessage, config.FlagValue{})
	config.LogResolved(pm, skipInstall, skipGit, skipPods, excludeMatch)

	spec, err := project.New(project.Options{
		ProjectName:      name,
		BundleIdentifier: opts.project.BundleID,
		DisplayName:      opts.project.DisplayName,
		ProjectPath:      opts.project.Dir,
		PackageManager:   pm.Value,
		SkipInstall:      skipInstall.Bool(),
		SkipGit:          skipGit.Bool(),
		SkipPods:         skipPods.Bool(),
	})
	if err != nil {
		return err
	}

	if err := checkTargetDir(spec.ProjectPath); err != nil {
		return err
	}

	matOpts := materialize.Options{
		ExtraExclusions: append(append([]string{}, rnappConf.Exclude...), opts.exclusion.Paths...),
	}
	if excludeMatch.Value != "" {
		mode, ok := materialize.ParseMatchMode(excludeMatch.Value)
		if !ok {
			return oerrors.NewValidationError(
				fmt.Sprintf("unknown exclusion match mode: %s", excludeMatch.Value), "", "exclude-match",
				`Use "substring" or "segment".`)
		}
		matOpts.MatchMode = &mode
	}

	tmpl, err := templates.Default()
	if err != nil {
		return err
	}

	log := output.ProjectLogger(spec.ProjectName)
	matOpts.Sink = materialize.SinkFunc(func(e materialize.Event) {
		log.Debug(string(e.Status), "phase", e.Phase, "detail", e.Message)
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if !spec.SkipInstall {
		if err := poststep.CheckNode(ctx, runnerOrDefault(opts.runner)); err != nil {
			log.Warn("Node.js check failed; dependency install may not work", "err", err)
		}
	}

	var report *materialize.Report
	err = output.RunWithSpinner(ctx, func(ctx context.Context) error {
		var merr error
		report, merr = materialize.Materialize(ctx, spec, tmpl, matOpts)
		return merr
	}, output.WithTitle(fmt.Sprintf("Creating %s...", spec.ProjectName)))
	if err != nil {
		return err
	}

	poststep.Run(ctx, spec, report, poststep.Options{
		Runner:        runnerOrDefault(opts.runner),
		CommitMessage: commitMessage.Value,
		Sink:          matOpts.Sink,
	})

	if format != output.FormatText {
		data, err := output.Marshal(initResult{Project: spec, Outcomes: report.Outcomes()}, format)
		if err != nil {
			return err
		}
		output.Print(string(data))
		return nil
	}

	printInitSummary(spec, tmpl.Manifest, report)
	return nil
}

func runnerOrDefault(r poststep.Runner) poststep.Runner {
	if r == nil {
		return poststep.NewExecRunner()
	}
	return r
}

// checkTargetDir rejects a target that exists and is not an empty directory.
func checkTargetDir(dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return oerrors.NewPermissionError(fmt.Sprintf("cannot inspect %s: %v", dir, err),
			map[string]string{"Directory": dir}, "")
	}

	if !info.IsDir() {
		return oerrors.NewValidationError(
			fmt.Sprintf("%s exists and is not a directory", dir), dir, "dir",
			"Choose a different directory or remove the existing file.")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return oerrors.NewPermissionError(fmt.Sprintf("cannot read %s: %v", dir, err),
			map[string]string{"Directory": dir}, "")
	}
	if len(entries) > 0 {
		return oerrors.NewValidationError(
			fmt.Sprintf("directory already exists and is not empty: %s", dir), dir, "dir",
			"Choose a different directory or remove the existing one.")
	}
	return nil
}

// printInitSummary renders the text result of init.
func printInitSummary(spec project.Spec, m *templates.Manifest, report *materialize.Report) {
	output.Println(output.FormatCheckmark(fmt.Sprintf("Created %s in %s",
		output.StyleNoun.Render(spec.ProjectName), spec.ProjectPath)))
	output.Println("")
	output.Print(output.RenderFileTree(filepath.Base(spec.ProjectPath), keyPaths(spec, m)))

	if attention := cmdutil.Attention(report); len(attention) > 0 {
		output.Println("")
		cmdutil.PrintOutcomes(attention)
	}

	output.Println("")
	output.Println(output.StyleSummary.Render("Next steps:"))
	for _, c := range nextSteps(spec, report) {
		output.Println(output.FormatCommand(c))
	}
}

// keyPaths lists the generated paths worth pointing out that exist in the project.
func keyPaths(spec project.Spec, m *templates.Manifest) map[string]string {
	candidates := map[string]string{
		"package.json": "Dependencies and scripts",
		"ios/" + spec.ProjectName + "/":           "iOS app sources",
		"ios/" + spec.ProjectName + ".xcodeproj/": "Xcode project",
	}
	if m.AppManifest != nil {
		candidates[m.AppManifest.Path] = "App manifest (" + spec.DisplayName + ")"
	}
	if m.AndroidPackage != nil {
		pkg := path.Join(m.AndroidPackage.SourceRoot, path.Join(spec.AndroidPackagePath()...))
		candidates[pkg+"/"] = "Android package " + spec.BundleIdentifier
	}

	files := make(map[string]string, len(candidates))
	for p, desc := range candidates {
		if _, err := os.Stat(filepath.Join(spec.ProjectPath, filepath.FromSlash(strings.TrimSuffix(p, "/")))); err == nil {
			files[p] = desc
		}
	}
	return files
}

// nextSteps returns the commands that start the app.
func nextSteps(spec project.Spec, report *materialize.Report) []string {
	steps := []string{"cd " + displayDir(spec.ProjectPath)}
	if o, ok := report.Find(materialize.PhaseInstall, "."); !ok || o.Kind != materialize.KindApplied {
		steps = append(steps, spec.PackageManager+" install")
	}
	steps = append(steps,
		runScript(spec.PackageManager, "ios"),
		runScript(spec.PackageManager, "android"),
	)
	return steps
}

func runScript(pm, script string) string {
	if pm == project.PackageManagerNPM {
		return "npm run " + script
	}
	return pm + " " + script
}

// displayDir shortens dir relative to the working directory when possible.
func displayDir(dir string) string {
	wd, err := os.Getwd()
	if err != nil {
		return dir
	}
	rel, err := filepath.Rel(wd, dir)
	if err != nil || strings.HasPrefix(rel, "..") {
		return dir
	}
	return rel
}
