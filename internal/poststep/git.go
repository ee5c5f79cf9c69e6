package poststep

import (
	"fmt"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/GilTRipper/create-react-native-app/internal/materialize"
	"github.com/GilTRipper/create-react-native-app/internal/output"
)

// fallbackSignature is used when no global git identity is configured.
var fallbackSignature = object.Signature{
	Name:  "rnapp",
	Email: "rnapp@localhost",
}

// GitInit creates a repository in dir and commits the whole tree with message.
func GitInit(dir, message string) materialize.Outcome {
	remediation := []string{
		"git init",
		"git add .",
		fmt.Sprintf("git commit -m %q", message),
	}

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		return failed(materialize.PhaseGit, ".", fmt.Errorf("initializing repository: %w", err), remediation...)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return failed(materialize.PhaseGit, ".", fmt.Errorf("opening worktree: %w", err), remediation[1:]...)
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return failed(materialize.PhaseGit, ".", fmt.Errorf("staging files: %w", err), remediation[1:]...)
	}

	sig := signature()
	sig.When = time.Now()

	hash, err := wt.Commit(message, &git.CommitOptions{Author: &sig})
	if err != nil {
		return failed(materialize.PhaseGit, ".", fmt.Errorf("committing: %w", err), remediation[2:]...)
	}

	output.Debug("created initial commit", "hash", hash.String(), "author", sig.Name)
	return applied(materialize.PhaseGit, ".", "initial commit %s", hash.String()[:7])
}

// signature returns the user's global git identity, or a fallback.
func signature() object.Signature {
	cfg, err := config.LoadConfig(config.GlobalScope)
	if err != nil || cfg.User.Name == "" || cfg.User.Email == "" {
		return fallbackSignature
	}
	return object.Signature{Name: cfg.User.Name, Email: cfg.User.Email}
}
