package poststep

import (
	"context"
	"fmt"
	"strings"

	"github.com/GilTRipper/create-react-native-app/internal/version"
)

// MinNodeMajor is the oldest Node.js major version the template supports.
const MinNodeMajor = version.MinNodeMajor

// CheckNode verifies that node is on PATH and new enough.
func CheckNode(ctx context.Context, r Runner) error {
	out, err := r.Output(ctx, "", "node", "--version")
	if err != nil {
		return fmt.Errorf("checking Node.js version: %w", err)
	}

	v := strings.TrimSpace(string(out))
	if !version.MajorAtLeast(v, 0) {
		return fmt.Errorf("unrecognized Node.js version %q", v)
	}
	if !version.MajorAtLeast(v, MinNodeMajor) {
		return fmt.Errorf("Node.js %d or higher is required, found %s", MinNodeMajor, v)
	}
	return nil
}
