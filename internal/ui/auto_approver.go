package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

// AutoApprover implements the Approver interface for non-interactive runs.
// It approves immediately, used when the --force flag is provided or when
// no terminal is attached. The first-run backup still protects the manifest.
type AutoApprover struct {
	verbose bool
	output  io.Writer
}

// NewAutoApprover creates a new AutoApprover writing to stderr.
func NewAutoApprover(verbose bool) pbxsync.Approver {
	return &AutoApprover{
		verbose: verbose,
		output:  os.Stderr,
	}
}

// RequestApproval approves without prompting and logs what is about to
// happen so pipeline output still records the write.
func (a *AutoApprover) RequestApproval(ctx context.Context, manifestPath string, pendingChanges int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	fmt.Fprintf(a.output, "✓ Auto-approved %s to '%s'\n", pluralChanges(pendingChanges), manifestPath)
	return true, nil
}

// Verify AutoApprover implements the Approver interface at compile time
var _ pbxsync.Approver = (*AutoApprover)(nil)
