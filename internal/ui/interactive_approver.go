package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

// InteractiveApprover implements the Approver interface for console-based
// interactive confirmation. It shows the manifest path and the number of
// queued edits, then asks for a yes/no answer before anything is written.
type InteractiveApprover struct {
	verbose bool
	input   io.Reader
	output  io.Writer
}

// NewInteractiveApprover creates a new InteractiveApprover reading from
// stdin and writing to stderr.
func NewInteractiveApprover(verbose bool) pbxsync.Approver {
	return &InteractiveApprover{
		verbose: verbose,
		input:   os.Stdin,
		output:  os.Stderr,
	}
}

// RequestApproval prompts the user to confirm the pending manifest edits.
// Anything other than "y" or "yes" declines.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, manifestPath string, pendingChanges int) (bool, error) {
	fmt.Fprintf(a.output, "\nAbout to modify '%s'\n", manifestPath)
	fmt.Fprintf(a.output, "%s will be written to the build manifest.\n", pluralChanges(pendingChanges))
	fmt.Fprint(a.output, "\nApply changes? [y/N]: ")

	// Read user input with context cancellation support
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.input)
		line, err := reader.ReadString('\n')
		if err != nil {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(line)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case answer := <-inputChan:
		switch strings.ToLower(answer) {
		case "y", "yes":
			fmt.Fprintln(a.output, "✓ Approved. Writing manifest...")
			return true, nil
		}
		fmt.Fprintln(a.output, "✗ Declined. Manifest left untouched.")
		return false, nil
	}
}

// pluralChanges formats a pending-edit count for prompts.
func pluralChanges(n int) string {
	if n == 1 {
		return "1 pending change"
	}
	return fmt.Sprintf("%d pending changes", n)
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ pbxsync.Approver = (*InteractiveApprover)(nil)
