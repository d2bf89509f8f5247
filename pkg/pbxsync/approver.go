package pbxsync

import "context"

// Approver handles user interaction for approval workflows before the
// manifest is rewritten on disk.
//
// Implementations:
//   - AutoApprover: approves immediately (--force, CI pipelines)
//   - InteractiveApprover: prompts the user on the terminal
type Approver interface {
	// RequestApproval asks for confirmation before writing the manifest.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//   - manifestPath: the file about to be rewritten
	//   - pendingChanges: number of record insertions or rewrites queued
	//
	// Returns:
	//   - bool: true if approved, false if denied
	//   - error: Any error that occurred during the approval process
	RequestApproval(ctx context.Context, manifestPath string, pendingChanges int) (bool, error)
}
